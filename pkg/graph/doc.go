// Package graph holds the immutable, validated node graph a sequence walks.
//
// All structural checks happen in New; once built, a Graph never changes and
// never reports an invalid-graph error during execution. Cycles are legal and
// are not detected.
package graph
