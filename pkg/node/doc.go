// Package node provides the built-in Node variants: Simple, Decision and Input.
//
// All variants are immutable after construction, so a graph built from them can
// be shared by any number of concurrently running sequences.
package node
