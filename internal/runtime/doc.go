// Package runtime implements the Sequence driver: the state machine that walks
// a graph, executing one node at a time, advancing on completion and
// suspending when a node asks for input or a decision needs confirmation.
package runtime
