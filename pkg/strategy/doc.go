// Package strategy provides DecisionStrategy implementations.
//
// Fixed, Index and RoundRobin are deterministic; Random is not; Rule picks the
// first candidate whose bound rule evaluates to true. Every strategy returns a
// member of the candidate list it was given, or an error.
package strategy
