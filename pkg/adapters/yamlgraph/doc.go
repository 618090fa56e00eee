// Package yamlgraph loads graphs from YAML (or JSON) documents.
//
// A document names an entry node and lists nodes. Each node is either a
// simple node (optional "do" action from a registry), an input node ("ask"),
// or a decision node ("decide"):
//
//	entry: start
//	nodes:
//	  - id: start
//	    do: print
//	    with: {message: "Welcome"}
//	    next: route
//	  - id: route
//	    decide:
//	      candidates: [short, long]
//	      strategy: {type: fixed, node: long}
//	  - id: short
//	  - id: long
//
// Strategies: fixed (node), index (index), round_robin, random (optional seed).
// A strategy may be written as a bare type name, e.g. "strategy: round_robin".
package yamlgraph
