/*
Package domain contains the core domain model of the Stepwise sequence executor.

It defines the fundamental entities of the engine: the Node capability, the
Response a node produces, the DecisionStrategy injected into branching nodes and
the lifecycle Status of a running Sequence. This package is kept pure and free
of external dependencies like I/O or persistence, following Hexagonal
Architecture principles.

# Key Entities

  - Node: one executable step in the workflow graph.
  - Response: the status and payload produced by one node execution.
  - DecisionStrategy: the policy that selects one candidate successor.
  - Status: the lifecycle state of a Sequence (running, suspended, finished).
  - LifecycleHooks: observability callbacks fired by the driver.
*/
package domain
