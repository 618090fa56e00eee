/*
Package ports defines the driven ports (interfaces) for the Stepwise engine.

These interfaces decouple the core logic from external implementations, allowing
live sequences to be kept in different registries and guarded by different lock
backends.

# Key Interfaces

  - Sequence: the driver surface a session layer needs (Run, Resume, Status).
  - SequenceStore: keeps live sequences addressable by ID within one process.
  - DistributedLocker: serializes access to one sequence across workers.
  - ResourceProvider, RuleEvaluator: collaborators consumed by decision strategies.
*/
package ports
