package domain

// Status is the lifecycle state of a Sequence.
type Status string

const (
	StatusRunning           Status = "running"            // Ready to run, or inside a step
	StatusSuspendedInput    Status = "suspended_input"    // Waiting for Resume with input
	StatusSuspendedDecision Status = "suspended_decision" // Waiting for Resume with a confirmed node
	StatusCompleted         Status = "completed"          // Sink reached
	StatusFailed            Status = "failed"             // A node raised an error
)

// Terminal reports whether no further Run or Resume is allowed.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// Suspended reports whether the sequence is waiting on the caller.
func (s Status) Suspended() bool {
	return s == StatusSuspendedInput || s == StatusSuspendedDecision
}
