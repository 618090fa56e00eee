package domain

import "fmt"

// ResponseStatus tells the driver what to do after a node executed.
type ResponseStatus string

const (
	// StatusComplete advances to the node's successor.
	StatusComplete ResponseStatus = "complete"
	// StatusInputRequired suspends the sequence until input is supplied.
	StatusInputRequired ResponseStatus = "input_required"
	// StatusDecisionRequired carries a chosen successor to move to.
	StatusDecisionRequired ResponseStatus = "decision_required"
)

// Valid reports whether s is one of the known statuses.
func (s ResponseStatus) Valid() bool {
	switch s {
	case StatusComplete, StatusInputRequired, StatusDecisionRequired:
		return true
	}
	return false
}

// Response is the outcome of a single node execution.
// Chosen is only meaningful when Status is StatusDecisionRequired.
type Response struct {
	Status  ResponseStatus `json:"status"`
	Payload any            `json:"payload,omitempty"`
	Chosen  string         `json:"chosen,omitempty"`
}

// Complete builds a StatusComplete response.
func Complete(payload any) Response {
	return Response{Status: StatusComplete, Payload: payload}
}

// InputRequired builds a StatusInputRequired response. The payload usually
// describes what is being asked (a prompt).
func InputRequired(payload any) Response {
	return Response{Status: StatusInputRequired, Payload: payload}
}

// DecisionRequired builds a StatusDecisionRequired response for the chosen successor.
func DecisionRequired(chosen string) Response {
	return Response{Status: StatusDecisionRequired, Chosen: chosen}
}

// Validate checks the response is well-formed.
func (r Response) Validate() error {
	if !r.Status.Valid() {
		return fmt.Errorf("invalid response status %q", r.Status)
	}
	if r.Status == StatusDecisionRequired && r.Chosen == "" {
		return fmt.Errorf("%w: decision response without a chosen successor", ErrInvalidChoice)
	}
	return nil
}
