package node

import (
	"context"
	"strings"

	"github.com/aretw0/stepwise/pkg/domain"
)

// Validator checks caller-supplied input for an Input node.
// A non-nil error rejects the input and keeps the node waiting.
type Validator func(input any) error

// Prompt is the payload of an INPUT_REQUIRED response.
type Prompt struct {
	NodeID  string `json:"node_id"`
	Text    string `json:"text"`
	Problem string `json:"problem,omitempty"` // Why the previous input was rejected
}

// Input halts the sequence until input is supplied, then continues to its successor.
// The accepted input becomes the payload of the completing response.
type Input struct {
	id       string
	next     string
	prompt   string
	validate Validator
}

// NewInput creates an Input node. validate may be nil.
func NewInput(id, next, prompt string, validate Validator) *Input {
	return &Input{id: id, next: next, prompt: prompt, validate: validate}
}

func (n *Input) ID() string { return n.id }

func (n *Input) Kind() domain.Kind { return domain.KindInput }

// Prompt returns the text shown to the caller.
func (n *Input) Prompt() string { return n.prompt }

func (n *Input) Successors() []string {
	if n.next == "" {
		return nil
	}
	return []string{n.next}
}

func (n *Input) Execute(_ context.Context, input any) (domain.Response, error) {
	if isEmpty(input) {
		return domain.InputRequired(Prompt{NodeID: n.id, Text: n.prompt}), nil
	}
	if n.validate != nil {
		if err := n.validate(input); err != nil {
			return domain.InputRequired(Prompt{NodeID: n.id, Text: n.prompt, Problem: err.Error()}), nil
		}
	}
	return domain.Complete(input), nil
}

func isEmpty(input any) bool {
	switch v := input.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	}
	return false
}
