package runner

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/aretw0/stepwise/pkg/ports"
)

// JSONHandler implements the IOHandler interface for JSON-Lines communication.
// Every outcome is written as one JSON object; answers are read one per line,
// either as a JSON string or as raw text.
type JSONHandler struct {
	Reader  *bufio.Reader
	Encoder *json.Encoder
}

// Message is the envelope written by JSONHandler.
type Message struct {
	Type    string         `json:"type"` // "outcome" or "system"
	Outcome *ports.Outcome `json:"outcome,omitempty"`
	Text    string         `json:"text,omitempty"`
}

// NewJSONHandler creates a handler for JSON IO.
func NewJSONHandler(r io.Reader, w io.Writer) *JSONHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	return &JSONHandler{
		Reader:  bufio.NewReader(r),
		Encoder: json.NewEncoder(w),
	}
}

func (h *JSONHandler) Output(_ context.Context, out ports.Outcome) (bool, error) {
	if err := h.Encoder.Encode(Message{Type: "outcome", Outcome: &out}); err != nil {
		return false, err
	}
	return out.Status.Suspended(), nil
}

func (h *JSONHandler) Input(_ context.Context) (string, error) {
	text, err := h.Reader.ReadString('\n')
	if err != nil && (err != io.EOF || text == "") {
		return "", err
	}
	text = strings.TrimSpace(text)

	var val string
	if err := json.Unmarshal([]byte(text), &val); err == nil {
		return SanitizeInput(val)
	}
	return SanitizeInput(text)
}

func (h *JSONHandler) SystemOutput(_ context.Context, msg string) error {
	return h.Encoder.Encode(Message{Type: "system", Text: msg})
}
