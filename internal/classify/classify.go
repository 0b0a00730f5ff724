// Package classify turns raw user text into a structured request the
// resolvers can act on. The language model is the only non-deterministic
// piece of the system; everything downstream of the Request is plain code.
package classify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Operation codes carried on the wire, matching the prompt contract.
const (
	OpAdd    = "0"
	OpEdit   = "1"
	OpDelete = "2"
	OpView   = "3"
)

// Known targets.
const (
	TargetContacts = "contacts"
	TargetTasks    = "tasks"
)

var ErrClassification = errors.New("classification")

// Request is the structured form of one user command. Parameters is loosely
// typed on purpose: add commands carry flat field values, edit/delete carry
// nested "criteria"/"updates" maps, and the model may legally omit any of it
// (the resolvers' fallback extractors recover what they can).
type Request struct {
	Operation  string         `json:"operation"`
	Target     string         `json:"target"`
	Parameters map[string]any `json:"parameters"`
}

// Classifier is the single external capability the core depends on.
type Classifier interface {
	Classify(ctx context.Context, raw string) (*Request, error)
}

// Func adapts a function to the Classifier interface. Tests use it to feed
// literal fixtures through the router.
type Func func(ctx context.Context, raw string) (*Request, error)

func (f Func) Classify(ctx context.Context, raw string) (*Request, error) {
	return f(ctx, raw)
}

// parseRequest decodes a model reply into a Request. Replies wrapped in
// markdown code fences are unwrapped first.
func parseRequest(reply string) (*Request, error) {
	body := stripFences(reply)
	var req Request
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		return nil, fmt.Errorf("%w: bad model reply: %v", ErrClassification, err)
	}
	req.Target = strings.ToLower(strings.TrimSpace(req.Target))
	req.Operation = strings.TrimSpace(req.Operation)
	if req.Parameters == nil {
		req.Parameters = map[string]any{}
	}
	return &req, nil
}

func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
