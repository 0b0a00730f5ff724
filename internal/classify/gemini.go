package classify

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const defaultModel = "gemini-2.0-flash"

// Gemini classifies commands with two model calls: a routing call that picks
// the operation and target, then an extraction call with the
// operation-specific prompt.
type Gemini struct {
	client *genai.Client
	model  string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

func NewGemini(ctx context.Context, cfg GeminiConfig) (*Gemini, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: API key not configured", ErrClassification)
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrClassification, err)
	}
	return &Gemini{client: client, model: cfg.Model}, nil
}

func (g *Gemini) Classify(ctx context.Context, raw string) (*Request, error) {
	routed, err := g.generate(ctx, routerInstructions, raw)
	if err != nil {
		return nil, err
	}
	route, err := parseRequest(routed)
	if err != nil {
		return nil, err
	}

	instr := instructionsFor(route.Operation)
	if instr == "" {
		// Unknown operation codes flow through; the router answers gracefully.
		return route, nil
	}
	extracted, err := g.generate(ctx, instr, raw)
	if err != nil {
		return nil, err
	}
	req, err := parseRequest(extracted)
	if err != nil {
		return nil, err
	}
	req.Operation = route.Operation
	if req.Target == "" {
		req.Target = route.Target
	}
	return req, nil
}

func (g *Gemini) generate(ctx context.Context, system, user string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(user), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
		ResponseMIMEType:  "application/json",
		Temperature:       genai.Ptr[float32](0),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrClassification, err)
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("%w: empty model reply", ErrClassification)
	}
	return text, nil
}
