// Package codegen performs the single request/response exchange with a code
// generation backend for one user turn.
//
// Every backend makes exactly one attempt per call: no retries, no partial
// results. Failures are reported as KindGeneration errors whose user message
// comes from the service when it provides one.
package codegen

import (
	"context"
	"fmt"
	"strings"

	"github.com/gelaxyai/gelaxy/internal/catalog"
	"github.com/gelaxyai/gelaxy/internal/config"
	"github.com/gelaxyai/gelaxy/internal/errors"
	"github.com/gelaxyai/gelaxy/internal/logger"
)

// Request is one code generation request.
type Request struct {
	Prompt   string `json:"prompt"`
	Language string `json:"language"`
}

// Result is the outcome of a successful exchange.
type Result struct {
	Code        string
	Description string // Optional explanation, when the backend returns one separately
	Language    string // Language reported by the backend, if any
	Model       string // Model reported by the backend, if any
}

// Generator produces code for a prompt in a given language.
type Generator interface {
	Generate(ctx context.Context, req Request) (Result, error)
}

// Validate checks the request before it is sent. Unknown languages are passed
// through to the backend unchanged.
func Validate(req Request) error {
	if strings.TrimSpace(req.Prompt) == "" {
		return errors.EmptyPrompt()
	}
	return nil
}

// New builds the generator selected by the configuration.
func New(cfg *config.Config) (Generator, error) {
	log := logger.WithComponent("codegen")
	log.Debug("creating generator", "backend", cfg.Backend)

	switch cfg.Backend {
	case config.BackendEndpoint:
		return NewHTTPGenerator(cfg.Endpoint), nil
	case config.BackendOpenAI:
		return NewOpenAIGenerator(cfg.OpenAI, cfg.Sampling), nil
	case config.BackendAnthropic:
		return NewAnthropicGenerator(cfg.Anthropic, cfg.Sampling), nil
	case config.BackendDemo:
		return NewDemoGenerator(cfg.DemoDelay), nil
	default:
		return nil, errors.ConfigInvalid(fmt.Sprintf("unknown backend %q", cfg.Backend))
	}
}

// systemPrompt is the instruction sent to model backends.
func systemPrompt(languageID string) string {
	name := "JavaScript"
	if l, ok := catalog.Lookup(languageID); ok {
		name = l.PromptName
	}
	return fmt.Sprintf(`You are an experienced programmer. Generate high-quality, clean and well documented code in %s.
Follow the best practices of the language. Add comments to complex parts.
Response format: code only, without additional explanations.`, name)
}
