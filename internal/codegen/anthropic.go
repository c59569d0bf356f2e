package codegen

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/gelaxyai/gelaxy/internal/config"
	"github.com/gelaxyai/gelaxy/internal/errors"
	"github.com/gelaxyai/gelaxy/internal/logger"
)

// DefaultAnthropicModel is used when no model is configured.
const DefaultAnthropicModel = "claude-sonnet-4-20250514"

// AnthropicGenerator asks an Anthropic model for code directly.
type AnthropicGenerator struct {
	client   anthropic.Client
	model    string
	sampling config.Sampling
}

// NewAnthropicGenerator creates a generator from provider settings. The SDK's
// automatic retries are disabled so each turn is a single attempt.
func NewAnthropicGenerator(p config.Provider, s config.Sampling) *AnthropicGenerator {
	opts := []option.RequestOption{
		option.WithAPIKey(p.APIKey),
		option.WithMaxRetries(0),
	}
	if p.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(p.BaseURL))
	}
	model := p.Model
	if model == "" {
		model = DefaultAnthropicModel
	}
	return &AnthropicGenerator{
		client:   anthropic.NewClient(opts...),
		model:    model,
		sampling: s,
	}
}

// Generate sends one Messages API request and joins the returned text blocks.
func (g *AnthropicGenerator) Generate(ctx context.Context, req Request) (Result, error) {
	log := logger.WithComponent("codegen").With("backend", "anthropic", "model", g.model, "language", req.Language)

	if err := Validate(req); err != nil {
		return Result{}, err
	}

	msg, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(g.model),
		MaxTokens: int64(g.sampling.MaxTokens),
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt(req.Language)},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
		},
		Temperature: anthropic.Float(float64(g.sampling.Temperature)),
	})
	if err != nil {
		log.Error("messages request failed", "error", err)
		var apiErr *anthropic.Error
		if stderrors.As(err, &apiErr) {
			return Result{}, errors.GenerationFailed(anthropicErrorMessage(apiErr), err)
		}
		if stderrors.Is(err, context.DeadlineExceeded) {
			return Result{}, errors.GenerationTimedOut("the Anthropic API timed out", err)
		}
		return Result{}, errors.ServiceUnreachable("could not reach the Anthropic API", err)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return Result{}, errors.GenerationFailed("the model returned no code", nil)
	}

	log.Debug("messages response received", "stop_reason", msg.StopReason)

	return Result{
		Code:     sb.String(),
		Language: req.Language,
		Model:    string(msg.Model),
	}, nil
}

// anthropicErrorMessage prefers the message from the API's error body and
// falls back to the status code.
func anthropicErrorMessage(apiErr *anthropic.Error) string {
	var body anthropic.ErrorResponse
	if raw := apiErr.RawJSON(); raw != "" {
		if err := json.Unmarshal([]byte(raw), &body); err == nil && body.Error.Message != "" {
			return body.Error.Message
		}
	}
	return fmt.Sprintf("code generation failed (HTTP %d)", apiErr.StatusCode)
}
