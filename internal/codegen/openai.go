package codegen

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/gelaxyai/gelaxy/internal/config"
	"github.com/gelaxyai/gelaxy/internal/errors"
	"github.com/gelaxyai/gelaxy/internal/logger"
)

// OpenAIGenerator asks an OpenAI chat model for code directly.
type OpenAIGenerator struct {
	client   *openai.Client
	model    string
	sampling config.Sampling
}

// NewOpenAIGenerator creates a generator from provider settings.
func NewOpenAIGenerator(p config.Provider, s config.Sampling) *OpenAIGenerator {
	cfg := openai.DefaultConfig(p.APIKey)
	if p.BaseURL != "" {
		cfg.BaseURL = p.BaseURL
	}
	model := p.Model
	if model == "" {
		model = openai.GPT4
	}
	return &OpenAIGenerator{
		client:   openai.NewClientWithConfig(cfg),
		model:    model,
		sampling: s,
	}
}

// Generate sends one chat completion request.
func (g *OpenAIGenerator) Generate(ctx context.Context, req Request) (Result, error) {
	log := logger.WithComponent("codegen").With("backend", "openai", "model", g.model, "language", req.Language)

	if err := Validate(req); err != nil {
		return Result{}, err
	}

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt(req.Language)},
			{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
		},
		Temperature: g.sampling.Temperature,
		MaxTokens:   g.sampling.MaxTokens,
	})
	if err != nil {
		log.Error("chat completion failed", "error", err)
		var apiErr *openai.APIError
		if stderrors.As(err, &apiErr) && apiErr.Message != "" {
			return Result{}, errors.GenerationFailed(apiErr.Message, err)
		}
		var reqErr *openai.RequestError
		if stderrors.As(err, &reqErr) {
			return Result{}, errors.GenerationFailed(fmt.Sprintf("code generation failed (HTTP %d)", reqErr.HTTPStatusCode), err)
		}
		if stderrors.Is(err, context.DeadlineExceeded) {
			return Result{}, errors.GenerationTimedOut("the OpenAI API timed out", err)
		}
		return Result{}, errors.ServiceUnreachable("could not reach the OpenAI API", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return Result{}, errors.GenerationFailed("the model returned no code", nil)
	}

	log.Debug("chat completion received", "finish_reason", resp.Choices[0].FinishReason)

	return Result{
		Code:     resp.Choices[0].Message.Content,
		Language: req.Language,
		Model:    resp.Model,
	}, nil
}
