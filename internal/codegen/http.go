package codegen

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gelaxyai/gelaxy/internal/errors"
	"github.com/gelaxyai/gelaxy/internal/logger"
)

// maxResponseBytes caps how much of a response body is read.
const maxResponseBytes = 1 << 20

// UserAgent is sent with every endpoint request.
var UserAgent = "gelaxy/dev"

// HTTPGenerator posts {prompt, language} as JSON to a fixed endpoint and
// expects {code} back. A non-2xx status carries {error}.
type HTTPGenerator struct {
	endpoint string
	client   *http.Client
}

// HTTPOption configures an HTTPGenerator.
type HTTPOption func(*HTTPGenerator)

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(c *http.Client) HTTPOption {
	return func(g *HTTPGenerator) {
		g.client = c
	}
}

// NewHTTPGenerator creates a generator for the given endpoint URL.
func NewHTTPGenerator(endpoint string, opts ...HTTPOption) *HTTPGenerator {
	g := &HTTPGenerator{
		endpoint: endpoint,
		client:   &http.Client{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// endpointResponse covers both the success and the error payloads. The
// optional description/language/model fields are used when present.
type endpointResponse struct {
	Code        string `json:"code"`
	Description string `json:"description,omitempty"`
	Language    string `json:"language,omitempty"`
	Model       string `json:"model,omitempty"`
	Error       string `json:"error,omitempty"`
}

// Generate performs one POST to the endpoint.
func (g *HTTPGenerator) Generate(ctx context.Context, req Request) (Result, error) {
	log := logger.WithComponent("codegen").With("backend", "endpoint", "language", req.Language)

	if err := Validate(req); err != nil {
		return Result{}, err
	}

	body, err := json.Marshal(req)
	if err != nil {
		return Result{}, errors.GenerationFailed("could not encode request", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(body))
	if err != nil {
		return Result{}, errors.GenerationFailed("invalid code generation endpoint", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", UserAgent)

	start := time.Now()
	resp, err := g.client.Do(httpReq)
	if err != nil {
		log.Error("request failed", "error", err, "elapsed", time.Since(start))
		if stderrors.Is(err, context.DeadlineExceeded) {
			return Result{}, errors.GenerationTimedOut("the code generation service timed out", err)
		}
		return Result{}, errors.ServiceUnreachable("could not reach the code generation service", err)
	}
	defer resp.Body.Close()

	log.Debug("response received", "status", resp.StatusCode, "elapsed", time.Since(start))

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return Result{}, errors.GenerationFailed("could not read the service response", err)
	}

	var payload endpointResponse
	decodeErr := json.Unmarshal(data, &payload)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if decodeErr == nil && payload.Error != "" {
			return Result{}, errors.GenerationFailed(payload.Error, nil)
		}
		return Result{}, errors.GenerationFailed(fmt.Sprintf("code generation failed (HTTP %d)", resp.StatusCode), nil)
	}

	if decodeErr != nil {
		return Result{}, errors.GenerationFailed("the service returned an invalid response", decodeErr)
	}
	if payload.Code == "" {
		return Result{}, errors.GenerationFailed("the service returned no code", nil)
	}

	return Result{
		Code:        payload.Code,
		Description: payload.Description,
		Language:    payload.Language,
		Model:       payload.Model,
	}, nil
}
