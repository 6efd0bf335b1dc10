// Package genai holds the boundary to the external generation service. Both
// the emotion classifier and the advice generator consume the Client
// interface; transport failures, non-2xx responses and empty candidates are
// all reported as ordinary errors so callers can pattern-match and degrade.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

var (
	ErrGenerationFailed = errors.New("GENERATION_FAILED")
	ErrEmptyCandidate   = errors.New("EMPTY_CANDIDATE")
	ErrTimeout          = errors.New("GENERATION_TIMEOUT")
)

// Options bounds a single generation call.
type Options struct {
	Temperature     float64
	TopP            float64
	TopK            int
	MaxOutputTokens int
}

// Candidate is one generated alternative.
type Candidate struct {
	Text string
}

// Result is the outcome of a successful generation call.
type Result struct {
	Candidates []Candidate
}

// FirstText returns the first candidate's text, trimmed. ok is false when no
// candidate carries non-empty text.
func (r *Result) FirstText() (string, bool) {
	if r == nil {
		return "", false
	}
	for _, c := range r.Candidates {
		if text := strings.TrimSpace(c.Text); text != "" {
			return text, true
		}
	}
	return "", false
}

// Client is the generation capability consumed by the pipeline.
type Client interface {
	Generate(ctx context.Context, prompt string, opts Options) (*Result, error)
}

// Config holds the HTTP client settings.
type Config struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// HTTPClient calls a generateContent-style endpoint. There is deliberately
// no retry loop: a failed call is reported once and the caller falls back.
type HTTPClient struct {
	config *Config
	client *http.Client
}

func NewHTTPClient(config *Config) *HTTPClient {
	return &HTTPClient{
		config: config,
		client: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// Wire types for the generateContent request/response shape.

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopP            float64 `json:"topP,omitempty"`
	TopK            int     `json:"topK,omitempty"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (c *HTTPClient) Generate(ctx context.Context, prompt string, opts Options) (*Result, error) {
	reqBody := generateRequest{
		Contents: []content{
			{Parts: []part{{Text: prompt}}},
		},
		GenerationConfig: &generationConfig{
			Temperature:     opts.Temperature,
			TopP:            opts.TopP,
			TopK:            opts.TopK,
			MaxOutputTokens: opts.MaxOutputTokens,
		},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("%w: marshal request: %v", ErrGenerationFailed, err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.config.BaseURL, c.config.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrGenerationFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.config.APIKey != "" {
		req.Header.Set("x-goog-api-key", c.config.APIKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		if ctx.Err() != nil || errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrTimeout
		}
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: status %d: %s", ErrGenerationFailed, resp.StatusCode, string(payload))
	}

	var apiResponse generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResponse); err != nil {
		return nil, fmt.Errorf("%w: decode error: %v", ErrGenerationFailed, err)
	}

	result := &Result{}
	for _, cand := range apiResponse.Candidates {
		var sb strings.Builder
		for _, p := range cand.Content.Parts {
			sb.WriteString(p.Text)
		}
		result.Candidates = append(result.Candidates, Candidate{Text: sb.String()})
	}

	if _, ok := result.FirstText(); !ok {
		return nil, ErrEmptyCandidate
	}

	return result, nil
}
