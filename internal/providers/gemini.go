package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sikiriki12/imgx/internal/errdefs"
	"github.com/sikiriki12/imgx/internal/logging"
)

const (
	geminiBaseURL        = "https://generativelanguage.googleapis.com/v1beta"
	geminiDefaultTimeout = 60 * time.Second
	geminiDefaultModel   = "gemini-2.5-flash"

	modelsPageSize = 100
)

// Gemini is a client for the Gemini generateContent REST API. The code
// execution tool is always enabled, so responses may interleave text,
// reasoning, code, execution output, and inline images.
type Gemini struct {
	config Config
	client *http.Client
}

// NewGemini returns a client, filling unset config fields with defaults.
func NewGemini(config Config) *Gemini {
	if config.BaseURL == "" {
		config.BaseURL = geminiBaseURL
	}
	config.BaseURL = strings.TrimSuffix(config.BaseURL, "/")
	if config.Model == "" {
		config.Model = geminiDefaultModel
	}
	if config.Timeout <= 0 {
		config.Timeout = geminiDefaultTimeout
	}
	return &Gemini{
		config: config,
		client: &http.Client{Timeout: config.Timeout},
	}
}

// Model reports the model identifier requests are sent to.
func (p *Gemini) Model() string {
	return p.config.Model
}

// Generate sends a single user turn and returns the raw response.
func (p *Gemini) Generate(ctx context.Context, parts []Part) (*GenerateResponse, error) {
	return p.generate(ctx, []Content{{Role: "user", Parts: parts}})
}

func (p *Gemini) generate(ctx context.Context, contents []Content) (*GenerateResponse, error) {
	payload := generateRequest{
		Contents: contents,
		Tools:    []tool{{CodeExecution: &codeExecution{}}},
	}
	if p.config.SystemInstruction != "" {
		payload.SystemInstruction = &Content{
			Parts: []Part{{Text: p.config.SystemInstruction}},
		}
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent", p.config.BaseURL, p.config.Model)
	var response GenerateResponse
	if err := p.makeRequest(ctx, http.MethodPost, endpoint, payload, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// ListModels fetches the models available to the configured API key.
func (p *Gemini) ListModels(ctx context.Context) ([]ModelInfo, error) {
	endpoint := fmt.Sprintf("%s/models?pageSize=%d", p.config.BaseURL, modelsPageSize)
	var response listModelsResponse
	if err := p.makeRequest(ctx, http.MethodGet, endpoint, nil, &response); err != nil {
		return nil, err
	}
	return response.Models, nil
}

func (p *Gemini) makeRequest(ctx context.Context, method, endpoint string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return errdefs.Transportf("marshal error: %w", err)
		}
		body = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return errdefs.Transportf("request creation failed: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", p.config.APIKey)

	logging.Debugf("%s %s", method, endpoint)
	resp, err := p.client.Do(req)
	if err != nil {
		return errdefs.Transportf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return errdefs.Transportf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var envelope apiError
		if json.Unmarshal(respBody, &envelope) == nil && envelope.Error.Message != "" {
			return errdefs.Transportf("API error [%d]: %s", resp.StatusCode, envelope.Error.Message)
		}
		return errdefs.Transportf("API error [%d]: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return errdefs.Transportf("response parsing failed: %w", err)
	}
	return nil
}
