package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"skillax-backend/internal/config"
	"skillax-backend/internal/domains/chat/model"
	"skillax-backend/internal/shared/errs"
)

// Provider completes a conversation transcript with the next assistant
// message.
type Provider interface {
	Complete(ctx context.Context, messages []model.Message) (string, error)
}

type openAIProvider struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

// NewOpenAI talks to any OpenAI-compatible chat-completions endpoint.
func NewOpenAI(cfg config.ChatConfig) Provider {
	return &openAIProvider{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		model:   cfg.Model,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type completionRequest struct {
	Model    string          `json:"model"`
	Messages []model.Message `json:"messages"`
}

type completionResponse struct {
	Choices []struct {
		Message model.Message `json:"message"`
	} `json:"choices"`
}

func (p *openAIProvider) Complete(ctx context.Context, messages []model.Message) (string, error) {
	body, err := json.Marshal(completionRequest{Model: p.model, Messages: messages})
	if err != nil {
		return "", fmt.Errorf("encode completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		p.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("%w: completion endpoint returned %d: %s",
			errs.ErrUpstreamUnavailable, resp.StatusCode, string(snippet))
	}

	var parsed completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("%w: decode completion response: %v", errs.ErrUpstreamUnavailable, err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("%w: completion response had no choices", errs.ErrUpstreamUnavailable)
	}
	return parsed.Choices[0].Message.Content, nil
}
