package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"medication-tracker/internal/platform/httpclient"
	"medication-tracker/internal/ports/completion"
)

const (
	DefaultBaseURL = "https://api.openai.com/v1"

	// Model es fijo; no se expone como configuración.
	Model = "gpt-3.5-turbo"
)

var (
	ErrNotConfigured = errors.New("openai: api key not configured")
)

type Config struct {
	APIKey  string
	BaseURL string // opcional (default api.openai.com)
	Timeout time.Duration
}

// Client implementa completion.Completer contra /chat/completions.
type Client struct {
	apiKey string
	http   *httpclient.Client
}

func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = DefaultBaseURL
	}
	hc, err := httpclient.NewWithBaseURL(base, cfg.Timeout)
	if err != nil {
		return nil, err
	}
	hc.UserAgent = "medication-tracker"

	return &Client{
		apiKey: strings.TrimSpace(cfg.APIKey),
		http:   hc,
	}, nil
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.apiKey != ""
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Complete hace un único POST /chat/completions. Errores de red, no-2xx
// (*httpclient.HTTPError) y respuestas sin choices se devuelven tal cual.
func (c *Client) Complete(ctx context.Context, req completion.Request) (string, error) {
	if !c.IsConfigured() {
		return "", ErrNotConfigured
	}

	model := req.Model
	if model == "" {
		model = Model
	}

	msgs := make([]chatMessage, 0, 2)
	if s := strings.TrimSpace(req.System); s != "" {
		msgs = append(msgs, chatMessage{Role: "system", Content: req.System})
	}
	msgs = append(msgs, chatMessage{Role: "user", Content: req.Prompt})

	var out chatResponse
	err := c.http.DoJSON(ctx, http.MethodPost, "/chat/completions",
		map[string]string{"Authorization": "Bearer " + c.apiKey},
		chatRequest{
			Model:       model,
			Messages:    msgs,
			MaxTokens:   req.MaxTokens,
			Temperature: req.Temperature,
		},
		&out,
	)
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}

	// Sin choices => texto vacío; el servicio de insights responde "No response".
	if len(out.Choices) == 0 {
		return "", nil
	}
	return out.Choices[0].Message.Content, nil
}
