package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"medication-tracker/internal/ports/completion"

	"google.golang.org/genai"
)

// Model es fijo; no se expone como configuración.
const Model = "gemini-2.0-flash"

var (
	ErrNotConfigured = errors.New("gemini: api key not configured")
	ErrEmptyResponse = errors.New("gemini: no candidates returned")
)

// generator es el subconjunto de *genai.Models que usamos (permite fakes en tests).
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type Config struct {
	APIKey  string
	Timeout time.Duration
}

// Client implementa completion.Completer con Gemini (google.golang.org/genai).
type Client struct {
	models generator
}

// NewClient crea el cliente. Sin API key no falla: Complete devolverá
// ErrNotConfigured en cada request.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	key := strings.TrimSpace(cfg.APIKey)
	if key == "" {
		return &Client{}, nil
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     key,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: timeout},
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: new client: %w", err)
	}
	return &Client{models: gc.Models}, nil
}

func (c *Client) Complete(ctx context.Context, req completion.Request) (string, error) {
	if c == nil || c.models == nil {
		return "", ErrNotConfigured
	}

	model := req.Model
	if model == "" {
		model = Model
	}

	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(req.Temperature)),
		MaxOutputTokens: int32(req.MaxTokens),
	}
	if strings.TrimSpace(req.System) != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}

	resp, err := c.models.GenerateContent(ctx, model, genai.Text(req.Prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return "", ErrEmptyResponse
	}
	return resp.Text(), nil
}
