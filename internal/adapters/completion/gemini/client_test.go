package gemini

import (
	"context"
	"errors"
	"testing"

	"medication-tracker/internal/ports/completion"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type fakeModels struct {
	calls  int
	model  string
	config *genai.GenerateContentConfig
	prompt string

	resp *genai.GenerateContentResponse
	err  error
}

func (f *fakeModels) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.calls++
	f.model = model
	f.config = config
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		f.prompt = contents[0].Parts[0].Text
	}
	return f.resp, f.err
}

func textResponse(s string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Role: genai.RoleModel, Parts: []*genai.Part{{Text: s}}},
		}},
	}
}

func TestComplete_MapsRequest(t *testing.T) {
	f := &fakeModels{resp: textResponse("nausea reported twice")}
	c := &Client{models: f}

	text, err := c.Complete(context.Background(), completion.Request{
		System:      "sys",
		Prompt:      "analyze",
		MaxTokens:   200,
		Temperature: 0.7,
	})
	require.NoError(t, err)
	assert.Equal(t, "nausea reported twice", text)

	assert.Equal(t, 1, f.calls)
	assert.Equal(t, Model, f.model)
	assert.Equal(t, "analyze", f.prompt)
	assert.Equal(t, int32(200), f.config.MaxOutputTokens)
	require.NotNil(t, f.config.Temperature)
	assert.InDelta(t, 0.7, float64(*f.config.Temperature), 1e-6)
	require.NotNil(t, f.config.SystemInstruction)
}

func TestComplete_Errors(t *testing.T) {
	c := &Client{models: &fakeModels{err: errors.New("quota")}}
	_, err := c.Complete(context.Background(), completion.Request{Prompt: "x"})
	assert.ErrorContains(t, err, "quota")

	c = &Client{models: &fakeModels{resp: &genai.GenerateContentResponse{}}}
	_, err = c.Complete(context.Background(), completion.Request{Prompt: "x"})
	assert.ErrorIs(t, err, ErrEmptyResponse)

	unconfigured, err := NewClient(context.Background(), Config{})
	require.NoError(t, err)
	_, err = unconfigured.Complete(context.Background(), completion.Request{Prompt: "x"})
	assert.ErrorIs(t, err, ErrNotConfigured)
}
