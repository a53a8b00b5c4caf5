package insights

import (
	"context"
	"errors"
	"strings"
	"testing"

	"medication-tracker/internal/platform/metrics"
	"medication-tracker/internal/ports/completion"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------------------------
// Fake completer
// -------------------------

type fakeCompleter struct {
	calls int
	last  completion.Request
	text  string
	err   error
}

func (f *fakeCompleter) Complete(ctx context.Context, req completion.Request) (string, error) {
	f.calls++
	f.last = req
	return f.text, f.err
}

// -------------------------
// Tests
// -------------------------

func TestGenerate_EmptyNotes_ShortCircuits(t *testing.T) {
	fc := &fakeCompleter{text: "should not be used"}
	m := metrics.NewCollector("test")
	svc := NewService(fc, Options{Metrics: m})

	out, err := svc.Generate(context.Background(), Request{MedicineName: "Aspirin", Dosage: "100mg"})
	require.NoError(t, err)
	assert.Equal(t, []string{NoNotesMessage}, out)
	assert.Equal(t, 0, fc.calls)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.InsightRequests.WithLabelValues(metrics.InsightEmpty)))
}

func TestGenerate_OneCall_TrimmedText(t *testing.T) {
	fc := &fakeCompleter{text: "\n  Headache is the most common symptom.  \n"}
	svc := NewService(fc, Options{})

	out, err := svc.Generate(context.Background(), Request{
		Notes:        "headache\nnausea",
		MedicineName: "Aspirin",
		Dosage:       "100mg",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Headache is the most common symptom."}, out)

	assert.Equal(t, 1, fc.calls)
	assert.Equal(t, MaxTokens, fc.last.MaxTokens)
	assert.InDelta(t, Temperature, fc.last.Temperature, 1e-9)
	assert.Equal(t, systemPrompt, fc.last.System)
	assert.Empty(t, fc.last.Model)

	// Nombre, dosis y notas van verbatim en el prompt.
	assert.True(t, strings.HasPrefix(fc.last.Prompt,
		"Analyze the following medication logs for Aspirin with a dosage of 100mg:\n\nheadache\nnausea for a users most common symptom"))
	assert.Contains(t, fc.last.Prompt, `"You should also be aware of the following"`)
}

func TestGenerate_LongNotesPassThroughUnchanged(t *testing.T) {
	fc := &fakeCompleter{text: "ok"}
	svc := NewService(fc, Options{})

	notes := strings.Repeat("dizzy <b>& tired</b>\n", 5000)
	_, err := svc.Generate(context.Background(), Request{Notes: notes, MedicineName: "X", Dosage: "1"})
	require.NoError(t, err)
	assert.Contains(t, fc.last.Prompt, notes)
}

func TestGenerate_EmptyCompletion_NoResponse(t *testing.T) {
	svc := NewService(&fakeCompleter{text: "   "}, Options{})

	out, err := svc.Generate(context.Background(), Request{Notes: "a"})
	require.NoError(t, err)
	assert.Equal(t, []string{NoResponseMessage}, out)
}

func TestGenerate_ProviderError_ReturnedAsIs(t *testing.T) {
	boom := errors.New("dial tcp: connection refused")
	fc := &fakeCompleter{err: boom}
	m := metrics.NewCollector("test")
	svc := NewService(fc, Options{Metrics: m})

	out, err := svc.Generate(context.Background(), Request{Notes: "a"})
	assert.Nil(t, out)
	assert.Same(t, boom, err)
	assert.Equal(t, 1, fc.calls)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.InsightRequests.WithLabelValues(metrics.InsightError)))
}
