package insights

import (
	"context"
	"strings"

	"medication-tracker/internal/platform/logger"
	"medication-tracker/internal/platform/metrics"
	"medication-tracker/internal/ports/completion"
)

const (
	// NoNotesMessage es la respuesta (exitosa) cuando no hay notas.
	NoNotesMessage = "No notes provided."

	// NoResponseMessage reemplaza un texto vacío del proveedor.
	NoResponseMessage = "No response"

	// ApologyMessage es lo que ve el usuario en la pantalla de insights si algo falla.
	ApologyMessage = "There was an error generating insights. Please try again later."
)

type Request struct {
	Notes        string
	MedicineName string
	Dosage       string
}

// Service es el proxy de insights: sin estado, un request externo por llamada.
type Service struct {
	completer completion.Completer
	log       logger.Logger
	metrics   *metrics.Collector
}

type Options struct {
	Logger  logger.Logger
	Metrics *metrics.Collector
}

func NewService(c completion.Completer, opts Options) *Service {
	l := opts.Logger
	if l == nil {
		l = logger.Nop()
	}
	return &Service{
		completer: c,
		log:       l,
		metrics:   opts.Metrics,
	}
}

// Generate devuelve la lista de insights (hoy siempre de largo 1).
// Notas vacías => NoNotesMessage sin llamar al proveedor.
// Cualquier error del proveedor se devuelve sin clasificar ni reintentar.
func (s *Service) Generate(ctx context.Context, req Request) ([]string, error) {
	if req.Notes == "" {
		s.metrics.IncInsight(metrics.InsightEmpty)
		return []string{NoNotesMessage}, nil
	}

	text, err := s.completer.Complete(ctx, completion.Request{
		System:      systemPrompt,
		Prompt:      buildPrompt(req.MedicineName, req.Dosage, req.Notes),
		MaxTokens:   MaxTokens,
		Temperature: Temperature,
	})
	if err != nil {
		s.metrics.IncInsight(metrics.InsightError)
		s.log.Warn("insight completion failed", map[string]any{
			"medicine": req.MedicineName,
			"error":    err,
		})
		return nil, err
	}

	s.metrics.IncInsight(metrics.InsightOK)

	text = strings.TrimSpace(text)
	if text == "" {
		text = NoResponseMessage
	}
	return []string{text}, nil
}
