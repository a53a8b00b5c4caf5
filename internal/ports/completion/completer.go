package completion

import "context"

// Request es un único pedido de completion (mensaje de sistema + prompt de usuario).
type Request struct {
	Model       string
	System      string
	Prompt      string
	MaxTokens   int
	Temperature float64
}

// Completer hace exactamente un request al proveedor y devuelve el texto
// de la primera respuesta. Sin reintentos.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
}
