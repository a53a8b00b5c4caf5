package router

import (
	"context"
	"errors"

	"medication-tracker/internal/ports/completion"
)

var errNoProvider = errors.New("insights provider not configured")

// unavailableCompleter se usa cuando el proceso arranca sin proveedor.
// Cada solicitud falla igual que un proveedor caído.
type unavailableCompleter struct{}

func (unavailableCompleter) Complete(context.Context, completion.Request) (string, error) {
	return "", errNoProvider
}
