package auth

import "context"

// AuthVerifier verifica un bearer token y devuelve claims o error.
// Es opcional: sin verifier el servicio corre en modo dev / cookie.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}
