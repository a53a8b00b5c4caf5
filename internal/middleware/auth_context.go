package middleware

import (
	"context"
	"net/http"
	"strings"

	"medication-tracker/internal/ports/auth"

	"github.com/google/uuid"
)

type ctxKey string

const (
	claimsKey ctxKey = "claims"
	ownerKey  ctxKey = "owner"
)

const (
	// OwnerCookie identifica el "navegador" cuando no hay usuario autenticado:
	// es el equivalente server-side del localStorage de cada browser.
	OwnerCookie = "owner_id"

	// DefaultOwner se usa si el request no pasó por AuthContext (tests, tooling).
	DefaultOwner = "local"
)

// AuthContext resuelve el owner del Record Store:
// - Si verifier != nil y viene Bearer token válido => owner = claims.UserID.
// - Si verifier == nil => modo dev: header X-Debug-User-ID => owner.
// - Si no, cookie owner_id; si no existe se genera una nueva (uuid) y se setea.
// Nunca corta el request: ningún endpoint exige auth.
func AuthContext(verifier auth.AuthVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if claims, ok := resolveClaims(r, verifier); ok {
				ctx = context.WithValue(ctx, claimsKey, claims)
				ctx = context.WithValue(ctx, ownerKey, claims.UserID)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			owner := cookieOwner(r)
			if owner == "" {
				owner = uuid.NewString()
				http.SetCookie(w, &http.Cookie{
					Name:     OwnerCookie,
					Value:    owner,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
					MaxAge:   60 * 60 * 24 * 365,
				})
			}

			ctx = context.WithValue(ctx, ownerKey, owner)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func resolveClaims(r *http.Request, verifier auth.AuthVerifier) (auth.Claims, bool) {
	// Dev mode: permitir inyectar user sin verifier
	if verifier == nil {
		if uid := strings.TrimSpace(r.Header.Get("X-Debug-User-ID")); uid != "" {
			return auth.Claims{UserID: uid}, true
		}
		return auth.Claims{}, false
	}

	token := bearerToken(r.Header.Get("Authorization"))
	if token == "" {
		return auth.Claims{}, false
	}

	claims, err := verifier.Verify(r.Context(), token)
	if err != nil || strings.TrimSpace(claims.UserID) == "" {
		// Token inválido => se trata como anónimo (cookie).
		return auth.Claims{}, false
	}
	return claims, true
}

func cookieOwner(r *http.Request) string {
	c, err := r.Cookie(OwnerCookie)
	if err != nil {
		return ""
	}
	v := strings.TrimSpace(c.Value)
	if _, err := uuid.Parse(v); err != nil {
		return ""
	}
	return v
}

func GetClaims(ctx context.Context) (auth.Claims, bool) {
	v := ctx.Value(claimsKey)
	if v == nil {
		return auth.Claims{}, false
	}
	c, ok := v.(auth.Claims)
	return c, ok
}

// OwnerFrom devuelve el owner resuelto por AuthContext (o DefaultOwner).
func OwnerFrom(ctx context.Context) string {
	if v, ok := ctx.Value(ownerKey).(string); ok && v != "" {
		return v
	}
	return DefaultOwner
}

func bearerToken(authHeader string) string {
	if strings.TrimSpace(authHeader) == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
