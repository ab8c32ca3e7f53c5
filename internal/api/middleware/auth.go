package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/nathan/user-management-api/internal/domain"
)

type contextKey string

const (
	principalKey contextKey = "principal"
)

// TokenVerifier is the part of the token manager the middleware needs.
type TokenVerifier interface {
	Verify(tokenString string) (string, error)
}

// PrincipalResolver maps a verified token subject to a request principal.
type PrincipalResolver interface {
	ResolveByEmail(ctx context.Context, email string) (*domain.Principal, error)
}

// Authenticate runs once per request. It extracts a bearer token, verifies
// it and attaches the resolved principal to the request context. A missing
// header, wrong scheme or any verification failure leaves the request
// unauthenticated and lets it proceed; protected routes reject downstream
// via RequireAuth.
func Authenticate(resolver PrincipalResolver, tokens TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, ok := parseBearer(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			subject, err := tokens.Verify(tokenString)
			if err != nil {
				log.Printf("ERROR [middleware.Authenticate] token verification failed: %v", err)
				next.ServeHTTP(w, r)
				return
			}

			principal, err := resolver.ResolveByEmail(r.Context(), subject)
			if err != nil {
				log.Printf("ERROR [middleware.Authenticate] cannot resolve principal: %v", err)
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), principalKey, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth rejects requests that carry no principal with a structured
// 401 body.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetPrincipal(r.Context()); !ok {
			log.Printf("ERROR [middleware.RequireAuth] unauthorized access to %s", r.URL.Path)
			writeUnauthorized(w, r, "Full authentication is required to access this resource")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetPrincipal returns the authenticated principal, if one was established.
func GetPrincipal(ctx context.Context) (*domain.Principal, bool) {
	principal, ok := ctx.Value(principalKey).(*domain.Principal)
	return principal, ok
}

// WithPrincipal attaches a principal to the context. Exposed for tests.
func WithPrincipal(ctx context.Context, principal *domain.Principal) context.Context {
	return context.WithValue(ctx, principalKey, principal)
}

func parseBearer(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(header, "Bearer "), true
}

func writeUnauthorized(w http.ResponseWriter, r *http.Request, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  http.StatusUnauthorized,
		"error":   "Unauthorized",
		"message": message,
		"path":    r.URL.Path,
	})
}
