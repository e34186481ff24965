package handler

import (
	"context"
	"net/http"

	"book-club-server/internal/domain"
	apperrors "book-club-server/pkg/errors"
)

// SessionMiddleware gates mutating review routes on the current
// session. The store itself never checks authentication; that gate
// lives here, in the calling layer.
func SessionMiddleware(sessions domain.SessionService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity := sessions.Current()
			if identity == nil {
				writeAppError(w, apperrors.NewUnauthorizedError("Faça login para continuar"))
				return
			}

			ctx := context.WithValue(r.Context(), identityContextKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
