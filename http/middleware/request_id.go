package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/switchyard-web/switchyard"
)

// RequestID adds a uuid to the request context under switchyard.RequestIDKey.
func RequestID() Adapter {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), switchyard.RequestIDKey, uuid.NewString())
			h.ServeHTTP(w, r.Clone(ctx))
		})
	}
}
