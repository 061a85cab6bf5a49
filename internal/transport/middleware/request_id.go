package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/runprhq/runpr-backend/pkg/ctxutil"
)

// RequestID attaches a request ID to the context and response, reusing the
// client-provided X-Request-Id header when present.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.New().String()
		}
		ctx := ctxutil.WithRequestID(r.Context(), id)
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
