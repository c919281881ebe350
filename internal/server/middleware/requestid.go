package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// requestIDKey is the context key under which the request ID is stored.
type requestIDKey struct{}

// requestIDHeader is the header carrying the request ID on the response and,
// when supplied by the caller, on the request.
const requestIDHeader = "X-Request-ID"

// WithRequestID returns middleware that assigns every request a unique ID.
// If the client supplies X-Request-ID it is reused, otherwise a fresh UUID
// is generated. The ID is stored in the request context and echoed on the
// response so callers can correlate logs.
func WithRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		ctx := context.WithValue(r.Context(), requestIDKey{}, id)
		w.Header().Set(requestIDHeader, id)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestID returns the request ID stored in ctx, or an empty string when
// none was assigned.
func RequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}
