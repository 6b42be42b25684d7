// Package recovery converts downstream panics into the standard error
// envelope so a bug in one flow never takes an automated UI run down with
// a broken response shape.
package recovery

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/rs/zerolog/log"

	"github.com/ots-platform/ibe-mock/internal/api/respond"
)

// Middleware intercepts panics, logs details, and answers with an
// UNEXPECTED_ERROR envelope.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error().
					Interface("panic", rec).
					Str("method", r.Method).
					Str("url", r.URL.String()).
					Str("remote", r.RemoteAddr).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered")

				respond.WriteUnexpected(w, fmt.Sprintf("unexpected error: %v", rec))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
