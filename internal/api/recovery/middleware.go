// Package recovery keeps a panicking handler from taking down the
// insight pipeline's HTTP surface.
package recovery

import (
	"net/http"
	"runtime/debug"

	"github.com/rs/zerolog/log"

	"github.com/siderealhq/insight-service/internal/api/respond"
)

// Middleware converts downstream panics into the API's standard 500
// envelope. The panic value and stack are logged; the client sees the
// same generic failure it gets from any other internal error.
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

				respond.WriteInternalError(w, "insight request failed")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
