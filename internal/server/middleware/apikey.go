package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"
)

// APIKeyMiddleware requires "Authorization: Bearer <key>" on every request
// except exemptPaths. An empty key disables the check.
func APIKeyMiddleware(logger *slog.Logger, key string, exemptPaths ...string) func(http.Handler) http.Handler {
	exempt := make(map[string]struct{}, len(exemptPaths))
	for _, path := range exemptPaths {
		exempt[path] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		if key == "" {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := exempt[r.URL.Path]; ok {
				next.ServeHTTP(w, r)
				return
			}

			// Ожидаем формат: "Bearer <key>"
			scheme, provided, found := strings.Cut(r.Header.Get("Authorization"), " ")
			if !found || !strings.EqualFold(scheme, "Bearer") {
				logger.Warn("Missing or malformed Authorization header", "path", r.URL.Path, "remote_addr", r.RemoteAddr)
				writeJSONError(w, "missing api key", http.StatusUnauthorized)
				return
			}

			if subtle.ConstantTimeCompare([]byte(provided), []byte(key)) != 1 {
				logger.Warn("Invalid api key", "path", r.URL.Path, "remote_addr", r.RemoteAddr)
				writeJSONError(w, "invalid api key", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
