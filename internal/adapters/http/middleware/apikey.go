package middleware

import (
	"net/http"

	"github.com/jsamuelsen11/invoice-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/invoice-api/internal/ports"
)

// apiKeyParam is the query parameter carrying the credential. The key travels
// in the query string rather than a header for compatibility with existing
// clients of this API.
const apiKeyParam = "apiKey"

// RequireAPIKey returns middleware that gates operations on a valid API key
// presented via the apiKey query parameter. The check is fail-closed: on a
// missing or unrecognized key the wrapped handler never runs and a 401
// problem response is written. The check itself has no side effects.
func RequireAPIKey(keys ports.KeyService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := keys.Validate(r.Context(), r.URL.Query().Get(apiKeyParam)); err != nil {
				dto.WriteErrorResponse(w, r, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
