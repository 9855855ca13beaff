package middleware

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

// sensitiveHeaders is the set of header names (lowercase) that must be
// redacted before logging. These headers commonly carry credentials.
var sensitiveHeaders = map[string]bool{
	"authorization": true,
	"x-api-key":     true,
	"cookie":        true,
}

// sensitiveParams is the set of query parameter names that must be redacted
// before logging. The credential for gated operations travels as the apiKey
// query parameter, so the raw query string can never be logged as-is.
var sensitiveParams = map[string]bool{
	apiKeyParam: true,
}

// RedactHeaders converts an http.Header map into a slice of slog.Attr values
// suitable for structured logging. Headers whose lowercase name appears in
// sensitiveHeaders are replaced with "[REDACTED]"; all others are included
// as-is. Multi-value headers are joined with a comma.
func RedactHeaders(headers http.Header) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(headers))
	for key, vals := range headers {
		if sensitiveHeaders[strings.ToLower(key)] {
			attrs = append(attrs, slog.String(key, "[REDACTED]"))
		} else {
			attrs = append(attrs, slog.String(key, strings.Join(vals, ",")))
		}
	}
	return attrs
}

// RedactQuery returns the query string with the values of sensitive
// parameters replaced by "[REDACTED]". Parameter order is not preserved
// (url.Values is a map), which is acceptable for log output.
func RedactQuery(query url.Values) string {
	if len(query) == 0 {
		return ""
	}

	redacted := make(url.Values, len(query))
	for key, vals := range query {
		if sensitiveParams[key] {
			redacted[key] = []string{"[REDACTED]"}
		} else {
			redacted[key] = vals
		}
	}
	return redacted.Encode()
}
