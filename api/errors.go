package api

import (
	"encoding/json"
	"fmt"
	"strings"
)

// The backend does not answer "unknown symbol" the same way on every
// endpoint: some return 404, some 200-with-detail, some mention the ticker
// in a message field. normalizeErrorMessage folds all of them into one
// message so every screen shows the same thing for the same condition.

// noDataMessage is the canonical unknown-identifier message.
func noDataMessage(identifier string) string {
	return fmt.Sprintf("No data found for %s", identifier)
}

// normalizeErrorMessage renders a non-2xx response as a single
// human-readable string. It never fails: an unparsable body degrades to the
// HTTP status line.
func normalizeErrorMessage(rsp *response, identifier string) string {
	message := statusMessage(rsp)

	var parsed map[string]any
	if err := json.Unmarshal(rsp.body, &parsed); err == nil {
		for _, field := range []string{"detail", "message", "error"} {
			if s, ok := parsed[field].(string); ok && s != "" {
				message = s
				break
			}
		}
	}

	if isNoData(rsp.status, message, identifier) {
		return noDataMessage(identifier)
	}
	return message
}

// statusMessage is the generic fallback built from the status line alone.
func statusMessage(rsp *response) string {
	return fmt.Sprintf("HTTP %d: %s", rsp.status, strings.TrimSpace(rsp.statusText))
}

// isNoData decides whether a failure means "this identifier has no data":
// a plain 404, a message carrying the backend's literal "No data" marker,
// or a message naming the identifier as invalid or not found (matched
// case-insensitively, tickers arrive in either case).
func isNoData(status int, message, identifier string) bool {
	if status == 404 {
		return true
	}
	if strings.Contains(message, "No data") {
		return true
	}
	lower := strings.ToLower(message)
	if identifier != "" && strings.Contains(lower, strings.ToLower(identifier)) {
		if strings.Contains(lower, "invalid") || strings.Contains(lower, "not found") {
			return true
		}
	}
	return false
}
