// Package audit records privileged actions into the append-only activity log.
// Recording is best effort: a failure to persist an entry is logged and
// swallowed so it can never break the operation being audited.
package audit

import (
	"encoding/json"
	"strings"
)

// sensitiveFields are snapshot keys whose values must never reach storage.
// Matching is case-insensitive and covers common casing variants.
var sensitiveFields = map[string]struct{}{
	"password":          {},
	"passwordhash":      {},
	"password_hash":     {},
	"verificationcode":  {},
	"verification_code": {},
}

// Redacted replaces sensitive values in sanitized snapshots.
const Redacted = "[REDACTED]"

// Snapshot deep-copies v into a plain map via a JSON round trip and redacts
// sensitive fields at every nesting level. Returns nil when v is nil or not
// representable as a JSON object.
func Snapshot(v any) map[string]any {
	if v == nil {
		return nil
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil
	}

	sanitizeMap(m)

	return m
}

func sanitizeMap(m map[string]any) {
	for key, value := range m {
		if _, sensitive := sensitiveFields[strings.ToLower(key)]; sensitive {
			m[key] = Redacted

			continue
		}

		sanitizeValue(value)
	}
}

func sanitizeValue(value any) {
	switch nested := value.(type) {
	case map[string]any:
		sanitizeMap(nested)
	case []any:
		for _, item := range nested {
			sanitizeValue(item)
		}
	}
}
