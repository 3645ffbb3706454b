package readiness

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// humanizeReason converts a raw snake_case reason code into a short
// human-readable phrase, so "domain_blacklisted" becomes
// "Domain Blacklisted". Empty input stays empty.
func humanizeReason(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return ""
	}
	c := cases.Title(language.English)
	return c.String(strings.ReplaceAll(code, "_", " "))
}

// dedupeReasons drops empty strings and exact duplicates while preserving
// first-seen order.
func dedupeReasons(reasons []string) []string {
	out := make([]string, 0, len(reasons))
	seen := make(map[string]struct{}, len(reasons))
	for _, reason := range reasons {
		if reason == "" {
			continue
		}
		if _, ok := seen[reason]; ok {
			continue
		}
		seen[reason] = struct{}{}
		out = append(out, reason)
	}
	return out
}
