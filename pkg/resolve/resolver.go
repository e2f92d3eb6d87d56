// Package resolve turns the validated tier document plus the persisted
// override state into the effective configuration that compilation and
// reporting consume.
package resolve

import "strings"

// Resolve finds requested among candidates. Exact matches win; otherwise the
// first candidate whose trimmed, lowercased form matches is returned. The
// two-pass lookup keeps exact-match priority even when candidate names
// collide case-insensitively.
func Resolve(candidates []string, requested string) (string, bool) {
	if requested == "" {
		return "", false
	}
	for _, c := range candidates {
		if c == requested {
			return c, true
		}
	}
	normalized := strings.ToLower(strings.TrimSpace(requested))
	if normalized == "" {
		return "", false
	}
	for _, c := range candidates {
		if strings.ToLower(c) == normalized {
			return c, true
		}
	}
	return "", false
}
