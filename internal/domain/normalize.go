package domain

import (
	"strings"
)

// NormalizeName produces the comparison key for tag and vertical names:
// trimmed, lower-cased, runs of spaces collapsed to one. Two names with the
// same key are considered duplicates.
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	name = strings.ToLower(name)

	var b strings.Builder
	b.Grow(len(name))
	prevSpace := false
	for _, r := range name {
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// CleanName trims a user-supplied name and collapses inner space runs,
// preserving case. It is the form stored for new tags and verticals.
func CleanName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}
