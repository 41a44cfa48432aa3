package faqmatch

import "strings"

// Normalize lowercases text, replaces every character outside [a-z0-9\s]
// with a space and collapses whitespace runs.
func Normalize(text string) string {
	lowered := strings.ToLower(text)
	var builder strings.Builder
	builder.Grow(len(lowered))
	lastSpace := true
	for _, r := range lowered {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			builder.WriteRune(r)
			lastSpace = false
		default:
			if !lastSpace {
				builder.WriteRune(' ')
				lastSpace = true
			}
		}
	}
	return strings.TrimSpace(builder.String())
}
