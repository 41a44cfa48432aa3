package assistant

import "strings"

// replacements rewrites "platform" wording into brand terminology. Order
// matters: the plural form must be rewritten before the singular. This is a
// literal substring pass, not word-boundary aware, and it must stay that way
// to keep observable output stable.
var replacements = [][2]string{
	{"platforms", "broadcasting services"},
	{"platform", "broadcasting"},
	{"Platform", "Broadcasting"},
	{"PLATFORM", "BROADCASTING"},
}

// CleanAnswer applies the terminology rewrite to outbound text. Idempotent.
func CleanAnswer(text string) string {
	if text == "" {
		return text
	}
	out := text
	for _, r := range replacements {
		out = strings.ReplaceAll(out, r[0], r[1])
	}
	return out
}
