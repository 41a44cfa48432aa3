package faqmatch

import "strings"

// synonyms widens recall for domain terms users phrase differently.
// Alternates are appended as whole phrases, never re-tokenized.
var synonyms = map[string][]string{
	"stream":   {"streaming", "live stream", "broadcast", "broadcasting", "telecast"},
	"camera":   {"cam", "cams", "setup"},
	"football": {"soccer", "match", "sports"},
}

// Stopwords is declared for parity with the matching configuration but is
// intentionally not consumed by any matching or retrieval path. Filtering it
// in would change observable match outcomes; pending product clarification.
var Stopwords = map[string]struct{}{
	"what": {}, "which": {}, "who": {}, "whom": {}, "whose": {},
	"is": {}, "are": {}, "was": {}, "were": {}, "do": {}, "does": {}, "did": {},
	"you": {}, "your": {}, "yours": {}, "we": {}, "our": {}, "ours": {},
	"can": {}, "could": {}, "will": {}, "would": {}, "shall": {}, "should": {},
	"a": {}, "an": {}, "the": {}, "to": {}, "for": {}, "of": {}, "in": {}, "on": {}, "and": {},
	"or": {}, "with": {}, "from": {}, "about": {}, "it": {}, "this": {}, "that": {},
}

// ExpandSynonyms appends the alternates of every known token after the
// original token sequence. Original tokens are never removed or reordered.
func ExpandSynonyms(query string) string {
	words := strings.Fields(query)
	expanded := append([]string(nil), words...)
	for _, w := range words {
		if alts, ok := synonyms[w]; ok {
			expanded = append(expanded, alts...)
		}
	}
	return strings.Join(expanded, " ")
}
