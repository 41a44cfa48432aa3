package faqmatch

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Pair is a curated question with its formatted "Q/A" block.
type Pair struct {
	Question string
	FullText string
}

// servicesPair is always available even when no FAQ file is loaded.
var servicesPair = Pair{
	Question: "what services do you offer?",
	FullText: "Q: What services do you offer?\n" +
		"A: We provide complete live broadcasting solutions including multi-cam production, " +
		"simulcast streaming, adaptive bitrate streaming, Instagram/Facebook/YouTube Live, " +
		"video editing, VOD, 360° live, wedding streaming, sports broadcasting, " +
		"corporate events, government events, religious streaming and more.",
}

// ratioThreshold is the minimum fuzzy score accepted after the substring
// tier found nothing.
const ratioThreshold = 0.56

// Matcher answers questions from a fixed, load-ordered FAQ set.
type Matcher struct {
	pairs []Pair
}

// NewMatcher keeps the loaded pairs in order and appends the built-in
// services pair after them.
func NewMatcher(pairs []Pair) *Matcher {
	all := make([]Pair, 0, len(pairs)+1)
	all = append(all, pairs...)
	all = append(all, servicesPair)
	return &Matcher{pairs: all}
}

// Pairs exposes the load-ordered FAQ set.
func (m *Matcher) Pairs() []Pair {
	return m.pairs
}

// Match returns the full text of the best FAQ pair for a raw question.
//
// Two tiers, in order: the first pair whose normalized question contains or
// is contained by the normalized+expanded query wins immediately; otherwise
// the highest similarity ratio wins if it reaches the threshold. The
// substring tier pre-empts fuzzy scoring even when a later pair would score
// higher.
func (m *Matcher) Match(question string) (string, bool) {
	if len(m.pairs) == 0 {
		return "", false
	}

	expanded := ExpandSynonyms(Normalize(question))

	bestScore := 0.0
	bestFull := ""
	for _, pair := range m.pairs {
		faqNorm := Normalize(pair.Question)

		if strings.Contains(expanded, faqNorm) || strings.Contains(faqNorm, expanded) {
			return pair.FullText, true
		}

		if r := similarityRatio(expanded, faqNorm); r > bestScore {
			bestScore = r
			bestFull = pair.FullText
		}
	}

	if bestScore >= ratioThreshold && bestFull != "" {
		return bestFull, true
	}
	return "", false
}

// similarityRatio maps edit distance to a closeness score in [0,1].
func similarityRatio(a, b string) float64 {
	lenA := len([]rune(a))
	lenB := len([]rune(b))
	longest := lenA
	if lenB > longest {
		longest = lenB
	}
	if longest == 0 {
		return 1
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1 - float64(dist)/float64(longest)
}
