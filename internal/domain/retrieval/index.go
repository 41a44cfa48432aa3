package retrieval

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// DefaultTopK bounds retrieval results when the caller does not override it.
const DefaultTopK = 3

var (
	blankLinePattern = regexp.MustCompile(`\n\s*\n`)
	tokenPattern     = regexp.MustCompile(`\w\w+`)
)

// SplitSnippets breaks raw corpus text into paragraph-like blocks separated
// by one or more blank lines. Blocks are trimmed and empty ones dropped.
func SplitSnippets(text string) []string {
	parts := blankLinePattern.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// Result pairs a snippet with its similarity score.
type Result struct {
	Snippet string
	Score   float64
}

// Index is a TF-IDF weighted vector index over an immutable snippet set.
// The vocabulary is closed over the snippets given at construction; query
// terms outside it contribute zero weight.
type Index struct {
	snippets   []string
	vocabulary map[string]int
	idf        []float64
	vectors    [][]float64
}

// NewIndex fits TF-IDF weights over the snippet set and vectorizes every
// snippet. Returns nil for an empty set; a nil Index serves empty results.
func NewIndex(snippets []string) *Index {
	if len(snippets) == 0 {
		return nil
	}

	df := make(map[string]int)
	for _, snippet := range snippets {
		seen := make(map[string]struct{})
		for _, tok := range tokenize(snippet) {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	idx := &Index{
		snippets:   append([]string(nil), snippets...),
		vocabulary: make(map[string]int, len(terms)),
		idf:        make([]float64, len(terms)),
	}
	n := float64(len(snippets))
	for i, term := range terms {
		idx.vocabulary[term] = i
		// smoothed IDF
		idx.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	idx.vectors = make([][]float64, len(snippets))
	for i, snippet := range snippets {
		idx.vectors[i] = idx.vectorize(snippet)
	}
	return idx
}

// Snippets returns the indexed snippet set in original order.
func (idx *Index) Snippets() []string {
	if idx == nil {
		return nil
	}
	return idx.snippets
}

// Search returns up to k snippets by descending cosine similarity against
// the query, excluding non-positive scores. Ties keep ascending snippet
// order. Pure function of the fitted index and the query.
func (idx *Index) Search(query string, k int) []string {
	if idx == nil || k <= 0 {
		return nil
	}

	queryVec := idx.vectorize(query)
	results := make([]Result, 0, len(idx.vectors))
	for i, vec := range idx.vectors {
		score := dot(vec, queryVec)
		results = append(results, Result{Snippet: idx.snippets[i], Score: score})
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	out := make([]string, 0, k)
	for _, r := range results {
		if len(out) == k {
			break
		}
		if r.Score <= 0 {
			break
		}
		out = append(out, r.Snippet)
	}
	return out
}

// vectorize projects text into the fitted vector space, L2-normalized.
func (idx *Index) vectorize(text string) []float64 {
	vec := make([]float64, len(idx.idf))
	counts := make(map[int]int)
	total := 0
	for _, tok := range tokenize(text) {
		if i, ok := idx.vocabulary[tok]; ok {
			counts[i]++
			total++
		}
	}
	if total == 0 {
		return vec
	}
	for i, count := range counts {
		vec[i] = float64(count) / float64(total) * idx.idf[i]
	}

	norm := 0.0
	for _, v := range vec {
		norm += v * v
	}
	norm = math.Sqrt(norm)
	if norm > 0 {
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}

func tokenize(text string) []string {
	return tokenPattern.FindAllString(strings.ToLower(text), -1)
}

func dot(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
