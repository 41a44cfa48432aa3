package retrieval

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitSnippets(t *testing.T) {
	text := "First paragraph about streaming.\n\nSecond paragraph about cameras.\n   \n\nThird block."
	snippets := SplitSnippets(text)
	require.Equal(t, []string{
		"First paragraph about streaming.",
		"Second paragraph about cameras.",
		"Third block.",
	}, snippets)
}

func TestSplitSnippetsEmptyInput(t *testing.T) {
	require.Empty(t, SplitSnippets(""))
	require.Empty(t, SplitSnippets("\n\n  \n\n"))
}

func TestNewIndexEmptyCorpus(t *testing.T) {
	idx := NewIndex(nil)
	require.Nil(t, idx)
	require.Empty(t, idx.Search("anything", 3))
	require.Empty(t, idx.Snippets())
}

func TestSearchRanksByRelevance(t *testing.T) {
	idx := NewIndex([]string{
		"We offer wedding streaming across the country.",
		"Cricket and football broadcasting with replays.",
		"Corporate events with multi camera production.",
	})

	got := idx.Search("wedding streaming", 3)
	require.NotEmpty(t, got)
	require.Equal(t, "We offer wedding streaming across the country.", got[0])
}

func TestSearchExcludesNonPositiveScores(t *testing.T) {
	idx := NewIndex([]string{
		"Wedding streaming services.",
		"Cricket broadcasting packages.",
	})

	got := idx.Search("wedding", 3)
	require.Equal(t, []string{"Wedding streaming services."}, got)
}

func TestSearchUnknownTermsReturnEmpty(t *testing.T) {
	idx := NewIndex([]string{"Wedding streaming services."})
	require.Empty(t, idx.Search("zzzz qqqq", 3))
}

func TestSearchHonorsLimit(t *testing.T) {
	idx := NewIndex([]string{
		"streaming one",
		"streaming two",
		"streaming three",
		"streaming four",
	})

	got := idx.Search("streaming", 2)
	require.Len(t, got, 2)
}

func TestSearchTieBreaksByOriginalOrder(t *testing.T) {
	// Identical snippets score identically; lower index wins.
	idx := NewIndex([]string{
		"other content entirely",
		"wedding streaming",
		"wedding streaming",
	})

	got := idx.Search("wedding streaming", 2)
	require.Equal(t, []string{"wedding streaming", "wedding streaming"}, got)
	require.Len(t, got, 2)
}

func TestSearchZeroLimit(t *testing.T) {
	idx := NewIndex([]string{"wedding streaming"})
	require.Empty(t, idx.Search("wedding", 0))
}
