package faqmatch

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatchExactQuestion(t *testing.T) {
	m := NewMatcher([]Pair{
		{Question: "do you cover weddings?", FullText: "Q: Do you cover weddings?\nA: Yes, end to end."},
	})

	full, ok := m.Match("Do you cover weddings?")
	require.True(t, ok)
	require.Equal(t, "Q: Do you cover weddings?\nA: Yes, end to end.", full)
}

func TestMatchServicesPairAlwaysPresent(t *testing.T) {
	m := NewMatcher(nil)

	full, ok := m.Match("what services do you offer?")
	require.True(t, ok)
	require.Contains(t, full, "live broadcasting solutions")
}

func TestMatchSubstringTierWinsFirst(t *testing.T) {
	// Both pairs contain the query; load order decides, not score.
	m := NewMatcher([]Pair{
		{Question: "weddings", FullText: "first"},
		{Question: "do you stream weddings live", FullText: "second"},
	})

	full, ok := m.Match("do you stream weddings live?")
	require.True(t, ok)
	require.Equal(t, "first", full)
}

func TestMatchSynonymExpansionEnablesContainment(t *testing.T) {
	m := NewMatcher([]Pair{
		{Question: "soccer", FullText: "Q: Soccer?\nA: We cover it."},
	})

	// "football" is not a substring, but its expansion includes "soccer".
	full, ok := m.Match("do you do football coverage")
	require.True(t, ok)
	require.Equal(t, "Q: Soccer?\nA: We cover it.", full)
}

func TestMatchFuzzyTierAboveThreshold(t *testing.T) {
	m := NewMatcher([]Pair{
		{Question: "broadcast quality", FullText: "quality answer"},
	})

	// One transposed letter: no containment either way, ratio well above 0.56.
	full, ok := m.Match("broadcasst quality?")
	require.True(t, ok)
	require.Equal(t, "quality answer", full)
}

func TestMatchNoMatchBelowThreshold(t *testing.T) {
	m := NewMatcher([]Pair{
		{Question: "do you provide drone coverage for outdoor events", FullText: "drone answer"},
	})

	_, ok := m.Match("zzz qqq")
	require.False(t, ok)
}

func TestSimilarityRatioBounds(t *testing.T) {
	require.Equal(t, 1.0, similarityRatio("same text", "same text"))
	require.Equal(t, 1.0, similarityRatio("", ""))
	require.Equal(t, 0.0, similarityRatio("abc", "xyz"))
	r := similarityRatio("kitten", "sitting")
	require.Greater(t, r, 0.0)
	require.Less(t, r, 1.0)
}
