package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadTextMissingFile(t *testing.T) {
	text, err := LoadText(filepath.Join(t.TempDir(), "nope.txt"))
	require.NoError(t, err)
	require.Empty(t, text)
}

func TestLoadTextReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page_text.txt")
	require.NoError(t, os.WriteFile(path, []byte("First block.\n\nSecond block."), 0o644))

	text, err := LoadText(path)
	require.NoError(t, err)
	require.Equal(t, "First block.\n\nSecond block.", text)
}

func TestLoadFAQMissingFile(t *testing.T) {
	pairs, err := LoadFAQ(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	require.Empty(t, pairs)
}

func TestLoadFAQSkipsMalformedEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "faq.json")
	payload := `[
		{"question": "Do you stream weddings?", "answer": "Yes, live."},
		{"question": "", "answer": "orphan answer"},
		{"question": "No answer here"},
		{"question": "  Do you edit video?  ", "answer": " We do. "}
	]`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	pairs, err := LoadFAQ(path)
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	require.Equal(t, "do you stream weddings?", pairs[0].Question)
	require.Equal(t, "Q: Do you stream weddings?\nA: Yes, live.", pairs[0].FullText)
	require.Equal(t, "do you edit video?", pairs[1].Question)
	require.Equal(t, "Q: Do you edit video?\nA: We do.", pairs[1].FullText)
}

func TestLoadFAQInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "faq.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := LoadFAQ(path)
	require.Error(t, err)
}
