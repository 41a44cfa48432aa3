package corpus

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/nobodynovaz/my-chatbot-backend/internal/domain/faqmatch"
)

// ContactSnippet is appended to the snippet set unconditionally so contact
// details are always retrievable.
const ContactSnippet = "Head Office: A-92 C/2, 4th Floor, Nambardar Estate, New Friends Colony, " +
	"New Delhi, India. Phone: +91-11-42908809, +91-9911013303. Email: info@netnovaz.com."

// LoadText reads the website text blob. A missing file degrades to an empty
// corpus rather than an error.
func LoadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("read corpus text: %w", err)
	}
	return string(data), nil
}

type faqEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// LoadFAQ reads the curated FAQ records. A missing file degrades to an empty
// set; an entry missing its question or answer is skipped, not fatal.
func LoadFAQ(path string) ([]faqmatch.Pair, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read faq file: %w", err)
	}

	var entries []faqEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse faq file: %w", err)
	}

	pairs := make([]faqmatch.Pair, 0, len(entries))
	for _, e := range entries {
		q := strings.TrimSpace(e.Question)
		a := strings.TrimSpace(e.Answer)
		if q == "" || a == "" {
			continue
		}
		pairs = append(pairs, faqmatch.Pair{
			Question: strings.ToLower(q),
			FullText: fmt.Sprintf("Q: %s\nA: %s", q, a),
		})
	}
	return pairs, nil
}
