package assistant

import (
	"context"
	"log/slog"
	"strings"

	"github.com/nobodynovaz/my-chatbot-backend/internal/domain/faqmatch"
	"github.com/nobodynovaz/my-chatbot-backend/internal/domain/retrieval"
	apperrors "github.com/nobodynovaz/my-chatbot-backend/pkg/errors"
)

// sourcePreviewLen bounds snippet previews on completion-backed answers.
const sourcePreviewLen = 200

// Service answers free-text questions through the layered pipeline.
type Service interface {
	Answer(ctx context.Context, req Request) (Response, error)
}

type service struct {
	cfg     Config
	matcher *faqmatch.Matcher
	index   *retrieval.Index
	client  chatClient
	logger  *slog.Logger
}

// NewService wires up the assistant pipeline. client may be nil, which
// disables completion augmentation entirely.
func NewService(cfg Config, matcher *faqmatch.Matcher, index *retrieval.Index, client chatClient, logger *slog.Logger) Service {
	if cfg.TopK <= 0 {
		cfg.TopK = retrieval.DefaultTopK
	}
	return &service{
		cfg:     cfg,
		matcher: matcher,
		index:   index,
		client:  client,
		logger:  logger.With("component", "assistant.service"),
	}
}

// Answer runs the stages in strict priority order; the first stage that
// produces an answer wins and the rest are skipped.
func (s *service) Answer(ctx context.Context, req Request) (Response, error) {
	question := strings.TrimSpace(req.Question)
	if question == "" {
		return Response{}, apperrors.Wrap("invalid_input", "Please type a question.", nil)
	}

	if msg, ok := pricingAnswer(question); ok {
		return Response{
			Question: question,
			Answer:   msg,
			Sources:  []string{},
			ModeNote: ModePricing,
		}, nil
	}

	if full, ok := s.matcher.Match(question); ok {
		cleaned := CleanAnswer(full)
		return Response{
			Question: question,
			Answer:   CleanAnswer(cleaned + "\n\n" + contactLine),
			Sources:  []string{cleaned},
			ModeNote: ModeFAQ,
		}, nil
	}

	retrieved := s.index.Search(question, s.cfg.TopK)

	if answer, ok := s.augment(ctx, question, retrieved); ok {
		sources := make([]string, len(retrieved))
		for i, snippet := range retrieved {
			sources[i] = truncate(snippet, sourcePreviewLen)
		}
		return Response{
			Question: question,
			Answer:   answer,
			Sources:  sources,
			ModeNote: ModeCompletion,
		}, nil
	}

	if len(retrieved) > 0 {
		body := "Here’s what we found related to your question:\n\n" +
			strings.Join(retrieved, "\n\n") +
			"\n\n" + contactLine
		return Response{
			Question: question,
			Answer:   CleanAnswer(body),
			Sources:  retrieved,
			ModeNote: ModeWebsite,
		}, nil
	}

	return Response{
		Question: question,
		Answer:   CleanAnswer("Sorry, nothing found on the site."),
		Sources:  []string{},
		ModeNote: ModeNoMatch,
	}, nil
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
