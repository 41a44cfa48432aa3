package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/nobodynovaz/my-chatbot-backend/internal/infra/llm/groq"
)

type chatClient interface {
	CreateChatCompletion(ctx context.Context, req groq.ChatCompletionRequest) (groq.ChatCompletionResponse, error)
}

// augment asks the completion service to answer from the retrieved snippets.
// It never surfaces a failure to the caller: any transport error, non-2xx
// response or empty body is logged and reported as unavailable so the
// pipeline falls back to raw-snippet composition.
func (s *service) augment(ctx context.Context, question string, retrieved []string) (string, bool) {
	if s.client == nil || len(retrieved) == 0 {
		return "", false
	}

	var contextBlocks strings.Builder
	for i, snippet := range retrieved {
		fmt.Fprintf(&contextBlocks, "SOURCE %d:\n%s\n\n", i+1, snippet)
	}

	prompt := "Answer ONLY using this website content.\n" +
		"At the end, say exactly:\n" +
		"'" + contactLine + "'\n\n" +
		"Context:\n" + contextBlocks.String() + "\n" +
		"Question: " + question + "\n" +
		"Answer in 2–4 short sentences."

	resp, err := s.client.CreateChatCompletion(ctx, groq.ChatCompletionRequest{
		Model: s.cfg.Model,
		Messages: []groq.Message{
			{Role: "system", Content: "You are a helpful assistant."},
			{Role: "user", Content: prompt},
		},
		MaxTokens:   s.cfg.MaxCompletionTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		s.logger.Warn("groq completion failed", "error", err)
		return "", false
	}
	if len(resp.Choices) == 0 {
		s.logger.Warn("groq completion returned no choices")
		return "", false
	}
	answer := strings.TrimSpace(resp.Choices[0].Message.Content)
	if answer == "" {
		s.logger.Warn("groq completion returned empty content")
		return "", false
	}
	return CleanAnswer(answer), true
}
