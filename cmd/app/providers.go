package main

import (
	"log/slog"

	"github.com/nobodynovaz/my-chatbot-backend/internal/bootstrap"
	"github.com/nobodynovaz/my-chatbot-backend/internal/domain/assistant"
	"github.com/nobodynovaz/my-chatbot-backend/internal/domain/faqmatch"
	"github.com/nobodynovaz/my-chatbot-backend/internal/domain/retrieval"
	"github.com/nobodynovaz/my-chatbot-backend/internal/infra/config"
	"github.com/nobodynovaz/my-chatbot-backend/internal/infra/corpus"
	"github.com/nobodynovaz/my-chatbot-backend/internal/infra/llm/groq"
	httpiface "github.com/nobodynovaz/my-chatbot-backend/internal/interface/http"
	"github.com/nobodynovaz/my-chatbot-backend/pkg/logger"
)

func provideAssistantConfig(cfg *config.Config) assistant.Config {
	return assistant.Config{
		Model:               cfg.LLM.Model,
		Temperature:         cfg.LLM.Temperature,
		MaxCompletionTokens: cfg.LLM.MaxTokens,
		TopK:                cfg.Assistant.TopK,
	}
}

// provideMatcher loads the FAQ file; absence or a broken file degrades to
// the built-in pairs only.
func provideMatcher(cfg *config.Config, log *slog.Logger) *faqmatch.Matcher {
	pairs, err := corpus.LoadFAQ(cfg.Sources.FAQPath)
	if err != nil {
		log.Warn("faq load failed, continuing with built-in pairs", "path", cfg.Sources.FAQPath, "error", err)
		pairs = nil
	}
	log.Info("faq pairs loaded", "count", len(pairs))
	return faqmatch.NewMatcher(pairs)
}

// provideIndex builds the snippet index once at startup; it is read-only
// afterwards and safe for concurrent readers.
func provideIndex(cfg *config.Config, log *slog.Logger) *retrieval.Index {
	text, err := corpus.LoadText(cfg.Sources.CorpusPath)
	if err != nil {
		log.Warn("corpus load failed, continuing with contact snippet only", "path", cfg.Sources.CorpusPath, "error", err)
		text = ""
	}
	snippets := append(retrieval.SplitSnippets(text), corpus.ContactSnippet)
	log.Info("corpus indexed", "snippets", len(snippets))
	return retrieval.NewIndex(snippets)
}

// provideChatClient returns nil when no API key is configured, which
// disables the completion stage without error.
func provideChatClient(cfg *config.Config, log *slog.Logger) *groq.Client {
	if cfg.LLM.APIKey == "" {
		log.Info("groq api key not set, completion augmentation disabled")
		return nil
	}
	client, err := groq.NewClient(cfg.LLM.APIKey, cfg.LLM.BaseURL)
	if err != nil {
		log.Warn("groq client init failed, completion augmentation disabled", "error", err)
		return nil
	}
	return client
}

func initializeApp() (*bootstrap.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log := logger.New()

	assistantCfg := provideAssistantConfig(cfg)
	matcher := provideMatcher(cfg, log)
	index := provideIndex(cfg, log)

	var svc assistant.Service
	if client := provideChatClient(cfg, log); client != nil {
		svc = assistant.NewService(assistantCfg, matcher, index, client, log)
	} else {
		svc = assistant.NewService(assistantCfg, matcher, index, nil, log)
	}

	handler := httpiface.NewHandler(svc, log)
	server := httpiface.NewRouter(cfg, handler)
	return bootstrap.NewApp(cfg, log, server), nil
}
