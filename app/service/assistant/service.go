package assistant

import (
	"context"
	"fmt"

	"soccerscout/app/config"
	"soccerscout/app/service/matcher"
	"soccerscout/app/service/report"

	"github.com/samber/do"
	"github.com/tmc/langchaingo/agents"
	"github.com/tmc/langchaingo/chains"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/memory"
)

// Service is the free-form chat surface: an agent with access to the player
// search and report tools, with conversation memory.
type Service struct {
	cfg        *config.Config
	matcherSvc *matcher.Service
	reportSvc  *report.Service

	executor chains.Chain
}

func New(di *do.Injector) (*Service, error) {
	cfg := do.MustInvoke[*config.Config](di)

	s := &Service{
		cfg:        cfg,
		matcherSvc: do.MustInvoke[*matcher.Service](di),
		reportSvc:  do.MustInvoke[*report.Service](di),
	}

	if !cfg.OpenAI.Chat.Enabled() {
		return s, nil
	}

	opts := []openai.Option{
		openai.WithToken(cfg.OpenAI.Chat.Token),
		openai.WithModel(cfg.OpenAI.Chat.Model),
	}
	if cfg.OpenAI.Chat.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.OpenAI.Chat.BaseURL))
	}

	llm, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	executor, err := agents.Initialize(
		llm,
		s.createTools(),
		agents.ZeroShotReactDescription,
		agents.WithMemory(memory.NewConversationBuffer()),
		agents.WithCallbacksHandler(LogCallbackHandler{}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize agent: %w", err)
	}

	s.executor = executor

	return s, nil
}

func (s *Service) Enabled() bool {
	return s.executor != nil
}

func (s *Service) Chat(ctx context.Context, message string) (string, error) {
	if s.executor == nil {
		return "", fmt.Errorf("chat assistant is not configured")
	}

	answer, err := chains.Run(ctx, s.executor, message)
	if err != nil {
		return "", fmt.Errorf("chains.Run: %w", err)
	}

	return answer, nil
}
