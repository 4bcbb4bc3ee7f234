package dialog

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"soccerscout/app/config"
	"soccerscout/app/service/matcher"
	"soccerscout/app/service/session"

	_ "embed"

	"github.com/sashabaranov/go-openai"
)

//go:embed rephrase_prompt_template.txt
var rephrasePromptTemplate string

const rephraseTimeout = 15 * time.Second

var _ Renderer = (*LLMRenderer)(nil)

// LLMRenderer rephrases the deterministic prompts through a language model.
// Report bodies are passed through untouched, they already come from the
// report model. Any LLM failure falls back to the deterministic text.
type LLMRenderer struct {
	base   Renderer
	client *openai.Client
	model  string
}

func NewLLMRenderer(cfg config.ModelConfig) *LLMRenderer {
	clientConfig := openai.DefaultConfig(cfg.Token)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	clientConfig.HTTPClient = &http.Client{
		Timeout: rephraseTimeout,
	}

	return &LLMRenderer{
		base:   TemplateRenderer{},
		client: openai.NewClientWithConfig(clientConfig),
		model:  cfg.Model,
	}
}

func (r *LLMRenderer) Welcome(ctx context.Context) string {
	return r.rephrase(ctx, r.base.Welcome(ctx))
}

func (r *LLMRenderer) Help(ctx context.Context) string {
	return r.rephrase(ctx, r.base.Help(ctx))
}

func (r *LLMRenderer) NotFound(ctx context.Context, query string) string {
	return r.rephrase(ctx, r.base.NotFound(ctx, query))
}

func (r *LLMRenderer) Failure(ctx context.Context) string {
	return r.rephrase(ctx, r.base.Failure(ctx))
}

func (r *LLMRenderer) Candidates(ctx context.Context, candidates []matcher.Candidate) string {
	return r.rephrase(ctx, r.base.Candidates(ctx, candidates))
}

func (r *LLMRenderer) Confirm(ctx context.Context, candidate matcher.Candidate) string {
	return r.rephrase(ctx, r.base.Confirm(ctx, candidate))
}

func (r *LLMRenderer) OutOfRange(ctx context.Context, total int) string {
	return r.rephrase(ctx, r.base.OutOfRange(ctx, total))
}

func (r *LLMRenderer) PickPrompt(ctx context.Context, total int) string {
	return r.rephrase(ctx, r.base.PickPrompt(ctx, total))
}

func (r *LLMRenderer) ReconfirmPrompt(ctx context.Context) string {
	return r.rephrase(ctx, r.base.ReconfirmPrompt(ctx))
}

func (r *LLMRenderer) Report(ctx context.Context, candidate matcher.Candidate, body string) string {
	return r.base.Report(ctx, candidate, body)
}

func (r *LLMRenderer) Status(ctx context.Context, state session.State) string {
	return r.base.Status(ctx, state)
}

func (r *LLMRenderer) rephrase(ctx context.Context, message string) string {
	prompt := strings.ReplaceAll(rephrasePromptTemplate, "{message}", message)

	ctx, cancel := context.WithTimeout(ctx, rephraseTimeout)
	defer cancel()

	aiResponse, err := r.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: r.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxCompletionTokens: 300,
			Temperature:         1,
		},
	)
	if err != nil {
		slog.Warn("Rephrase failed, using template text", "error", err)
		return message
	}

	if len(aiResponse.Choices) == 0 {
		return message
	}

	result := strings.TrimSpace(aiResponse.Choices[0].Message.Content)
	if result == "" {
		return message
	}

	return result
}
