package dialog

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"soccerscout/app/config"

	_ "embed"

	"github.com/sashabaranov/go-openai"
)

//go:embed intent_prompt_template.txt
var intentPromptTemplate string

// Intent is what a message after a delivered report means.
type Intent int

const (
	IntentNewSearch Intent = iota
	IntentFollowUp
)

// IntentClassifier decides between follow-up questions and new searches once
// a report has been delivered. Implementations must never fail the turn: when
// in doubt, classify as a new search.
type IntentClassifier interface {
	Classify(ctx context.Context, text string) Intent
}

var _ IntentClassifier = (*RuleClassifier)(nil)

// RuleClassifier is the deterministic variant: question-looking messages are
// follow-ups, everything else starts a new search.
type RuleClassifier struct{}

var questionPrefixes = []string{
	"what", "how", "why", "when", "where", "which", "who",
	"did", "does", "do", "is", "are", "was", "were",
	"can", "could", "should", "would", "tell me", "compare",
}

func (RuleClassifier) Classify(_ context.Context, text string) Intent {
	text = strings.ToLower(strings.TrimSpace(text))

	if strings.Contains(text, "?") {
		return IntentFollowUp
	}

	for _, prefix := range questionPrefixes {
		if strings.HasPrefix(text, prefix+" ") {
			return IntentFollowUp
		}
	}

	return IntentNewSearch
}

var _ IntentClassifier = (*LLMClassifier)(nil)

const classifyTimeout = 15 * time.Second

// LLMClassifier asks a model, falling back to the rule-based answer on any
// failure.
type LLMClassifier struct {
	fallback RuleClassifier
	client   *openai.Client
	model    string
}

func NewLLMClassifier(cfg config.ModelConfig) *LLMClassifier {
	clientConfig := openai.DefaultConfig(cfg.Token)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	clientConfig.HTTPClient = &http.Client{
		Timeout: classifyTimeout,
	}

	return &LLMClassifier{
		client: openai.NewClientWithConfig(clientConfig),
		model:  cfg.Model,
	}
}

func (c *LLMClassifier) Classify(ctx context.Context, text string) Intent {
	prompt := strings.ReplaceAll(intentPromptTemplate, "{message}", text)

	ctx, cancel := context.WithTimeout(ctx, classifyTimeout)
	defer cancel()

	aiResponse, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxCompletionTokens: 10,
			Temperature:         0,
		},
	)
	if err != nil {
		slog.Warn("Intent classification failed, using rules", "error", err)
		return c.fallback.Classify(ctx, text)
	}

	if len(aiResponse.Choices) == 0 {
		return c.fallback.Classify(ctx, text)
	}

	answer := strings.ToLower(strings.TrimSpace(aiResponse.Choices[0].Message.Content))
	if strings.Contains(answer, "followup") || strings.Contains(answer, "follow-up") {
		return IntentFollowUp
	}

	return IntentNewSearch
}
