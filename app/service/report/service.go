package report

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"soccerscout/app/client/transfermarkt"
	"soccerscout/app/config"
	"soccerscout/app/service/analysis"
	"soccerscout/app/service/matcher"
	"soccerscout/app/service/predictor"

	_ "embed"

	"github.com/google/uuid"
	"github.com/samber/do"
	"github.com/sashabaranov/go-openai"
)

//go:embed report_prompt_template.txt
var reportPromptTemplate string

//go:embed followup_prompt_template.txt
var followupPromptTemplate string

const (
	maxReasonDuration = 30 * time.Second
	projectionYears   = 3
)

var _ Assembler = (*Service)(nil)

type Service struct {
	cfg          *config.Config
	matcherSvc   *matcher.Service
	analysisSvc  *analysis.Service
	predictorSvc *predictor.Service
	marketClient *transfermarkt.Client

	client *openai.Client
}

func New(di *do.Injector) (*Service, error) {
	cfg := do.MustInvoke[*config.Config](di)

	s := &Service{
		cfg:          cfg,
		matcherSvc:   do.MustInvoke[*matcher.Service](di),
		analysisSvc:  do.MustInvoke[*analysis.Service](di),
		predictorSvc: do.MustInvoke[*predictor.Service](di),
		marketClient: do.MustInvoke[*transfermarkt.Client](di),
	}

	if cfg.OpenAI.Report.Enabled() {
		s.client = createClient(cfg.OpenAI.Report)
	}

	return s, nil
}

func (s *Service) Generate(ctx context.Context, candidate matcher.Candidate) (*Data, error) {
	entry, err := s.matcherSvc.Entry(ctx, candidate.ID)
	if err != nil {
		return nil, fmt.Errorf("matcherSvc.Entry: %w", err)
	}

	career, err := s.analysisSvc.CareerPerformance(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("analysisSvc.CareerPerformance: %w", err)
	}

	data := &Data{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now(),
		Candidate:   candidate,
		Career:      career,
		Market:      s.marketClient.Lookup(ctx, entry.PlayerName),
	}

	if career.MatchCount > 0 {
		potential, err := s.predictorSvc.PredictPotential(career, 0, projectionYears)
		if err != nil {
			slog.Warn("Potential projection failed",
				"player", entry.PlayerName,
				"error", err)
		} else {
			data.Potential = potential
		}
	}

	return data, nil
}

func (s *Service) Render(ctx context.Context, data *Data) (string, error) {
	if s.client == nil {
		return renderText(data), nil
	}

	prompt := fillTemplate(reportPromptTemplate, s.templateValues(data))

	analysisText, err := s.complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}

	return analysisText, nil
}

func (s *Service) FollowUp(ctx context.Context, data *Data, question string) (string, error) {
	if s.client == nil {
		return renderText(data), nil
	}

	values := s.templateValues(data)
	values["question"] = question

	prompt := fillTemplate(followupPromptTemplate, values)

	answer, err := s.complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("failed to answer follow-up: %w", err)
	}

	return answer, nil
}

func (s *Service) templateValues(data *Data) map[string]any {
	return map[string]any{
		"player_name": data.Candidate.DisplayName,
		"career":      mustJSON(data.Career),
		"market":      mustJSON(data.Market),
		"potential":   mustJSON(data.Potential),
	}
}

func (s *Service) complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, maxReasonDuration)
	defer cancel()

	aiResponse, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: s.cfg.OpenAI.Report.Model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxCompletionTokens: 1200,
			Temperature:         0.7,
		},
	)
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}

	if len(aiResponse.Choices) == 0 {
		return "", fmt.Errorf("no chat completion found")
	}

	return strings.TrimSpace(aiResponse.Choices[0].Message.Content), nil
}

func mustJSON(value any) string {
	data, err := json.Marshal(value)
	if err != nil {
		return "{}"
	}
	return string(data)
}

func fillTemplate(template string, values map[string]any) string {
	for key, value := range values {
		template = strings.ReplaceAll(template, "{"+key+"}", fmt.Sprint(value))
	}
	return template
}
