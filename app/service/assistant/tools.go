package assistant

import (
	"context"
	"encoding/json"
	"strings"

	"soccerscout/app/service/matcher"

	"github.com/tmc/langchaingo/tools"
)

type agentTool struct {
	name        string
	description string
	call        func(ctx context.Context, input string) (string, error)
}

func (t *agentTool) Name() string {
	return t.name
}

func (t *agentTool) Description() string {
	return t.description
}

func (t *agentTool) Call(ctx context.Context, input string) (string, error) {
	return t.call(ctx, input)
}

func (s *Service) createTools() []tools.Tool {
	return []tools.Tool{
		&agentTool{
			name:        "player_search",
			description: "Search football players by name. Input is a plain name. Returns a JSON array of candidates with id, display_name, affiliation and confidence.",
			call: func(ctx context.Context, input string) (string, error) {
				candidates, err := s.matcherSvc.Search(ctx, strings.TrimSpace(input))
				if err != nil {
					return "", err
				}

				result, _ := json.Marshal(candidates)
				return string(result), nil
			},
		},
		&agentTool{
			name:        "player_report",
			description: "Produce a performance report for a player. Input is a candidate id returned by player_search.",
			call: func(ctx context.Context, input string) (string, error) {
				id := strings.TrimSpace(input)

				entry, err := s.matcherSvc.Entry(ctx, id)
				if err != nil {
					return "", err
				}

				candidate := matcher.Candidate{
					ID:          id,
					DisplayName: entry.DisplayName(),
					Affiliation: entry.TeamName,
					Confidence:  1.0,
				}

				data, err := s.reportSvc.Generate(ctx, candidate)
				if err != nil {
					return "", err
				}

				return s.reportSvc.Render(ctx, data)
			},
		},
	}
}
