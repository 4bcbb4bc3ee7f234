package report

import (
	"context"
	"time"

	"soccerscout/app/client/transfermarkt"
	"soccerscout/app/service/analysis"
	"soccerscout/app/service/matcher"
	"soccerscout/app/service/predictor"
)

// Data is the structured source a rendered report is built from. It is cached
// per session so follow-up questions do not refetch from the data providers.
type Data struct {
	ID          string                      `json:"id"`
	GeneratedAt time.Time                   `json:"generated_at"`
	Candidate   matcher.Candidate           `json:"candidate"`
	Career      *analysis.CareerStats       `json:"career"`
	Market      transfermarkt.MarketProfile `json:"market"`
	Potential   *predictor.Potential        `json:"potential,omitempty"`
}

// Assembler is the report contract the conversation core consumes.
type Assembler interface {
	Generate(ctx context.Context, candidate matcher.Candidate) (*Data, error)
	Render(ctx context.Context, data *Data) (string, error)
	FollowUp(ctx context.Context, data *Data, question string) (string, error)
}
