package matcher

import "context"

// Candidate is one possible identity match for a free-text query.
// Immutable once produced by a search.
type Candidate struct {
	ID          string  `json:"id"`
	DisplayName string  `json:"display_name"`
	Affiliation string  `json:"affiliation"`
	Confidence  float64 `json:"confidence"`
}

// Searcher is the contract the conversation core depends on: candidates come
// back sorted by descending confidence, ties keep provider order. An empty
// result is a valid "no matches" answer, not an error.
type Searcher interface {
	Search(ctx context.Context, query string) ([]Candidate, error)
}

// Entry is an indexed player with enough context to drive analysis.
type Entry struct {
	PlayerID   int
	PlayerName string
	Nickname   string
	TeamName   string
	Country    string
	Matches    []MatchRef
}

// MatchRef ties an appearance to its competition for career breakdowns.
type MatchRef struct {
	MatchID     int
	Competition string
}
