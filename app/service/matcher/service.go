package matcher

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"sync"

	"soccerscout/app/client/statsbomb"
	"soccerscout/app/config"

	"github.com/elliotchance/pie/v2"
	"github.com/samber/do"
	"golang.org/x/sync/errgroup"
)

const indexFetchConcurrency = 8

var _ Searcher = (*Service)(nil)

// Service matches free-text queries against a player index built lazily from
// StatsBomb lineups of the configured competitions.
type Service struct {
	cfg      *config.Config
	sbClient *statsbomb.Client

	mu      sync.Mutex
	built   bool
	entries []*Entry
	byID    map[int]*Entry
}

func New(di *do.Injector) (*Service, error) {
	return &Service{
		cfg:      do.MustInvoke[*config.Config](di),
		sbClient: do.MustInvoke[*statsbomb.Client](di),
		byID:     make(map[int]*Entry),
	}, nil
}

func (s *Service) Search(ctx context.Context, query string) ([]Candidate, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	if err := s.ensureIndex(ctx); err != nil {
		return nil, fmt.Errorf("ensureIndex: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var result []Candidate

	for _, entry := range s.entries {
		confidence := scoreEntry(query, entry)
		if confidence <= 0 {
			continue
		}

		result = append(result, Candidate{
			ID:          strconv.Itoa(entry.PlayerID),
			DisplayName: entry.DisplayName(),
			Affiliation: entry.TeamName,
			Confidence:  confidence,
		})
	}

	// Ties keep index insertion order, which is the provider order.
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Confidence > result[j].Confidence
	})

	slog.Debug("Player search completed",
		"query", query,
		"candidates", len(result))

	return result, nil
}

// Entry resolves a candidate id back to its indexed player.
func (s *Service) Entry(ctx context.Context, id string) (*Entry, error) {
	if err := s.ensureIndex(ctx); err != nil {
		return nil, fmt.Errorf("ensureIndex: %w", err)
	}

	playerID, err := strconv.Atoi(id)
	if err != nil {
		return nil, fmt.Errorf("invalid player id %q: %w", id, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.byID[playerID]
	if !ok {
		return nil, fmt.Errorf("player %d is not indexed", playerID)
	}

	return entry, nil
}

func (s *Service) ensureIndex(ctx context.Context) error {
	s.mu.Lock()
	if s.built {
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	competitions, err := s.sbClient.Competitions(ctx)
	if err != nil {
		return fmt.Errorf("sbClient.Competitions: %w", err)
	}

	if len(s.cfg.StatsBomb.Competitions) > 0 {
		competitions = pie.Filter(competitions, func(c statsbomb.Competition) bool {
			return pie.Contains(s.cfg.StatsBomb.Competitions, c.CompetitionID)
		})
	}

	var matchesMu sync.Mutex
	var matches []statsbomb.Match

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(indexFetchConcurrency)

	for _, competition := range competitions {
		group.Go(func() error {
			compMatches, err := s.sbClient.Matches(groupCtx, competition.CompetitionID, competition.SeasonID)
			if err != nil {
				return fmt.Errorf("sbClient.Matches(%d, %d): %w",
					competition.CompetitionID, competition.SeasonID, err)
			}

			matchesMu.Lock()
			matches = append(matches, compMatches...)
			matchesMu.Unlock()

			return nil
		})
	}

	if err = group.Wait(); err != nil {
		return err
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].MatchID < matches[j].MatchID
	})

	competitionByMatch := make(map[int]string, len(matches))
	for _, match := range matches {
		competitionByMatch[match.MatchID] = match.Competition.CompetitionName
	}

	type indexed struct {
		matchID int
		lineups []statsbomb.TeamLineup
	}

	var lineupsMu sync.Mutex
	var allLineups []indexed

	group, groupCtx = errgroup.WithContext(ctx)
	group.SetLimit(indexFetchConcurrency)

	for _, match := range matches {
		group.Go(func() error {
			lineups, err := s.sbClient.Lineups(groupCtx, match.MatchID)
			if err != nil {
				return fmt.Errorf("sbClient.Lineups(%d): %w", match.MatchID, err)
			}

			lineupsMu.Lock()
			allLineups = append(allLineups, indexed{matchID: match.MatchID, lineups: lineups})
			lineupsMu.Unlock()

			return nil
		})
	}

	if err = group.Wait(); err != nil {
		return err
	}

	sort.Slice(allLineups, func(i, j int) bool {
		return allLineups[i].matchID < allLineups[j].matchID
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.built {
		return nil
	}

	for _, item := range allLineups {
		for _, team := range item.lineups {
			for _, player := range team.Lineup {
				entry, ok := s.byID[player.PlayerID]
				if !ok {
					entry = &Entry{
						PlayerID:   player.PlayerID,
						PlayerName: player.PlayerName,
						Nickname:   player.PlayerNickname,
						TeamName:   team.TeamName,
						Country:    player.Country.Name,
					}
					s.byID[player.PlayerID] = entry
					s.entries = append(s.entries, entry)
				}

				entry.Matches = append(entry.Matches, MatchRef{
					MatchID:     item.matchID,
					Competition: competitionByMatch[item.matchID],
				})
			}
		}
	}

	s.built = true

	slog.Info("Player index built",
		"players", len(s.entries),
		"matches", len(matches))

	return nil
}
