package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"soccerscout/app/client/statsbomb"
	"soccerscout/app/service/matcher"

	"github.com/samber/do"
	"golang.org/x/sync/errgroup"
)

const eventFetchConcurrency = 8

type Service struct {
	sbClient *statsbomb.Client
}

func New(di *do.Injector) (*Service, error) {
	return &Service{
		sbClient: do.MustInvoke[*statsbomb.Client](di),
	}, nil
}

// MatchPerformance computes one player's stats for a single match.
func (s *Service) MatchPerformance(ctx context.Context, entry *matcher.Entry, matchID int) (*MatchStats, error) {
	events, err := s.sbClient.Events(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("sbClient.Events: %w", err)
	}

	stats := ComputeMatchStats(events, entry.PlayerName, matchID)
	if stats == nil {
		return nil, fmt.Errorf("no events for %s in match %d", entry.PlayerName, matchID)
	}

	return stats, nil
}

// CareerPerformance fetches every indexed appearance and aggregates it.
func (s *Service) CareerPerformance(ctx context.Context, entry *matcher.Entry) (*CareerStats, error) {
	var mu sync.Mutex
	perMatch := make(map[int]*MatchStats)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(eventFetchConcurrency)

	for _, ref := range entry.Matches {
		group.Go(func() error {
			events, err := s.sbClient.Events(groupCtx, ref.MatchID)
			if err != nil {
				return fmt.Errorf("sbClient.Events(%d): %w", ref.MatchID, err)
			}

			stats := ComputeMatchStats(events, entry.PlayerName, ref.MatchID)
			if stats == nil {
				// Named in the lineup but never touched the ball.
				return nil
			}

			mu.Lock()
			perMatch[ref.MatchID] = stats
			mu.Unlock()

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	career := aggregateCareer(entry, perMatch)

	slog.Debug("Career aggregated",
		"player", entry.PlayerName,
		"matches", career.MatchCount)

	return career, nil
}

func aggregateCareer(entry *matcher.Entry, perMatch map[int]*MatchStats) *CareerStats {
	career := &CareerStats{
		PlayerName:    entry.PlayerName,
		ByCompetition: make(map[string]*CompetitionStats),
	}

	matchIDs := make([]int, 0, len(perMatch))
	for matchID := range perMatch {
		matchIDs = append(matchIDs, matchID)
	}
	sort.Ints(matchIDs)

	competitionByMatch := make(map[int]string, len(entry.Matches))
	for _, ref := range entry.Matches {
		competitionByMatch[ref.MatchID] = ref.Competition
	}

	for _, matchID := range matchIDs {
		stats := perMatch[matchID]

		career.MatchCount++
		career.TotalPasses += stats.TotalPasses
		career.CompletedPasses += stats.SuccessfulPasses
		career.TotalShots += stats.TotalShots
		career.Goals += stats.Goals
		career.TotalDribbles += stats.TotalDribbles
		career.SuccessfulDribbles += stats.SuccessfulDribbles
		career.DefensiveActions += stats.TotalPressures + stats.Interceptions
		career.TotalActions += stats.TotalActions
		career.Matches = append(career.Matches, stats)

		competition := competitionByMatch[matchID]
		if competition == "" {
			competition = "Unknown"
		}

		compStats := career.ByCompetition[competition]
		if compStats == nil {
			compStats = &CompetitionStats{}
			career.ByCompetition[competition] = compStats
		}

		compStats.MatchCount++
		compStats.TotalPasses += stats.TotalPasses
		compStats.CompletedPasses += stats.SuccessfulPasses
		compStats.TotalShots += stats.TotalShots
		compStats.Goals += stats.Goals
	}

	if career.TotalPasses > 0 {
		career.PassAccuracy = float64(career.CompletedPasses) / float64(career.TotalPasses)
	}
	if career.TotalShots > 0 {
		career.ShotAccuracy = float64(career.Goals) / float64(career.TotalShots)
	}
	if career.TotalDribbles > 0 {
		career.DribbleSuccessRate = float64(career.SuccessfulDribbles) / float64(career.TotalDribbles)
	}

	for _, compStats := range career.ByCompetition {
		if compStats.TotalPasses > 0 {
			compStats.PassAccuracy = float64(compStats.CompletedPasses) / float64(compStats.TotalPasses)
		}
	}

	return career
}
