package analysis

import (
	"math"
	"strconv"
	"strings"

	"soccerscout/app/client/statsbomb"

	"github.com/elliotchance/pie/v2"
)

// ComputeMatchStats reduces a match event stream to the stats of one player.
// Returns nil when the player produced no events in the match.
func ComputeMatchStats(events []statsbomb.Event, playerName string, matchID int) *MatchStats {
	playerEvents := pie.Filter(events, func(e statsbomb.Event) bool {
		return e.Player.Name == playerName
	})
	if len(playerEvents) == 0 {
		return nil
	}

	stats := &MatchStats{
		PlayerName:   playerName,
		TeamName:     playerEvents[0].Team.Name,
		MatchID:      matchID,
		TotalActions: len(playerEvents),
		Periods:      make(map[int]*PeriodStats),
	}

	if playerEvents[0].Position.Name != "" {
		stats.Position = playerEvents[0].Position.Name
	}

	computePassStats(playerEvents, stats)
	computeShotStats(playerEvents, stats)
	computeDribbleStats(playerEvents, stats)
	computeCarryStats(playerEvents, stats)
	computePositionStats(playerEvents, stats)
	computeTimeStats(playerEvents, stats)
	computePeriodStats(playerEvents, stats)

	for _, e := range playerEvents {
		switch e.Type.Name {
		case "Pressure":
			stats.TotalPressures++
		case "Interception":
			stats.Interceptions++
		}

		if e.Tactics != nil && stats.Formation == 0 {
			stats.Formation = e.Tactics.Formation
		}
	}

	// The substitution event belongs to the player going off.
	for _, e := range events {
		if e.Type.Name == "Substitution" && e.Player.Name == playerName && e.Substitution != nil {
			stats.WasSubstituted = true
			stats.ReplacedBy = e.Substitution.Replacement.Name
			break
		}
	}

	return stats
}

func computePassStats(events []statsbomb.Event, stats *MatchStats) {
	recipients := make(map[string]int)
	bodyParts := make(map[string]int)
	totalLength := 0.0

	for _, e := range events {
		if e.Type.Name != "Pass" || e.Pass == nil {
			continue
		}

		stats.TotalPasses++
		totalLength += e.Pass.Length

		// A pass without an outcome is a completed pass in StatsBomb data.
		if e.Pass.Outcome == nil {
			stats.SuccessfulPasses++
		} else if e.Pass.Outcome.Name == "Incomplete" {
			stats.InterceptedPasses++
		}

		if e.Pass.Recipient != nil {
			recipients[e.Pass.Recipient.Name]++
		}
		if e.Pass.BodyPart != nil {
			bodyParts[e.Pass.BodyPart.Name]++
		}
	}

	if stats.TotalPasses == 0 {
		return
	}

	stats.PassAccuracy = float64(stats.SuccessfulPasses) / float64(stats.TotalPasses)
	stats.AvgPassLength = totalLength / float64(stats.TotalPasses)
	stats.FavoriteRecipient, stats.PassesToFavorite = topEntry(recipients)

	if len(bodyParts) > 0 {
		stats.FavoriteBodyPart, _ = topEntry(bodyParts)
		stats.BodyPartBreakdown = bodyParts
	}
}

func computeShotStats(events []statsbomb.Event, stats *MatchStats) {
	for _, e := range events {
		if e.Type.Name != "Shot" || e.Shot == nil {
			continue
		}

		stats.TotalShots++
		stats.TotalXG += e.Shot.StatsbombXG

		if e.Shot.Outcome != nil && e.Shot.Outcome.Name == "Goal" {
			stats.Goals++
		}
	}

	if stats.TotalShots > 0 {
		stats.ShotAccuracy = float64(stats.Goals) / float64(stats.TotalShots)
	}
}

func computeDribbleStats(events []statsbomb.Event, stats *MatchStats) {
	for _, e := range events {
		if e.Type.Name != "Dribble" || e.Dribble == nil {
			continue
		}

		stats.TotalDribbles++

		if e.Dribble.Outcome != nil && e.Dribble.Outcome.Name == "Complete" {
			stats.SuccessfulDribbles++
		}
	}

	if stats.TotalDribbles > 0 {
		stats.DribbleSuccessRate = float64(stats.SuccessfulDribbles) / float64(stats.TotalDribbles)
	}
}

func computeCarryStats(events []statsbomb.Event, stats *MatchStats) {
	for _, e := range events {
		if e.Type.Name != "Carry" || e.Carry == nil {
			continue
		}

		stats.TotalCarries++
		stats.TotalCarryTime += e.Duration

		if len(e.Location) >= 2 && len(e.Carry.EndLocation) >= 2 {
			dx := e.Carry.EndLocation[0] - e.Location[0]
			dy := e.Carry.EndLocation[1] - e.Location[1]
			stats.TotalCarryDistance += math.Sqrt(dx*dx + dy*dy)
		}
	}

	if stats.TotalCarries > 0 {
		stats.AvgCarryDistance = stats.TotalCarryDistance / float64(stats.TotalCarries)
	}
}

func computePositionStats(events []statsbomb.Event, stats *MatchStats) {
	var sumX, sumY float64
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	count := 0

	for _, e := range events {
		if len(e.Location) < 2 {
			continue
		}

		x, y := e.Location[0], e.Location[1]
		sumX += x
		sumY += y
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, y)
		count++
	}

	if count == 0 {
		return
	}

	stats.AvgPositionX = sumX / float64(count)
	stats.AvgPositionY = sumY / float64(count)
	stats.PositionRangeX = maxX - minX
	stats.PositionRangeY = maxY - minY
}

func computeTimeStats(events []statsbomb.Event, stats *MatchStats) {
	if len(events) < 2 {
		return
	}

	first, last := math.Inf(1), math.Inf(-1)
	for _, e := range events {
		seconds := timestampSeconds(e.Timestamp)
		first = math.Min(first, seconds)
		last = math.Max(last, seconds)
	}

	stats.PlayingTimeSeconds = last - first
	if stats.PlayingTimeSeconds > 0 {
		stats.ActionsPerMinute = float64(len(events)) / (stats.PlayingTimeSeconds / 60)
	}
}

func computePeriodStats(events []statsbomb.Event, stats *MatchStats) {
	for _, e := range events {
		period := stats.Periods[e.Period]
		if period == nil {
			period = &PeriodStats{}
			stats.Periods[e.Period] = period
		}

		period.Actions++

		switch e.Type.Name {
		case "Pass":
			period.Passes++
		case "Shot":
			period.Shots++
			if e.Shot != nil && e.Shot.Outcome != nil && e.Shot.Outcome.Name == "Goal" {
				period.Goals++
			}
		case "Carry":
			period.Carries++
		case "Dribble":
			period.Dribbles++
		}
	}

	for periodNumber, period := range stats.Periods {
		first, last := math.Inf(1), math.Inf(-1)
		count := 0

		for _, e := range events {
			if e.Period != periodNumber {
				continue
			}

			seconds := timestampSeconds(e.Timestamp)
			first = math.Min(first, seconds)
			last = math.Max(last, seconds)
			count++
		}

		if count > 1 {
			period.PlayingTime = last - first
		}
	}
}

// timestampSeconds parses the "HH:MM:SS.mmm" event clock, which restarts at
// the beginning of every period.
func timestampSeconds(timestamp string) float64 {
	parts := strings.Split(timestamp, ":")
	if len(parts) < 3 {
		return 0
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}

	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0
	}

	seconds, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return 0
	}

	return float64(hours)*3600 + float64(minutes)*60 + seconds
}

func topEntry(counts map[string]int) (string, int) {
	bestName := ""
	bestCount := 0

	for name, count := range counts {
		if count > bestCount || (count == bestCount && name < bestName) {
			bestName = name
			bestCount = count
		}
	}

	return bestName, bestCount
}
