package analysis

import (
	"testing"

	"soccerscout/app/client/statsbomb"
	"soccerscout/app/service/matcher"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ref(name string) statsbomb.Ref {
	return statsbomb.Ref{Name: name}
}

func refPtr(name string) *statsbomb.Ref {
	return &statsbomb.Ref{Name: name}
}

func passEvent(player, timestamp string, length float64, outcome *statsbomb.Ref, recipient string) statsbomb.Event {
	return statsbomb.Event{
		Type:      ref("Pass"),
		Player:    ref(player),
		Team:      ref("Barcelona"),
		Position:  ref("Center Forward"),
		Period:    1,
		Timestamp: timestamp,
		Location:  []float64{60, 40},
		Pass: &statsbomb.PassDetail{
			Length:    length,
			Outcome:   outcome,
			Recipient: refPtr(recipient),
			BodyPart:  refPtr("Left Foot"),
		},
	}
}

func shotEvent(player, timestamp string, xg float64, outcome string) statsbomb.Event {
	return statsbomb.Event{
		Type:      ref("Shot"),
		Player:    ref(player),
		Team:      ref("Barcelona"),
		Period:    2,
		Timestamp: timestamp,
		Location:  []float64{110, 38},
		Shot: &statsbomb.ShotDetail{
			StatsbombXG: xg,
			Outcome:     refPtr(outcome),
		},
	}
}

func TestComputeMatchStatsNoEvents(t *testing.T) {
	events := []statsbomb.Event{
		passEvent("Someone Else", "00:01:00.000", 10, nil, "Teammate"),
	}

	assert.Nil(t, ComputeMatchStats(events, "Jordan Smith", 100))
}

func TestComputeMatchStatsPasses(t *testing.T) {
	events := []statsbomb.Event{
		passEvent("Jordan Smith", "00:01:00.000", 10, nil, "Alice"),
		passEvent("Jordan Smith", "00:02:00.000", 20, nil, "Alice"),
		passEvent("Jordan Smith", "00:03:00.000", 30, refPtr("Incomplete"), "Bob"),
		passEvent("Jordan Smith", "00:04:00.000", 40, refPtr("Out"), "Bob"),
	}

	stats := ComputeMatchStats(events, "Jordan Smith", 100)
	require.NotNil(t, stats)

	assert.Equal(t, 4, stats.TotalPasses)
	assert.Equal(t, 2, stats.SuccessfulPasses)
	assert.Equal(t, 1, stats.InterceptedPasses)
	assert.InDelta(t, 0.5, stats.PassAccuracy, 0.001)
	assert.InDelta(t, 25.0, stats.AvgPassLength, 0.001)
	assert.Equal(t, "Alice", stats.FavoriteRecipient)
	assert.Equal(t, 2, stats.PassesToFavorite)
	assert.Equal(t, "Left Foot", stats.FavoriteBodyPart)
	assert.Equal(t, "Barcelona", stats.TeamName)
	assert.Equal(t, "Center Forward", stats.Position)
}

func TestComputeMatchStatsShots(t *testing.T) {
	events := []statsbomb.Event{
		shotEvent("Jordan Smith", "00:10:00.000", 0.3, "Goal"),
		shotEvent("Jordan Smith", "00:20:00.000", 0.1, "Saved"),
		shotEvent("Jordan Smith", "00:30:00.000", 0.2, "Off T"),
	}

	stats := ComputeMatchStats(events, "Jordan Smith", 100)
	require.NotNil(t, stats)

	assert.Equal(t, 3, stats.TotalShots)
	assert.Equal(t, 1, stats.Goals)
	assert.InDelta(t, 1.0/3.0, stats.ShotAccuracy, 0.001)
	assert.InDelta(t, 0.6, stats.TotalXG, 0.001)
}

func TestComputeMatchStatsDribblesAndCarries(t *testing.T) {
	events := []statsbomb.Event{
		{
			Type: ref("Dribble"), Player: ref("Jordan Smith"), Period: 1,
			Timestamp: "00:05:00.000",
			Dribble:   &statsbomb.DribbleDetail{Outcome: refPtr("Complete")},
		},
		{
			Type: ref("Dribble"), Player: ref("Jordan Smith"), Period: 1,
			Timestamp: "00:06:00.000",
			Dribble:   &statsbomb.DribbleDetail{Outcome: refPtr("Incomplete")},
		},
		{
			Type: ref("Carry"), Player: ref("Jordan Smith"), Period: 1,
			Timestamp: "00:07:00.000", Duration: 2.5,
			Location: []float64{50, 40},
			Carry:    &statsbomb.CarryDetail{EndLocation: []float64{53, 44}},
		},
	}

	stats := ComputeMatchStats(events, "Jordan Smith", 100)
	require.NotNil(t, stats)

	assert.Equal(t, 2, stats.TotalDribbles)
	assert.Equal(t, 1, stats.SuccessfulDribbles)
	assert.InDelta(t, 0.5, stats.DribbleSuccessRate, 0.001)

	assert.Equal(t, 1, stats.TotalCarries)
	// 3-4-5 triangle.
	assert.InDelta(t, 5.0, stats.TotalCarryDistance, 0.001)
	assert.InDelta(t, 5.0, stats.AvgCarryDistance, 0.001)
	assert.InDelta(t, 2.5, stats.TotalCarryTime, 0.001)
}

func TestComputeMatchStatsPlayingTime(t *testing.T) {
	events := []statsbomb.Event{
		passEvent("Jordan Smith", "00:05:00.000", 10, nil, "Alice"),
		passEvent("Jordan Smith", "00:35:00.000", 10, nil, "Alice"),
	}

	stats := ComputeMatchStats(events, "Jordan Smith", 100)
	require.NotNil(t, stats)

	assert.InDelta(t, 1800.0, stats.PlayingTimeSeconds, 0.001)
	assert.InDelta(t, 2.0/30.0, stats.ActionsPerMinute, 0.001)
}

func TestComputeMatchStatsPeriods(t *testing.T) {
	events := []statsbomb.Event{
		passEvent("Jordan Smith", "00:01:00.000", 10, nil, "Alice"),
		passEvent("Jordan Smith", "00:30:00.000", 10, nil, "Alice"),
		shotEvent("Jordan Smith", "00:10:00.000", 0.5, "Goal"),
	}

	stats := ComputeMatchStats(events, "Jordan Smith", 100)
	require.NotNil(t, stats)
	require.Len(t, stats.Periods, 2)

	firstHalf := stats.Periods[1]
	require.NotNil(t, firstHalf)
	assert.Equal(t, 2, firstHalf.Actions)
	assert.Equal(t, 2, firstHalf.Passes)
	assert.InDelta(t, 1740.0, firstHalf.PlayingTime, 0.001)

	secondHalf := stats.Periods[2]
	require.NotNil(t, secondHalf)
	assert.Equal(t, 1, secondHalf.Shots)
	assert.Equal(t, 1, secondHalf.Goals)
	assert.Zero(t, secondHalf.PlayingTime)
}

func TestComputeMatchStatsSubstitution(t *testing.T) {
	events := []statsbomb.Event{
		passEvent("Jordan Smith", "00:01:00.000", 10, nil, "Alice"),
		{
			Type:   ref("Substitution"),
			Player: ref("Jordan Smith"),
			Period: 2, Timestamp: "00:20:00.000",
			Substitution: &statsbomb.SubstitutionDetail{
				Replacement: ref("Fresh Legs"),
			},
		},
	}

	stats := ComputeMatchStats(events, "Jordan Smith", 100)
	require.NotNil(t, stats)

	assert.True(t, stats.WasSubstituted)
	assert.Equal(t, "Fresh Legs", stats.ReplacedBy)
}

func TestComputeMatchStatsDefensiveActions(t *testing.T) {
	events := []statsbomb.Event{
		{Type: ref("Pressure"), Player: ref("Jordan Smith"), Period: 1, Timestamp: "00:01:00.000"},
		{Type: ref("Pressure"), Player: ref("Jordan Smith"), Period: 1, Timestamp: "00:02:00.000"},
		{Type: ref("Interception"), Player: ref("Jordan Smith"), Period: 2, Timestamp: "00:03:00.000"},
	}

	stats := ComputeMatchStats(events, "Jordan Smith", 100)
	require.NotNil(t, stats)

	assert.Equal(t, 2, stats.TotalPressures)
	assert.Equal(t, 1, stats.Interceptions)
}

func TestTimestampSeconds(t *testing.T) {
	assert.InDelta(t, 0.0, timestampSeconds("00:00:00.000"), 0.0001)
	assert.InDelta(t, 83.456, timestampSeconds("00:01:23.456"), 0.0001)
	assert.InDelta(t, 3600.0, timestampSeconds("01:00:00.000"), 0.0001)
	assert.Zero(t, timestampSeconds("garbage"))
}

func TestAggregateCareer(t *testing.T) {
	entry := &matcher.Entry{
		PlayerID:   1,
		PlayerName: "Jordan Smith",
		Matches: []matcher.MatchRef{
			{MatchID: 100, Competition: "La Liga"},
			{MatchID: 200, Competition: "La Liga"},
			{MatchID: 300, Competition: "Champions League"},
		},
	}

	perMatch := map[int]*MatchStats{
		100: {MatchID: 100, TotalPasses: 10, SuccessfulPasses: 8, TotalShots: 2, Goals: 1, TotalActions: 15},
		200: {MatchID: 200, TotalPasses: 20, SuccessfulPasses: 10, TotalDribbles: 4, SuccessfulDribbles: 2, TotalActions: 30},
		300: {MatchID: 300, TotalPressures: 3, Interceptions: 1, TotalActions: 5},
	}

	career := aggregateCareer(entry, perMatch)

	assert.Equal(t, "Jordan Smith", career.PlayerName)
	assert.Equal(t, 3, career.MatchCount)
	assert.Equal(t, 30, career.TotalPasses)
	assert.Equal(t, 18, career.CompletedPasses)
	assert.InDelta(t, 0.6, career.PassAccuracy, 0.001)
	assert.Equal(t, 2, career.TotalShots)
	assert.Equal(t, 1, career.Goals)
	assert.InDelta(t, 0.5, career.ShotAccuracy, 0.001)
	assert.InDelta(t, 0.5, career.DribbleSuccessRate, 0.001)
	assert.Equal(t, 4, career.DefensiveActions)
	assert.Equal(t, 50, career.TotalActions)

	// Matches come back ordered by match id.
	require.Len(t, career.Matches, 3)
	assert.Equal(t, 100, career.Matches[0].MatchID)
	assert.Equal(t, 300, career.Matches[2].MatchID)

	require.Len(t, career.ByCompetition, 2)
	laLiga := career.ByCompetition["La Liga"]
	require.NotNil(t, laLiga)
	assert.Equal(t, 2, laLiga.MatchCount)
	assert.Equal(t, 30, laLiga.TotalPasses)
	assert.InDelta(t, 0.6, laLiga.PassAccuracy, 0.001)
}
