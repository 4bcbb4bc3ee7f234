package report

import (
	"strings"
	"testing"

	"soccerscout/app/client/transfermarkt"
	"soccerscout/app/service/analysis"
	"soccerscout/app/service/matcher"
	"soccerscout/app/service/predictor"

	"github.com/stretchr/testify/assert"
)

func sampleData() *Data {
	return &Data{
		ID: "r1",
		Candidate: matcher.Candidate{
			ID:          "5503",
			DisplayName: "Lionel Messi",
			Affiliation: "Barcelona",
			Confidence:  1.0,
		},
		Career: &analysis.CareerStats{
			PlayerName:         "Lionel Messi",
			MatchCount:         30,
			TotalPasses:        1500,
			CompletedPasses:    1275,
			PassAccuracy:       0.85,
			TotalShots:         120,
			Goals:              40,
			ShotAccuracy:       40.0 / 120.0,
			TotalDribbles:      200,
			SuccessfulDribbles: 130,
			DribbleSuccessRate: 0.65,
			DefensiveActions:   50,
			ByCompetition: map[string]*analysis.CompetitionStats{
				"La Liga":          {MatchCount: 25, Goals: 35},
				"Champions League": {MatchCount: 5, Goals: 5},
			},
		},
		Market: transfermarkt.MarketProfile{MarketValue: "€80.00m", Club: "Barcelona"},
		Potential: &predictor.Potential{
			CurrentPerformance: 0.57,
			Confidence:         1.0,
			Projections: []predictor.YearProjection{
				{Year: 1, Age: 34, Performance: 0.52, PerformanceFactor: 0.91},
			},
		},
	}
}

func TestRenderTextFullReport(t *testing.T) {
	text := renderText(sampleData())

	assert.Contains(t, text, "Lionel Messi (Barcelona)")
	assert.Contains(t, text, "Appearances: 30")
	assert.Contains(t, text, "1500 passes, 85.0% accuracy")
	assert.Contains(t, text, "40 goals from 120 shots")
	assert.Contains(t, text, "130/200 completed")
	assert.Contains(t, text, "Defensive actions: 50")
	assert.Contains(t, text, "Market value: €80.00m")
	assert.Contains(t, text, "+1 years (age 34): 0.520")

	// Competitions come out alphabetically.
	champions := "Champions League: 5 matches, 5 goals"
	laLiga := "La Liga: 25 matches, 35 goals"
	assert.Less(t,
		// Both present, Champions League first.
		indexOf(t, text, champions), indexOf(t, text, laLiga))
}

func TestRenderTextNoAppearances(t *testing.T) {
	data := sampleData()
	data.Career = &analysis.CareerStats{PlayerName: "Lionel Messi"}

	text := renderText(data)
	assert.Contains(t, text, "No recorded appearances")
	assert.NotContains(t, text, "Passing")
}

func TestRenderTextOmitsEmptySections(t *testing.T) {
	data := sampleData()
	data.Career.TotalDribbles = 0
	data.Career.DefensiveActions = 0
	data.Market = transfermarkt.MarketProfile{}
	data.Potential = nil

	text := renderText(data)
	assert.NotContains(t, text, "Dribbling")
	assert.NotContains(t, text, "Defensive actions")
	assert.NotContains(t, text, "Market value")
	assert.NotContains(t, text, "performance score")
}

func TestFillTemplate(t *testing.T) {
	out := fillTemplate("report for {player_name}: {career}", map[string]any{
		"player_name": "Jordan Smith",
		"career":      `{"match_count":3}`,
	})

	assert.Equal(t, `report for Jordan Smith: {"match_count":3}`, out)
}

func TestMustJSONNilValue(t *testing.T) {
	assert.Equal(t, "null", mustJSON(nil))
	assert.Equal(t, `{"market_value":"","contract_until":"","nationality":"","club":""}`,
		mustJSON(transfermarkt.MarketProfile{}))
}

func indexOf(t *testing.T, haystack, needle string) int {
	t.Helper()

	idx := strings.Index(haystack, needle)
	assert.GreaterOrEqual(t, idx, 0, "expected %q in rendered report", needle)

	return idx
}
