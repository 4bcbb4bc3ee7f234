package report

import (
	"fmt"
	"sort"
	"strings"
)

// renderText is the deterministic renderer used when no LLM is configured.
func renderText(data *Data) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Performance report: %s (%s)\n", data.Candidate.DisplayName, data.Candidate.Affiliation)

	career := data.Career
	if career == nil || career.MatchCount == 0 {
		b.WriteString("No recorded appearances in the indexed competitions.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "Appearances: %d\n", career.MatchCount)
	fmt.Fprintf(&b, "Passing: %d passes, %.1f%% accuracy\n", career.TotalPasses, career.PassAccuracy*100)
	fmt.Fprintf(&b, "Finishing: %d goals from %d shots (%.1f%%)\n",
		career.Goals, career.TotalShots, career.ShotAccuracy*100)

	if career.TotalDribbles > 0 {
		fmt.Fprintf(&b, "Dribbling: %d/%d completed (%.1f%%)\n",
			career.SuccessfulDribbles, career.TotalDribbles, career.DribbleSuccessRate*100)
	}

	if career.DefensiveActions > 0 {
		fmt.Fprintf(&b, "Defensive actions: %d\n", career.DefensiveActions)
	}

	if len(career.ByCompetition) > 0 {
		names := make([]string, 0, len(career.ByCompetition))
		for name := range career.ByCompetition {
			names = append(names, name)
		}
		sort.Strings(names)

		b.WriteString("Competitions:\n")
		for _, name := range names {
			comp := career.ByCompetition[name]
			fmt.Fprintf(&b, "  %s: %d matches, %d goals\n", name, comp.MatchCount, comp.Goals)
		}
	}

	if data.Market.MarketValue != "" {
		fmt.Fprintf(&b, "Market value: %s\n", data.Market.MarketValue)
	}

	if data.Potential != nil {
		fmt.Fprintf(&b, "Current performance score: %.3f (confidence %.0f%%)\n",
			data.Potential.CurrentPerformance, data.Potential.Confidence*100)

		for _, projection := range data.Potential.Projections {
			fmt.Fprintf(&b, "  +%d years (age %d): %.3f\n",
				projection.Year, projection.Age, projection.Performance)
		}
	}

	return b.String()
}
