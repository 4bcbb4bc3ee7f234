package cmd

import (
	"fmt"
	"strconv"

	"soccerscout/app/client/statsbomb"

	"github.com/samber/do"
	"github.com/spf13/cobra"
)

var competitionsCmd = &cobra.Command{
	Use:   "competitions",
	Short: "List available competitions",
	RunE: func(cmd *cobra.Command, _ []string) error {
		di, err := setup()
		if err != nil {
			return err
		}
		defer di.Shutdown()

		competitions, err := do.MustInvoke[*statsbomb.Client](di).Competitions(cmd.Context())
		if err != nil {
			return err
		}

		cmd.Printf("%-6s %-6s %-35s %-20s %s\n", "COMP", "SEASON", "NAME", "COUNTRY", "SEASON NAME")
		for _, competition := range competitions {
			cmd.Println(fmt.Sprintf("%-6d %-6d %-35s %-20s %s",
				competition.CompetitionID,
				competition.SeasonID,
				competition.CompetitionName,
				competition.CountryName,
				competition.SeasonName))
		}

		return nil
	},
}

var matchesCmd = &cobra.Command{
	Use:   "matches <competition id> <season id>",
	Short: "List matches of a competition season",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		competitionID, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}

		seasonID, err := strconv.Atoi(args[1])
		if err != nil {
			return err
		}

		di, err := setup()
		if err != nil {
			return err
		}
		defer di.Shutdown()

		matches, err := do.MustInvoke[*statsbomb.Client](di).Matches(cmd.Context(), competitionID, seasonID)
		if err != nil {
			return err
		}

		cmd.Printf("%-8s %-12s %-25s %-25s %s\n", "MATCH", "DATE", "HOME", "AWAY", "SCORE")
		for _, match := range matches {
			cmd.Println(fmt.Sprintf("%-8d %-12s %-25s %-25s %d-%d",
				match.MatchID,
				match.MatchDate,
				match.HomeTeam.TeamName(),
				match.AwayTeam.TeamName(),
				match.HomeScore,
				match.AwayScore))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(competitionsCmd)
	rootCmd.AddCommand(matchesCmd)
}
