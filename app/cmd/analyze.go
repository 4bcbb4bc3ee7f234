package cmd

import (
	"fmt"

	"soccerscout/app/service/matcher"
	"soccerscout/app/service/report"

	"github.com/samber/do"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <player name>",
	Short: "General performance report for a player",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		di, err := setup()
		if err != nil {
			return err
		}
		defer di.Shutdown()

		candidate, err := resolvePlayer(cmd, di, args[0])
		if err != nil {
			return err
		}

		reportSvc := do.MustInvoke[*report.Service](di)

		data, err := reportSvc.Generate(cmd.Context(), candidate)
		if err != nil {
			return err
		}

		body, err := reportSvc.Render(cmd.Context(), data)
		if err != nil {
			return err
		}

		cmd.Println(body)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

// resolvePlayer picks the best match for a name, listing the alternatives
// when the query was ambiguous.
func resolvePlayer(cmd *cobra.Command, di *do.Injector, name string) (matcher.Candidate, error) {
	candidates, err := do.MustInvoke[*matcher.Service](di).Search(cmd.Context(), name)
	if err != nil {
		return matcher.Candidate{}, err
	}

	if len(candidates) == 0 {
		return matcher.Candidate{}, fmt.Errorf("no players found for %q", name)
	}

	if len(candidates) > 1 {
		cmd.Printf("Multiple players matched %q, using %s. Alternatives:\n", name, candidates[0].DisplayName)
		for i, candidate := range candidates[1:] {
			cmd.Printf("  %d. %s (%s)\n", i+2, candidate.DisplayName, candidate.Affiliation)
		}
	}

	return candidates[0], nil
}
