package cmd

import (
	"encoding/json"
	"strconv"

	"soccerscout/app/service/analysis"
	"soccerscout/app/service/matcher"

	"github.com/samber/do"
	"github.com/spf13/cobra"
)

var matchCmd = &cobra.Command{
	Use:   "match <player name> <match id>",
	Short: "Performance stats for a player in one match",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		matchID, err := strconv.Atoi(args[1])
		if err != nil {
			return err
		}

		di, err := setup()
		if err != nil {
			return err
		}
		defer di.Shutdown()

		candidate, err := resolvePlayer(cmd, di, args[0])
		if err != nil {
			return err
		}

		entry, err := do.MustInvoke[*matcher.Service](di).Entry(cmd.Context(), candidate.ID)
		if err != nil {
			return err
		}

		stats, err := do.MustInvoke[*analysis.Service](di).MatchPerformance(cmd.Context(), entry, matchID)
		if err != nil {
			return err
		}

		pretty, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			return err
		}

		cmd.Println(string(pretty))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)
}
