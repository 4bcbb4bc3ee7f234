package cmd

import (
	"encoding/json"

	"soccerscout/app/service/analysis"
	"soccerscout/app/service/matcher"
	"soccerscout/app/service/predictor"

	"github.com/samber/do"
	"github.com/spf13/cobra"
)

var predictYears int

var predictCmd = &cobra.Command{
	Use:   "predict <player name>",
	Short: "Project a player's potential over the coming seasons",
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

		entry, err := do.MustInvoke[*matcher.Service](di).Entry(cmd.Context(), candidate.ID)
		if err != nil {
			return err
		}

		career, err := do.MustInvoke[*analysis.Service](di).CareerPerformance(cmd.Context(), entry)
		if err != nil {
			return err
		}

		potential, err := do.MustInvoke[*predictor.Service](di).PredictPotential(career, 0, predictYears)
		if err != nil {
			return err
		}

		pretty, err := json.MarshalIndent(potential, "", "  ")
		if err != nil {
			return err
		}

		cmd.Println(string(pretty))

		return nil
	},
}

func init() {
	predictCmd.Flags().IntVarP(&predictYears, "years", "y", 3, "seasons to project")
	rootCmd.AddCommand(predictCmd)
}
