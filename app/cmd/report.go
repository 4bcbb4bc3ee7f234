package cmd

import (
	"encoding/json"

	"soccerscout/app/service/report"

	"github.com/samber/do"
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report <player name>",
	Short: "Full structured report data for a player as JSON",
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

		data, err := do.MustInvoke[*report.Service](di).Generate(cmd.Context(), candidate)
		if err != nil {
			return err
		}

		pretty, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return err
		}

		cmd.Println(string(pretty))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
