package cmd

import (
	"soccerscout/app/server/mcptools"

	"github.com/samber/do"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve player tools over the Model Context Protocol on stdio",
	RunE: func(_ *cobra.Command, _ []string) error {
		di, err := setup()
		if err != nil {
			return err
		}
		defer di.Shutdown()

		return do.MustInvoke[*mcptools.Server](di).ServeStdio()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
