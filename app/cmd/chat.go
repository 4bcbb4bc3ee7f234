package cmd

import (
	"strings"

	"soccerscout/app/service/assistant"

	"github.com/samber/do"
	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat <message>",
	Short: "Ask the chat assistant a free-form question",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		di, err := setup()
		if err != nil {
			return err
		}
		defer di.Shutdown()

		answer, err := do.MustInvoke[*assistant.Service](di).Chat(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}

		cmd.Println(answer)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
