package cmd

import (
	"log/slog"
	"os"
	"os/signal"

	"soccerscout/app/client/telegram"
	"soccerscout/app/server/api"

	"github.com/samber/do"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and the Telegram bot",
	RunE: func(cmd *cobra.Command, _ []string) error {
		di, err := setup()
		if err != nil {
			return err
		}
		defer di.Shutdown()

		ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer cancel()

		group, groupCtx := errgroup.WithContext(ctx)

		group.Go(func() error {
			return do.MustInvoke[*api.Server](di).Run(groupCtx)
		})

		bot := do.MustInvoke[*telegram.Bot](di)
		if bot.Enabled() {
			group.Go(func() error {
				return bot.Run(groupCtx)
			})
		}

		slog.Info("Service started")

		return group.Wait()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
