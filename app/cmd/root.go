package cmd

import (
	"os"

	"soccerscout/app/client/statsbomb"
	"soccerscout/app/client/telegram"
	"soccerscout/app/client/transfermarkt"
	"soccerscout/app/config"
	"soccerscout/app/server/api"
	"soccerscout/app/server/mcptools"
	"soccerscout/app/service/analysis"
	"soccerscout/app/service/assistant"
	"soccerscout/app/service/dialog"
	"soccerscout/app/service/matcher"
	"soccerscout/app/service/predictor"
	"soccerscout/app/service/report"
	"soccerscout/app/service/session"
	"soccerscout/app/util/mylog"

	"github.com/samber/do"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "soccerscout",
	Short:         "Conversational football player analysis",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads config and wires the full service graph. Every command shares
// this container.
func setup() (*do.Injector, error) {
	mylog.Preinit()

	di := do.New()

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	do.ProvideValue(di, cfg)

	if err = mylog.Init(cfg); err != nil {
		return nil, err
	}

	do.Provide(di, statsbomb.NewClient)
	do.Provide(di, transfermarkt.NewClient)
	do.Provide(di, matcher.New)
	do.Provide(di, analysis.New)
	do.Provide(di, predictor.New)
	do.Provide(di, report.New)
	do.Provide(di, session.NewStore)
	do.Provide(di, dialog.New)
	do.Provide(di, assistant.New)
	do.Provide(di, telegram.NewBot)
	do.Provide(di, api.New)
	do.Provide(di, mcptools.New)

	return di, nil
}
