package mylog

import (
	"context"
	"log/slog"
	"os"

	"soccerscout/app/config"

	"github.com/phsym/console-slog"
	slogmulti "github.com/samber/slog-multi"
	slogtelegram "github.com/samber/slog-telegram/v2"
)

// AlertKey tags a record for mirroring to the Telegram log channel even below
// error level, e.g. `slog.Info("...", mylog.AlertKey, true)`.
const AlertKey = "telegram"

// Preinit installs a console logger before the config is loaded, so config
// failures are still readable.
func Preinit() {
	slog.SetDefault(slog.New(consoleHandler()))
}

// Init replaces the default logger with the configured router: console always,
// Telegram mirroring when a token is set.
func Init(cfg *config.Config) error {
	router := slogmulti.Router().Add(consoleHandler())

	if tg := cfg.Log.Telegram; tg.Token != "" {
		handler := slogtelegram.Option{
			Level:     slog.LevelDebug,
			Token:     tg.Token,
			Username:  tg.ChatID,
			AddSource: true,
		}.NewTelegramHandler()

		router = router.Add(handler, shouldMirror)
	}

	slog.SetDefault(slog.New(router.Handler()))

	return nil
}

func consoleHandler() slog.Handler {
	return console.NewHandler(os.Stderr, &console.HandlerOptions{
		AddSource: true,
		Level:     slog.LevelDebug,
	})
}

// shouldMirror routes errors and alert-tagged records to Telegram.
func shouldMirror(_ context.Context, r slog.Record) bool {
	if r.Level >= slog.LevelError {
		return true
	}

	tagged := false

	r.Attrs(func(attr slog.Attr) bool {
		if attr.Key == AlertKey {
			tagged = true
			return false
		}

		return true
	})

	return tagged
}
