package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"soccerscout/app/config"
	"soccerscout/app/service/dialog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/samber/do"
)

// Bot bridges Telegram chats to the conversation service. A missing token
// leaves the bot disabled without failing startup.
type Bot struct {
	cfg       *config.Config
	dialogSvc *dialog.Service
	api       *tgbotapi.BotAPI
}

func NewBot(di *do.Injector) (*Bot, error) {
	cfg := do.MustInvoke[*config.Config](di)

	b := &Bot{
		cfg:       cfg,
		dialogSvc: do.MustInvoke[*dialog.Service](di),
	}

	if cfg.Telegram.Token == "" {
		return b, nil
	}

	api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	b.api = api

	return b, nil
}

func (b *Bot) Enabled() bool {
	return b.api != nil
}

func (b *Bot) Run(ctx context.Context) error {
	if b.api == nil {
		return nil
	}

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 30

	updates := b.api.GetUpdatesChan(updateConfig)

	slog.Info("Telegram bot started", "username", b.api.Self.UserName)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}

			b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.Message == nil || update.Message.From == nil || update.Message.Text == "" {
		return
	}

	userID := strconv.FormatInt(update.Message.From.ID, 10)

	var reply string

	switch update.Message.Command() {
	case "start":
		reply = b.dialogSvc.Welcome(ctx)
	case "help":
		reply = b.dialogSvc.Help(ctx)
	case "reset":
		b.dialogSvc.ResetSession(userID)
		reply = "Session reset. You can start a new search by typing a player's name."
	case "status":
		reply = b.dialogSvc.Status(ctx, userID)
	default:
		reply = b.dialogSvc.HandleMessage(ctx, userID, update.Message.Text)
	}

	message := tgbotapi.NewMessage(update.Message.Chat.ID, reply)

	if _, err := b.api.Send(message); err != nil {
		slog.Error("Failed to send telegram message",
			"user_id", userID,
			"error", err)
	}
}
