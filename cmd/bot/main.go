// cmd/bot/main.go
package main

import (
	"log/slog"
	"os"

	"product-intel/internal/bot"
	"product-intel/internal/catalog"
	"product-intel/internal/config"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func main() {
	cfg := config.MustLoad()
	config.SetupLogger(cfg)

	if cfg.BotToken == "" {
		slog.Error("TELEGRAM_BOT_TOKEN not set")
		os.Exit(1)
	}

	cat, err := catalog.Default()
	if err != nil {
		slog.Error("Catalog is invalid", "error", err)
		os.Exit(1)
	}
	handler := bot.New(cat)

	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		slog.Error("Failed to init Telegram bot", "error", err)
		os.Exit(1)
	}
	slog.Info("Bot started", "username", api.Self.UserName, "categories", cat.Len())

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := api.GetUpdatesChan(u)

	for update := range updates {
		if update.Message == nil {
			continue
		}

		slog.Debug("📥 Received", "chat_id", update.Message.Chat.ID, "text", update.Message.Text)

		msg := tgbotapi.NewMessage(update.Message.Chat.ID, handler.Handle(update.Message.Text))
		msg.ParseMode = tgbotapi.ModeMarkdown
		if _, err := api.Send(msg); err != nil {
			slog.Error("Failed to send reply", "error", err, "chat_id", update.Message.Chat.ID)
		}
	}
}
