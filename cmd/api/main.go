// cmd/api/main.go
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"product-intel/internal/auth"
	"product-intel/internal/bot"
	"product-intel/internal/catalog"
	"product-intel/internal/config"
	"product-intel/internal/handler"
	"product-intel/internal/storage/postgres"

	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func main() {
	cfg := config.MustLoadAPI()
	config.SetupLogger(cfg)

	// built once; a broken catalog must stop the process
	cat, err := catalog.Default()
	if err != nil {
		slog.Error("Catalog is invalid", "error", err)
		os.Exit(1)
	}
	slog.Info("Catalog loaded", "categories", cat.Len(), "groups", cat.Groups())

	store, err := postgres.Connect(context.Background(), cfg.DBConn)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("✅ Connected to PostgreSQL")

	gin.SetMode(gin.ReleaseMode)
	router := handler.NewRouter(handler.RouterDeps{
		Catalog:   cat,
		Users:     store,
		Tokens:    auth.NewTokenService(cfg),
		SignInURL: cfg.SignInURL,
		SignUpURL: cfg.SignUpURL,
	})

	// Telegram webhook
	if cfg.BotToken != "" && cfg.WebhookURL != "" {
		if err := setupWebhook(router, cfg, bot.New(cat)); err != nil {
			slog.Error("Failed to set up Telegram webhook", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("🚀 Server started", "addr", cfg.ServerAddr())
	if err := router.Run(cfg.ServerAddr()); err != nil {
		slog.Error("Server stopped with error", "error", err)
		store.Close()
		os.Exit(1)
	}
}

func setupWebhook(router *gin.Engine, cfg config.Config, b *bot.Bot) error {
	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return err
	}

	wh, err := tgbotapi.NewWebhook(cfg.WebhookURL + "/telegram")
	if err != nil {
		return err
	}
	if _, err := api.Request(wh); err != nil {
		return err
	}
	slog.Info("Telegram webhook set", "url", cfg.WebhookURL+"/telegram")

	router.POST("/telegram", func(c *gin.Context) {
		var update tgbotapi.Update
		if err := c.ShouldBindJSON(&update); err != nil {
			slog.Error("Failed to parse update", "error", err)
			c.Status(http.StatusBadRequest)
			return
		}
		if update.Message == nil {
			c.Status(http.StatusOK)
			return
		}

		msg := tgbotapi.NewMessage(update.Message.Chat.ID, b.Handle(update.Message.Text))
		msg.ParseMode = tgbotapi.ModeMarkdown
		if _, err := api.Send(msg); err != nil {
			slog.Error("Failed to send reply", "error", err, "chat_id", update.Message.Chat.ID)
		}
		c.Status(http.StatusOK)
	})
	return nil
}
