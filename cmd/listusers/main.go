// cmd/listusers/main.go
package main

import (
	"context"
	"log/slog"
	"os"

	"product-intel/internal/config"
	"product-intel/internal/inspect"
	"product-intel/internal/storage/postgres"
)

func main() {
	cfg := config.MustLoad()
	config.SetupLogger(cfg)

	ctx := context.Background()
	err := postgres.WithConnection(ctx, cfg.DBConn, func(s *postgres.Storage) error {
		return inspect.ListUsers(ctx, s, os.Stdout)
	})
	if err != nil {
		slog.Error("Failed to list users", "error", err)
		os.Exit(1)
	}
}
