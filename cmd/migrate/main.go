// cmd/migrate/main.go
package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"product-intel/internal/config"
	"product-intel/migrations"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// usage: migrate [up|down|status|redo|version]
func main() {
	cfg := config.MustLoad()
	config.SetupLogger(cfg)

	command := "up"
	var args []string
	if len(os.Args) > 1 {
		command = os.Args[1]
		args = os.Args[2:]
	}

	db, err := sql.Open("pgx", cfg.DBConn)
	if err != nil {
		slog.Error("Failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	slog.Info("Running migrations", "command", command)

	if err := migrations.Run(context.Background(), db, command, args...); err != nil {
		slog.Error("Migrations failed", "error", err)
		db.Close()
		os.Exit(1)
	}

	slog.Info("✅ Migrations done", "command", command)
}
