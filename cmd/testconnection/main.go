// cmd/testconnection/main.go
package main

import (
	"context"
	"os"

	"product-intel/internal/config"
	"product-intel/internal/inspect"
	"product-intel/internal/storage/postgres"
)

func main() {
	cfg := config.MustLoad()
	logger := config.SetupLogger(cfg)

	connect := func(ctx context.Context) (inspect.Conn, error) {
		s, err := postgres.Connect(ctx, cfg.DBConn)
		if err != nil {
			return nil, err
		}
		return s, nil
	}

	if err := inspect.TestConnection(context.Background(), connect, logger); err != nil {
		os.Exit(1)
	}
}
