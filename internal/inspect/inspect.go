// internal/inspect/inspect.go

// Package inspect implements the database inspection commands behind
// cmd/listusers and cmd/testconnection.
package inspect

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"product-intel/internal/domain"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

type UserLister interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
}

type Conn interface {
	Close()
}

// Connector opens a connection. It must return a nil Conn on error.
type Connector func(ctx context.Context) (Conn, error)

var userHeaders = []string{"ID", "Email", "Tier", "Short", "Medium"}

// ListUsers writes every user as a table. An empty result still prints the header.
func ListUsers(ctx context.Context, store UserLister, w io.Writer) error {
	users, err := store.ListUsers(ctx)
	if err != nil {
		return fmt.Errorf("list users: %w", err)
	}

	if _, err := fmt.Fprintln(w, UsersTable(users)); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	slog.Info("Listed users", "count", len(users))
	return nil
}

func UsersTable(users []domain.User) string {
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{
			u.ID,
			u.Email,
			string(u.Tier),
			strconv.Itoa(u.ShortCredits),
			strconv.Itoa(u.MediumCredits),
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(userHeaders...).
		Rows(rows...).
		String()
}

// TestConnection opens and closes one connection, logging the outcome.
func TestConnection(ctx context.Context, connect Connector, logger *slog.Logger) error {
	conn, err := connect(ctx)
	if err != nil {
		logger.Error("Database connection failed", "error", err)
		return err
	}
	defer conn.Close()

	logger.Info("Database connection successful")
	return nil
}
