// internal/storage/storage.go
package storage

import (
	"context"

	"product-intel/internal/domain"
)

// UserStorage is read-only: users are created and billed elsewhere.
type UserStorage interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
}

type Pinger interface {
	Ping(ctx context.Context) error
}
