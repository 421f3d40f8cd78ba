package app

import (
	"context"

	"github.com/shopforge/storefront/internal/identity/domain"
)

type CreateUserParams struct {
	Name         string
	Email        string
	PasswordHash string
}

type UserRepo interface {
	// CreateUser returns ErrEmailTaken when the email is already registered.
	CreateUser(ctx context.Context, arg CreateUserParams) (domain.User, error)

	GetUserByEmail(ctx context.Context, email string) (domain.User, error)
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// EnsureDefaults creates the user's cart and wishlist rows if missing.
	EnsureDefaults(ctx context.Context, userID string) error
}
