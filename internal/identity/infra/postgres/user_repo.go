package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/shopforge/storefront/internal/identity/app"
	"github.com/shopforge/storefront/internal/identity/domain"
	"github.com/shopforge/storefront/internal/identity/infra/postgres/identitydb"
	"github.com/shopforge/storefront/internal/pgerr"
)

type UserRepo struct {
	q *identitydb.Queries
}

func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{q: identitydb.New(db)}
}

func (r *UserRepo) CreateUser(ctx context.Context, arg app.CreateUserParams) (domain.User, error) {
	row, err := r.q.CreateUser(ctx, identitydb.CreateUserParams{
		Name:         arg.Name,
		Email:        arg.Email,
		PasswordHash: arg.PasswordHash,
	})
	if err != nil {
		if pgerr.IsUniqueViolation(err) {
			return domain.User{}, app.ErrEmailTaken
		}
		return domain.User{}, err
	}
	return toDomain(row), nil
}

func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row, err := r.q.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, app.ErrNotFound
		}
		return domain.User{}, err
	}
	return toDomain(row), nil
}

func (r *UserRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return domain.User{}, app.ErrNotFound
	}

	row, err := r.q.GetUserByID(ctx, uid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, app.ErrNotFound
		}
		return domain.User{}, err
	}
	return toDomain(row), nil
}

func (r *UserRepo) EnsureDefaults(ctx context.Context, userID string) error {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return err
	}

	if err := r.q.EnsureCart(ctx, uid); err != nil {
		return err
	}
	return r.q.EnsureWishlist(ctx, uid)
}

func toDomain(row identitydb.User) domain.User {
	return domain.User{
		ID:           row.ID.String(),
		Name:         row.Name,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		CreatedAt:    row.CreatedAt,
	}
}

var _ app.UserRepo = (*UserRepo)(nil)
