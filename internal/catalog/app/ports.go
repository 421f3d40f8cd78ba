package app

import (
	"context"

	"github.com/shopforge/storefront/internal/catalog/domain"
)

// ProductRepo is read-only: cmd/seed owns product provisioning and the
// order engine owns stock mutation.
type ProductRepo interface {
	Get(ctx context.Context, id string) (domain.Product, error)
	List(ctx context.Context, search, categoryID string) ([]domain.Product, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

// ProductCache is a read-through cache over Get. A miss (or any cache
// failure) falls back to the repo; cached stock may be stale, which is fine
// because order placement never reads through the cache.
type ProductCache interface {
	Get(ctx context.Context, id string) (domain.Product, bool)
	Set(ctx context.Context, p domain.Product)
}
