package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopforge/storefront/internal/catalog/app"
	"github.com/shopforge/storefront/internal/catalog/domain"
)

// ProductCache is a best-effort read cache: any redis failure behaves like
// a miss so the catalog keeps serving from Postgres.
type ProductCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewProductCache(rdb *redis.Client, ttl time.Duration) *ProductCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &ProductCache{rdb: rdb, ttl: ttl}
}

func key(id string) string { return "product:" + id }

func (c *ProductCache) Get(ctx context.Context, id string) (domain.Product, bool) {
	raw, err := c.rdb.Get(ctx, key(id)).Bytes()
	if err != nil {
		return domain.Product{}, false
	}

	var p domain.Product
	if err := json.Unmarshal(raw, &p); err != nil {
		return domain.Product{}, false
	}
	return p, true
}

func (c *ProductCache) Set(ctx context.Context, p domain.Product) {
	raw, err := json.Marshal(p)
	if err != nil {
		return
	}
	_ = c.rdb.Set(ctx, key(p.ID), raw, c.ttl).Err()
}

var _ app.ProductCache = (*ProductCache)(nil)
