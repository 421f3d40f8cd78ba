package app

import (
	"context"
	"testing"

	"github.com/shopforge/storefront/internal/catalog/domain"
	"github.com/shopspring/decimal"
)

type fakeRepo struct {
	products map[string]domain.Product
	getCalls int
}

func (f *fakeRepo) Get(ctx context.Context, id string) (domain.Product, error) {
	f.getCalls++
	p, ok := f.products[id]
	if !ok {
		return domain.Product{}, ErrNotFound
	}
	return p, nil
}

func (f *fakeRepo) List(ctx context.Context, search, categoryID string) ([]domain.Product, error) {
	return nil, nil
}

func (f *fakeRepo) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return nil, nil
}

type fakeCache struct {
	data map[string]domain.Product
}

func (f *fakeCache) Get(ctx context.Context, id string) (domain.Product, bool) {
	p, ok := f.data[id]
	return p, ok
}

func (f *fakeCache) Set(ctx context.Context, p domain.Product) {
	f.data[p.ID] = p
}

func TestGetProduct_CacheReadThrough(t *testing.T) {
	repo := &fakeRepo{products: map[string]domain.Product{
		"p1": {ID: "p1", Name: "Monitor", Price: decimal.NewFromInt(349)},
	}}
	cache := &fakeCache{data: map[string]domain.Product{}}
	svc := NewService(repo, cache)

	ctx := context.Background()

	p, err := svc.GetProduct(ctx, "p1")
	if err != nil {
		t.Fatalf("first get: %v", err)
	}
	if p.Name != "Monitor" {
		t.Fatalf("got %q", p.Name)
	}
	if repo.getCalls != 1 {
		t.Fatalf("expected 1 repo call, got %d", repo.getCalls)
	}

	// second read is served from cache
	if _, err := svc.GetProduct(ctx, "p1"); err != nil {
		t.Fatalf("second get: %v", err)
	}
	if repo.getCalls != 1 {
		t.Fatalf("expected repo untouched on cache hit, got %d calls", repo.getCalls)
	}
}

func TestGetProduct_EmptyID(t *testing.T) {
	svc := NewService(&fakeRepo{}, nil)
	if _, err := svc.GetProduct(context.Background(), "  "); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
