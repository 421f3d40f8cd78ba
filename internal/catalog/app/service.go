package app

import (
	"context"
	"errors"
	"strings"

	"github.com/shopforge/storefront/internal/catalog/domain"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo  ProductRepo
	cache ProductCache
}

// NewService wires the repo and an optional read cache; pass nil to skip
// caching entirely.
func NewService(repo ProductRepo, cache ProductCache) *Service {
	return &Service{repo: repo, cache: cache}
}

func (s *Service) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Product{}, ErrInvalidInput
	}

	if s.cache != nil {
		if p, ok := s.cache.Get(ctx, id); ok {
			return p, nil
		}
	}

	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, p)
	}
	return p, nil
}

func (s *Service) ListProducts(ctx context.Context, search, categoryID string) ([]domain.Product, error) {
	return s.repo.List(ctx, strings.TrimSpace(search), strings.TrimSpace(categoryID))
}

func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.repo.ListCategories(ctx)
}
