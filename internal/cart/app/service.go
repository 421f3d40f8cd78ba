package app

import (
	"context"
	"errors"

	"github.com/shopforge/storefront/internal/cart/domain"
)

var ErrInvalidInput = errors.New("invalid input")

type Service struct {
	repo CartRepo
}

func NewService(repo CartRepo) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetCart(ctx context.Context, userID string) (domain.Cart, error) {
	if _, err := s.repo.EnsureCart(ctx, userID); err != nil {
		return domain.Cart{}, err
	}
	return s.repo.GetView(ctx, userID)
}

// AddItem increments the line for (cart, product) by qty, creating it on
// first add. Repeated calls accumulate.
func (s *Service) AddItem(ctx context.Context, userID, productID string, qty int32) error {
	if productID == "" || qty < 1 {
		return ErrInvalidInput
	}

	cartID, err := s.repo.EnsureCart(ctx, userID)
	if err != nil {
		return err
	}
	return s.repo.UpsertItemIncrement(ctx, cartID, productID, qty)
}

// SetQuantity overwrites the line's quantity; qty <= 0 deletes the line
// instead of storing it.
func (s *Service) SetQuantity(ctx context.Context, userID, productID string, qty int32) error {
	if productID == "" {
		return ErrInvalidInput
	}

	cartID, err := s.repo.EnsureCart(ctx, userID)
	if err != nil {
		return err
	}

	if qty <= 0 {
		return s.repo.RemoveItem(ctx, cartID, productID)
	}
	return s.repo.SetItemQuantity(ctx, cartID, productID, qty)
}

func (s *Service) RemoveItem(ctx context.Context, userID, productID string) error {
	if productID == "" {
		return ErrInvalidInput
	}

	cartID, err := s.repo.EnsureCart(ctx, userID)
	if err != nil {
		return err
	}
	return s.repo.RemoveItem(ctx, cartID, productID)
}
