package app

import (
	"context"
	"errors"

	"github.com/shopforge/storefront/internal/wishlist/domain"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrAlreadyListed = errors.New("item already in wishlist")
	ErrNotFound      = errors.New("wishlist item not found")
)

type WishlistRepo interface {
	// EnsureWishlist returns the user's wishlist id, creating the row if
	// missing. Safe under concurrent calls.
	EnsureWishlist(ctx context.Context, userID string) (string, error)

	GetView(ctx context.Context, userID string) ([]domain.WishlistItem, error)

	// AddItem returns ErrAlreadyListed when the product is already saved.
	AddItem(ctx context.Context, wishlistID, productID string) error

	RemoveItem(ctx context.Context, wishlistID, productID string) error

	// MoveToCart atomically adds one unit of the product to the user's
	// cart and removes the wishlist entry.
	MoveToCart(ctx context.Context, userID, productID string) error
}

type Service struct {
	repo WishlistRepo
}

func NewService(repo WishlistRepo) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetWishlist(ctx context.Context, userID string) ([]domain.WishlistItem, error) {
	if _, err := s.repo.EnsureWishlist(ctx, userID); err != nil {
		return nil, err
	}
	return s.repo.GetView(ctx, userID)
}

func (s *Service) AddItem(ctx context.Context, userID, productID string) error {
	if productID == "" {
		return ErrInvalidInput
	}

	listID, err := s.repo.EnsureWishlist(ctx, userID)
	if err != nil {
		return err
	}
	return s.repo.AddItem(ctx, listID, productID)
}

func (s *Service) RemoveItem(ctx context.Context, userID, productID string) error {
	if productID == "" {
		return ErrInvalidInput
	}

	listID, err := s.repo.EnsureWishlist(ctx, userID)
	if err != nil {
		return err
	}
	return s.repo.RemoveItem(ctx, listID, productID)
}

func (s *Service) MoveToCart(ctx context.Context, userID, productID string) error {
	if productID == "" {
		return ErrInvalidInput
	}

	if _, err := s.repo.EnsureWishlist(ctx, userID); err != nil {
		return err
	}
	return s.repo.MoveToCart(ctx, userID, productID)
}
