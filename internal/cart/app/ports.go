package app

import (
	"context"

	"github.com/shopforge/storefront/internal/cart/domain"
)

type CartRepo interface {
	// EnsureCart returns the user's cart id, creating the cart row if it
	// does not exist yet. Safe under concurrent calls for the same user.
	EnsureCart(ctx context.Context, userID string) (string, error)

	GetView(ctx context.Context, userID string) (domain.Cart, error)

	// UpsertItemIncrement adds qty to an existing line or creates it.
	UpsertItemIncrement(ctx context.Context, cartID, productID string, qty int32) error

	SetItemQuantity(ctx context.Context, cartID, productID string, qty int32) error
	RemoveItem(ctx context.Context, cartID, productID string) error
}
