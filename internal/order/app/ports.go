package app

import (
	"context"

	"github.com/shopforge/storefront/internal/order/domain"
)

// Tx is the set of writes and locked reads available inside one placement
// transaction. Implementations guarantee that either every call made
// through a Tx commits or none of them do.
type Tx interface {
	// CartLines returns the user's cart joined with current product price
	// and stock. Rows are locked (or snapshot-isolated) for the
	// transaction's duration.
	CartLines(ctx context.Context, userID string) ([]domain.CartLine, error)

	// InsertOrder persists the header and returns it with ID and
	// CreatedAt assigned.
	InsertOrder(ctx context.Context, o domain.Order) (domain.Order, error)

	InsertOrderLine(ctx context.Context, line domain.OrderLine) (domain.OrderLine, error)

	// DecrementStock subtracts qty conditionally: it reports false, and
	// changes nothing, when fewer than qty units remain.
	DecrementStock(ctx context.Context, productID string, qty int32) (bool, error)

	// ClearCart deletes every line in the user's cart. The cart row
	// itself persists for reuse.
	ClearCart(ctx context.Context, userID string) error
}

// Store is the transactional persistence boundary for orders. It is
// injected into the service; nothing here reaches for ambient pool state.
type Store interface {
	InTx(ctx context.Context, fn func(tx Tx) error) error

	ListOrders(ctx context.Context, userID string) ([]domain.OrderSummary, error)
	GetOrder(ctx context.Context, orderID string) (domain.Order, error)
}
