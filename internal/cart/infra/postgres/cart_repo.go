package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/shopforge/storefront/internal/cart/app"
	"github.com/shopforge/storefront/internal/cart/domain"
	"github.com/shopforge/storefront/internal/cart/infra/postgres/cartdb"
	"github.com/shopspring/decimal"
)

type CartRepo struct {
	q *cartdb.Queries
}

func NewCartRepo(db *sql.DB) *CartRepo {
	return &CartRepo{q: cartdb.New(db)}
}

// EnsureCart follows get → idempotent create → re-get, so a concurrent
// create for the same user never surfaces as an error.
func (r *CartRepo) EnsureCart(ctx context.Context, userID string) (string, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return "", err
	}

	cart, err := r.q.GetCartByUserID(ctx, uid)
	if err == nil {
		return cart.ID.String(), nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return "", err
	}

	if err := r.q.CreateCart(ctx, uid); err != nil {
		return "", err
	}

	cart, err = r.q.GetCartByUserID(ctx, uid)
	if err != nil {
		return "", err
	}
	return cart.ID.String(), nil
}

func (r *CartRepo) GetView(ctx context.Context, userID string) (domain.Cart, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return domain.Cart{}, err
	}

	cart, err := r.q.GetCartByUserID(ctx, uid)
	if err != nil {
		return domain.Cart{}, err
	}

	rows, err := r.q.ListCartItems(ctx, cart.ID)
	if err != nil {
		return domain.Cart{}, err
	}

	items := make([]domain.CartItem, 0, len(rows))
	total := decimal.Zero
	for _, row := range rows {
		subtotal := row.Price.Mul(decimal.NewFromInt32(row.Quantity))
		items = append(items, domain.CartItem{
			ProductID:   row.ProductID.String(),
			ProductName: row.Name,
			Quantity:    row.Quantity,
			UnitPrice:   row.Price,
			ImageURL:    row.ImageURL,
			Stock:       row.Stock,
			Subtotal:    subtotal,
		})
		total = total.Add(subtotal)
	}

	return domain.Cart{
		ID:        cart.ID.String(),
		UserID:    cart.UserID.String(),
		Items:     items,
		Total:     total,
		CreatedAt: cart.CreatedAt,
	}, nil
}

func (r *CartRepo) UpsertItemIncrement(ctx context.Context, cartID, productID string, qty int32) error {
	cid, err := uuid.Parse(cartID)
	if err != nil {
		return err
	}
	pid, err := uuid.Parse(productID)
	if err != nil {
		return err
	}

	return r.q.UpsertItemIncrement(ctx, cartdb.UpsertItemIncrementParams{
		CartID:    cid,
		ProductID: pid,
		Quantity:  qty,
	})
}

func (r *CartRepo) SetItemQuantity(ctx context.Context, cartID, productID string, qty int32) error {
	cid, err := uuid.Parse(cartID)
	if err != nil {
		return err
	}
	pid, err := uuid.Parse(productID)
	if err != nil {
		return err
	}

	return r.q.SetItemQuantity(ctx, cartdb.SetItemQuantityParams{
		CartID:    cid,
		ProductID: pid,
		Quantity:  qty,
	})
}

func (r *CartRepo) RemoveItem(ctx context.Context, cartID, productID string) error {
	cid, err := uuid.Parse(cartID)
	if err != nil {
		return err
	}
	pid, err := uuid.Parse(productID)
	if err != nil {
		return err
	}

	return r.q.RemoveItem(ctx, cartdb.RemoveItemParams{
		CartID:    cid,
		ProductID: pid,
	})
}

var _ app.CartRepo = (*CartRepo)(nil)
