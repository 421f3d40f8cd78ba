package cartdb

import (
	"context"

	"github.com/google/uuid"
)

const getCartByUserID = `
SELECT id, user_id, created_at FROM carts WHERE user_id = $1
`

func (q *Queries) GetCartByUserID(ctx context.Context, userID uuid.UUID) (Cart, error) {
	row := q.db.QueryRowContext(ctx, getCartByUserID, userID)
	var c Cart
	err := row.Scan(&c.ID, &c.UserID, &c.CreatedAt)
	return c, err
}

const createCart = `
INSERT INTO carts (user_id) VALUES ($1)
ON CONFLICT (user_id) DO NOTHING
`

// CreateCart is idempotent: a concurrent create for the same user is
// absorbed by the unique(user_id) conflict clause.
func (q *Queries) CreateCart(ctx context.Context, userID uuid.UUID) error {
	_, err := q.db.ExecContext(ctx, createCart, userID)
	return err
}

const listCartItems = `
SELECT ci.product_id, p.name, ci.quantity, p.price, p.image_url, p.stock
FROM cart_items ci
JOIN products p ON ci.product_id = p.id
WHERE ci.cart_id = $1
ORDER BY p.name
`

func (q *Queries) ListCartItems(ctx context.Context, cartID uuid.UUID) ([]CartItemRow, error) {
	rows, err := q.db.QueryContext(ctx, listCartItems, cartID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CartItemRow
	for rows.Next() {
		var r CartItemRow
		if err := rows.Scan(&r.ProductID, &r.Name, &r.Quantity, &r.Price, &r.ImageURL, &r.Stock); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

const upsertItemIncrement = `
INSERT INTO cart_items (cart_id, product_id, quantity)
VALUES ($1, $2, $3)
ON CONFLICT (cart_id, product_id)
DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity
`

type UpsertItemIncrementParams struct {
	CartID    uuid.UUID
	ProductID uuid.UUID
	Quantity  int32
}

func (q *Queries) UpsertItemIncrement(ctx context.Context, arg UpsertItemIncrementParams) error {
	_, err := q.db.ExecContext(ctx, upsertItemIncrement, arg.CartID, arg.ProductID, arg.Quantity)
	return err
}

const setItemQuantity = `
UPDATE cart_items SET quantity = $3
WHERE cart_id = $1 AND product_id = $2
`

type SetItemQuantityParams struct {
	CartID    uuid.UUID
	ProductID uuid.UUID
	Quantity  int32
}

func (q *Queries) SetItemQuantity(ctx context.Context, arg SetItemQuantityParams) error {
	_, err := q.db.ExecContext(ctx, setItemQuantity, arg.CartID, arg.ProductID, arg.Quantity)
	return err
}

const removeItem = `
DELETE FROM cart_items WHERE cart_id = $1 AND product_id = $2
`

type RemoveItemParams struct {
	CartID    uuid.UUID
	ProductID uuid.UUID
}

func (q *Queries) RemoveItem(ctx context.Context, arg RemoveItemParams) error {
	_, err := q.db.ExecContext(ctx, removeItem, arg.CartID, arg.ProductID)
	return err
}
