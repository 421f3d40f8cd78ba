package wishlistdb

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const getWishlistByUserID = `
SELECT id FROM wishlists WHERE user_id = $1
`

func (q *Queries) GetWishlistByUserID(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	row := q.db.QueryRowContext(ctx, getWishlistByUserID, userID)
	var id uuid.UUID
	err := row.Scan(&id)
	return id, err
}

const createWishlist = `
INSERT INTO wishlists (user_id) VALUES ($1)
ON CONFLICT (user_id) DO NOTHING
`

func (q *Queries) CreateWishlist(ctx context.Context, userID uuid.UUID) error {
	_, err := q.db.ExecContext(ctx, createWishlist, userID)
	return err
}

// WishlistItemRow is a saved product joined with catalog display data.
type WishlistItemRow struct {
	ProductID    uuid.UUID
	Name         string
	Price        decimal.Decimal
	ImageURL     string
	Stock        int32
	CategoryName sql.NullString
}

const listWishlistItems = `
SELECT wi.product_id, p.name, p.price, p.image_url, p.stock, c.name AS category_name
FROM wishlist_items wi
JOIN products p ON wi.product_id = p.id
LEFT JOIN categories c ON p.category_id = c.id
WHERE wi.wishlist_id = $1
ORDER BY wi.id DESC
`

func (q *Queries) ListWishlistItems(ctx context.Context, wishlistID uuid.UUID) ([]WishlistItemRow, error) {
	rows, err := q.db.QueryContext(ctx, listWishlistItems, wishlistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []WishlistItemRow
	for rows.Next() {
		var r WishlistItemRow
		if err := rows.Scan(&r.ProductID, &r.Name, &r.Price, &r.ImageURL, &r.Stock, &r.CategoryName); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

const addWishlistItem = `
INSERT INTO wishlist_items (wishlist_id, product_id) VALUES ($1, $2)
`

type AddWishlistItemParams struct {
	WishlistID uuid.UUID
	ProductID  uuid.UUID
}

// AddWishlistItem deliberately has no conflict clause: duplicate saves
// surface as a unique violation the repo maps to a business error.
func (q *Queries) AddWishlistItem(ctx context.Context, arg AddWishlistItemParams) error {
	_, err := q.db.ExecContext(ctx, addWishlistItem, arg.WishlistID, arg.ProductID)
	return err
}

const removeWishlistItem = `
DELETE FROM wishlist_items WHERE wishlist_id = $1 AND product_id = $2
`

type RemoveWishlistItemParams struct {
	WishlistID uuid.UUID
	ProductID  uuid.UUID
}

func (q *Queries) RemoveWishlistItem(ctx context.Context, arg RemoveWishlistItemParams) (int64, error) {
	res, err := q.db.ExecContext(ctx, removeWishlistItem, arg.WishlistID, arg.ProductID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const ensureCartForUser = `
INSERT INTO carts (user_id) VALUES ($1)
ON CONFLICT (user_id) DO NOTHING
`

func (q *Queries) EnsureCartForUser(ctx context.Context, userID uuid.UUID) error {
	_, err := q.db.ExecContext(ctx, ensureCartForUser, userID)
	return err
}

const addOneToCart = `
INSERT INTO cart_items (cart_id, product_id, quantity)
SELECT c.id, $2, 1 FROM carts c WHERE c.user_id = $1
ON CONFLICT (cart_id, product_id)
DO UPDATE SET quantity = cart_items.quantity + 1
`

type AddOneToCartParams struct {
	UserID    uuid.UUID
	ProductID uuid.UUID
}

func (q *Queries) AddOneToCart(ctx context.Context, arg AddOneToCartParams) error {
	_, err := q.db.ExecContext(ctx, addOneToCart, arg.UserID, arg.ProductID)
	return err
}

const removeItemByUser = `
DELETE FROM wishlist_items
WHERE wishlist_id = (SELECT id FROM wishlists WHERE user_id = $1)
  AND product_id = $2
`

type RemoveItemByUserParams struct {
	UserID    uuid.UUID
	ProductID uuid.UUID
}

func (q *Queries) RemoveItemByUser(ctx context.Context, arg RemoveItemByUserParams) (int64, error) {
	res, err := q.db.ExecContext(ctx, removeItemByUser, arg.UserID, arg.ProductID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
