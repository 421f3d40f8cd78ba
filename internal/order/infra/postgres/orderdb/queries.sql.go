package orderdb

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const getCartLinesForUpdate = `
SELECT ci.product_id, p.name, ci.quantity, p.price, p.stock
FROM cart_items ci
JOIN carts c ON ci.cart_id = c.id
JOIN products p ON ci.product_id = p.id
WHERE c.user_id = $1
ORDER BY ci.product_id
FOR UPDATE OF ci, p
`

// GetCartLinesForUpdate locks both the cart lines and their products for
// the transaction's duration. Ordering by product id keeps concurrent
// placements acquiring row locks in the same order.
func (q *Queries) GetCartLinesForUpdate(ctx context.Context, userID uuid.UUID) ([]CartLineRow, error) {
	rows, err := q.db.QueryContext(ctx, getCartLinesForUpdate, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CartLineRow
	for rows.Next() {
		var r CartLineRow
		if err := rows.Scan(&r.ProductID, &r.Name, &r.Quantity, &r.Price, &r.Stock); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

const createOrder = `
INSERT INTO orders (user_id, total_amount, status, ship_name, ship_street, ship_city, ship_region, ship_postal_code, ship_phone)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id, user_id, total_amount, status, ship_name, ship_street, ship_city, ship_region, ship_postal_code, ship_phone, created_at
`

type CreateOrderParams struct {
	UserID         uuid.UUID
	TotalAmount    decimal.Decimal
	Status         string
	ShipName       string
	ShipStreet     string
	ShipCity       string
	ShipRegion     string
	ShipPostalCode string
	ShipPhone      string
}

func (q *Queries) CreateOrder(ctx context.Context, arg CreateOrderParams) (Order, error) {
	row := q.db.QueryRowContext(ctx, createOrder,
		arg.UserID, arg.TotalAmount, arg.Status,
		arg.ShipName, arg.ShipStreet, arg.ShipCity, arg.ShipRegion, arg.ShipPostalCode, arg.ShipPhone,
	)
	var o Order
	err := row.Scan(&o.ID, &o.UserID, &o.TotalAmount, &o.Status,
		&o.ShipName, &o.ShipStreet, &o.ShipCity, &o.ShipRegion, &o.ShipPostalCode, &o.ShipPhone,
		&o.CreatedAt)
	return o, err
}

const addOrderItem = `
INSERT INTO order_items (order_id, product_id, quantity, price_at_purchase)
VALUES ($1, $2, $3, $4)
RETURNING id, order_id, product_id, quantity, price_at_purchase
`

type AddOrderItemParams struct {
	OrderID         uuid.UUID
	ProductID       uuid.UUID
	Quantity        int32
	PriceAtPurchase decimal.Decimal
}

func (q *Queries) AddOrderItem(ctx context.Context, arg AddOrderItemParams) (OrderItem, error) {
	row := q.db.QueryRowContext(ctx, addOrderItem,
		arg.OrderID, arg.ProductID, arg.Quantity, arg.PriceAtPurchase)
	var it OrderItem
	err := row.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &it.PriceAtPurchase)
	return it, err
}

const decrementStock = `
UPDATE products
SET stock = stock - $2, updated_at = now()
WHERE id = $1 AND stock >= $2
`

type DecrementStockParams struct {
	ProductID uuid.UUID
	Quantity  int32
}

// DecrementStock is conditional: it reports how many rows changed, zero
// meaning insufficient stock at write time.
func (q *Queries) DecrementStock(ctx context.Context, arg DecrementStockParams) (int64, error) {
	res, err := q.db.ExecContext(ctx, decrementStock, arg.ProductID, arg.Quantity)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const clearCartByUserID = `
DELETE FROM cart_items
WHERE cart_id = (SELECT id FROM carts WHERE user_id = $1)
`

func (q *Queries) ClearCartByUserID(ctx context.Context, userID uuid.UUID) error {
	_, err := q.db.ExecContext(ctx, clearCartByUserID, userID)
	return err
}

const listOrdersByUser = `
SELECT o.id, o.status, o.total_amount, COUNT(oi.id) AS item_count, o.created_at
FROM orders o
LEFT JOIN order_items oi ON oi.order_id = o.id
WHERE o.user_id = $1
GROUP BY o.id
ORDER BY o.created_at DESC
`

func (q *Queries) ListOrdersByUser(ctx context.Context, userID uuid.UUID) ([]OrderSummaryRow, error) {
	rows, err := q.db.QueryContext(ctx, listOrdersByUser, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []OrderSummaryRow
	for rows.Next() {
		var r OrderSummaryRow
		if err := rows.Scan(&r.ID, &r.Status, &r.TotalAmount, &r.ItemCount, &r.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

const getOrder = `
SELECT id, user_id, total_amount, status, ship_name, ship_street, ship_city, ship_region, ship_postal_code, ship_phone, created_at
FROM orders
WHERE id = $1
`

func (q *Queries) GetOrder(ctx context.Context, id uuid.UUID) (Order, error) {
	row := q.db.QueryRowContext(ctx, getOrder, id)
	var o Order
	err := row.Scan(&o.ID, &o.UserID, &o.TotalAmount, &o.Status,
		&o.ShipName, &o.ShipStreet, &o.ShipCity, &o.ShipRegion, &o.ShipPostalCode, &o.ShipPhone,
		&o.CreatedAt)
	return o, err
}

const listOrderItems = `
SELECT oi.id, oi.product_id, p.name, oi.quantity, oi.price_at_purchase
FROM order_items oi
JOIN products p ON oi.product_id = p.id
WHERE oi.order_id = $1
ORDER BY oi.id
`

func (q *Queries) ListOrderItems(ctx context.Context, orderID uuid.UUID) ([]OrderItemRow, error) {
	rows, err := q.db.QueryContext(ctx, listOrderItems, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []OrderItemRow
	for rows.Next() {
		var r OrderItemRow
		if err := rows.Scan(&r.ID, &r.ProductID, &r.Name, &r.Quantity, &r.PriceAtPurchase); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
