package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopforge/storefront/internal/order/app"
	"github.com/shopforge/storefront/internal/order/domain"
	"github.com/shopforge/storefront/internal/order/infra/postgres/orderdb"
)

// OrderRepo implements app.Store over Postgres. Placement runs in a single
// database transaction via execTX.
type OrderRepo struct {
	q  *orderdb.Queries
	db *sql.DB
}

func NewOrderRepo(db *sql.DB) *OrderRepo {
	return &OrderRepo{
		q:  orderdb.New(db),
		db: db,
	}
}

func (r *OrderRepo) execTX(ctx context.Context, fn func(q *orderdb.Queries) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	q := orderdb.New(tx)
	if err := fn(q); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("tx err: %w; rollback err: %v", err, rbErr)
		}
		return err
	}

	return tx.Commit()
}

func (r *OrderRepo) InTx(ctx context.Context, fn func(tx app.Tx) error) error {
	return r.execTX(ctx, func(q *orderdb.Queries) error {
		return fn(&orderTx{q: q})
	})
}

func (r *OrderRepo) ListOrders(ctx context.Context, userID string) ([]domain.OrderSummary, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, err
	}

	rows, err := r.q.ListOrdersByUser(ctx, uid)
	if err != nil {
		return nil, err
	}

	out := make([]domain.OrderSummary, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.OrderSummary{
			ID:          row.ID.String(),
			Status:      row.Status,
			TotalAmount: row.TotalAmount,
			ItemCount:   row.ItemCount,
			CreatedAt:   row.CreatedAt,
		})
	}
	return out, nil
}

func (r *OrderRepo) GetOrder(ctx context.Context, orderID string) (domain.Order, error) {
	oid, err := uuid.Parse(orderID)
	if err != nil {
		return domain.Order{}, app.ErrNotFound
	}

	row, err := r.q.GetOrder(ctx, oid)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Order{}, app.ErrNotFound
	}
	if err != nil {
		return domain.Order{}, err
	}

	items, err := r.q.ListOrderItems(ctx, oid)
	if err != nil {
		return domain.Order{}, err
	}

	order := toDomainOrder(row)
	order.Lines = make([]domain.OrderLine, 0, len(items))
	for _, it := range items {
		order.Lines = append(order.Lines, domain.OrderLine{
			ID:              it.ID.String(),
			OrderID:         orderID,
			ProductID:       it.ProductID.String(),
			ProductName:     it.Name,
			Quantity:        it.Quantity,
			PriceAtPurchase: it.PriceAtPurchase,
		})
	}
	return order, nil
}

// orderTx adapts one transaction-bound Queries to the engine's Tx port.
type orderTx struct {
	q *orderdb.Queries
}

func (t *orderTx) CartLines(ctx context.Context, userID string) ([]domain.CartLine, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, err
	}

	rows, err := t.q.GetCartLinesForUpdate(ctx, uid)
	if err != nil {
		return nil, err
	}

	out := make([]domain.CartLine, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.CartLine{
			ProductID:   row.ProductID.String(),
			ProductName: row.Name,
			Quantity:    row.Quantity,
			UnitPrice:   row.Price,
			Stock:       row.Stock,
		})
	}
	return out, nil
}

func (t *orderTx) InsertOrder(ctx context.Context, o domain.Order) (domain.Order, error) {
	uid, err := uuid.Parse(o.UserID)
	if err != nil {
		return domain.Order{}, err
	}

	row, err := t.q.CreateOrder(ctx, orderdb.CreateOrderParams{
		UserID:         uid,
		TotalAmount:    o.TotalAmount,
		Status:         o.Status,
		ShipName:       o.Address.Name,
		ShipStreet:     o.Address.Street,
		ShipCity:       o.Address.City,
		ShipRegion:     o.Address.Region,
		ShipPostalCode: o.Address.PostalCode,
		ShipPhone:      o.Address.Phone,
	})
	if err != nil {
		return domain.Order{}, fmt.Errorf("create order: %w", err)
	}
	return toDomainOrder(row), nil
}

func (t *orderTx) InsertOrderLine(ctx context.Context, line domain.OrderLine) (domain.OrderLine, error) {
	oid, err := uuid.Parse(line.OrderID)
	if err != nil {
		return domain.OrderLine{}, err
	}
	pid, err := uuid.Parse(line.ProductID)
	if err != nil {
		return domain.OrderLine{}, err
	}

	row, err := t.q.AddOrderItem(ctx, orderdb.AddOrderItemParams{
		OrderID:         oid,
		ProductID:       pid,
		Quantity:        line.Quantity,
		PriceAtPurchase: line.PriceAtPurchase,
	})
	if err != nil {
		return domain.OrderLine{}, fmt.Errorf("add order item: %w", err)
	}

	line.ID = row.ID.String()
	return line, nil
}

func (t *orderTx) DecrementStock(ctx context.Context, productID string, qty int32) (bool, error) {
	pid, err := uuid.Parse(productID)
	if err != nil {
		return false, err
	}

	affected, err := t.q.DecrementStock(ctx, orderdb.DecrementStockParams{
		ProductID: pid,
		Quantity:  qty,
	})
	if err != nil {
		return false, fmt.Errorf("decrement stock: %w", err)
	}
	return affected > 0, nil
}

func (t *orderTx) ClearCart(ctx context.Context, userID string) error {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return err
	}
	return t.q.ClearCartByUserID(ctx, uid)
}

func toDomainOrder(row orderdb.Order) domain.Order {
	return domain.Order{
		ID:          row.ID.String(),
		UserID:      row.UserID.String(),
		Status:      row.Status,
		TotalAmount: row.TotalAmount,
		Address: domain.ShippingAddress{
			Name:       row.ShipName,
			Street:     row.ShipStreet,
			City:       row.ShipCity,
			Region:     row.ShipRegion,
			PostalCode: row.ShipPostalCode,
			Phone:      row.ShipPhone,
		},
		CreatedAt: row.CreatedAt,
	}
}

var _ app.Store = (*OrderRepo)(nil)
