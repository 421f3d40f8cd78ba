package orderdb

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Order struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	TotalAmount    decimal.Decimal
	Status         string
	ShipName       string
	ShipStreet     string
	ShipCity       string
	ShipRegion     string
	ShipPostalCode string
	ShipPhone      string
	CreatedAt      time.Time
}

type OrderItem struct {
	ID              uuid.UUID
	OrderID         uuid.UUID
	ProductID       uuid.UUID
	Quantity        int32
	PriceAtPurchase decimal.Decimal
}

// CartLineRow is a cart item joined with current product price and stock.
type CartLineRow struct {
	ProductID uuid.UUID
	Name      string
	Quantity  int32
	Price     decimal.Decimal
	Stock     int32
}

// OrderItemRow is an order item joined with the product name.
type OrderItemRow struct {
	ID              uuid.UUID
	ProductID       uuid.UUID
	Name            string
	Quantity        int32
	PriceAtPurchase decimal.Decimal
}

// OrderSummaryRow is an order header with its item count.
type OrderSummaryRow struct {
	ID          uuid.UUID
	Status      string
	TotalAmount decimal.Decimal
	ItemCount   int64
	CreatedAt   time.Time
}
