package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem is a cart line joined with live product data for display.
// Subtotal is quantity × current unit price; the authoritative total at
// checkout is recomputed by the order engine.
type CartItem struct {
	ProductID   string
	ProductName string
	Quantity    int32
	UnitPrice   decimal.Decimal
	ImageURL    string
	Stock       int32
	Subtotal    decimal.Decimal
}

type Cart struct {
	ID        string
	UserID    string
	Items     []CartItem
	Total     decimal.Decimal
	CreatedAt time.Time
}
