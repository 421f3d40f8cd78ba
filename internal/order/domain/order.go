package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const StatusPending = "pending"

// ShippingAddress is captured verbatim on the order. All fields are
// required for placement.
type ShippingAddress struct {
	Name       string
	Street     string
	City       string
	Region     string
	PostalCode string
	Phone      string
}

// MissingField reports the first empty field, scanning in a fixed order so
// validation errors are deterministic.
func (a ShippingAddress) MissingField() (string, bool) {
	fields := []struct {
		name  string
		value string
	}{
		{"name", a.Name},
		{"street", a.Street},
		{"city", a.City},
		{"region", a.Region},
		{"postal_code", a.PostalCode},
		{"phone", a.Phone},
	}
	for _, f := range fields {
		if f.value == "" {
			return f.name, true
		}
	}
	return "", false
}

// CartLine is a cart item joined with the product's current price and
// stock, read at the start of order placement. PriceAtPurchase on the
// resulting order line is frozen from UnitPrice here, never re-read.
type CartLine struct {
	ProductID   string
	ProductName string
	Quantity    int32
	UnitPrice   decimal.Decimal
	Stock       int32
}

type OrderLine struct {
	ID              string
	OrderID         string
	ProductID       string
	ProductName     string
	Quantity        int32
	PriceAtPurchase decimal.Decimal
}

type Order struct {
	ID          string
	UserID      string
	Status      string
	TotalAmount decimal.Decimal
	Address     ShippingAddress
	Lines       []OrderLine
	CreatedAt   time.Time
}

// OrderSummary is the list-view projection: header fields plus a line count.
type OrderSummary struct {
	ID          string
	Status      string
	TotalAmount decimal.Decimal
	ItemCount   int64
	CreatedAt   time.Time
}
