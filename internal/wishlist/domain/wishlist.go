package domain

import "github.com/shopspring/decimal"

// WishlistItem is a saved product joined with live catalog data.
type WishlistItem struct {
	ProductID    string
	ProductName  string
	Price        decimal.Decimal
	ImageURL     string
	Stock        int32
	CategoryName string
}
