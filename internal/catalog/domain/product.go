package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Category struct {
	ID   string
	Name string
}

type ProductImage struct {
	ID           string
	URL          string
	DisplayOrder int32
}

type Product struct {
	ID           string
	Name         string
	Description  string
	Price        decimal.Decimal
	Stock        int32
	CategoryID   string
	CategoryName string
	ImageURL     string
	Images       []ProductImage
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
