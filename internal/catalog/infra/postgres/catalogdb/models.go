package catalogdb

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Product struct {
	ID           uuid.UUID
	Name         string
	Description  string
	Price        decimal.Decimal
	Stock        int32
	CategoryID   uuid.NullUUID
	CategoryName sql.NullString
	ImageURL     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Category struct {
	ID   uuid.UUID
	Name string
}

type ProductImage struct {
	ID           uuid.UUID
	ProductID    uuid.UUID
	ImageURL     string
	DisplayOrder int32
}
