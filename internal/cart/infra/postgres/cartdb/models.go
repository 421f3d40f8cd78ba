package cartdb

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Cart struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	CreatedAt time.Time
}

// CartItemRow is a cart line joined with product display data.
type CartItemRow struct {
	ProductID uuid.UUID
	Name      string
	Quantity  int32
	Price     decimal.Decimal
	ImageURL  string
	Stock     int32
}
