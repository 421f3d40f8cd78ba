package app

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCart is returned when placement finds no cart lines.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrNotFound is returned by order reads for unknown ids.
	ErrNotFound = errors.New("order not found")

	// ErrStorageUnavailable wraps infrastructure failures: the caller may
	// retry the identical request.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// InvalidAddressError names the first missing shipping-address field.
type InvalidAddressError struct {
	Field string
}

func (e *InvalidAddressError) Error() string {
	return fmt.Sprintf("invalid shipping address: %s is required", e.Field)
}

// InsufficientStockError names the offending product and how many units
// were available when the check ran. Placement never partially applies;
// the caller must adjust the cart and resubmit.
type InsufficientStockError struct {
	ProductID   string
	ProductName string
	Requested   int32
	Available   int32
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: requested %d, available %d",
		e.ProductName, e.Requested, e.Available)
}
