package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopforge/storefront/internal/order/domain"
	"github.com/shopspring/decimal"
)

// Service is the order placement engine. It converts a user's cart into a
// persisted order inside a single storage transaction.
type Service struct {
	store Store
	log   *slog.Logger
}

func NewService(store Store, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{store: store, log: log}
}

// PlaceOrder converts the user's cart into a persisted order inside one
// transaction. On any error the transaction rolls back and no state changes.
//
// The stock check runs twice: once against the values read with the cart
// (to fail early with a precise message) and again as a conditional
// decrement per line, which is what actually prevents two concurrent
// placements from driving stock negative.
func (s *Service) PlaceOrder(ctx context.Context, userID string, addr domain.ShippingAddress) (domain.Order, error) {
	if field, missing := addr.MissingField(); missing {
		return domain.Order{}, &InvalidAddressError{Field: field}
	}

	var placed domain.Order
	err := s.store.InTx(ctx, func(tx Tx) error {
		lines, err := tx.CartLines(ctx, userID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return ErrEmptyCart
		}

		total := decimal.Zero
		for _, ln := range lines {
			if ln.Quantity > ln.Stock {
				return &InsufficientStockError{
					ProductID:   ln.ProductID,
					ProductName: ln.ProductName,
					Requested:   ln.Quantity,
					Available:   ln.Stock,
				}
			}
			total = total.Add(ln.UnitPrice.Mul(decimal.NewFromInt32(ln.Quantity)))
		}

		order, err := tx.InsertOrder(ctx, domain.Order{
			UserID:      userID,
			Status:      domain.StatusPending,
			TotalAmount: total,
			Address:     addr,
		})
		if err != nil {
			return err
		}

		order.Lines = make([]domain.OrderLine, 0, len(lines))
		for _, ln := range lines {
			created, err := tx.InsertOrderLine(ctx, domain.OrderLine{
				OrderID:         order.ID,
				ProductID:       ln.ProductID,
				ProductName:     ln.ProductName,
				Quantity:        ln.Quantity,
				PriceAtPurchase: ln.UnitPrice,
			})
			if err != nil {
				return err
			}

			ok, err := tx.DecrementStock(ctx, ln.ProductID, ln.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				// A concurrent placement got there first. Available here
				// is the value from our earlier read; the decrement is
				// what authoritatively failed.
				return &InsufficientStockError{
					ProductID:   ln.ProductID,
					ProductName: ln.ProductName,
					Requested:   ln.Quantity,
					Available:   ln.Stock,
				}
			}

			order.Lines = append(order.Lines, created)
		}

		if err := tx.ClearCart(ctx, userID); err != nil {
			return err
		}

		placed = order
		return nil
	})
	if err != nil {
		return domain.Order{}, s.classify(ctx, userID, err)
	}

	s.log.InfoContext(ctx, "order placed",
		slog.String("order_id", placed.ID),
		slog.String("user_id", userID),
		slog.String("total", placed.TotalAmount.StringFixed(2)),
		slog.Int("lines", len(placed.Lines)),
	)
	return placed, nil
}

func (s *Service) ListOrders(ctx context.Context, userID string) ([]domain.OrderSummary, error) {
	out, err := s.store.ListOrders(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return out, nil
}

func (s *Service) GetOrder(ctx context.Context, orderID string) (domain.Order, error) {
	o, err := s.store.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return domain.Order{}, err
		}
		return domain.Order{}, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return o, nil
}

// classify separates business outcomes, which pass through untouched, from
// infrastructure failures, which are logged and wrapped.
func (s *Service) classify(ctx context.Context, userID string, err error) error {
	var stockErr *InsufficientStockError
	if errors.Is(err, ErrEmptyCart) || errors.As(err, &stockErr) {
		return err
	}
	s.log.ErrorContext(ctx, "order placement failed",
		slog.String("user_id", userID),
		slog.Any("err", err),
	)
	return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
}
