package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopforge/storefront/internal/pgerr"
	"github.com/shopforge/storefront/internal/wishlist/app"
	"github.com/shopforge/storefront/internal/wishlist/domain"
	"github.com/shopforge/storefront/internal/wishlist/infra/postgres/wishlistdb"
)

type WishlistRepo struct {
	q  *wishlistdb.Queries
	db *sql.DB
}

func NewWishlistRepo(db *sql.DB) *WishlistRepo {
	return &WishlistRepo{
		q:  wishlistdb.New(db),
		db: db,
	}
}

func (r *WishlistRepo) execTX(ctx context.Context, fn func(q *wishlistdb.Queries) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	q := wishlistdb.New(tx)
	if err := fn(q); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("tx err: %w; rollback err: %v", err, rbErr)
		}
		return err
	}

	return tx.Commit()
}

func (r *WishlistRepo) EnsureWishlist(ctx context.Context, userID string) (string, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return "", err
	}

	id, err := r.q.GetWishlistByUserID(ctx, uid)
	if err == nil {
		return id.String(), nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return "", err
	}

	if err := r.q.CreateWishlist(ctx, uid); err != nil {
		return "", err
	}

	id, err = r.q.GetWishlistByUserID(ctx, uid)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

func (r *WishlistRepo) GetView(ctx context.Context, userID string) ([]domain.WishlistItem, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, err
	}

	listID, err := r.q.GetWishlistByUserID(ctx, uid)
	if err != nil {
		return nil, err
	}

	rows, err := r.q.ListWishlistItems(ctx, listID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.WishlistItem, 0, len(rows))
	for _, row := range rows {
		item := domain.WishlistItem{
			ProductID:   row.ProductID.String(),
			ProductName: row.Name,
			Price:       row.Price,
			ImageURL:    row.ImageURL,
			Stock:       row.Stock,
		}
		if row.CategoryName.Valid {
			item.CategoryName = row.CategoryName.String
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *WishlistRepo) AddItem(ctx context.Context, wishlistID, productID string) error {
	wid, err := uuid.Parse(wishlistID)
	if err != nil {
		return err
	}
	pid, err := uuid.Parse(productID)
	if err != nil {
		return err
	}

	err = r.q.AddWishlistItem(ctx, wishlistdb.AddWishlistItemParams{
		WishlistID: wid,
		ProductID:  pid,
	})
	if pgerr.IsUniqueViolation(err) {
		return app.ErrAlreadyListed
	}
	return err
}

func (r *WishlistRepo) RemoveItem(ctx context.Context, wishlistID, productID string) error {
	wid, err := uuid.Parse(wishlistID)
	if err != nil {
		return err
	}
	pid, err := uuid.Parse(productID)
	if err != nil {
		return err
	}

	affected, err := r.q.RemoveWishlistItem(ctx, wishlistdb.RemoveWishlistItemParams{
		WishlistID: wid,
		ProductID:  pid,
	})
	if err != nil {
		return err
	}
	if affected == 0 {
		return app.ErrNotFound
	}
	return nil
}

// MoveToCart runs the cart upsert and the wishlist delete in one
// transaction so the item never exists in both or neither.
func (r *WishlistRepo) MoveToCart(ctx context.Context, userID, productID string) error {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return err
	}
	pid, err := uuid.Parse(productID)
	if err != nil {
		return err
	}

	return r.execTX(ctx, func(q *wishlistdb.Queries) error {
		affected, err := q.RemoveItemByUser(ctx, wishlistdb.RemoveItemByUserParams{
			UserID:    uid,
			ProductID: pid,
		})
		if err != nil {
			return err
		}
		if affected == 0 {
			return app.ErrNotFound
		}

		if err := q.EnsureCartForUser(ctx, uid); err != nil {
			return err
		}
		return q.AddOneToCart(ctx, wishlistdb.AddOneToCartParams{
			UserID:    uid,
			ProductID: pid,
		})
	})
}

var _ app.WishlistRepo = (*WishlistRepo)(nil)
