package app_test

import (
	"context"
	"testing"

	"github.com/shopforge/storefront/internal/wishlist/app"
	"github.com/shopforge/storefront/internal/wishlist/domain"
)

type fakeRepo struct {
	saved map[string]map[string]struct{} // userID -> productIDs
	cart  map[string]int32               // productID -> qty (single user fake)
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		saved: map[string]map[string]struct{}{},
		cart:  map[string]int32{},
	}
}

func (f *fakeRepo) EnsureWishlist(ctx context.Context, userID string) (string, error) {
	if _, ok := f.saved[userID]; !ok {
		f.saved[userID] = map[string]struct{}{}
	}
	return "wl-" + userID, nil
}

func (f *fakeRepo) GetView(ctx context.Context, userID string) ([]domain.WishlistItem, error) {
	var out []domain.WishlistItem
	for pid := range f.saved[userID] {
		out = append(out, domain.WishlistItem{ProductID: pid})
	}
	return out, nil
}

func (f *fakeRepo) AddItem(ctx context.Context, wishlistID, productID string) error {
	userID := wishlistID[len("wl-"):]
	if _, ok := f.saved[userID][productID]; ok {
		return app.ErrAlreadyListed
	}
	f.saved[userID][productID] = struct{}{}
	return nil
}

func (f *fakeRepo) RemoveItem(ctx context.Context, wishlistID, productID string) error {
	userID := wishlistID[len("wl-"):]
	if _, ok := f.saved[userID][productID]; !ok {
		return app.ErrNotFound
	}
	delete(f.saved[userID], productID)
	return nil
}

func (f *fakeRepo) MoveToCart(ctx context.Context, userID, productID string) error {
	if _, ok := f.saved[userID][productID]; !ok {
		return app.ErrNotFound
	}
	delete(f.saved[userID], productID)
	f.cart[productID]++
	return nil
}

func TestAddItem_DuplicateRejected(t *testing.T) {
	ctx := context.Background()
	svc := app.NewService(newFakeRepo())

	if err := svc.AddItem(ctx, "u1", "p1"); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if err := svc.AddItem(ctx, "u1", "p1"); err != app.ErrAlreadyListed {
		t.Fatalf("expected ErrAlreadyListed, got %v", err)
	}
}

func TestMoveToCart(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	svc := app.NewService(repo)

	if err := svc.AddItem(ctx, "u1", "p1"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.MoveToCart(ctx, "u1", "p1"); err != nil {
		t.Fatalf("move: %v", err)
	}

	items, _ := svc.GetWishlist(ctx, "u1")
	if len(items) != 0 {
		t.Fatalf("expected empty wishlist, got %+v", items)
	}
	if repo.cart["p1"] != 1 {
		t.Fatalf("expected cart qty 1, got %d", repo.cart["p1"])
	}
}

func TestMoveToCart_MissingItem(t *testing.T) {
	ctx := context.Background()
	svc := app.NewService(newFakeRepo())

	if err := svc.MoveToCart(ctx, "u1", "p1"); err != app.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAddItem_EmptyProduct(t *testing.T) {
	ctx := context.Background()
	svc := app.NewService(newFakeRepo())

	if err := svc.AddItem(ctx, "u1", ""); err != app.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
