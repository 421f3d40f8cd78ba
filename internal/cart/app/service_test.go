package app_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/shopforge/storefront/internal/cart/app"
	"github.com/shopforge/storefront/internal/cart/domain"
	"golang.org/x/sync/errgroup"
)

// fakeRepo keeps carts in memory with the same semantics the Postgres repo
// gets from its SQL: idempotent cart creation, upsert-increment lines.
type fakeRepo struct {
	mu     sync.Mutex
	carts  map[string]string           // userID -> cartID
	lines  map[string]map[string]int32 // cartID -> productID -> qty
	nextID int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		carts: map[string]string{},
		lines: map[string]map[string]int32{},
	}
}

func (f *fakeRepo) EnsureCart(ctx context.Context, userID string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if id, ok := f.carts[userID]; ok {
		return id, nil
	}
	f.nextID++
	id := fmt.Sprintf("cart-%d", f.nextID)
	f.carts[userID] = id
	f.lines[id] = map[string]int32{}
	return id, nil
}

func (f *fakeRepo) GetView(ctx context.Context, userID string) (domain.Cart, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := f.carts[userID]
	cart := domain.Cart{ID: id, UserID: userID}
	for pid, qty := range f.lines[id] {
		cart.Items = append(cart.Items, domain.CartItem{ProductID: pid, Quantity: qty})
	}
	return cart, nil
}

func (f *fakeRepo) UpsertItemIncrement(ctx context.Context, cartID, productID string, qty int32) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lines[cartID][productID] += qty
	return nil
}

func (f *fakeRepo) SetItemQuantity(ctx context.Context, cartID, productID string, qty int32) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lines[cartID][productID] = qty
	return nil
}

func (f *fakeRepo) RemoveItem(ctx context.Context, cartID, productID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.lines[cartID], productID)
	return nil
}

func TestAddItem_Accumulates(t *testing.T) {
	ctx := context.Background()
	svc := app.NewService(newFakeRepo())

	if err := svc.AddItem(ctx, "u1", "p1", 2); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if err := svc.AddItem(ctx, "u1", "p1", 3); err != nil {
		t.Fatalf("second add: %v", err)
	}

	cart, err := svc.GetCart(ctx, "u1")
	if err != nil {
		t.Fatalf("GetCart: %v", err)
	}
	if len(cart.Items) != 1 || cart.Items[0].Quantity != 5 {
		t.Fatalf("expected one line with qty 5, got %+v", cart.Items)
	}
}

func TestAddItem_Validation(t *testing.T) {
	ctx := context.Background()
	svc := app.NewService(newFakeRepo())

	t.Run("zero quantity", func(t *testing.T) {
		if err := svc.AddItem(ctx, "u1", "p1", 0); err != app.ErrInvalidInput {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})
	t.Run("negative quantity", func(t *testing.T) {
		if err := svc.AddItem(ctx, "u1", "p1", -2); err != app.ErrInvalidInput {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})
	t.Run("empty product", func(t *testing.T) {
		if err := svc.AddItem(ctx, "u1", "", 1); err != app.ErrInvalidInput {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})
}

func TestSetQuantity_ZeroDeletesLine(t *testing.T) {
	ctx := context.Background()
	svc := app.NewService(newFakeRepo())

	if err := svc.AddItem(ctx, "u1", "p1", 4); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.SetQuantity(ctx, "u1", "p1", 0); err != nil {
		t.Fatalf("set: %v", err)
	}

	cart, err := svc.GetCart(ctx, "u1")
	if err != nil {
		t.Fatalf("GetCart: %v", err)
	}
	if len(cart.Items) != 0 {
		t.Fatalf("expected empty cart, got %+v", cart.Items)
	}
}

func TestSetQuantity_Overwrites(t *testing.T) {
	ctx := context.Background()
	svc := app.NewService(newFakeRepo())

	if err := svc.AddItem(ctx, "u1", "p1", 4); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.SetQuantity(ctx, "u1", "p1", 2); err != nil {
		t.Fatalf("set: %v", err)
	}

	cart, _ := svc.GetCart(ctx, "u1")
	if len(cart.Items) != 1 || cart.Items[0].Quantity != 2 {
		t.Fatalf("expected qty 2, got %+v", cart.Items)
	}
}

func TestEnsureCart_ConcurrentSingleCart(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	svc := app.NewService(repo)

	const n = 50
	ids := make(map[string]struct{})
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			cart, err := svc.GetCart(gctx, "u1")
			if err != nil {
				return err
			}
			mu.Lock()
			ids[cart.ID] = struct{}{}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent GetCart failed: %v", err)
	}
	if len(ids) != 1 {
		t.Fatalf("expected exactly 1 cart id, got %d: %+v", len(ids), ids)
	}
}
