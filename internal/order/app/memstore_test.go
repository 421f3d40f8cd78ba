package app_test

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shopforge/storefront/internal/order/app"
	"github.com/shopforge/storefront/internal/order/domain"
	"github.com/shopspring/decimal"
)

// memStore is an in-memory implementation of app.Store with real
// transaction semantics: every InTx works on a deep copy of the state and
// only replaces the live state on success. The mutex serializes
// transactions, so concurrent placements observe committed state only.
type memStore struct {
	mu sync.Mutex
	st memState
}

type memState struct {
	products map[string]memProduct
	carts    map[string]*memCart
	orders   map[string]domain.Order
	seq      int
}

type memProduct struct {
	name  string
	price decimal.Decimal
	stock int32
}

type memCart struct {
	lines []memCartLine
}

type memCartLine struct {
	productID string
	quantity  int32
}

func mustDec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newMemStore() *memStore {
	return &memStore{st: memState{
		products: map[string]memProduct{},
		carts:    map[string]*memCart{},
		orders:   map[string]domain.Order{},
	}}
}

func (s *memStore) addProduct(id, name string, price string, stock int32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.products[id] = memProduct{name: name, price: decimal.RequireFromString(price), stock: stock}
}

func (s *memStore) setPrice(id, price string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.st.products[id]
	p.price = decimal.RequireFromString(price)
	s.st.products[id] = p
}

func (s *memStore) addCartLine(userID, productID string, qty int32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart, ok := s.st.carts[userID]
	if !ok {
		cart = &memCart{}
		s.st.carts[userID] = cart
	}
	for i := range cart.lines {
		if cart.lines[i].productID == productID {
			cart.lines[i].quantity += qty
			return
		}
	}
	cart.lines = append(cart.lines, memCartLine{productID: productID, quantity: qty})
}

func (s *memStore) stock(productID string) int32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.products[productID].stock
}

func (s *memStore) cartSize(userID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cart, ok := s.st.carts[userID]; ok {
		return len(cart.lines)
	}
	return -1 // cart row itself is gone
}

func (s *memStore) orderCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.st.orders)
}

func (st memState) clone() memState {
	out := memState{
		products: make(map[string]memProduct, len(st.products)),
		carts:    make(map[string]*memCart, len(st.carts)),
		orders:   make(map[string]domain.Order, len(st.orders)),
		seq:      st.seq,
	}
	for k, v := range st.products {
		out.products[k] = v
	}
	for k, v := range st.carts {
		lines := make([]memCartLine, len(v.lines))
		copy(lines, v.lines)
		out.carts[k] = &memCart{lines: lines}
	}
	for k, v := range st.orders {
		o := v
		o.Lines = append([]domain.OrderLine(nil), v.Lines...)
		out.orders[k] = o
	}
	return out
}

func (s *memStore) InTx(ctx context.Context, fn func(tx app.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	work := s.st.clone()
	if err := fn(&memTx{st: &work}); err != nil {
		return err
	}
	s.st = work
	return nil
}

func (s *memStore) ListOrders(ctx context.Context, userID string) ([]domain.OrderSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.OrderSummary
	for _, o := range s.st.orders {
		if o.UserID != userID {
			continue
		}
		out = append(out, domain.OrderSummary{
			ID:          o.ID,
			Status:      o.Status,
			TotalAmount: o.TotalAmount,
			ItemCount:   int64(len(o.Lines)),
			CreatedAt:   o.CreatedAt,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *memStore) GetOrder(ctx context.Context, orderID string) (domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.st.orders[orderID]
	if !ok {
		return domain.Order{}, app.ErrNotFound
	}
	return o, nil
}

type memTx struct {
	st *memState
}

func (t *memTx) CartLines(ctx context.Context, userID string) ([]domain.CartLine, error) {
	cart, ok := t.st.carts[userID]
	if !ok {
		return nil, nil
	}
	out := make([]domain.CartLine, 0, len(cart.lines))
	for _, ln := range cart.lines {
		p, ok := t.st.products[ln.productID]
		if !ok {
			return nil, fmt.Errorf("unknown product %s", ln.productID)
		}
		out = append(out, domain.CartLine{
			ProductID:   ln.productID,
			ProductName: p.name,
			Quantity:    ln.quantity,
			UnitPrice:   p.price,
			Stock:       p.stock,
		})
	}
	return out, nil
}

func (t *memTx) InsertOrder(ctx context.Context, o domain.Order) (domain.Order, error) {
	t.st.seq++
	o.ID = fmt.Sprintf("ord-%d", t.st.seq)
	o.CreatedAt = time.Now()
	t.st.orders[o.ID] = o
	return o, nil
}

func (t *memTx) InsertOrderLine(ctx context.Context, line domain.OrderLine) (domain.OrderLine, error) {
	t.st.seq++
	line.ID = fmt.Sprintf("line-%d", t.st.seq)
	o, ok := t.st.orders[line.OrderID]
	if !ok {
		return domain.OrderLine{}, fmt.Errorf("unknown order %s", line.OrderID)
	}
	o.Lines = append(o.Lines, line)
	t.st.orders[line.OrderID] = o
	return line, nil
}

func (t *memTx) DecrementStock(ctx context.Context, productID string, qty int32) (bool, error) {
	p, ok := t.st.products[productID]
	if !ok {
		return false, fmt.Errorf("unknown product %s", productID)
	}
	if p.stock < qty {
		return false, nil
	}
	p.stock -= qty
	t.st.products[productID] = p
	return true, nil
}

func (t *memTx) ClearCart(ctx context.Context, userID string) error {
	if cart, ok := t.st.carts[userID]; ok {
		cart.lines = nil
	}
	return nil
}

var _ app.Store = (*memStore)(nil)
