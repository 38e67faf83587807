package store

import (
	"sync"

	"github.com/shopspring/decimal"
)

// Catalog resolves the current unit price of an item. CartStore reads prices
// through it at total-computation time, never at add time, so a catalog price
// change shows up in the very next total.
type Catalog interface {
	UnitPrice(itemID uint) (decimal.Decimal, bool)
}

// CartStore owns the buyer's in-progress cart: item id → selected quantity.
// A quantity of zero and an absent key are the same thing.
type CartStore struct {
	mu      sync.Mutex
	catalog Catalog
	items   map[uint]int
}

func NewCartStore(catalog Catalog) *CartStore {
	return &CartStore{catalog: catalog, items: make(map[uint]int)}
}

// SetQuantity sets the selected quantity for an item. Zero removes the
// entry; a negative quantity is rejected with ErrInvalidQuantity and the
// cart is left untouched.
func (s *CartStore) SetQuantity(itemID uint, qty int) error {
	if qty < 0 {
		return ErrInvalidQuantity
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if qty == 0 {
		delete(s.items, itemID)
		return nil
	}
	s.items[itemID] = qty
	return nil
}

// Add increments the item's quantity by one.
func (s *CartStore) Add(itemID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[itemID]++
}

// Remove decrements the item's quantity by one, dropping the entry at zero.
func (s *CartStore) Remove(itemID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.items[itemID] <= 1 {
		delete(s.items, itemID)
		return
	}
	s.items[itemID]--
}

func (s *CartStore) Quantity(itemID uint) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items[itemID]
}

// Items returns a copy of the cart contents.
func (s *CartStore) Items() map[uint]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[uint]int, len(s.items))
	for id, qty := range s.items {
		out[id] = qty
	}
	return out
}

// Clear empties the cart, e.g. after checkout.
func (s *CartStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make(map[uint]int)
}

// TotalAmount is Σ quantity × current unit price over the cart. An item the
// catalog no longer knows contributes zero; stale entries are not pruned.
func (s *CartStore) TotalAmount() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := decimal.Zero
	for id, qty := range s.items {
		price, ok := s.catalog.UnitPrice(id)
		if !ok {
			continue
		}
		total = total.Add(price.Mul(decimal.NewFromInt(int64(qty))))
	}
	return total
}
