package store

import (
	"sync"

	"github.com/shopspring/decimal"
)

// CatalogCache is the client-side copy of the item catalog. It is replaced
// wholesale on every sync and queried by CartStore for live prices.
type CatalogCache struct {
	mu    sync.RWMutex
	items map[uint]Item
}

func NewCatalogCache() *CatalogCache {
	return &CatalogCache{items: make(map[uint]Item)}
}

func (c *CatalogCache) Replace(items []Item) {
	next := make(map[uint]Item, len(items))
	for _, it := range items {
		next[it.ID] = it
	}
	c.mu.Lock()
	c.items = next
	c.mu.Unlock()
}

func (c *CatalogCache) UnitPrice(itemID uint) (decimal.Decimal, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	it, ok := c.items[itemID]
	if !ok {
		return decimal.Zero, false
	}
	return it.Price, true
}

func (c *CatalogCache) Items() []Item {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Item, 0, len(c.items))
	for _, it := range c.items {
		out = append(out, it)
	}
	return out
}
