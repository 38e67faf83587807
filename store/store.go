// Package store holds the client-side state for the Food Space storefront:
// the buyer's cart, the synced item catalog and the seller's order workflow,
// all backed by the remote storefront service over HTTP.
//
// It replaces the ambient shared context the UI layers used to reach into
// with one explicit object that is passed to whoever needs it.
package store

import (
	"context"
	"log/slog"
	"sync"
)

// Store is the application state for one signed-in user session.
type Store struct {
	Cart    *CartStore
	Catalog *CatalogCache
	Orders  *OrderWorkflow

	api *Client

	mu     sync.Mutex
	userID uint
	search string
}

func New(api *Client, userID uint, logger *slog.Logger) *Store {
	catalog := NewCatalogCache()
	return &Store{
		Cart:    NewCartStore(catalog),
		Catalog: catalog,
		Orders:  NewOrderWorkflow(api, userID, logger),
		api:     api,
		userID:  userID,
	}
}

func (s *Store) UserID() uint {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userID
}

func (s *Store) Search() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.search
}

func (s *Store) SetSearch(q string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.search = q
}

// SyncCatalog refreshes the local item catalog for a location. Cart totals
// pick up the new prices on the next read.
func (s *Store) SyncCatalog(ctx context.Context, location string) error {
	items, err := s.api.FetchItems(ctx, location)
	if err != nil {
		return err
	}
	s.Catalog.Replace(items)
	return nil
}
