package store

import (
	"context"
	"log/slog"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/rupeshthakur8550/FoodSpace/entity"
)

// OrderWorkflow is the seller's view of their orders and the only pathway
// for status changes. The order list is replaced wholesale by LoadOrders and
// patched in place by TransitionStatus, always after server acknowledgment,
// never before. The delivery address is a single-slot cache scoped to the
// order currently being inspected.
//
// Loads and resolves that have been superseded by a newer call commit
// nothing: each slot carries a request generation, and only the latest
// generation may write. A load racing a transition is not coordinated with
// it; a load that lands after a patch overwrites the patch (last fetch
// wins).
type OrderWorkflow struct {
	api      *Client
	sellerID uint
	log      *slog.Logger

	mu      sync.Mutex
	orders  []Order
	address DeliveryAddress
	loadGen uint64
	addrGen uint64
}

func NewOrderWorkflow(api *Client, sellerID uint, logger *slog.Logger) *OrderWorkflow {
	if logger == nil {
		logger = slog.Default()
	}
	return &OrderWorkflow{api: api, sellerID: sellerID, log: logger}
}

// Orders returns a copy of the current order list.
func (w *OrderWorkflow) Orders() []Order {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]Order, len(w.orders))
	copy(out, w.orders)
	return out
}

// Address returns the most recently resolved delivery address, or nil.
func (w *OrderWorkflow) Address() DeliveryAddress {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.address
}

// LoadOrders fetches the seller's full order list and replaces the held one.
// On failure the previous list is retained and the error reported. A load
// superseded by a newer LoadOrders call returns its result without applying
// it.
func (w *OrderWorkflow) LoadOrders(ctx context.Context) ([]Order, error) {
	w.mu.Lock()
	w.loadGen++
	gen := w.loadGen
	w.mu.Unlock()

	orders, err := w.api.FetchOrders(ctx, w.sellerID)
	if err != nil {
		w.log.Warn("load orders failed", "seller_id", w.sellerID, "error", err)
		return nil, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if gen != w.loadGen {
		w.log.Debug("discarding superseded order list", "seller_id", w.sellerID)
		return orders, nil
	}
	w.orders = orders
	return orders, nil
}

// TransitionStatus asks the service to move one order to next and, only once
// the service has acknowledged, patches that single order's status in the
// held list. An edge the workflow diagram does not allow is rejected locally
// with ErrInvalidTransition before any request goes out.
func (w *OrderWorkflow) TransitionStatus(ctx context.Context, orderID uint, next entity.OrderStatus) error {
	w.mu.Lock()
	for _, o := range w.orders {
		if o.ID == orderID && !o.Status.CanTransitionTo(next) {
			w.mu.Unlock()
			return ErrInvalidTransition
		}
	}
	w.mu.Unlock()

	if err := w.api.UpdateStatus(ctx, w.sellerID, orderID, next); err != nil {
		w.log.Warn("status update failed", "order_id", orderID, "status", next, "error", err)
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	for i := range w.orders {
		if w.orders[i].ID == orderID {
			w.orders[i].Status = next
			break
		}
	}
	return nil
}

// ResolveDeliveryAddress fetches the address behind a delivery reference and
// makes it the cached one. On failure the previously resolved address stays
// visible. When resolves overlap, only the most recently issued one commits.
func (w *OrderWorkflow) ResolveDeliveryAddress(ctx context.Context, ref string) (DeliveryAddress, error) {
	w.mu.Lock()
	w.addrGen++
	gen := w.addrGen
	w.mu.Unlock()

	addr, err := w.api.FetchAddress(ctx, ref)
	if err != nil {
		w.log.Warn("address lookup failed", "delivery_ref", ref, "error", err)
		return nil, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if gen != w.addrGen {
		return addr, nil
	}
	w.address = addr
	return addr, nil
}

// ComputeOrderTotal is price × quantity for one order line.
func ComputeOrderTotal(o Order) decimal.Decimal {
	return o.Total()
}
