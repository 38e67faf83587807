// services/order_transitions.go
package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/rupeshthakur8550/FoodSpace/entity"
)

// UpdateStatus moves one of the seller's orders along the status workflow.
// The target status determines the required current status, and the update
// runs as a guarded compare-and-set so a stale request cannot skip a step or
// resurrect a terminal order.
func (s *OrderService) UpdateStatus(sellerID, orderID uint, next entity.OrderStatus) error {
	if !next.Valid() {
		return ErrInvalidStatus
	}
	from, ok := next.Prev()
	if !ok {
		// pending is the initial status, never a transition target
		return ErrInvalidTransition
	}

	o, err := s.Repo.GetForSeller(sellerID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		return err
	}

	// the guarded update is the atomic step; no wider transaction needed
	affected, err := s.Repo.UpdateStatusGuard(s.DB, o.ID, from, next)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrInvalidTransition
	}
	return nil
}
