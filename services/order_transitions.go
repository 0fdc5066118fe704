package services

import (
	"errors"

	"backend/entity"

	"gorm.io/gorm"
)

// pending → preparing → completed; cancelled is reachable from the
// non-terminal states. completed and cancelled are terminal.
var orderTransitions = map[string][]string{
	entity.OrderPending:   {entity.OrderPreparing, entity.OrderCancelled},
	entity.OrderPreparing: {entity.OrderCompleted, entity.OrderCancelled},
	entity.OrderCompleted: {},
	entity.OrderCancelled: {},
}

func knownOrderState(state string) bool {
	_, ok := orderTransitions[state]
	return ok
}

func canTransition(from, to string) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// UpdateState moves one of the manager's orders to a new state. The
// write is guarded on the from-state, so a concurrent transition loses
// cleanly instead of overwriting.
func (s *OrderService) UpdateState(managerID, orderID uint, newState string) error {
	if !knownOrderState(newState) {
		return ErrInvalidState
	}

	restaurant, err := s.RestRepo.FindByManager(managerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRestaurantNotFound
		}
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.FindForRestaurant(restaurant.ID, orderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}

		if !canTransition(o.State, newState) {
			return ErrInvalidTransition
		}

		affected, err := s.Repo.UpdateStateGuard(tx, o.ID, o.State, newState)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInvalidTransition
		}
		return nil
	})
}
