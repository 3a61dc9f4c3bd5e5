package statemachine

import (
	"quickdeliver-api/models"
)

// courierSequence is the intended fulfilment path. Couriers are NOT forced
// to walk it in order: any courier-settable status is accepted from any
// prior state, matching the permissive behavior of the original platform.
// The sequence exists so callers can offer forward-looking options.
var courierSequence = []models.OrderStatus{
	models.StatusPending,
	models.StatusPreparing,
	models.StatusOnTheWay,
	models.StatusDelivered,
}

var courierSettable = func() map[models.OrderStatus]bool {
	m := make(map[models.OrderStatus]bool)
	for _, s := range courierSequence {
		m[s] = true
	}
	return m
}()

// CourierSettable reports whether a courier may set this status at all.
// Cancellation is reserved for the customer.
func CourierSettable(s models.OrderStatus) bool {
	return courierSettable[s]
}

// IsTerminal reports whether no further transitions are expected
func IsTerminal(s models.OrderStatus) bool {
	return s == models.StatusDelivered || s == models.StatusCancelled
}

// CanCancel reports whether a customer may cancel from the given state.
// Cancellation is only allowed while the order is still pending.
func CanCancel(from models.OrderStatus) bool {
	return from == models.StatusPending
}

// NextStatuses returns the forward-looking statuses from a given state,
// following the intended sequence. Terminal states have none.
func NextStatuses(from models.OrderStatus) []models.OrderStatus {
	if IsTerminal(from) {
		return nil
	}
	for i, s := range courierSequence {
		if s == from {
			return append([]models.OrderStatus(nil), courierSequence[i+1:]...)
		}
	}
	return nil
}

// Valid reports whether s is a known order status
func Valid(s models.OrderStatus) bool {
	return courierSettable[s] || s == models.StatusCancelled
}

// All returns every order status, intended sequence first, for the
// lifecycle documentation endpoint.
func All() []models.OrderStatus {
	return append(append([]models.OrderStatus(nil), courierSequence...), models.StatusCancelled)
}
