package order

import "errors"

var (
	// ErrOrderNotFound is returned when the order id does not exist
	// in the guild's collection
	ErrOrderNotFound = errors.New("order not found")

	// ErrOrderClosed is returned when claiming a closed order
	ErrOrderClosed = errors.New("order is closed")

	// ErrOwnOrder is returned when the owner tries to claim their own order
	ErrOwnOrder = errors.New("cannot claim own order")

	// ErrAlreadyTaken is returned when the order cannot take another claim
	ErrAlreadyTaken = errors.New("order already claimed")

	// ErrNotTaken is returned when releasing an order the user never claimed
	ErrNotTaken = errors.New("order not claimed by user")

	// ErrNotPermitted is returned when the acting user is neither the
	// owner nor a moderator
	ErrNotPermitted = errors.New("not permitted")
)
