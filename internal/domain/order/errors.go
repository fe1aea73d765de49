package order

import "errors"

var (
	// ErrOrderNotFound indicates the order doesn't exist.
	ErrOrderNotFound = errors.New("order not found")
	// ErrValueOutOfRange indicates the project value is outside the accepted range.
	ErrValueOutOfRange = errors.New("project value must be between 100 and 10000")
	// ErrInvalidStatus indicates an unknown order status.
	ErrInvalidStatus = errors.New("invalid order status")
)
