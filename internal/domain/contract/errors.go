package contract

import "errors"

var (
	// ErrContractNotFound indicates the contract doesn't exist.
	ErrContractNotFound = errors.New("contract not found")
	// ErrOrderNotFound indicates the referenced order doesn't exist.
	ErrOrderNotFound = errors.New("referenced order not found")
	// ErrInvalidType indicates an unknown contract type.
	ErrInvalidType = errors.New("invalid contract type")
)
