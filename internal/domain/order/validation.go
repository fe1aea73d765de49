package order

// Accepted bounds for a project value, in USD.
const (
	MinProjectValue = 100
	MaxProjectValue = 10000
)

// ValidateProjectValue checks the project value against the accepted range.
func ValidateProjectValue(value float64) error {
	if value < MinProjectValue || value > MaxProjectValue {
		return ErrValueOutOfRange
	}
	return nil
}
