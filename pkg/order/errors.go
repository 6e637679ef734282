package order

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrMissingPrice rejects a limit order constructed without a price.
	ErrMissingPrice = errors.New("limit order must have a price")
	// ErrInvalidPrice rejects a limit order with a non-positive price.
	ErrInvalidPrice = errors.New("price must be positive")
	// ErrInvalidQuantity rejects a non-positive or fractional order quantity.
	ErrInvalidQuantity = errors.New("invalid quantity")
	// ErrInvalidFillQuantity rejects a non-positive fill amount.
	ErrInvalidFillQuantity = errors.New("fill quantity must be positive")

	errQuantityNotPositive = fmt.Errorf("%w: quantity must be positive", ErrInvalidQuantity)
	errQuantityNotInteger  = fmt.Errorf("%w: quantity must be an integer", ErrInvalidQuantity)
)

// OverFillError reports a fill request exceeding the order's remaining
// quantity. Requested and Remaining are kept for diagnostics.
type OverFillError struct {
	Requested decimal.Decimal
	Remaining decimal.Decimal
}

func (e *OverFillError) Error() string {
	return fmt.Sprintf("cannot fill %s, only %s remaining", e.Requested, e.Remaining)
}
