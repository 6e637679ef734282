package order

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Order is a single tradable order. Identity and terms are fixed at
// construction; only FilledQuantity and Status change afterwards, and
// only through Fill and Cancel.
type Order struct {
	ID             int64               `json:"id"`
	Side           Side                `json:"side"`
	Type           OrderType           `json:"type"`
	Quantity       decimal.Decimal     `json:"quantity"`
	Price          decimal.NullDecimal `json:"price"`
	FilledQuantity decimal.Decimal     `json:"filled_quantity"`
	Status         OrderStatus         `json:"status"`
	CreatedAt      time.Time           `json:"created_at"`
}

type config struct {
	id  *int64
	ts  *time.Time
	gen *IDGenerator
}

// Option adjusts optional construction parameters.
type Option func(*config)

// WithID sets an explicit order id instead of drawing one from a
// generator.
func WithID(id int64) Option {
	return func(c *config) { c.id = &id }
}

// WithTimestamp overrides the creation time.
func WithTimestamp(t time.Time) Option {
	return func(c *config) { c.ts = &t }
}

// WithIDGenerator draws the order id from g instead of the shared
// default generator.
func WithIDGenerator(g *IDGenerator) Option {
	return func(c *config) { c.gen = g }
}

// NewOrder validates the order terms and returns the order in Pending
// status. It either succeeds with every invariant holding or fails
// without side effects. Market orders never have their price examined.
func NewOrder(side Side, typ OrderType, quantity decimal.Decimal, price decimal.NullDecimal, opts ...Option) (*Order, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	if typ == Limit && !price.Valid {
		return nil, ErrMissingPrice
	}
	if typ == Limit && !price.Decimal.IsPositive() {
		return nil, ErrInvalidPrice
	}
	if !quantity.IsPositive() {
		return nil, errQuantityNotPositive
	}
	if !quantity.IsInteger() {
		return nil, errQuantityNotInteger
	}

	o := &Order{
		Side:      side,
		Type:      typ,
		Quantity:  quantity,
		Price:     price,
		Status:    Pending,
		CreatedAt: time.Now(),
	}
	if cfg.ts != nil {
		o.CreatedAt = *cfg.ts
	}
	switch {
	case cfg.id != nil:
		o.ID = *cfg.id
	case cfg.gen != nil:
		o.ID = cfg.gen.Next()
	default:
		o.ID = defaultIDs.Next()
	}
	return o, nil
}

// NewLimitOrder builds a limit order at the given price.
func NewLimitOrder(side Side, quantity, price decimal.Decimal, opts ...Option) (*Order, error) {
	return NewOrder(side, Limit, quantity, decimal.NewNullDecimal(price), opts...)
}

// NewMarketOrder builds a market order with no price.
func NewMarketOrder(side Side, quantity decimal.Decimal, opts ...Option) (*Order, error) {
	return NewOrder(side, Market, quantity, decimal.NullDecimal{}, opts...)
}

func (o *Order) RemainingQuantity() decimal.Decimal {
	return o.Quantity.Sub(o.FilledQuantity)
}

func (o *Order) IsFilled() bool {
	return o.RemainingQuantity().IsZero()
}

func (o *Order) IsActive() bool {
	return o.Status.Active()
}

// Equal compares order identity. Two orders are the same entity when
// their ids match, whatever the other fields hold.
func (o *Order) Equal(other *Order) bool {
	if other == nil {
		return false
	}
	return o.ID == other.ID
}

// Fill consumes quantity from the remaining amount and advances the
// status. The fill is all-or-nothing: on error no field changes. The
// current status is not consulted, so a cancelled order still accepts
// fills; see Cancel.
func (o *Order) Fill(quantity decimal.Decimal) (decimal.Decimal, error) {
	if !quantity.IsPositive() {
		return decimal.Zero, ErrInvalidFillQuantity
	}
	remaining := o.RemainingQuantity()
	if quantity.GreaterThan(remaining) {
		return decimal.Zero, &OverFillError{Requested: quantity, Remaining: remaining}
	}
	o.FilledQuantity = o.FilledQuantity.Add(quantity)
	if o.IsFilled() {
		o.Status = Filled
	} else {
		o.Status = PartiallyFilled
	}
	return quantity, nil
}

// Cancel moves the order to Cancelled and reports whether it did. A
// filled order cannot be cancelled; cancelling an already cancelled
// order succeeds again.
func (o *Order) Cancel() bool {
	if o.Status == Filled {
		return false
	}
	o.Status = Cancelled
	return true
}

// String renders a one-line diagnostic view. The format is a debugging
// aid, not a compatibility contract.
func (o *Order) String() string {
	price := "MARKET"
	if o.Price.Valid {
		price = "$" + o.Price.Decimal.StringFixed(2)
	}
	return fmt.Sprintf("Order(%d: %s %s @ %s | Filled: %s | %s)",
		o.ID, o.Side, o.Quantity, price, o.FilledQuantity, o.Status)
}
