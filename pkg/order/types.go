package order

import "fmt"

type Side string
type OrderType string
type OrderStatus string

const (
	Buy  Side = "BUY"
	Sell Side = "SELL"

	Limit  OrderType = "LIMIT"
	Market OrderType = "MARKET"

	Pending         OrderStatus = "PENDING"
	PartiallyFilled OrderStatus = "PARTIALLY_FILLED"
	Filled          OrderStatus = "FILLED"
	Cancelled       OrderStatus = "CANCELLED"
)

// Active reports whether an order in this status can still trade.
func (s OrderStatus) Active() bool {
	return s == Pending || s == PartiallyFilled
}

// Terminal reports whether the status ends the lifecycle.
func (s OrderStatus) Terminal() bool {
	return s == Filled || s == Cancelled
}

func ParseSide(value string) (Side, error) {
	switch value {
	case string(Buy):
		return Buy, nil
	case string(Sell):
		return Sell, nil
	}
	return "", fmt.Errorf("unsupported order side: %s", value)
}

func ParseOrderType(value string) (OrderType, error) {
	switch value {
	case string(Limit):
		return Limit, nil
	case string(Market):
		return Market, nil
	}
	return "", fmt.Errorf("unsupported order type: %s", value)
}

func ParseOrderStatus(value string) (OrderStatus, error) {
	switch value {
	case string(Pending):
		return Pending, nil
	case string(PartiallyFilled):
		return PartiallyFilled, nil
	case string(Filled):
		return Filled, nil
	case string(Cancelled):
		return Cancelled, nil
	}
	return "", fmt.Errorf("unsupported order status: %s", value)
}
