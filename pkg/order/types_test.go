package order_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/avoronina/order-core/pkg/order"
	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
	"gotest.tools/v3/assert"
)

func TestParseSide(t *testing.T) {
	side, err := order.ParseSide("BUY")
	assert.NilError(t, err)
	assert.Equal(t, side, order.Buy)

	side, err = order.ParseSide("SELL")
	assert.NilError(t, err)
	assert.Equal(t, side, order.Sell)

	_, err = order.ParseSide("HOLD")
	assert.ErrorContains(t, err, "unsupported order side: HOLD")
}

func TestParseOrderType(t *testing.T) {
	typ, err := order.ParseOrderType("LIMIT")
	assert.NilError(t, err)
	assert.Equal(t, typ, order.Limit)

	typ, err = order.ParseOrderType("MARKET")
	assert.NilError(t, err)
	assert.Equal(t, typ, order.Market)

	_, err = order.ParseOrderType("STOP")
	assert.ErrorContains(t, err, "unsupported order type: STOP")
}

func TestParseOrderStatus(t *testing.T) {
	for _, want := range []order.OrderStatus{
		order.Pending, order.PartiallyFilled, order.Filled, order.Cancelled,
	} {
		got, err := order.ParseOrderStatus(string(want))
		assert.NilError(t, err)
		assert.Equal(t, got, want)
	}

	_, err := order.ParseOrderStatus("EXPIRED")
	assert.ErrorContains(t, err, "unsupported order status: EXPIRED")
}

func TestOrderStatusPredicates(t *testing.T) {
	assert.Assert(t, order.Pending.Active())
	assert.Assert(t, order.PartiallyFilled.Active())
	assert.Assert(t, !order.Filled.Active())
	assert.Assert(t, !order.Cancelled.Active())

	assert.Assert(t, order.Filled.Terminal())
	assert.Assert(t, order.Cancelled.Terminal())
	assert.Assert(t, !order.Pending.Terminal())
}

func TestOrderJSON(t *testing.T) {
	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	o, err := order.NewLimitOrder(order.Buy, decimal.NewFromInt(100), decimal.NewFromFloat(150.5),
		order.WithID(7), order.WithTimestamp(ts))
	assert.NilError(t, err)

	want := `{"id":7,"side":"BUY","type":"LIMIT","quantity":"100","price":"150.5",` +
		`"filled_quantity":"0","status":"PENDING","created_at":"2024-05-01T12:00:00Z"}`

	std, err := json.Marshal(o)
	assert.NilError(t, err)
	assert.Equal(t, string(std), want)

	fast, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(o)
	assert.NilError(t, err)
	assert.Equal(t, string(fast), want)

	m, err := order.NewMarketOrder(order.Sell, decimal.NewFromInt(50), order.WithID(8), order.WithTimestamp(ts))
	assert.NilError(t, err)
	out, err := json.Marshal(m)
	assert.NilError(t, err)
	assert.Assert(t, string(out) != "")
	assert.Equal(t, jsonField(t, out, "price"), "null")
}

func jsonField(t *testing.T, data []byte, field string) string {
	t.Helper()
	var raw map[string]json.RawMessage
	assert.NilError(t, json.Unmarshal(data, &raw))
	return string(raw[field])
}
