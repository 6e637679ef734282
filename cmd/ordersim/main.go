package main

import (
	"log"

	"github.com/avoronina/order-core/pkg/order"
	"github.com/shopspring/decimal"
)

func main() {
	ids := order.NewIDGenerator()

	limit, err := order.NewLimitOrder(order.Buy, decimal.NewFromInt(100), decimal.NewFromFloat(150.0),
		order.WithIDGenerator(ids))
	if err != nil {
		log.Fatalf("failed to create limit order: %v", err)
	}
	log.Printf("created %s", limit)

	if _, err := limit.Fill(decimal.NewFromInt(30)); err != nil {
		log.Fatalf("fill failed: %v", err)
	}
	log.Printf("after partial fill: %s", limit)

	if _, err := limit.Fill(limit.RemainingQuantity()); err != nil {
		log.Fatalf("fill failed: %v", err)
	}
	log.Printf("after final fill: %s", limit)

	if !limit.Cancel() {
		log.Printf("cancel rejected, order already filled: %s", limit)
	}

	market, err := order.NewMarketOrder(order.Sell, decimal.NewFromInt(50), order.WithIDGenerator(ids))
	if err != nil {
		log.Fatalf("failed to create market order: %v", err)
	}
	log.Printf("created %s", market)
	if market.Cancel() {
		log.Printf("cancelled %s", market)
	}
}
