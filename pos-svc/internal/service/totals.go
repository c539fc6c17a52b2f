package service

import (
	"cafe-floor/pos-svc/internal/domain"

	"github.com/shopspring/decimal"
)

// OrderTotal sums price times quantity over the order's items. Tips and tax
// are not modelled.
func OrderTotal(order domain.Order) decimal.Decimal {
	total := decimal.Zero
	for _, item := range order.Items {
		total = total.Add(decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

func AmountPaid(order domain.Order) decimal.Decimal {
	paid := decimal.Zero
	for _, p := range order.Payments {
		paid = paid.Add(decimal.NewFromFloat(p.Amount))
	}
	return paid
}

// Balance is what is still owed on the order, never below zero.
func Balance(order domain.Order) decimal.Decimal {
	due := OrderTotal(order).Sub(AmountPaid(order))
	if due.IsNegative() {
		return decimal.Zero
	}
	return due
}

func isPaidInFull(order domain.Order) bool {
	return AmountPaid(order).GreaterThanOrEqual(OrderTotal(order))
}
