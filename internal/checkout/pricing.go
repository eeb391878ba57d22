// Package checkout reduces a cart to a priced, reward-annotated order
// request and submits it to the order ledger.
package checkout

import (
	"github.com/shopspring/decimal"
)

// GiftThreshold unlocks a gift once the order total reaches MinTotal.
type GiftThreshold struct {
	MinTotal decimal.Decimal
	Gift     string
}

// GiftTable is one threshold scheme. Thresholds are cumulative: every
// threshold at or below the total unlocks.
type GiftTable []GiftThreshold

// Policy holds the pricing rules applied at checkout. Two gift schemes
// shipped historically (a single >=400 gift and the tiered 200/500/1000
// ladder) so the tables are configurable rather than merged; the default
// keeps both active.
type Policy struct {
	TaxRate          decimal.Decimal
	DeliveryFee      decimal.Decimal
	FreeDeliveryOver decimal.Decimal
	GiftTables       []GiftTable
	PointsPer        decimal.Decimal
}

// DefaultPolicy returns the production pricing rules: 5% tax, a flat
// delivery fee of 25 waived on subtotals strictly above 300, one HamCoin
// per 10 currency units, and both gift schemes.
func DefaultPolicy() Policy {
	return Policy{
		TaxRate:          decimal.RequireFromString("0.05"),
		DeliveryFee:      decimal.NewFromInt(25),
		FreeDeliveryOver: decimal.NewFromInt(300),
		PointsPer:        decimal.NewFromInt(10),
		GiftTables: []GiftTable{
			{
				{MinTotal: decimal.NewFromInt(200), Gift: "Free Healthy Drink"},
				{MinTotal: decimal.NewFromInt(500), Gift: "Free Dessert"},
				{MinTotal: decimal.NewFromInt(1000), Gift: "Free Meal Coupon"},
			},
			{
				{MinTotal: decimal.NewFromInt(400), Gift: "Free Lemon Detox (worth 30)"},
			},
		},
	}
}

// Quote is the priced view of a cart under a policy.
type Quote struct {
	Subtotal      decimal.Decimal `json:"subtotal"`
	Tax           decimal.Decimal `json:"tax"`
	DeliveryFee   decimal.Decimal `json:"deliveryFee"`
	Total         decimal.Decimal `json:"total"`
	LoyaltyPoints int             `json:"loyaltyPoints"`
	Gifts         []string        `json:"gifts"`
}

// Price computes the quote for a subtotal. It is a pure function: quoting
// the same subtotal twice yields identical results.
func (p Policy) Price(subtotal decimal.Decimal) Quote {
	tax := subtotal.Mul(p.TaxRate).Round(2)

	// Fee waiver is strictly greater-than: a subtotal of exactly 300
	// still pays the fee.
	fee := p.DeliveryFee
	if subtotal.GreaterThan(p.FreeDeliveryOver) {
		fee = decimal.Zero
	}

	total := subtotal.Add(tax).Add(fee)
	points := int(total.Div(p.PointsPer).Floor().IntPart())

	var gifts []string
	for _, table := range p.GiftTables {
		for _, threshold := range table {
			if total.GreaterThanOrEqual(threshold.MinTotal) {
				gifts = append(gifts, threshold.Gift)
			}
		}
	}

	return Quote{
		Subtotal:      subtotal,
		Tax:           tax,
		DeliveryFee:   fee,
		Total:         total,
		LoyaltyPoints: points,
		Gifts:         gifts,
	}
}
