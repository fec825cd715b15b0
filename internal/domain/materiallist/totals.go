package materiallist

import (
	"math"

	"github.com/shopspring/decimal"

	"plumbing_estimator/internal/domain/entities"
)

// Rounding policy: each row is rounded to cents, the grand total is the sum
// of the rounded rows, so it always equals the sum of the displayed rows.

// RowTotal returns round2(quantity * price). A product too large for a
// float64 yields 0.
func RowTotal(quantity, price float64) float64 {
	return finite(rowTotal(quantity, price))
}

func rowTotal(quantity, price float64) decimal.Decimal {
	return decimal.NewFromFloat(quantity).Mul(decimal.NewFromFloat(price)).Round(2)
}

// GrandTotal sums the rounded row totals of items.
func GrandTotal(items []entities.LineItem) float64 {
	return finite(grandTotal(items))
}

func grandTotal(items []entities.LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(rowTotal(it.Quantity, it.LastPrice))
	}
	return sum
}

// Summary is the footer of a material list.
type Summary struct {
	Subtotal     float64 `json:"subtotal"`
	TaxRate      float64 `json:"tax_rate"`
	Tax          float64 `json:"tax"`
	TotalWithTax float64 `json:"total_with_tax"`
}

// Summarize computes the grand total and the sales tax applied to it.
func Summarize(items []entities.LineItem, taxRate float64) Summary {
	subtotal := grandTotal(items)
	rate := decimal.NewFromFloat(Coerce(taxRate))
	tax := subtotal.Mul(rate).Round(2)
	return Summary{
		Subtotal:     finite(subtotal),
		TaxRate:      rate.InexactFloat64(),
		Tax:          finite(tax),
		TotalWithTax: finite(subtotal.Add(tax)),
	}
}

// finite converts d, mapping values outside the float64 range to 0 so the
// model never holds a total that cannot be encoded.
func finite(d decimal.Decimal) float64 {
	f := d.InexactFloat64()
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0
	}
	return f
}
