package invoice

import "github.com/shopspring/decimal"

// TaxRate is the fixed VAT rate applied to every invoice.
var TaxRate = decimal.RequireFromString("0.20")

// Totals holds the derived monetary amounts for one invoice. Values keep
// full decimal precision; rounding to two places happens only when the
// renderer formats them.
type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// CalculateTotals derives subtotal, tax and total from the line items.
// An empty list yields all zeros.
func CalculateTotals(items []LineItem) Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Price)
	}

	tax := subtotal.Mul(TaxRate)
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}
