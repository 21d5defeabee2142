package invoice

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func item(desc, price string) LineItem {
	return LineItem{Description: desc, Price: decimal.RequireFromString(price)}
}

func TestCalculateTotals_Empty(t *testing.T) {
	totals := CalculateTotals(nil)

	assert.Equal(t, "0.00", totals.Subtotal.StringFixed(2))
	assert.Equal(t, "0.00", totals.Tax.StringFixed(2))
	assert.Equal(t, "0.00", totals.Total.StringFixed(2))
}

func TestCalculateTotals_SingleItem(t *testing.T) {
	totals := CalculateTotals([]LineItem{item("Widget", "10.00")})

	assert.Equal(t, "10.00", totals.Subtotal.StringFixed(2))
	assert.Equal(t, "2.00", totals.Tax.StringFixed(2))
	assert.Equal(t, "12.00", totals.Total.StringFixed(2))
}

// Rounding must happen only at display time: the internal tax value for
// this case is 25.098 and the total 150.588, neither of which is
// representable after premature two-decimal rounding.
func TestCalculateTotals_RoundsAtDisplayOnly(t *testing.T) {
	totals := CalculateTotals([]LineItem{
		item("Consulting", "19.99"),
		item("Hosting", "5.50"),
		item("Development", "100.00"),
	})

	assert.True(t, totals.Subtotal.Equal(decimal.RequireFromString("125.49")))
	assert.True(t, totals.Tax.Equal(decimal.RequireFromString("25.098")))
	assert.True(t, totals.Total.Equal(decimal.RequireFromString("150.588")))

	assert.Equal(t, "125.49", totals.Subtotal.StringFixed(2))
	assert.Equal(t, "25.10", totals.Tax.StringFixed(2))
	assert.Equal(t, "150.59", totals.Total.StringFixed(2))
}

func TestCalculateTotals_SubtotalIsSum(t *testing.T) {
	items := []LineItem{
		item("a", "0.01"),
		item("b", "99.99"),
		item("c", "1234.56"),
		item("d", "0.00"),
	}

	totals := CalculateTotals(items)

	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.Price)
	}
	assert.True(t, totals.Subtotal.Equal(sum))
	assert.True(t, totals.Total.Equal(totals.Subtotal.Add(totals.Tax)))
	assert.True(t, totals.Tax.Equal(totals.Subtotal.Mul(TaxRate)))
}
