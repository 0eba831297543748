package checkout

import (
	"strings"

	"github.com/shopspring/decimal"

	"VelvetStore/internal/cart"
)

// TaxRate is applied to the subtotal. It is fixed at zero.
var TaxRate = decimal.Zero

type Summary struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
	Items    int     `json:"items"`
}

func Summarize(lines []cart.Line) Summary {
	sub := cart.Subtotal(lines)
	tax := sub.Mul(TaxRate).Round(2)
	return Summary{
		Subtotal: sub.InexactFloat64(),
		Tax:      tax.InexactFloat64(),
		Total:    sub.Add(tax).InexactFloat64(),
		Items:    cart.TotalCount(lines),
	}
}

// FormatPrice renders v the way the storefront shows prices, e.g. "LKR 3,200.00".
func FormatPrice(v float64) string {
	s := decimal.NewFromFloat(v).StringFixed(2)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	whole, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return "LKR " + sign + b.String() + "." + frac
}
