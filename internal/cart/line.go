package cart

import "github.com/shopspring/decimal"

// Line is one cart row. Name, Price and Image are copied from the product
// when the line is created and never re-resolved.
type Line struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Size      string  `json:"size"`
	Color     string  `json:"color"`
	Qty       int     `json:"qty"`
}

// Selection is what the shopper picked on the product page.
type Selection struct {
	Size  string `json:"size"`
	Color string `json:"color"`
	Qty   int    `json:"qty"`
}

func (l Line) matches(productID string, sel Selection) bool {
	return l.ProductID == productID && l.Size == sel.Size && l.Color == sel.Color
}

// LineTotal is price times quantity.
func (l Line) LineTotal() decimal.Decimal {
	return decimal.NewFromFloat(l.Price).Mul(decimal.NewFromInt(int64(l.Qty)))
}

// TotalCount sums quantities across lines.
func TotalCount(lines []Line) int {
	n := 0
	for _, l := range lines {
		n += l.Qty
	}
	return n
}

// Subtotal sums price*qty across lines.
func Subtotal(lines []Line) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(l.LineTotal())
	}
	return sum
}
