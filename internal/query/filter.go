// Package query derives filtered and ordered views of a product list. Every
// function is pure: inputs are never modified.
package query

import (
	"slices"
	"strings"

	"VelvetStore/internal/catalog"
)

type Sort string

const (
	SortNewest    Sort = "newest"
	SortPriceLow  Sort = "price-low"
	SortPriceHigh Sort = "price-high"
)

const (
	AllCategories   = "All"
	DefaultMaxPrice = 10000
)

// ParseSort maps unknown values to SortNewest.
func ParseSort(s string) Sort {
	switch Sort(strings.TrimSpace(s)) {
	case SortPriceLow:
		return SortPriceLow
	case SortPriceHigh:
		return SortPriceHigh
	default:
		return SortNewest
	}
}

type Filters struct {
	Category string
	Sizes    []string
	MaxPrice float64
	Sort     Sort
}

func (f Filters) match(p catalog.Product) bool {
	if f.Category != "" && f.Category != AllCategories && p.Category != f.Category {
		return false
	}
	if len(f.Sizes) > 0 && !p.HasAnySize(f.Sizes) {
		return false
	}
	return p.Price <= f.MaxPrice
}

// FilterAndSort keeps the products matching every filter and orders them.
// SortNewest keeps incoming order; price sorts are stable.
func FilterAndSort(products []catalog.Product, f Filters) []catalog.Product {
	out := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		if f.match(p) {
			out = append(out, p)
		}
	}

	switch f.Sort {
	case SortPriceLow:
		slices.SortStableFunc(out, func(a, b catalog.Product) int { return cmpPrice(a.Price, b.Price) })
	case SortPriceHigh:
		slices.SortStableFunc(out, func(a, b catalog.Product) int { return cmpPrice(b.Price, a.Price) })
	}
	return out
}

func cmpPrice(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// SearchByName matches q case-insensitively anywhere in the product name. An
// empty q matches everything.
func SearchByName(products []catalog.Product, q string) []catalog.Product {
	q = strings.ToLower(strings.TrimSpace(q))
	out := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) {
			out = append(out, p)
		}
	}
	return out
}

// Related returns up to n other products from the same category as p.
func Related(products []catalog.Product, p catalog.Product, n int) []catalog.Product {
	out := make([]catalog.Product, 0, n)
	for _, c := range products {
		if len(out) >= n {
			break
		}
		if c.Category == p.Category && c.ID != p.ID {
			out = append(out, c)
		}
	}
	return out
}

// NewArrivals returns the first n products in catalog order.
func NewArrivals(products []catalog.Product, n int) []catalog.Product {
	n = max(0, min(n, len(products)))
	return slices.Clone(products[:n])
}
