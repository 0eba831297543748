package catalog

import "slices"

const (
	CategoryFormal      = "Formal"
	CategoryCasual      = "Casual"
	CategoryAccessories = "Accessories"
)

type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Price       float64  `json:"price"`
	Sizes       []string `json:"sizes"`
	Colors      []string `json:"colors"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Image       string   `json:"image"`
}

// Clone returns a copy that shares no slices with p.
func (p Product) Clone() Product {
	p.Sizes = slices.Clone(p.Sizes)
	p.Colors = slices.Clone(p.Colors)
	p.Tags = slices.Clone(p.Tags)
	return p
}

// HasAnySize reports whether p is offered in at least one of sizes.
func (p Product) HasAnySize(sizes []string) bool {
	for _, s := range p.Sizes {
		if slices.Contains(sizes, s) {
			return true
		}
	}
	return false
}

// replace overwrites every field of dst with src. The id is part of the
// record, so a replacement keyed by id leaves it unchanged in practice.
func replace(dst *Product, src Product) {
	src = src.Clone()
	dst.ID = src.ID
	dst.Name = src.Name
	dst.Category = src.Category
	dst.Price = src.Price
	dst.Sizes = src.Sizes
	dst.Colors = src.Colors
	dst.Description = src.Description
	dst.Tags = src.Tags
	dst.Image = src.Image
}
