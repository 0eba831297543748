package catalog

import (
	"math"
	"strconv"
	"strings"
	"time"

	"VelvetStore/pkg/kit"
)

const placeholderImage = "assets/placeholder.svg"

// ProductInput is the admin add-product form. List fields are comma separated.
type ProductInput struct {
	Name        string `json:"name" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Price       string `json:"price"`
	Sizes       string `json:"sizes" validate:"required"`
	Colors      string `json:"colors"`
	Description string `json:"description"`
	Tags        string `json:"tags"`
	Image       string `json:"image"`
}

// BuildAdminProduct turns a submitted form into an overlay product with a
// fresh id.
func BuildAdminProduct(in ProductInput, now time.Time) (Product, error) {
	return in.Product(NewAdminProductID(now))
}

// Product validates the form and builds the product it describes under id.
// An unparsable or negative price becomes 0.
func (in ProductInput) Product(id string) (Product, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Category = strings.TrimSpace(in.Category)
	if err := kit.Validate(in); err != nil {
		return Product{}, err
	}

	sizes := splitList(in.Sizes)
	if len(sizes) == 0 {
		return Product{}, kit.Invalid("sizes", "is required")
	}

	image := strings.TrimSpace(in.Image)
	if image == "" {
		image = placeholderImage
	}

	return Product{
		ID:          id,
		Name:        in.Name,
		Category:    in.Category,
		Price:       parsePrice(in.Price),
		Sizes:       sizes,
		Colors:      splitList(in.Colors),
		Description: strings.TrimSpace(in.Description),
		Tags:        splitList(in.Tags),
		Image:       image,
	}, nil
}

func splitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if v := strings.TrimSpace(part); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func parsePrice(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
