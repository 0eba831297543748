package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"VelvetStore/internal/catalog"
	"VelvetStore/internal/query"
)

func ids(ps []catalog.Product) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}

func TestFilterAndSort_FormalUnderCeilingPriceLow(t *testing.T) {
	all := catalog.BaseCatalog()

	got := query.FilterAndSort(all, query.Filters{
		Category: "Formal",
		MaxPrice: 5000,
		Sort:     query.SortPriceLow,
	})

	assert.Equal(t, []string{"vv005", "vv001", "vv010", "vv002"}, ids(got))
	for i, p := range got {
		assert.Equal(t, catalog.CategoryFormal, p.Category)
		assert.LessOrEqual(t, p.Price, 5000.0)
		if i > 0 {
			assert.LessOrEqual(t, got[i-1].Price, p.Price)
		}
	}
}

func TestFilterAndSort_AllCategoriesNewestKeepsOrder(t *testing.T) {
	all := catalog.BaseCatalog()

	got := query.FilterAndSort(all, query.Filters{Category: query.AllCategories, MaxPrice: 100000})

	assert.Equal(t, ids(all), ids(got))
}

func TestFilterAndSort_SizesIntersect(t *testing.T) {
	all := catalog.BaseCatalog()

	got := query.FilterAndSort(all, query.Filters{
		Category: "All",
		Sizes:    []string{"XXL", "One Size"},
		MaxPrice: 100000,
	})

	assert.Equal(t, []string{"vv003", "vv008", "vv011", "vv012"}, ids(got))
}

func TestFilterAndSort_PriceCeilingIsInclusive(t *testing.T) {
	ps := []catalog.Product{{ID: "a", Price: 100}, {ID: "b", Price: 100.01}}

	got := query.FilterAndSort(ps, query.Filters{MaxPrice: 100})

	assert.Equal(t, []string{"a"}, ids(got))
}

func TestFilterAndSort_StableOnEqualPrices(t *testing.T) {
	ps := []catalog.Product{
		{ID: "a", Price: 20},
		{ID: "b", Price: 10},
		{ID: "c", Price: 20},
		{ID: "d", Price: 10},
	}

	low := query.FilterAndSort(ps, query.Filters{MaxPrice: 100, Sort: query.SortPriceLow})
	high := query.FilterAndSort(ps, query.Filters{MaxPrice: 100, Sort: query.SortPriceHigh})

	assert.Equal(t, []string{"b", "d", "a", "c"}, ids(low))
	assert.Equal(t, []string{"a", "c", "b", "d"}, ids(high))
}

func TestFilterAndSort_DoesNotMutateInput(t *testing.T) {
	ps := []catalog.Product{{ID: "a", Price: 30}, {ID: "b", Price: 10}, {ID: "c", Price: 20}}

	_ = query.FilterAndSort(ps, query.Filters{MaxPrice: 100, Sort: query.SortPriceLow})

	assert.Equal(t, []string{"a", "b", "c"}, ids(ps))
}

func TestParseSort(t *testing.T) {
	assert.Equal(t, query.SortPriceLow, query.ParseSort("price-low"))
	assert.Equal(t, query.SortPriceHigh, query.ParseSort(" price-high "))
	assert.Equal(t, query.SortNewest, query.ParseSort("newest"))
	assert.Equal(t, query.SortNewest, query.ParseSort("rating"))
	assert.Equal(t, query.SortNewest, query.ParseSort(""))
}

func TestSearchByName(t *testing.T) {
	all := catalog.BaseCatalog()

	assert.Equal(t, []string{"vv001", "vv009"}, ids(query.SearchByName(all, "VEL")))
	assert.Len(t, query.SearchByName(all, ""), len(all))
	assert.Empty(t, query.SearchByName(all, "sneaker"))
}

func TestRelated(t *testing.T) {
	all := catalog.BaseCatalog()
	belt := all[6]

	got := query.Related(all, belt, 4)

	assert.Equal(t, []string{"vv008", "vv011", "vv012"}, ids(got))
	assert.Len(t, query.Related(all, all[0], 2), 2)
}

func TestNewArrivals(t *testing.T) {
	all := catalog.BaseCatalog()

	assert.Equal(t, []string{"vv001", "vv002", "vv003", "vv004"}, ids(query.NewArrivals(all, 4)))
	assert.Len(t, query.NewArrivals(all, 50), 12)
	assert.Empty(t, query.NewArrivals(all, -1))
}
