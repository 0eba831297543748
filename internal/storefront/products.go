package storefront

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"VelvetStore/internal/catalog"
	"VelvetStore/internal/query"
	"VelvetStore/pkg/kit"
)

const (
	relatedCount       = 4
	defaultNewArrivals = 4
)

func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	f, err := parseFilters(r)
	if err != nil {
		kit.WriteValidation(w, r, err)
		return
	}

	rp, err := s.reposFor(w, r)
	if err != nil {
		s.fail(w, r, "scope repos", err)
		return
	}
	all, err := rp.catalog.AllProducts(r.Context())
	if err != nil {
		s.fail(w, r, "list products", err)
		return
	}

	kit.WriteJSON(w, http.StatusOK, query.FilterAndSort(all, f))
}

// parseFilters reads the shop filters. size may repeat or carry a comma
// separated list.
func parseFilters(r *http.Request) (query.Filters, error) {
	q := r.URL.Query()

	f := query.Filters{
		Category: strings.TrimSpace(q.Get("category")),
		MaxPrice: query.DefaultMaxPrice,
		Sort:     query.ParseSort(q.Get("sort")),
	}
	for _, v := range q["size"] {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				f.Sizes = append(f.Sizes, part)
			}
		}
	}

	if raw := strings.TrimSpace(q.Get("maxPrice")); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			return query.Filters{}, kit.Invalid("maxPrice", "must be a non-negative number")
		}
		f.MaxPrice = v
	}
	return f, nil
}

func (s *Server) newArrivals(w http.ResponseWriter, r *http.Request) {
	n := defaultNewArrivals
	if raw := r.URL.Query().Get("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			kit.WriteValidation(w, r, kit.Invalid("limit", "must be a non-negative integer"))
			return
		}
		n = v
	}

	rp, err := s.reposFor(w, r)
	if err != nil {
		s.fail(w, r, "scope repos", err)
		return
	}
	all, err := rp.catalog.AllProducts(r.Context())
	if err != nil {
		s.fail(w, r, "list products", err)
		return
	}

	kit.WriteJSON(w, http.StatusOK, query.NewArrivals(all, n))
}

func (s *Server) getProduct(w http.ResponseWriter, r *http.Request) {
	p, ok := s.lookupProduct(w, r)
	if !ok {
		return
	}
	kit.WriteJSON(w, http.StatusOK, p)
}

func (s *Server) relatedProducts(w http.ResponseWriter, r *http.Request) {
	rp, err := s.reposFor(w, r)
	if err != nil {
		s.fail(w, r, "scope repos", err)
		return
	}
	all, err := rp.catalog.AllProducts(r.Context())
	if err != nil {
		s.fail(w, r, "list products", err)
		return
	}

	id := chi.URLParam(r, "id")
	for _, p := range all {
		if p.ID == id {
			kit.WriteJSON(w, http.StatusOK, query.Related(all, p, relatedCount))
			return
		}
	}
	kit.WriteError(w, r, http.StatusNotFound, "product not found", nil)
}

// lookupProduct resolves the {id} path parameter, answering 404 itself when
// the product does not exist.
func (s *Server) lookupProduct(w http.ResponseWriter, r *http.Request) (catalog.Product, bool) {
	rp, err := s.reposFor(w, r)
	if err != nil {
		s.fail(w, r, "scope repos", err)
		return catalog.Product{}, false
	}

	p, ok, err := rp.catalog.ProductByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, r, "get product", err)
		return catalog.Product{}, false
	}
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "product not found", nil)
		return catalog.Product{}, false
	}
	return p, true
}
