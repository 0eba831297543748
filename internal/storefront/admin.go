package storefront

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"VelvetStore/internal/catalog"
	"VelvetStore/internal/query"
	"VelvetStore/pkg/kit"
)

func (s *Server) adminListProducts(w http.ResponseWriter, r *http.Request) {
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
	kit.WriteJSON(w, http.StatusOK, query.SearchByName(all, r.URL.Query().Get("q")))
}

func (s *Server) adminCreateProduct(w http.ResponseWriter, r *http.Request) {
	var in catalog.ProductInput
	if err := kit.DecodeJSON(w, r, maxBodyBytes, &in); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "invalid json", nil)
		return
	}

	p, err := catalog.BuildAdminProduct(in, s.now())
	if err != nil {
		if !kit.WriteValidation(w, r, err) {
			s.fail(w, r, "build product", err)
		}
		return
	}

	rp, err := s.reposFor(w, r)
	if err != nil {
		s.fail(w, r, "scope repos", err)
		return
	}
	if err := rp.catalog.AddAdminProduct(r.Context(), p); err != nil {
		s.fail(w, r, "add product", err)
		return
	}
	kit.WriteJSON(w, http.StatusCreated, p)
}

// adminReplaceProduct edits the product with the given id. Base products may
// be edited too; the edit lives in the overlay.
func (s *Server) adminReplaceProduct(w http.ResponseWriter, r *http.Request) {
	var in catalog.ProductInput
	if err := kit.DecodeJSON(w, r, maxBodyBytes, &in); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "invalid json", nil)
		return
	}

	p, err := in.Product(chi.URLParam(r, "id"))
	if err != nil {
		if !kit.WriteValidation(w, r, err) {
			s.fail(w, r, "build product", err)
		}
		return
	}

	rp, err := s.reposFor(w, r)
	if err != nil {
		s.fail(w, r, "scope repos", err)
		return
	}
	if err := rp.catalog.PutAdminProduct(r.Context(), p); err != nil {
		s.fail(w, r, "put product", err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, p)
}

func (s *Server) adminDeleteProduct(w http.ResponseWriter, r *http.Request) {
	rp, err := s.reposFor(w, r)
	if err != nil {
		s.fail(w, r, "scope repos", err)
		return
	}
	if err := rp.catalog.DeleteAdminProduct(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.fail(w, r, "delete product", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
