package storefront

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"VelvetStore/internal/cart"
	"VelvetStore/internal/checkout"
	"VelvetStore/pkg/kit"
)

type cartResponse struct {
	Lines   []cart.Line      `json:"lines"`
	Summary checkout.Summary `json:"summary"`
	Display string           `json:"display_total"`
}

type addItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Qty       int    `json:"qty"`
}

type updateQtyRequest struct {
	Delta int `json:"delta"`
}

func (s *Server) getCart(w http.ResponseWriter, r *http.Request) {
	rp, err := s.reposFor(w, r)
	if err != nil {
		s.fail(w, r, "scope repos", err)
		return
	}
	s.writeCart(w, r, rp.cart)
}

func (s *Server) writeCart(w http.ResponseWriter, r *http.Request, c *cart.Repository) {
	lines, err := c.Lines(r.Context())
	if err != nil {
		s.fail(w, r, "read cart", err)
		return
	}
	sum := checkout.Summarize(lines)
	kit.WriteJSON(w, http.StatusOK, cartResponse{
		Lines:   lines,
		Summary: sum,
		Display: checkout.FormatPrice(sum.Total),
	})
}

func (s *Server) addCartItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := kit.DecodeJSON(w, r, maxBodyBytes, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if req.Qty == 0 {
		req.Qty = 1
	}
	if err := kit.Validate(req); err != nil {
		kit.WriteValidation(w, r, err)
		return
	}

	rp, err := s.reposFor(w, r)
	if err != nil {
		s.fail(w, r, "scope repos", err)
		return
	}

	p, ok, err := rp.catalog.ProductByID(r.Context(), req.ProductID)
	if err != nil {
		s.fail(w, r, "get product", err)
		return
	}
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "product not found", nil)
		return
	}

	err = rp.cart.Add(r.Context(), p, cart.Selection{Size: req.Size, Color: req.Color, Qty: req.Qty})
	if errors.Is(err, cart.ErrInvalidQty) {
		kit.WriteValidation(w, r, kit.Invalid("qty", "must be at least 1"))
		return
	}
	if err != nil {
		s.fail(w, r, "add to cart", err)
		return
	}
	s.writeCart(w, r, rp.cart)
}

func (s *Server) updateCartItem(w http.ResponseWriter, r *http.Request) {
	index, ok := lineIndex(w, r)
	if !ok {
		return
	}

	var req updateQtyRequest
	if err := kit.DecodeJSON(w, r, maxBodyBytes, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "invalid json", nil)
		return
	}

	rp, err := s.reposFor(w, r)
	if err != nil {
		s.fail(w, r, "scope repos", err)
		return
	}
	if err := rp.cart.UpdateQty(r.Context(), index, req.Delta); err != nil {
		s.fail(w, r, "update cart", err)
		return
	}
	s.writeCart(w, r, rp.cart)
}

func (s *Server) removeCartItem(w http.ResponseWriter, r *http.Request) {
	index, ok := lineIndex(w, r)
	if !ok {
		return
	}

	rp, err := s.reposFor(w, r)
	if err != nil {
		s.fail(w, r, "scope repos", err)
		return
	}
	if err := rp.cart.Remove(r.Context(), index); err != nil {
		s.fail(w, r, "remove from cart", err)
		return
	}
	s.writeCart(w, r, rp.cart)
}

func (s *Server) clearCart(w http.ResponseWriter, r *http.Request) {
	rp, err := s.reposFor(w, r)
	if err != nil {
		s.fail(w, r, "scope repos", err)
		return
	}
	if err := rp.cart.Clear(r.Context()); err != nil {
		s.fail(w, r, "clear cart", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// lineIndex parses {index}. Out-of-range values are left to the repository,
// which ignores them.
func lineIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		kit.WriteValidation(w, r, kit.Invalid("index", "must be an integer"))
		return 0, false
	}
	return index, true
}

func (s *Server) checkout(w http.ResponseWriter, r *http.Request) {
	var d checkout.Details
	if err := kit.DecodeJSON(w, r, maxBodyBytes, &d); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "invalid json", nil)
		return
	}

	rp, err := s.reposFor(w, r)
	if err != nil {
		s.fail(w, r, "scope repos", err)
		return
	}

	svc := &checkout.Service{Cart: rp.cart, Now: s.now}
	receipt, err := svc.PlaceOrder(r.Context(), d)
	if errors.Is(err, checkout.ErrEmptyCart) {
		kit.WriteError(w, r, http.StatusConflict, "cart is empty", nil)
		return
	}
	if err != nil {
		if !kit.WriteValidation(w, r, err) {
			s.fail(w, r, "place order", err)
		}
		return
	}
	kit.WriteJSON(w, http.StatusCreated, receipt)
}
