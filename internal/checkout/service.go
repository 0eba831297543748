package checkout

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"VelvetStore/internal/cart"
	"VelvetStore/pkg/kit"
)

var ErrEmptyCart = errors.New("cart is empty")

// Details is the checkout form.
type Details struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Address string `json:"address" validate:"required"`
}

type Receipt struct {
	OrderID  string      `json:"order_id"`
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Address  string      `json:"address"`
	Lines    []cart.Line `json:"lines"`
	Summary  Summary     `json:"summary"`
	PlacedAt time.Time   `json:"placed_at"`
}

type Service struct {
	Cart *cart.Repository
	Now  func() time.Time
}

// PlaceOrder simulates an order: nothing is charged or stored beyond clearing
// the cart. Invalid details leave the cart untouched.
func (s *Service) PlaceOrder(ctx context.Context, d Details) (Receipt, error) {
	d.Name = strings.TrimSpace(d.Name)
	d.Email = strings.TrimSpace(d.Email)
	d.Address = strings.TrimSpace(d.Address)
	if err := kit.Validate(d); err != nil {
		return Receipt{}, err
	}

	lines, err := s.Cart.Lines(ctx)
	if err != nil {
		return Receipt{}, err
	}
	if len(lines) == 0 {
		return Receipt{}, ErrEmptyCart
	}

	r := Receipt{
		OrderID:  "o_" + uuid.NewString(),
		Name:     d.Name,
		Email:    d.Email,
		Address:  d.Address,
		Lines:    lines,
		Summary:  Summarize(lines),
		PlacedAt: s.now().UTC(),
	}

	if err := s.Cart.Clear(ctx); err != nil {
		return Receipt{}, err
	}
	return r, nil
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
