package cart

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"VelvetStore/internal/catalog"
	"VelvetStore/internal/kv"
)

// KeyCart holds the persisted cart lines.
const KeyCart = "cart"

var ErrInvalidQty = errors.New("quantity must be at least 1")

// Notifier is told the new total item count after every save.
type Notifier func(ctx context.Context, count int)

type Repository struct {
	kv     *kv.Adapter
	notify Notifier
}

// NewRepository returns a cart over a. notify may be nil.
func NewRepository(a *kv.Adapter, notify Notifier) *Repository {
	return &Repository{kv: a, notify: notify}
}

func (r *Repository) Lines(ctx context.Context) ([]Line, error) {
	lines, _, err := kv.Read[[]Line](ctx, r.kv, KeyCart)
	if err = r.kv.Recover(ctx, err); err != nil {
		return nil, fmt.Errorf("cart: %w", err)
	}
	if lines == nil {
		lines = []Line{}
	}
	return lines, nil
}

func (r *Repository) Save(ctx context.Context, lines []Line) error {
	if lines == nil {
		lines = []Line{}
	}
	if err := r.kv.Write(ctx, KeyCart, lines); err != nil {
		return err
	}
	if r.notify != nil {
		r.notify(ctx, TotalCount(lines))
	}
	return nil
}

// Add puts sel of p into the cart. A line with the same product, size and
// color absorbs the quantity instead of a new line being created.
func (r *Repository) Add(ctx context.Context, p catalog.Product, sel Selection) error {
	if sel.Qty < 1 {
		return ErrInvalidQty
	}

	lines, err := r.Lines(ctx)
	if err != nil {
		return err
	}

	i := slices.IndexFunc(lines, func(l Line) bool { return l.matches(p.ID, sel) })
	if i >= 0 {
		lines[i].Qty += sel.Qty
	} else {
		lines = append(lines, Line{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Image:     p.Image,
			Size:      sel.Size,
			Color:     sel.Color,
			Qty:       sel.Qty,
		})
	}
	return r.Save(ctx, lines)
}

// UpdateQty shifts the quantity of the line at index by delta, never below 1.
// An out of range index is ignored.
func (r *Repository) UpdateQty(ctx context.Context, index, delta int) error {
	lines, err := r.Lines(ctx)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(lines) {
		return nil
	}

	lines[index].Qty = max(1, lines[index].Qty+delta)
	return r.Save(ctx, lines)
}

// Remove deletes the line at index; later lines shift down. An out of range
// index is ignored.
func (r *Repository) Remove(ctx context.Context, index int) error {
	lines, err := r.Lines(ctx)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(lines) {
		return nil
	}
	return r.Save(ctx, slices.Delete(lines, index, index+1))
}

func (r *Repository) Clear(ctx context.Context) error {
	return r.Save(ctx, []Line{})
}

func (r *Repository) TotalCount(ctx context.Context) (int, error) {
	lines, err := r.Lines(ctx)
	if err != nil {
		return 0, err
	}
	return TotalCount(lines), nil
}

func (r *Repository) Subtotal(ctx context.Context) (float64, error) {
	lines, err := r.Lines(ctx)
	if err != nil {
		return 0, err
	}
	return Subtotal(lines).InexactFloat64(), nil
}
