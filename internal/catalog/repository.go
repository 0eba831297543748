package catalog

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"VelvetStore/internal/kv"
)

// KeyAdminOverlay holds the admin-managed products merged over the base catalog.
const KeyAdminOverlay = "adminProductOverlay"

const adminIDPrefix = "vvA"

type Repository struct {
	kv   *kv.Adapter
	base []Product
}

func NewRepository(a *kv.Adapter) *Repository {
	return &Repository{kv: a, base: BaseCatalog()}
}

func (r *Repository) BaseCatalog() []Product {
	out := make([]Product, len(r.base))
	for i, p := range r.base {
		out[i] = p.Clone()
	}
	return out
}

func (r *Repository) AdminOverlay(ctx context.Context) ([]Product, error) {
	items, _, err := kv.Read[[]Product](ctx, r.kv, KeyAdminOverlay)
	if err = r.kv.Recover(ctx, err); err != nil {
		return nil, fmt.Errorf("admin overlay: %w", err)
	}
	if items == nil {
		items = []Product{}
	}
	return items, nil
}

func (r *Repository) SetAdminOverlay(ctx context.Context, items []Product) error {
	if items == nil {
		items = []Product{}
	}
	return r.kv.Write(ctx, KeyAdminOverlay, items)
}

// AllProducts merges the overlay over the base catalog. An overlay entry whose
// id is already present replaces that entry in place; any other is appended.
func (r *Repository) AllProducts(ctx context.Context) ([]Product, error) {
	overlay, err := r.AdminOverlay(ctx)
	if err != nil {
		return nil, err
	}
	return merge(r.base, overlay), nil
}

func merge(base, overlay []Product) []Product {
	out := make([]Product, 0, len(base)+len(overlay))
	pos := make(map[string]int, len(base)+len(overlay))
	for _, p := range base {
		if _, dup := pos[p.ID]; !dup {
			pos[p.ID] = len(out)
		}
		out = append(out, p.Clone())
	}

	for _, item := range overlay {
		if i, ok := pos[item.ID]; ok {
			replace(&out[i], item)
			continue
		}
		pos[item.ID] = len(out)
		out = append(out, item.Clone())
	}
	return out
}

func (r *Repository) ProductByID(ctx context.Context, id string) (Product, bool, error) {
	all, err := r.AllProducts(ctx)
	if err != nil {
		return Product{}, false, err
	}
	for _, p := range all {
		if p.ID == id {
			return p, true, nil
		}
	}
	return Product{}, false, nil
}

// AddAdminProduct appends p to the overlay. The caller owns id uniqueness; an
// id that matches a base product turns the addition into an edit of it.
func (r *Repository) AddAdminProduct(ctx context.Context, p Product) error {
	items, err := r.AdminOverlay(ctx)
	if err != nil {
		return err
	}
	return r.SetAdminOverlay(ctx, append(items, p.Clone()))
}

// PutAdminProduct replaces the overlay entry carrying p.ID, or appends p when
// there is none. Used to edit both admin and base products.
func (r *Repository) PutAdminProduct(ctx context.Context, p Product) error {
	items, err := r.AdminOverlay(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range items {
		if items[i].ID == p.ID {
			replace(&items[i], p)
			replaced = true
		}
	}
	if !replaced {
		items = append(items, p.Clone())
	}
	return r.SetAdminOverlay(ctx, items)
}

// DeleteAdminProduct drops every overlay entry with the given id. Base catalog
// entries cannot be deleted; for them this only reverts an admin edit.
func (r *Repository) DeleteAdminProduct(ctx context.Context, id string) error {
	items, err := r.AdminOverlay(ctx)
	if err != nil {
		return err
	}

	kept := items[:0]
	for _, p := range items {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(items) {
		return nil
	}
	return r.SetAdminOverlay(ctx, kept)
}

// NewAdminProductID derives an id from the wall clock. Two calls within the
// same millisecond collide; callers must ensure uniqueness.
func NewAdminProductID(now time.Time) string {
	return adminIDPrefix + strconv.FormatInt(now.UnixMilli(), 10)
}
