package cart_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"VelvetStore/internal/cart"
	"VelvetStore/internal/catalog"
	"VelvetStore/internal/kv"
)

var blazer = catalog.Product{ID: "vv001", Name: "Velvet Noir Blazer", Price: 3200, Image: "blazer.jpg", Sizes: []string{"M"}}
var scarf = catalog.Product{ID: "vv012", Name: "Silk Neck Scarf", Price: 9500, Image: "scarf.jpg", Sizes: []string{"One Size"}}

type notifications struct{ counts []int }

func (n *notifications) record(_ context.Context, count int) { n.counts = append(n.counts, count) }

func newCart(t *testing.T) (*cart.Repository, *kv.MemStore, *notifications) {
	t.Helper()
	s := kv.NewMemStore()
	n := &notifications{}
	return cart.NewRepository(kv.NewAdapter(s), n.record), s, n
}

func TestAdd_SameKeyMergesQty(t *testing.T) {
	ctx := context.Background()
	c, _, _ := newCart(t)

	sel := cart.Selection{Size: "M", Color: "#000", Qty: 2}
	require.NoError(t, c.Add(ctx, blazer, sel))
	require.NoError(t, c.Add(ctx, blazer, sel))

	lines, err := c.Lines(ctx)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 4, lines[0].Qty)
}

func TestAdd_DifferentSizeOrColorIsNewLine(t *testing.T) {
	ctx := context.Background()
	c, _, _ := newCart(t)

	require.NoError(t, c.Add(ctx, blazer, cart.Selection{Size: "M", Color: "#000", Qty: 1}))
	require.NoError(t, c.Add(ctx, blazer, cart.Selection{Size: "L", Color: "#000", Qty: 1}))
	require.NoError(t, c.Add(ctx, blazer, cart.Selection{Size: "M", Color: "#fff", Qty: 1}))

	lines, err := c.Lines(ctx)
	require.NoError(t, err)
	assert.Len(t, lines, 3)
}

func TestAdd_SnapshotsProductFields(t *testing.T) {
	ctx := context.Background()
	c, _, _ := newCart(t)

	require.NoError(t, c.Add(ctx, scarf, cart.Selection{Size: "One Size", Color: "#d4af37", Qty: 1}))

	lines, err := c.Lines(ctx)
	require.NoError(t, err)
	assert.Equal(t, cart.Line{
		ProductID: "vv012",
		Name:      "Silk Neck Scarf",
		Price:     9500,
		Image:     "scarf.jpg",
		Size:      "One Size",
		Color:     "#d4af37",
		Qty:       1,
	}, lines[0])
}

func TestAdd_RejectsQtyBelowOne(t *testing.T) {
	c, _, n := newCart(t)

	err := c.Add(context.Background(), blazer, cart.Selection{Size: "M", Qty: 0})
	assert.ErrorIs(t, err, cart.ErrInvalidQty)
	assert.Empty(t, n.counts)
}

func TestUpdateQty_FloorsAtOne(t *testing.T) {
	ctx := context.Background()
	c, _, _ := newCart(t)
	require.NoError(t, c.Add(ctx, blazer, cart.Selection{Size: "M", Qty: 3}))

	require.NoError(t, c.UpdateQty(ctx, 0, -100))
	lines, err := c.Lines(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, lines[0].Qty)

	require.NoError(t, c.UpdateQty(ctx, 0, 2))
	lines, err = c.Lines(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, lines[0].Qty)
}

func TestUpdateQtyAndRemove_OutOfRangeAreNoops(t *testing.T) {
	ctx := context.Background()
	c, _, n := newCart(t)
	require.NoError(t, c.Add(ctx, blazer, cart.Selection{Size: "M", Qty: 1}))
	before := len(n.counts)

	require.NoError(t, c.UpdateQty(ctx, 5, 1))
	require.NoError(t, c.UpdateQty(ctx, -1, 1))
	require.NoError(t, c.Remove(ctx, 1))

	lines, err := c.Lines(ctx)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Qty)
	assert.Len(t, n.counts, before)
}

func TestRemove_ShiftsIndices(t *testing.T) {
	ctx := context.Background()
	c, _, _ := newCart(t)
	require.NoError(t, c.Add(ctx, blazer, cart.Selection{Size: "S", Qty: 1}))
	require.NoError(t, c.Add(ctx, blazer, cart.Selection{Size: "M", Qty: 1}))
	require.NoError(t, c.Add(ctx, scarf, cart.Selection{Size: "One Size", Qty: 1}))

	require.NoError(t, c.Remove(ctx, 1))

	lines, err := c.Lines(ctx)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "S", lines[0].Size)
	assert.Equal(t, "vv012", lines[1].ProductID)
}

func TestSave_RoundTripPreservesOrderAndFields(t *testing.T) {
	ctx := context.Background()
	c, _, _ := newCart(t)

	in := []cart.Line{
		{ProductID: "b", Name: "B", Price: 10.25, Image: "b.jpg", Size: "M", Color: "#111", Qty: 2},
		{ProductID: "a", Name: "A", Price: 5, Image: "a.jpg", Size: "S", Color: "#222", Qty: 1},
	}
	require.NoError(t, c.Save(ctx, in))

	out, err := c.Lines(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestLines_CorruptValueRecovers(t *testing.T) {
	ctx := context.Background()
	c, s, _ := newCart(t)
	require.NoError(t, s.Set(ctx, cart.KeyCart, "this is not json"))

	lines, err := c.Lines(ctx)
	require.NoError(t, err)
	assert.Empty(t, lines)

	require.NoError(t, c.Save(ctx, []cart.Line{{ProductID: "vv001", Qty: 1}}))
	lines, err = c.Lines(ctx)
	require.NoError(t, err)
	assert.Len(t, lines, 1)
}

func TestClear_EmptiesCart(t *testing.T) {
	ctx := context.Background()
	c, _, n := newCart(t)
	require.NoError(t, c.Add(ctx, blazer, cart.Selection{Size: "S", Qty: 1}))
	require.NoError(t, c.Add(ctx, blazer, cart.Selection{Size: "M", Qty: 2}))
	require.NoError(t, c.Add(ctx, scarf, cart.Selection{Size: "One Size", Qty: 1}))

	require.NoError(t, c.Clear(ctx))

	lines, err := c.Lines(ctx)
	require.NoError(t, err)
	assert.Empty(t, lines)

	count, err := c.TotalCount(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Equal(t, 0, n.counts[len(n.counts)-1])
}

func TestTotals(t *testing.T) {
	ctx := context.Background()
	c, _, n := newCart(t)
	require.NoError(t, c.Add(ctx, blazer, cart.Selection{Size: "M", Qty: 2}))
	require.NoError(t, c.Add(ctx, scarf, cart.Selection{Size: "One Size", Qty: 1}))

	count, err := c.TotalCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	sub, err := c.Subtotal(ctx)
	require.NoError(t, err)
	assert.Equal(t, 15900.0, sub)

	assert.Equal(t, []int{2, 3}, n.counts)
}

func TestSubtotal_DecimalPrices(t *testing.T) {
	lines := []cart.Line{{Price: 0.1, Qty: 3}, {Price: 0.2, Qty: 1}}
	assert.Equal(t, "0.5", cart.Subtotal(lines).String())
}

func TestNilNotifierIsAllowed(t *testing.T) {
	c := cart.NewRepository(kv.NewAdapter(kv.NewMemStore()), nil)
	assert.NoError(t, c.Add(context.Background(), blazer, cart.Selection{Size: "M", Qty: 1}))
}
