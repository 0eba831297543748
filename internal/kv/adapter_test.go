package kv_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"VelvetStore/internal/kv"
)

type item struct {
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}

func TestRead_MissingKeyIsAbsent(t *testing.T) {
	a := kv.NewAdapter(kv.NewMemStore())

	v, ok, err := kv.Read[[]item](context.Background(), a, "cart")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, v)
}

func TestWriteRead_RoundTrip(t *testing.T) {
	ctx := context.Background()
	a := kv.NewAdapter(kv.NewMemStore())

	in := []item{{Name: "a", Qty: 1}, {Name: "b", Qty: 3}}
	require.NoError(t, a.Write(ctx, "cart", in))

	out, ok, err := kv.Read[[]item](ctx, a, "cart")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, in, out)
}

func TestRead_CorruptValueIsDecodeError(t *testing.T) {
	ctx := context.Background()
	s := kv.NewMemStore()
	require.NoError(t, s.Set(ctx, "cart", "{not json"))

	_, _, err := kv.Read[[]item](ctx, kv.NewAdapter(s), "cart")

	var de *kv.DecodeError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "cart", de.Key)

	_, stillThere, _ := s.Get(ctx, "cart")
	assert.True(t, stillThere, "read must not clear on its own")
}

func TestRead_WrongShapeIsDecodeError(t *testing.T) {
	ctx := context.Background()
	s := kv.NewMemStore()
	require.NoError(t, s.Set(ctx, "cart", `{"name":"x"}`))

	_, _, err := kv.Read[[]item](ctx, kv.NewAdapter(s), "cart")

	var de *kv.DecodeError
	assert.True(t, errors.As(err, &de))
}

func TestRecover_ClearsKeyAndFiresHook(t *testing.T) {
	ctx := context.Background()
	s := kv.NewMemStore()
	require.NoError(t, s.Set(ctx, "currentUser", "nope"))

	var resets []string
	a := kv.NewAdapter(s, kv.WithResetHook(func(key string) { resets = append(resets, key) }))

	_, _, err := kv.Read[map[string]string](ctx, a, "currentUser")
	require.Error(t, err)
	require.NoError(t, a.Recover(ctx, err))

	_, ok, _ := s.Get(ctx, "currentUser")
	assert.False(t, ok)
	assert.Equal(t, []string{"currentUser"}, resets)
}

func TestRecover_PassesOtherErrorsThrough(t *testing.T) {
	a := kv.NewAdapter(kv.NewMemStore())
	boom := errors.New("boom")

	assert.NoError(t, a.Recover(context.Background(), nil))
	assert.ErrorIs(t, a.Recover(context.Background(), boom), boom)
}

type failingStore struct{ kv.MemStore }

func (*failingStore) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("backend down")
}

func TestRead_BackendErrorIsNotDecodeError(t *testing.T) {
	_, _, err := kv.Read[[]item](context.Background(), kv.NewAdapter(&failingStore{}), "cart")
	require.Error(t, err)

	var de *kv.DecodeError
	assert.False(t, errors.As(err, &de))
}
