package kv

import (
	"context"
	"errors"
	"strings"
)

var ErrEmptyNamespace = errors.New("empty namespace")

// Store is a string-keyed, string-valued persistent store. A missing key is
// reported as ok=false, never as an error.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}

type scoped struct {
	inner  Store
	prefix string
}

// Scoped returns a view of s where every key lives under namespace. Two views
// with different namespaces never observe each other's keys.
func Scoped(s Store, namespace string) (Store, error) {
	namespace = strings.TrimSpace(namespace)
	if namespace == "" {
		return nil, ErrEmptyNamespace
	}
	return &scoped{inner: s, prefix: namespace + ":"}, nil
}

func (s *scoped) Get(ctx context.Context, key string) (string, bool, error) {
	return s.inner.Get(ctx, s.prefix+key)
}

func (s *scoped) Set(ctx context.Context, key, value string) error {
	return s.inner.Set(ctx, s.prefix+key, value)
}

func (s *scoped) Delete(ctx context.Context, key string) error {
	return s.inner.Delete(ctx, s.prefix+key)
}

func (s *scoped) Ping(ctx context.Context) error { return s.inner.Ping(ctx) }
