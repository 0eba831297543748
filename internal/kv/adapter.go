package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// DecodeError reports a stored value that is not valid JSON for the type it
// was read as.
type DecodeError struct {
	Key string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %q: %v", e.Key, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Adapter stores JSON-encoded values in a Store.
type Adapter struct {
	store   Store
	log     *zap.Logger
	onReset func(key string)
}

type Option func(*Adapter)

func WithLogger(log *zap.Logger) Option {
	return func(a *Adapter) {
		if log != nil {
			a.log = log
		}
	}
}

// WithResetHook registers fn to run after a corrupted key has been cleared.
func WithResetHook(fn func(key string)) Option {
	return func(a *Adapter) { a.onReset = fn }
}

func NewAdapter(s Store, opts ...Option) *Adapter {
	a := &Adapter{store: s, log: zap.NewNop()}
	for _, o := range opts {
		o(a)
	}
	return a
}

// Read decodes the value stored under key into a T. A missing key yields the
// zero T and ok=false. A value that does not decode yields a *DecodeError and
// leaves the key untouched; callers decide whether to Recover.
func Read[T any](ctx context.Context, a *Adapter, key string) (v T, ok bool, err error) {
	raw, found, err := a.store.Get(ctx, key)
	if err != nil {
		return v, false, fmt.Errorf("read %q: %w", key, err)
	}
	if !found || raw == "" {
		return v, false, nil
	}
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		var zero T
		return zero, false, &DecodeError{Key: key, Err: err}
	}
	return v, true, nil
}

// Write encodes v and stores it unconditionally.
func (a *Adapter) Write(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	if err := a.store.Set(ctx, key, string(b)); err != nil {
		return fmt.Errorf("write %q: %w", key, err)
	}
	return nil
}

func (a *Adapter) Clear(ctx context.Context, key string) error {
	if err := a.store.Delete(ctx, key); err != nil {
		return fmt.Errorf("clear %q: %w", key, err)
	}
	return nil
}

// Recover turns a *DecodeError into success by clearing the offending key.
// Any other error, including nil, is returned unchanged.
func (a *Adapter) Recover(ctx context.Context, err error) error {
	var de *DecodeError
	if !errors.As(err, &de) {
		return err
	}

	a.log.Warn("resetting corrupted key", zap.String("key", de.Key), zap.Error(de.Err))
	if cerr := a.Clear(ctx, de.Key); cerr != nil {
		return cerr
	}
	if a.onReset != nil {
		a.onReset(de.Key)
	}
	return nil
}

func (a *Adapter) Ping(ctx context.Context) error { return a.store.Ping(ctx) }
