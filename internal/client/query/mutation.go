package query

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Mutate runs a single-shot mutation and, only on success, invalidates the
// declared key prefixes so dependent queries refetch. There is no retry and
// no optimistic update: the cache stays consistent-after-response.
func Mutate[T any](ctx context.Context, c *Cache, invalidates []Key, fn func(ctx context.Context) (T, error)) (T, error) {
	v, err := fn(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	c.Invalidate(invalidates...)
	return v, nil
}

// MutateBulk fires the given mutations concurrently, waits for all of them
// to settle, and invalidates once afterwards. Invalidation happens even when
// part of the batch failed: the succeeded subset is not rolled back, so
// dependent lists must refetch to reflect it. A partial failure surfaces as
// a single aggregate error without per-item granularity.
func MutateBulk(ctx context.Context, c *Cache, invalidates []Key, fns ...func(ctx context.Context) error) error {
	var g errgroup.Group
	for _, fn := range fns {
		fn := fn
		g.Go(func() error { return fn(ctx) })
	}
	err := g.Wait()

	c.Invalidate(invalidates...)

	if err != nil {
		return fmt.Errorf("bulk operation failed: %w", err)
	}
	return nil
}
