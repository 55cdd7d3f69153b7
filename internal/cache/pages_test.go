package cache

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pantrychef/backend/internal/catalog"
)

func TestPageCacheDisabledWithoutRedis(t *testing.T) {
	c := NewPageCache(nil, 0, zap.NewNop())
	ctx := context.Background()

	// All operations are safe no-ops.
	c.Set(ctx, &catalog.PageResult{Page: 1, Limit: 12})
	c.Invalidate(ctx)

	_, ok := c.Get(ctx, 1, 12)
	assert.False(t, ok)
}

func TestPageKey(t *testing.T) {
	assert.Equal(t, "pantrychef:pages:2:12", pageKey(2, 12))
	assert.NotEqual(t, pageKey(1, 212), pageKey(12, 12))
}

type countingIngester struct {
	added int
	err   error
	calls int
}

func (c *countingIngester) Ingest(context.Context, int) (int, error) {
	c.calls++
	return c.added, c.err
}

func TestInvalidatingIngesterPassesThrough(t *testing.T) {
	pages := NewPageCache(nil, 0, zap.NewNop())

	ing := &countingIngester{added: 3}
	wrapped := &InvalidatingIngester{Ingester: ing, Pages: pages}

	added, err := wrapped.Ingest(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 3, added)
	assert.Equal(t, 1, ing.calls)

	ing.err = errors.New("boom")
	_, err = wrapped.Ingest(context.Background(), 5)
	assert.Error(t, err)
}
