package cache

import (
	"context"

	"github.com/pantrychef/backend/internal/catalog"
)

// InvalidatingIngester wraps an ingester and drops all cached pages whenever
// ingestion adds records, so lazy seeding during a page read never leaves
// stale totals behind.
type InvalidatingIngester struct {
	Ingester catalog.Ingester
	Pages    *PageCache
}

func (i *InvalidatingIngester) Ingest(ctx context.Context, count int) (int, error) {
	added, err := i.Ingester.Ingest(ctx, count)
	if added > 0 {
		i.Pages.Invalidate(ctx)
	}
	return added, err
}
