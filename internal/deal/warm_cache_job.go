package deal

import (
	"context"
	"fmt"
	"fxdeals/internal/adapters"
	"time"

	"github.com/sirupsen/logrus"
)

// WarmKnownDeals loads IDs of deals stored at or after since into the cache,
// which picks up imports made by other instances sharing the database. It
// returns the watermark to pass to the next run. Rows come oldest first, so a
// full page leaves the rest for the following runs.
func WarmKnownDeals(ctx context.Context, execID string, repo adapters.DealRepository, cache adapters.KnownDealCache, since time.Time, limit int) (time.Time, error) {
	stamps, err := repo.ListCreatedSince(ctx, since, limit)
	if err != nil {
		return since, fmt.Errorf("failed to list recently imported deals: %w", err)
	}
	if len(stamps) == 0 {
		logrus.Debugf("No new deals to cache; execID: %s", execID)
		return since, nil
	}

	next := since
	ids := make([]string, 0, len(stamps))
	for _, s := range stamps {
		ids = append(ids, s.DealUniqueID)
		if s.CreatedAt.After(next) {
			next = s.CreatedAt
		}
	}
	cache.RememberBatch(ids)

	logrus.Infof("%d deal IDs were added to the known deal cache; execID: %s", len(ids), execID)
	return next, nil
}
