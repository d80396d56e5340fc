package deal

import (
	"context"
	"fmt"
	"fxdeals/internal/adapters"
	"fxdeals/internal/domain"
)

// DuplicateGuard rejects deal IDs that are already stored. The known deal
// cache is optional; a cache hit skips the repository round trip.
type DuplicateGuard struct {
	repo  adapters.DealRepository
	cache adapters.KnownDealCache
}

func (g *DuplicateGuard) CheckNotDuplicate(ctx context.Context, dealID string) error {
	if g.cache != nil && g.cache.Contains(dealID) {
		return domain.NewDuplicateDealError(dealID)
	}

	exists, err := g.repo.Exists(ctx, dealID)
	if err != nil {
		return fmt.Errorf("failed to check deal %q for duplicates: %w", dealID, err)
	}
	if exists {
		g.Remember(dealID)
		return domain.NewDuplicateDealError(dealID)
	}
	return nil
}

// Remember records a stored deal ID so later checks can be answered from cache.
func (g *DuplicateGuard) Remember(dealID string) {
	if g.cache != nil {
		g.cache.Remember(dealID)
	}
}

func NewDuplicateGuard(repo adapters.DealRepository, cache adapters.KnownDealCache) *DuplicateGuard {
	return &DuplicateGuard{repo: repo, cache: cache}
}
