package adapters

import (
	"context"
	"fxdeals/internal/domain"
	"time"
)

type DealRepository interface {
	Exists(ctx context.Context, dealID string) (bool, error)
	// Save inserts the deal and returns it with CreatedAt assigned. A primary
	// key violation is reported as domain.ErrDuplicateDeal.
	Save(ctx context.Context, deal domain.Deal) (domain.Deal, error)
	// ListCreatedSince returns at most limit deals created at or after since, oldest first.
	ListCreatedSince(ctx context.Context, since time.Time, limit int) ([]domain.DealStamp, error)
}

// KnownDealCache remembers IDs of deals that are known to be stored.
// Deals are never deleted, so a hit is always authoritative; a miss is not.
type KnownDealCache interface {
	Contains(dealID string) bool
	Remember(dealID string)
	RememberBatch(dealIDs []string)
}
