package cache

import (
	"fmt"

	"github.com/dgraph-io/ristretto"
)

type RistrettoKnownDealCache struct {
	cache *ristretto.Cache
}

func NewKnownDealCache(maxItems int64) (*RistrettoKnownDealCache, error) {
	if maxItems <= 0 {
		return nil, fmt.Errorf("known deal cache size must be positive, got %d", maxItems)
	}
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10 * maxItems,
		MaxCost:     maxItems,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create known deal cache failed: %w", err)
	}
	return &RistrettoKnownDealCache{cache: c}, nil
}

func (c *RistrettoKnownDealCache) Contains(dealID string) bool {
	_, ok := c.cache.Get(dealID)
	return ok
}

func (c *RistrettoKnownDealCache) Remember(dealID string) {
	c.cache.Set(dealID, struct{}{}, 1)
}

func (c *RistrettoKnownDealCache) RememberBatch(dealIDs []string) {
	for _, id := range dealIDs {
		c.cache.Set(id, struct{}{}, 1)
	}
}

func (c *RistrettoKnownDealCache) Close() { c.cache.Close() }
