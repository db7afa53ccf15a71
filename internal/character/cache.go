package character

import (
	"strconv"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/aion2-tracker/internal/domain"
)

// profileCache memoizes evaluated profiles. Entries are keyed by snapshot
// version and table generation, so a new snapshot or grade scale never hits
// a stale entry.
type profileCache struct {
	lru *expirable.LRU[string, domain.Profile]
}

func newProfileCache(size int, ttl time.Duration) *profileCache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &profileCache{
		lru: expirable.NewLRU[string, domain.Profile](size, nil, ttl),
	}
}

func profileKey(id string, updatedAt time.Time, generation uint64) string {
	return id + "@" + strconv.FormatInt(updatedAt.UnixNano(), 10) + "@" + strconv.FormatUint(generation, 10)
}

func (c *profileCache) Get(key string) (domain.Profile, bool) {
	return c.lru.Get(key)
}

func (c *profileCache) Set(key string, p domain.Profile) {
	c.lru.Add(key, p)
}

// Len reports the number of live entries.
func (c *profileCache) Len() int {
	return c.lru.Len()
}
