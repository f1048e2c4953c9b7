package cache

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"

	"alcyxob/fitness-coach/internal/metrics"
)

const megabyte = 1024 * 1024

// ScheduleCache keeps per-client schedule source rows in memory.
// Entries are JSON encoded and expire after the configured TTL; writes that
// change a client's assignments delete the entry straight away.
type ScheduleCache struct {
	cache   *freecache.Cache
	ttl     time.Duration
	metrics *metrics.Manager
}

func NewScheduleCache(sizeMegabytes int, ttl time.Duration, metricsManager *metrics.Manager) *ScheduleCache {
	if sizeMegabytes <= 0 {
		sizeMegabytes = 1
	}
	return &ScheduleCache{
		// freecache clamps anything below 512KB up to 512KB
		cache:   freecache.NewCache(sizeMegabytes * megabyte),
		ttl:     ttl,
		metrics: metricsManager,
	}
}

func cacheKey(clientID string) []byte {
	return []byte(fmt.Sprintf("schedule::%s", clientID))
}

// Get decodes the cached entry for the client into dst. It reports whether a
// usable entry was found.
func (c *ScheduleCache) Get(clientID string, dst any) bool {
	if c == nil || c.ttl <= 0 {
		return false
	}

	raw, err := c.cache.Get(cacheKey(clientID))
	if err != nil {
		c.observe("miss")
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		log.Errorf("failed to unmarshal cached schedule for client %s: %s", clientID, err)
		c.cache.Del(cacheKey(clientID))
		c.observe("miss")
		return false
	}

	c.observe("hit")
	return true
}

func (c *ScheduleCache) Set(clientID string, v any) {
	if c == nil || c.ttl <= 0 {
		return
	}

	raw, err := json.Marshal(v)
	if err != nil {
		log.Errorf("failed to marshal schedule for client %s: %s", clientID, err)
		return
	}

	expire := int(c.ttl / time.Second)
	if expire < 1 {
		expire = 1
	}
	if err := c.cache.Set(cacheKey(clientID), raw, expire); err != nil {
		log.Errorf("failed to cache schedule for client %s: %s", clientID, err)
	}
}

// Invalidate drops the cached entry for every given client.
func (c *ScheduleCache) Invalidate(clientIDs ...string) {
	if c == nil {
		return
	}
	for _, id := range clientIDs {
		if c.cache.Del(cacheKey(id)) {
			log.Tracef("schedule cache invalidated for client %s", id)
		}
	}
}

func (c *ScheduleCache) observe(result string) {
	if c.metrics == nil {
		return
	}
	c.metrics.CounterScheduleCache.WithLabelValues(result).Inc()
}
