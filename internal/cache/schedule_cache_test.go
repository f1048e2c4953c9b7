package cache

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alcyxob/fitness-coach/internal/metrics"
)

type rows struct {
	Names []string `json:"names"`
}

func TestScheduleCache_SetGetInvalidate(t *testing.T) {
	m := metrics.NewTestManager()
	c := NewScheduleCache(1, time.Minute, m)

	var got rows
	assert.False(t, c.Get("client-1", &got))

	c.Set("client-1", rows{Names: []string{"Push", "Pull"}})
	require.True(t, c.Get("client-1", &got))
	assert.Equal(t, []string{"Push", "Pull"}, got.Names)

	c.Invalidate("client-1", "unknown")
	assert.False(t, c.Get("client-1", &got))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.CounterScheduleCache.WithLabelValues("hit")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.CounterScheduleCache.WithLabelValues("miss")))
}

func TestScheduleCache_DisabledWithoutTTL(t *testing.T) {
	c := NewScheduleCache(1, 0, nil)
	c.Set("client-1", rows{Names: []string{"Push"}})

	var got rows
	assert.False(t, c.Get("client-1", &got))
}

func TestScheduleCache_CorruptEntryIsDropped(t *testing.T) {
	c := NewScheduleCache(1, time.Minute, nil)
	require.NoError(t, c.cache.Set(cacheKey("client-1"), []byte("{not json"), 60))

	var got rows
	assert.False(t, c.Get("client-1", &got))
	_, err := c.cache.Get(cacheKey("client-1"))
	assert.Error(t, err)
}

func TestScheduleCache_NilIsSafe(t *testing.T) {
	var c *ScheduleCache
	var got rows
	assert.False(t, c.Get("client-1", &got))
	c.Set("client-1", rows{})
	c.Invalidate("client-1")
}
