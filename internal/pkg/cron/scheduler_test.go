package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingCache struct{ n atomic.Int32 }

func (c *countingCache) Refresh(ctx context.Context) error {
	c.n.Add(1)
	return nil
}

type failingEnsurer struct{ n atomic.Int32 }

func (f *failingEnsurer) EnsureDefaults(ctx context.Context) error {
	f.n.Add(1)
	return errors.New("db unavailable")
}

func TestGeofenceJobs_RunOnce(t *testing.T) {
	cache := &countingCache{}
	ensurer := &failingEnsurer{}
	s := NewScheduler(context.Background())

	NewGeofenceJobs(cache, ensurer, 30*time.Second).RegisterJobs(s)
	s.RunOnce(context.Background())

	assert.Equal(t, int32(1), cache.n.Load())
	assert.Equal(t, int32(1), ensurer.n.Load(), "a failing job does not stop the others")
}

func TestGeofenceJobs_CacheDisabled(t *testing.T) {
	cache := &countingCache{}
	s := NewScheduler(context.Background())

	NewGeofenceJobs(cache, &failingEnsurer{}, 0).RegisterJobs(s)
	s.RunOnce(context.Background())

	assert.Equal(t, int32(0), cache.n.Load())
}

func TestScheduler_StartStop(t *testing.T) {
	cache := &countingCache{}
	s := NewScheduler(context.Background())
	s.AddJob("tick", 10*time.Millisecond, cache.Refresh)

	s.Start()
	assert.Eventually(t, func() bool { return cache.n.Load() >= 3 }, time.Second, 5*time.Millisecond)
	s.Stop()

	after := cache.n.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, cache.n.Load())
}
