package cron

import (
	"context"
	"time"
)

// OfficeCache is the resolver's active-office cache.
type OfficeCache interface {
	Refresh(ctx context.Context) error
}

// DefaultsEnsurer re-creates the global settings document if it has been removed.
type DefaultsEnsurer interface {
	EnsureDefaults(ctx context.Context) error
}

type GeofenceJobs struct {
	officeCache      OfficeCache
	settings         DefaultsEnsurer
	cacheTTL         time.Duration
	settingsInterval time.Duration
}

func NewGeofenceJobs(officeCache OfficeCache, settings DefaultsEnsurer, cacheTTL time.Duration) *GeofenceJobs {
	return &GeofenceJobs{
		officeCache:      officeCache,
		settings:         settings,
		cacheTTL:         cacheTTL,
		settingsInterval: time.Hour,
	}
}

// RegisterJobs adds the cache warm-up (only when caching is enabled) and the settings guard.
func (j *GeofenceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("refresh_office_cache", j.cacheTTL, j.RefreshOfficeCache)
	scheduler.AddJob("ensure_default_settings", j.settingsInterval, j.EnsureDefaultSettings)
}

func (j *GeofenceJobs) RefreshOfficeCache(ctx context.Context) error {
	return j.officeCache.Refresh(ctx)
}

func (j *GeofenceJobs) EnsureDefaultSettings(ctx context.Context) error {
	return j.settings.EnsureDefaults(ctx)
}
