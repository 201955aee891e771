package geofence

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/cmlabs-hris/hris-geofence/internal/domain/geofence"
	"github.com/cmlabs-hris/hris-geofence/internal/domain/office"
	"github.com/cmlabs-hris/hris-geofence/internal/pkg/geo"
	"github.com/cmlabs-hris/hris-geofence/internal/pkg/metrics"
	"golang.org/x/sync/singleflight"
)

// sharedLoadTimeout bounds a cache load, which outlives the caller that started it.
const sharedLoadTimeout = 10 * time.Second

// ResolverImpl resolves coordinates against the active office set. With a positive cache TTL the active list is
// kept in memory and reloaded at most once per TTL; concurrent reloads collapse into one query.
type ResolverImpl struct {
	officeRepo office.OfficeRepository
	ttl        time.Duration
	now        func() time.Time

	mu       sync.RWMutex
	offices  []office.OfficeLocation
	loadedAt time.Time
	valid    bool
	gen      uint64 // bumped by Invalidate; a load started before the bump is not cached

	group singleflight.Group
}

func NewResolver(officeRepo office.OfficeRepository, cacheTTL time.Duration) *ResolverImpl {
	return &ResolverImpl{
		officeRepo: officeRepo,
		ttl:        cacheTTL,
		now:        time.Now,
	}
}

func (r *ResolverImpl) FindNearestOffice(ctx context.Context, lat, lon float64) (geofence.NearestOffice, error) {
	if !geo.IsValidCoordinates(lat, lon) {
		return geofence.NearestOffice{}, nil
	}

	offices, err := r.activeOffices(ctx)
	if err != nil {
		return geofence.NearestOffice{}, err
	}

	return nearest(geo.Point{Latitude: lat, Longitude: lon}, offices), nil
}

func (r *ResolverImpl) IsWithinGeofence(ctx context.Context, lat, lon float64, radiusOverride *int) (geofence.Result, error) {
	return r.Evaluate(ctx, geofence.Query{
		Latitude:       lat,
		Longitude:      lon,
		RadiusOverride: radiusOverride,
		DefaultRadius:  office.DefaultRadiusMeters,
	})
}

func (r *ResolverImpl) Evaluate(ctx context.Context, q geofence.Query) (geofence.Result, error) {
	n, err := r.FindNearestOffice(ctx, q.Latitude, q.Longitude)
	if err != nil {
		return geofence.Result{}, err
	}
	if !n.Resolved() {
		metrics.ObserveGeofenceCheck(false, nil)
		return geofence.Result{}, nil
	}

	radius := effectiveRadius(n.Office.Radius, q.RadiusOverride, q.DefaultRadius)
	valid := geofence.WithinRadius(*n.DistanceMeters, radius)
	metrics.ObserveGeofenceCheck(valid, n.DistanceMeters)

	return geofence.Result{
		IsValid:         valid,
		NearestOffice:   n.Office,
		DistanceMeters:  n.DistanceMeters,
		EffectiveRadius: &radius,
	}, nil
}

// Invalidate drops the cached office list so the next lookup reads storage.
func (r *ResolverImpl) Invalidate() {
	r.mu.Lock()
	r.valid = false
	r.offices = nil
	r.gen++
	r.mu.Unlock()
	r.group.Forget("active")
}

// Refresh reloads the active office list regardless of its age.
func (r *ResolverImpl) Refresh(ctx context.Context) error {
	_, err := r.load(ctx)
	return err
}

func (r *ResolverImpl) activeOffices(ctx context.Context) ([]office.OfficeLocation, error) {
	if r.ttl <= 0 {
		offices, err := r.officeRepo.List(ctx, true)
		if err != nil {
			return nil, fmt.Errorf("failed to list active offices: %w", err)
		}
		return offices, nil
	}

	r.mu.RLock()
	if r.valid && r.now().Sub(r.loadedAt) < r.ttl {
		offices := r.offices
		r.mu.RUnlock()
		return offices, nil
	}
	r.mu.RUnlock()

	return r.load(ctx)
}

func (r *ResolverImpl) load(ctx context.Context) ([]office.OfficeLocation, error) {
	v, err, _ := r.group.Do("active", func() (interface{}, error) {
		r.mu.RLock()
		gen := r.gen
		r.mu.RUnlock()

		// Waiters share this load, so one caller going away must not fail the rest.
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sharedLoadTimeout)
		defer cancel()

		offices, err := r.officeRepo.List(loadCtx, true)
		metrics.ObserveOfficeCacheRefresh(err)
		if err != nil {
			return nil, fmt.Errorf("failed to list active offices: %w", err)
		}

		if r.ttl > 0 {
			r.mu.Lock()
			if gen == r.gen {
				r.offices = slices.Clone(offices)
				r.loadedAt = r.now()
				r.valid = true
			}
			r.mu.Unlock()
			slog.Debug("active office cache refreshed", "offices", len(offices))
		}

		return offices, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]office.OfficeLocation), nil
}

// nearest keeps the first office on equal distance, so ties resolve to repository order.
func nearest(p geo.Point, offices []office.OfficeLocation) geofence.NearestOffice {
	var (
		best     *office.OfficeLocation
		bestDist float64
	)

	for i := range offices {
		if !offices[i].IsActive {
			continue
		}
		d := geo.Distance(p, offices[i].Coordinates)
		if best == nil || d < bestDist {
			o := offices[i]
			best = &o
			bestDist = d
		}
	}

	if best == nil {
		return geofence.NearestOffice{}
	}
	return geofence.NearestOffice{Office: best, DistanceMeters: &bestDist}
}

func effectiveRadius(officeRadius int, override *int, fallback int) int {
	if override != nil {
		return *override
	}
	if officeRadius > 0 {
		return officeRadius
	}
	if fallback > 0 {
		return fallback
	}
	return office.DefaultRadiusMeters
}
