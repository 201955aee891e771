package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hris"

var (
	geofenceChecks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "geofence",
		Name:      "checks_total",
		Help:      "Geofence evaluations by result (valid, invalid, unresolved).",
	}, []string{"result"})

	nearestDistance = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "geofence",
		Name:      "nearest_office_distance_meters",
		Help:      "Distance from the reported coordinate to the nearest active office.",
		Buckets:   []float64{10, 25, 50, 100, 150, 250, 500, 1000, 5000, 25000},
	})

	officeCacheRefreshes = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "geofence",
		Name:      "office_cache_refreshes_total",
		Help:      "Active office cache loads by outcome.",
	}, []string{"outcome"})

	attendanceDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "attendance",
		Name:      "decisions_total",
		Help:      "Check-in and check-out evaluations.",
	}, []string{"action", "geofence_status", "allowed"})

	dayClassifications = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "calendar",
		Name:      "day_classifications_total",
		Help:      "Single-day classifications by day type.",
	}, []string{"day_type"})
)

// ObserveGeofenceCheck records one evaluation. distance is nil when no office was resolved.
func ObserveGeofenceCheck(valid bool, distance *float64) {
	switch {
	case distance == nil:
		geofenceChecks.WithLabelValues("unresolved").Inc()
		return
	case valid:
		geofenceChecks.WithLabelValues("valid").Inc()
	default:
		geofenceChecks.WithLabelValues("invalid").Inc()
	}
	nearestDistance.Observe(*distance)
}

func ObserveOfficeCacheRefresh(err error) {
	if err != nil {
		officeCacheRefreshes.WithLabelValues("error").Inc()
		return
	}
	officeCacheRefreshes.WithLabelValues("ok").Inc()
}

func ObserveAttendanceDecision(action, geofenceStatus string, allowed bool) {
	attendanceDecisions.WithLabelValues(action, geofenceStatus, strconv.FormatBool(allowed)).Inc()
}

func ObserveDayClassification(dayType string) {
	dayClassifications.WithLabelValues(dayType).Inc()
}
