package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveGeofenceCheck(t *testing.T) {
	before := testutil.ToFloat64(geofenceChecks.WithLabelValues("unresolved"))
	ObserveGeofenceCheck(false, nil)
	assert.Equal(t, before+1, testutil.ToFloat64(geofenceChecks.WithLabelValues("unresolved")))

	d := 42.0
	before = testutil.ToFloat64(geofenceChecks.WithLabelValues("valid"))
	ObserveGeofenceCheck(true, &d)
	assert.Equal(t, before+1, testutil.ToFloat64(geofenceChecks.WithLabelValues("valid")))
}

func TestObserveOfficeCacheRefresh(t *testing.T) {
	before := testutil.ToFloat64(officeCacheRefreshes.WithLabelValues("error"))
	ObserveOfficeCacheRefresh(errors.New("boom"))
	assert.Equal(t, before+1, testutil.ToFloat64(officeCacheRefreshes.WithLabelValues("error")))
}

func TestObserveAttendanceDecision(t *testing.T) {
	c := attendanceDecisions.WithLabelValues("check_in", "verified", "true")
	before := testutil.ToFloat64(c)
	ObserveAttendanceDecision("check_in", "verified", true)
	assert.Equal(t, before+1, testutil.ToFloat64(c))
}
