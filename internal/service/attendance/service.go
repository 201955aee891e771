package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hris-geofence/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-geofence/internal/domain/calendar"
	"github.com/cmlabs-hris/hris-geofence/internal/domain/geofence"
	"github.com/cmlabs-hris/hris-geofence/internal/domain/settings"
	"github.com/cmlabs-hris/hris-geofence/internal/pkg/metrics"
)

type PolicyServiceImpl struct {
	settingsService settings.SettingsService
	classifier      calendar.ClassifierService
	resolver        geofence.Resolver
	location        *time.Location
	now             func() time.Time
}

// NewPolicyService evaluates attendance actions. loc decides which calendar date "today" is.
func NewPolicyService(
	settingsService settings.SettingsService,
	classifier calendar.ClassifierService,
	resolver geofence.Resolver,
	loc *time.Location,
) attendance.PolicyService {
	if loc == nil {
		loc = time.UTC
	}
	return &PolicyServiceImpl{
		settingsService: settingsService,
		classifier:      classifier,
		resolver:        resolver,
		location:        loc,
		now:             time.Now,
	}
}

func (s *PolicyServiceImpl) EvaluateCheckIn(ctx context.Context, req attendance.EvaluateRequest) (attendance.Decision, error) {
	return s.evaluate(ctx, attendance.ActionCheckIn, req)
}

func (s *PolicyServiceImpl) EvaluateCheckOut(ctx context.Context, req attendance.EvaluateRequest) (attendance.Decision, error) {
	return s.evaluate(ctx, attendance.ActionCheckOut, req)
}

func (s *PolicyServiceImpl) evaluate(ctx context.Context, action attendance.Action, req attendance.EvaluateRequest) (attendance.Decision, error) {
	if err := req.Validate(); err != nil {
		return attendance.Decision{}, err
	}

	effective, err := s.settingsService.GetEffectiveSettings(ctx, req.Department)
	if err != nil {
		return attendance.Decision{}, err
	}

	today := s.now().In(s.location)
	day, err := s.classifier.DescribeDay(ctx, today, req.EmployeeID, effective)
	if err != nil {
		return attendance.Decision{}, err
	}

	decision := attendance.Decision{Action: action, Day: day}
	g := effective.Geofence

	if !g.Enabled {
		decision.Allowed = true
		decision.GeofenceStatus = attendance.GeofenceSkipped
		decision.Message = "Geofence is disabled"
		s.record(req, decision)
		return decision, nil
	}

	result, err := s.resolver.Evaluate(ctx, geofence.Query{
		Latitude:       *req.Latitude,
		Longitude:      *req.Longitude,
		RadiusOverride: req.RadiusOverride,
		DefaultRadius:  g.DefaultRadius,
	})
	if err != nil {
		return attendance.Decision{}, err
	}

	decision.NearestOffice = result.NearestOffice
	decision.DistanceMeters = result.DistanceMeters
	decision.EffectiveRadius = result.EffectiveRadius

	switch {
	case result.IsValid:
		decision.Allowed = true
		decision.GeofenceStatus = attendance.GeofenceVerified
		decision.Message = fmt.Sprintf("Location verified at %s", result.NearestOffice.Name)
		s.record(req, decision)
		return decision, nil
	case result.NearestOffice == nil:
		decision.GeofenceStatus = attendance.GeofenceUnverified
	default:
		decision.GeofenceStatus = attendance.GeofenceOutsideRadius
	}

	enforced := g.EnforceCheckIn
	if action == attendance.ActionCheckOut {
		enforced = g.EnforceCheckOut
	}

	switch {
	case !enforced:
		decision.Allowed = true
		decision.Flagged = true
		decision.Message = outsideMessage(result) + "; recorded for review"
	case req.WorkFromHome && g.AllowWFHBypass:
		decision.Allowed = true
		decision.RequiresJustification = true
		decision.Message = "Work from home requested; justification is required"
	default:
		decision.Allowed = false
		decision.WFHBypassAvailable = g.AllowWFHBypass
		decision.Message = outsideMessage(result)
	}

	s.record(req, decision)
	return decision, nil
}

func (s *PolicyServiceImpl) record(req attendance.EvaluateRequest, d attendance.Decision) {
	metrics.ObserveAttendanceDecision(string(d.Action), string(d.GeofenceStatus), d.Allowed)

	if d.GeofenceStatus == attendance.GeofenceVerified || d.GeofenceStatus == attendance.GeofenceSkipped {
		return
	}
	attrs := []any{
		"employee_id", req.EmployeeID,
		"action", d.Action,
		"geofence_status", d.GeofenceStatus,
		"allowed", d.Allowed,
	}
	if d.DistanceMeters != nil {
		attrs = append(attrs, "distance_meters", *d.DistanceMeters)
	}
	if d.NearestOffice != nil {
		attrs = append(attrs, "office_id", d.NearestOffice.ID)
	}
	slog.Info("attendance geofence check failed", attrs...)
}

func outsideMessage(r geofence.Result) string {
	if r.NearestOffice == nil || r.DistanceMeters == nil {
		return "No active office location matches your position"
	}
	return fmt.Sprintf("You are %.0f m from %s, outside the allowed %d m radius",
		*r.DistanceMeters, r.NearestOffice.Name, *r.EffectiveRadius)
}
