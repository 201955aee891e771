package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-geofence/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-geofence/internal/domain/user"
	"github.com/cmlabs-hris/hris-geofence/internal/handler/http/response"
)

type AttendanceHandler interface {
	EvaluateCheckIn(w http.ResponseWriter, r *http.Request)
	EvaluateCheckOut(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	policyService attendance.PolicyService
}

func NewAttendanceHandler(policyService attendance.PolicyService) AttendanceHandler {
	return &attendanceHandlerImpl{
		policyService: policyService,
	}
}

// EvaluateCheckIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) EvaluateCheckIn(w http.ResponseWriter, r *http.Request) {
	h.evaluate(w, r, attendance.ActionCheckIn)
}

// EvaluateCheckOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) EvaluateCheckOut(w http.ResponseWriter, r *http.Request) {
	h.evaluate(w, r, attendance.ActionCheckOut)
}

func (h *attendanceHandlerImpl) evaluate(w http.ResponseWriter, r *http.Request, action attendance.Action) {
	var req attendance.EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode evaluate request", "action", action, "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	p, err := principalFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if p.EmployeeID == "" {
		response.HandleError(w, user.ErrEmployeeRequired)
		return
	}
	req.EmployeeID = p.EmployeeID
	req.Department = p.Department

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	var decision attendance.Decision
	switch action {
	case attendance.ActionCheckOut:
		decision, err = h.policyService.EvaluateCheckOut(r.Context(), req)
	default:
		decision, err = h.policyService.EvaluateCheckIn(r.Context(), req)
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, attendance.ToDecisionResponse(decision))
}
