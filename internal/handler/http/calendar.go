package http

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-geofence/internal/domain/calendar"
	"github.com/cmlabs-hris/hris-geofence/internal/domain/settings"
	"github.com/cmlabs-hris/hris-geofence/internal/domain/user"
	"github.com/cmlabs-hris/hris-geofence/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-geofence/internal/pkg/validator"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type CalendarHandler interface {
	Day(w http.ResponseWriter, r *http.Request)
	Month(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type calendarHandlerImpl struct {
	classifierService calendar.ClassifierService
	settingsService   settings.SettingsService
}

func NewCalendarHandler(classifierService calendar.ClassifierService, settingsService settings.SettingsService) CalendarHandler {
	return &calendarHandlerImpl{
		classifierService: classifierService,
		settingsService:   settingsService,
	}
}

// Day implements CalendarHandler.
func (h *calendarHandlerImpl) Day(w http.ResponseWriter, r *http.Request) {
	req := calendar.DayRequest{
		Date:       r.URL.Query().Get("date"),
		EmployeeID: r.URL.Query().Get("employee_id"),
		Department: optionalQuery(r, "department"),
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.resolveSubject(r, &req.EmployeeID, &req.Department); err != nil {
		response.HandleError(w, err)
		return
	}

	effective, err := h.settingsService.GetEffectiveSettings(r.Context(), req.Department)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	info, err := h.classifierService.DescribeDay(r.Context(), req.ParsedDate(), req.EmployeeID, effective)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, calendar.ToDayInfoResponse(info))
}

// Month implements CalendarHandler.
func (h *calendarHandlerImpl) Month(w http.ResponseWriter, r *http.Request) {
	req, effective, ok := h.monthRequest(w, r)
	if !ok {
		return
	}
	year, month := req.Period()

	summary, err := h.classifierService.ClassifyMonth(r.Context(), year, month, req.EmployeeID, effective)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, calendar.ToMonthSummaryResponse(summary))
}

// Export implements CalendarHandler. The workbook is buffered so a render failure still yields a JSON error.
func (h *calendarHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	req, effective, ok := h.monthRequest(w, r)
	if !ok {
		return
	}
	year, month := req.Period()

	var buf bytes.Buffer
	if err := h.classifierService.ExportMonth(r.Context(), year, month, req.EmployeeID, effective, &buf); err != nil {
		slog.Error("Failed to export month calendar", "year", year, "month", int(month), "error", err)
		response.HandleError(w, err)
		return
	}

	filename := fmt.Sprintf("calendar-%04d-%02d.xlsx", year, int(month))
	if req.EmployeeID != "" {
		filename = fmt.Sprintf("calendar-%s-%04d-%02d.xlsx", req.EmployeeID, year, int(month))
	}
	response.Attachment(w, xlsxContentType, filename, buf.Bytes())
}

func (h *calendarHandlerImpl) monthRequest(w http.ResponseWriter, r *http.Request) (calendar.MonthRequest, settings.Settings, bool) {
	req := calendar.MonthRequest{
		Year:       r.URL.Query().Get("year"),
		Month:      r.URL.Query().Get("month"),
		EmployeeID: r.URL.Query().Get("employee_id"),
		Department: optionalQuery(r, "department"),
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return req, settings.Settings{}, false
	}

	if err := h.resolveSubject(r, &req.EmployeeID, &req.Department); err != nil {
		response.HandleError(w, err)
		return req, settings.Settings{}, false
	}

	effective, err := h.settingsService.GetEffectiveSettings(r.Context(), req.Department)
	if err != nil {
		response.HandleError(w, err)
		return req, settings.Settings{}, false
	}
	return req, effective, true
}

// resolveSubject defaults the subject to the caller. Looking at another employee, or choosing the department
// explicitly, needs calendar.view_all. Another employee's department is not in the token, so it must be given.
func (h *calendarHandlerImpl) resolveSubject(r *http.Request, employeeID *string, department **string) error {
	p, err := principalFromRequest(r)
	if err != nil {
		return err
	}

	if *employeeID == "" {
		*employeeID = p.EmployeeID
	}
	if *employeeID == p.EmployeeID && *department == nil {
		*department = p.Department
		return nil
	}

	if !user.HasPermission(p.Role, user.PermissionCalendarViewAll) {
		return user.ErrInsufficientPermissions
	}
	if *employeeID != p.EmployeeID && *department == nil {
		return validator.ValidationErrors{{
			Field:   "department",
			Message: "department is required when viewing another employee",
		}}
	}
	return nil
}
