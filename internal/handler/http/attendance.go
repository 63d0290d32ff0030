package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/staffsync-hq/staffsync-backend-go/internal/domain/attendance"
	"github.com/staffsync-hq/staffsync-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	GetMyAttendance(w http.ResponseWriter, r *http.Request)
	ListAttendance(w http.ResponseWriter, r *http.Request)
	GetAttendance(w http.ResponseWriter, r *http.Request)
	Regularize(w http.ResponseWriter, r *http.Request)
	MonthlySummary(w http.ResponseWriter, r *http.Request)
	MyMonthlySummary(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

func queryInt(r *http.Request, key string) *int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &value
}

func queryString(r *http.Request, key string) *string {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil
	}
	return &raw
}

func queryPage(r *http.Request) (page, limit int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	return page, limit
}

// periodFromQuery reads month/year query params, defaulting to the
// current month.
func periodFromQuery(r *http.Request) (month, year int) {
	now := time.Now()
	month, year = int(now.Month()), now.Year()
	if m := queryInt(r, "month"); m != nil {
		month = *m
	}
	if y := queryInt(r, "year"); y != nil {
		year = *y
	}
	return month, year
}

// CheckIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	record, err := h.attendanceService.CheckIn(r.Context())
	if err != nil {
		slog.Error("CheckIn service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee checked in", "employee_id", record.EmployeeID)
	response.Created(w, "Checked in successfully", record)
}

// CheckOut implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	record, err := h.attendanceService.CheckOut(r.Context())
	if err != nil {
		slog.Error("CheckOut service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee checked out", "employee_id", record.EmployeeID)
	response.SuccessWithMessage(w, "Checked out successfully", record)
}

// GetMyAttendance implements AttendanceHandler.
func (h *AttendanceHandlerImpl) GetMyAttendance(w http.ResponseWriter, r *http.Request) {
	page, limit := queryPage(r)
	filter := attendance.MyAttendanceFilter{
		Month: queryInt(r, "month"),
		Year:  queryInt(r, "year"),
		Page:  page,
		Limit: limit,
	}

	list, err := h.attendanceService.GetMyAttendance(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, list.Records, &response.Meta{
		Page:       list.Page,
		Limit:      list.Limit,
		TotalItems: list.TotalItems,
	})
}

// ListAttendance implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListAttendance(w http.ResponseWriter, r *http.Request) {
	page, limit := queryPage(r)
	filter := attendance.AttendanceFilter{
		EmployeeID: queryString(r, "employee_id"),
		Status:     queryString(r, "status"),
		Month:      queryInt(r, "month"),
		Year:       queryInt(r, "year"),
		Page:       page,
		Limit:      limit,
	}

	list, err := h.attendanceService.ListAttendance(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, list.Records, &response.Meta{
		Page:       list.Page,
		Limit:      list.Limit,
		TotalItems: list.TotalItems,
	})
}

// GetAttendance implements AttendanceHandler.
func (h *AttendanceHandlerImpl) GetAttendance(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	record, err := h.attendanceService.GetAttendance(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, record)
}

// Regularize implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Regularize(w http.ResponseWriter, r *http.Request) {
	var req attendance.RegularizeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Regularize decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	record, err := h.attendanceService.Regularize(r.Context(), req)
	if err != nil {
		slog.Error("Regularize service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Attendance regularized", "employee_id", req.EmployeeID, "date", req.Date)
	response.SuccessWithMessage(w, "Attendance regularized successfully", record)
}

// MonthlySummary implements AttendanceHandler.
func (h *AttendanceHandlerImpl) MonthlySummary(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	month, year := periodFromQuery(r)

	summary, err := h.attendanceService.MonthlySummary(r.Context(), employeeID, month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// MyMonthlySummary implements AttendanceHandler.
func (h *AttendanceHandlerImpl) MyMonthlySummary(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	month, year := periodFromQuery(r)

	summary, err := h.attendanceService.MonthlySummary(r.Context(), userID, month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}
