package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/staffsync-hq/staffsync-backend-go/internal/domain/leave"
	"github.com/staffsync-hq/staffsync-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	CreateLeaveType(w http.ResponseWriter, r *http.Request)
	UpdateLeaveType(w http.ResponseWriter, r *http.Request)
	ListLeaveTypes(w http.ResponseWriter, r *http.Request)
	DeleteLeaveType(w http.ResponseWriter, r *http.Request)
	SetQuota(w http.ResponseWriter, r *http.Request)
	GetMyBalances(w http.ResponseWriter, r *http.Request)
	GetBalances(w http.ResponseWriter, r *http.Request)
	Apply(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	ListApplications(w http.ResponseWriter, r *http.Request)
	ListMyApplications(w http.ResponseWriter, r *http.Request)
	GetApplication(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// yearFromQuery reads the year query param, defaulting to the current year.
func yearFromQuery(r *http.Request) int {
	if y := queryInt(r, "year"); y != nil {
		return *y
	}
	return time.Now().Year()
}

// CreateLeaveType implements LeaveHandler.
func (h *LeaveHandlerImpl) CreateLeaveType(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateLeaveTypeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateLeaveType decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.leaveService.CreateLeaveType(r.Context(), req)
	if err != nil {
		slog.Error("CreateLeaveType service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Leave type created", "leave_type_id", created.ID)
	response.Created(w, "Leave type created successfully", created)
}

// UpdateLeaveType implements LeaveHandler.
func (h *LeaveHandlerImpl) UpdateLeaveType(w http.ResponseWriter, r *http.Request) {
	var req leave.UpdateLeaveTypeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateLeaveType decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := h.leaveService.UpdateLeaveType(r.Context(), req); err != nil {
		slog.Error("UpdateLeaveType service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave type updated successfully", nil)
}

// ListLeaveTypes implements LeaveHandler.
func (h *LeaveHandlerImpl) ListLeaveTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.leaveService.ListLeaveTypes(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, types)
}

// DeleteLeaveType implements LeaveHandler.
func (h *LeaveHandlerImpl) DeleteLeaveType(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.leaveService.DeleteLeaveType(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Leave type deleted", "leave_type_id", id)
	response.SuccessWithMessage(w, "Leave type deleted successfully", nil)
}

// SetQuota implements LeaveHandler.
func (h *LeaveHandlerImpl) SetQuota(w http.ResponseWriter, r *http.Request) {
	var req leave.SetQuotaRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SetQuota decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	quota, err := h.leaveService.SetQuota(r.Context(), req)
	if err != nil {
		slog.Error("SetQuota service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Leave quota set", "employee_id", req.EmployeeID, "leave_type_id", req.LeaveTypeID, "year", req.Year)
	response.SuccessWithMessage(w, "Leave quota set successfully", quota)
}

// GetMyBalances implements LeaveHandler.
func (h *LeaveHandlerImpl) GetMyBalances(w http.ResponseWriter, r *http.Request) {
	balances, err := h.leaveService.GetMyBalances(r.Context(), yearFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, balances)
}

// GetBalances implements LeaveHandler.
func (h *LeaveHandlerImpl) GetBalances(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	balances, err := h.leaveService.GetBalances(r.Context(), employeeID, yearFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, balances)
}

// Apply implements LeaveHandler.
func (h *LeaveHandlerImpl) Apply(w http.ResponseWriter, r *http.Request) {
	var req leave.ApplyRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Apply decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	application, err := h.leaveService.Apply(r.Context(), req)
	if err != nil {
		slog.Error("Apply service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Leave application submitted", "application_id", application.ID)
	response.Created(w, "Leave application submitted successfully", application)
}

// Approve implements LeaveHandler.
func (h *LeaveHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.leaveService.Approve(r.Context(), id); err != nil {
		slog.Error("Approve service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Leave application approved", "application_id", id)
	response.SuccessWithMessage(w, "Leave application approved", nil)
}

// Reject implements LeaveHandler.
func (h *LeaveHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.leaveService.Reject(r.Context(), id); err != nil {
		slog.Error("Reject service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Leave application rejected", "application_id", id)
	response.SuccessWithMessage(w, "Leave application rejected", nil)
}

func applicationFilterFromQuery(r *http.Request) leave.ApplicationFilter {
	page, limit := queryPage(r)
	return leave.ApplicationFilter{
		EmployeeID:  queryString(r, "employee_id"),
		LeaveTypeID: queryString(r, "leave_type_id"),
		Status:      queryString(r, "status"),
		Year:        queryInt(r, "year"),
		Page:        page,
		Limit:       limit,
	}
}

// ListApplications implements LeaveHandler.
func (h *LeaveHandlerImpl) ListApplications(w http.ResponseWriter, r *http.Request) {
	list, err := h.leaveService.ListApplications(r.Context(), applicationFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, list.Applications, &response.Meta{
		Page:       list.Page,
		Limit:      list.Limit,
		TotalItems: list.TotalItems,
	})
}

// ListMyApplications implements LeaveHandler.
func (h *LeaveHandlerImpl) ListMyApplications(w http.ResponseWriter, r *http.Request) {
	list, err := h.leaveService.ListMyApplications(r.Context(), applicationFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, list.Applications, &response.Meta{
		Page:       list.Page,
		Limit:      list.Limit,
		TotalItems: list.TotalItems,
	})
}

// GetApplication implements LeaveHandler.
func (h *LeaveHandlerImpl) GetApplication(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	application, err := h.leaveService.GetApplication(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, application)
}
