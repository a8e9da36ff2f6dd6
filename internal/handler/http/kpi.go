package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/tokosakti/backoffice-go/internal/domain/kpi"
	"github.com/tokosakti/backoffice-go/internal/handler/http/response"
)

type KPIHandler interface {
	// Definitions
	CreateDefinition(w http.ResponseWriter, r *http.Request)
	GetDefinition(w http.ResponseWriter, r *http.Request)
	ListDefinitions(w http.ResponseWriter, r *http.Request)
	ActivateDefinition(w http.ResponseWriter, r *http.Request)
	DeactivateDefinition(w http.ResponseWriter, r *http.Request)

	// Assignments
	AssignToEmployee(w http.ResponseWriter, r *http.Request)
	GetEmployeeAssignments(w http.ResponseWriter, r *http.Request)
	DeactivateAssignment(w http.ResponseWriter, r *http.Request)

	// Results
	RecordResult(w http.ResponseWriter, r *http.Request)
	GetMonthlyResults(w http.ResponseWriter, r *http.Request)
	GetMonthlyBonus(w http.ResponseWriter, r *http.Request)
}

type kpiHandlerImpl struct {
	kpiService kpi.Service
}

func NewKPIHandler(kpiService kpi.Service) KPIHandler {
	return &kpiHandlerImpl{kpiService: kpiService}
}

// ========== DEFINITIONS ==========

func (h *kpiHandlerImpl) CreateDefinition(w http.ResponseWriter, r *http.Request) {
	var req kpi.CreateDefinitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.kpiService.CreateDefinition(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "KPI definition created", result)
}

func (h *kpiHandlerImpl) GetDefinition(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Definition ID is required", nil)
		return
	}

	result, err := h.kpiService.GetDefinition(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *kpiHandlerImpl) ListDefinitions(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active_only") == "true"

	result, err := h.kpiService.ListDefinitions(r.Context(), activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *kpiHandlerImpl) ActivateDefinition(w http.ResponseWriter, r *http.Request) {
	h.setDefinitionActive(w, r, true, "KPI definition activated")
}

func (h *kpiHandlerImpl) DeactivateDefinition(w http.ResponseWriter, r *http.Request) {
	h.setDefinitionActive(w, r, false, "KPI definition deactivated")
}

func (h *kpiHandlerImpl) setDefinitionActive(w http.ResponseWriter, r *http.Request, active bool, message string) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Definition ID is required", nil)
		return
	}

	if err := h.kpiService.SetDefinitionActive(r.Context(), id, active); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, message, nil)
}

// ========== ASSIGNMENTS ==========

func (h *kpiHandlerImpl) AssignToEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	var req kpi.CreateAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.EmployeeID = employeeID

	result, err := h.kpiService.AssignToEmployee(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "KPI assigned to employee", result)
}

func (h *kpiHandlerImpl) GetEmployeeAssignments(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	asOf := time.Now()
	if asOfStr := r.URL.Query().Get("as_of"); asOfStr != "" {
		parsed, err := time.Parse("2006-01-02", asOfStr)
		if err != nil {
			response.BadRequest(w, "Invalid as_of date", nil)
			return
		}
		asOf = parsed
	}

	result, err := h.kpiService.GetActiveAssignments(r.Context(), employeeID, asOf)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *kpiHandlerImpl) DeactivateAssignment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Assignment ID is required", nil)
		return
	}

	if err := h.kpiService.DeactivateAssignment(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "KPI assignment deactivated", nil)
}

// ========== RESULTS ==========

func (h *kpiHandlerImpl) RecordResult(w http.ResponseWriter, r *http.Request) {
	var req kpi.RecordResultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.kpiService.RecordResult(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "KPI result recorded", result)
}

func (h *kpiHandlerImpl) GetMonthlyResults(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	year, month, ok := parsePeriodQuery(w, r)
	if !ok {
		return
	}

	result, err := h.kpiService.GetMonthlyResults(r.Context(), employeeID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *kpiHandlerImpl) GetMonthlyBonus(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	year, month, ok := parsePeriodQuery(w, r)
	if !ok {
		return
	}

	result, err := h.kpiService.CalculateMonthlyBonus(r.Context(), employeeID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func parsePeriodQuery(w http.ResponseWriter, r *http.Request) (year, month int, ok bool) {
	yearStr := r.URL.Query().Get("period_year")
	monthStr := r.URL.Query().Get("period_month")

	if yearStr == "" || monthStr == "" {
		response.BadRequest(w, "period_year and period_month are required", nil)
		return 0, 0, false
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		response.BadRequest(w, "Invalid period_year", nil)
		return 0, 0, false
	}

	month, err = strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		response.BadRequest(w, "Invalid period_month", nil)
		return 0, 0, false
	}

	return year, month, true
}
