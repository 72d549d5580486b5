package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/employee-management-api/internal/domain"
	"github.com/employee-management-api/internal/dto"
	"github.com/employee-management-api/internal/service"
)

type DepartmentHandler struct {
	deptService service.DepartmentService
	logger      *slog.Logger
	faults      *FaultReporter
}

func NewDepartmentHandler(deptService service.DepartmentService, logger *slog.Logger, faults *FaultReporter) *DepartmentHandler {
	return &DepartmentHandler{
		deptService: deptService,
		logger:      logger,
		faults:      faults,
	}
}

func (h *DepartmentHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	depts, err := h.deptService.GetAll(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, toDepartmentResponses(depts))
}

func (h *DepartmentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := extractID(r, "/departments/")
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid department id", err.Error())
		return
	}

	dept, err := h.deptService.GetByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, toDepartmentResponse(dept))
}

func (h *DepartmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.SaveDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	dept, err := h.deptService.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	respondJSON(h.logger, w, http.StatusCreated, toDepartmentResponse(dept))
}

func (h *DepartmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := extractID(r, "/departments/")
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid department id", err.Error())
		return
	}

	var req dto.SaveDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	dept, err := h.deptService.Update(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, toDepartmentResponse(dept))
}

func (h *DepartmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := extractID(r, "/departments/")
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid department id", err.Error())
		return
	}

	if err := h.deptService.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *DepartmentHandler) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		respondValidationError(h.logger, w, verr)
	case errors.Is(err, domain.ErrDepartmentNotFound):
		respondError(h.logger, w, http.StatusNotFound, "department not found", "")
	case errors.Is(err, domain.ErrDuplicateDepartmentName):
		respondError(h.logger, w, http.StatusConflict, "department with this name already exists", "")
	case errors.Is(err, domain.ErrDepartmentHasEmployees):
		respondError(h.logger, w, http.StatusConflict, "cannot delete department with existing employees", "")
	default:
		h.faults.Report(w, r, err)
	}
}
