package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/employee-management-api/internal/domain"
	"github.com/employee-management-api/internal/dto"
	"github.com/employee-management-api/internal/listing"
	"github.com/employee-management-api/internal/service"
)

type EmployeeHandler struct {
	empService service.EmployeeService
	logger     *slog.Logger
	faults     *FaultReporter
}

func NewEmployeeHandler(empService service.EmployeeService, logger *slog.Logger, faults *FaultReporter) *EmployeeHandler {
	return &EmployeeHandler{
		empService: empService,
		logger:     logger,
		faults:     faults,
	}
}

// List возвращает сотрудников, отсортированных и отфильтрованных
// по параметрам запроса sort, dir и q
func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.empService.GetAll(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	params := listing.Params{
		Query: r.URL.Query().Get("q"),
		Key:   listing.SortKey(r.URL.Query().Get("sort")),
		Dir:   listing.Direction(r.URL.Query().Get("dir")),
	}.Normalize()

	items := listing.Apply(employees, params)

	next := make(map[string]string)
	for key, dir := range listing.NextDirections(params.Key, params.Dir) {
		next[string(key)] = string(dir)
	}

	respondJSON(h.logger, w, http.StatusOK, dto.EmployeeListResponse{
		Items: toEmployeeResponses(items),
		Sort: dto.SortState{
			Key:  string(params.Key),
			Dir:  string(params.Dir),
			Next: next,
		},
	})
}

func (h *EmployeeHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := extractID(r, "/employees/")
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid employee id", err.Error())
		return
	}

	emp, err := h.empService.GetByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, toEmployeeResponse(emp))
}

func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.SaveEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	emp, err := h.empService.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	respondJSON(h.logger, w, http.StatusCreated, toEmployeeResponse(emp))
}

func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := extractID(r, "/employees/")
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid employee id", err.Error())
		return
	}

	var req dto.SaveEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	emp, err := h.empService.Update(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, toEmployeeResponse(emp))
}

func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := extractID(r, "/employees/")
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid employee id", err.Error())
		return
	}

	if err := h.empService.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *EmployeeHandler) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		respondValidationError(h.logger, w, verr)
	case errors.Is(err, domain.ErrEmployeeNotFound):
		respondError(h.logger, w, http.StatusNotFound, "employee not found", "")
	case errors.Is(err, domain.ErrDepartmentNotFound):
		respondError(h.logger, w, http.StatusNotFound, "department not found", "")
	default:
		h.faults.Report(w, r, err)
	}
}

// extractID достаёт числовой идентификатор из пути вида /prefix/{id}
func extractID(r *http.Request, prefix string) (int64, error) {
	path := strings.TrimPrefix(r.URL.Path, prefix)
	path = strings.Trim(path, "/")

	if path == "" {
		return 0, errors.New("id is required")
	}

	return strconv.ParseInt(path, 10, 64)
}
