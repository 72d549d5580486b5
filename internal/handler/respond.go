package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/employee-management-api/internal/domain"
	"github.com/employee-management-api/internal/dto"
)

func respondJSON(logger *slog.Logger, w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode response", slog.Any("error", err))
	}
}

func respondError(logger *slog.Logger, w http.ResponseWriter, status int, errMsg, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	resp := dto.ErrorResponse{Error: errMsg}
	if details != "" {
		resp.Message = details
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Error("failed to encode error response", slog.Any("error", err))
	}
}

// respondValidationError отдаёт 400 с отдельным сообщением на каждое поле
func respondValidationError(logger *slog.Logger, w http.ResponseWriter, verr *domain.ValidationError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	resp := dto.ErrorResponse{
		Error:  "validation error",
		Fields: verr.Fields,
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Error("failed to encode error response", slog.Any("error", err))
	}
}

func toEmployeeResponse(emp *domain.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:             emp.ID,
		FirstName:      emp.FirstName,
		LastName:       emp.LastName,
		Email:          emp.Email,
		HireDate:       emp.HireDate.Format("2006-01-02"),
		Salary:         emp.Salary,
		DepartmentID:   emp.DepartmentID,
		DepartmentName: emp.DepartmentName(),
		CreatedAt:      emp.CreatedAt,
	}
}

func toEmployeeResponses(employees []domain.Employee) []dto.EmployeeResponse {
	items := make([]dto.EmployeeResponse, len(employees))
	for i := range employees {
		items[i] = toEmployeeResponse(&employees[i])
	}
	return items
}

func toDepartmentResponse(dept *domain.Department) dto.DepartmentResponse {
	return dto.DepartmentResponse{
		ID:        dept.ID,
		Name:      dept.Name,
		CreatedAt: dept.CreatedAt,
	}
}

func toDepartmentResponses(depts []domain.Department) []dto.DepartmentResponse {
	items := make([]dto.DepartmentResponse, len(depts))
	for i := range depts {
		items[i] = toDepartmentResponse(&depts[i])
	}
	return items
}
