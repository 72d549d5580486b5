package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/employee-management-api/internal/domain"
	"github.com/employee-management-api/internal/dto"
	"github.com/employee-management-api/internal/listing"
	"github.com/employee-management-api/internal/service"
)

// recentHireWindow - период, за который найм считается недавним
const recentHireWindow = 30 * 24 * time.Hour

// DashboardHandler собирает сводку по сотрудникам и отделам
type DashboardHandler struct {
	empService  service.EmployeeService
	deptService service.DepartmentService
	logger      *slog.Logger
	faults      *FaultReporter
}

func NewDashboardHandler(
	empService service.EmployeeService,
	deptService service.DepartmentService,
	logger *slog.Logger,
	faults *FaultReporter,
) *DashboardHandler {
	return &DashboardHandler{
		empService:  empService,
		deptService: deptService,
		logger:      logger,
		faults:      faults,
	}
}

// Index отдаёт сводку: общее число сотрудников, списки с учётом поиска,
// численность по отделам и недавние наймы. Поиск "*" эквивалентен пустому
func (h *DashboardHandler) Index(w http.ResponseWriter, r *http.Request) {
	search := strings.TrimSpace(r.URL.Query().Get("search"))
	if search == "*" {
		search = ""
	}

	employees, err := h.empService.GetAll(r.Context())
	if err != nil {
		h.faults.Report(w, r, err)
		return
	}

	departments, err := h.deptService.GetAll(r.Context())
	if err != nil {
		h.faults.Report(w, r, err)
		return
	}

	filteredEmployees := listing.Filter(employees, search)
	filteredDepartments := filterDepartments(departments, search)

	// Численность по отделам считается по полному списку, без учёта поиска
	byDept := make(map[string]int)
	for i := range employees {
		byDept[employees[i].DepartmentName()]++
	}

	cutoff := time.Now().Add(-recentHireWindow)
	recent := make([]domain.Employee, 0)
	for _, emp := range employees {
		if !emp.HireDate.Before(cutoff) {
			recent = append(recent, emp)
		}
	}

	respondJSON(h.logger, w, http.StatusOK, dto.DashboardResponse{
		TotalEmployees:  len(employees),
		SearchTerm:      search,
		Employees:       toEmployeeResponses(filteredEmployees),
		Departments:     toDepartmentResponses(filteredDepartments),
		EmployeesByDept: byDept,
		RecentHires:     toEmployeeResponses(recent),
	})
}

func filterDepartments(depts []domain.Department, search string) []domain.Department {
	if search == "" {
		return depts
	}

	search = strings.ToLower(search)
	result := make([]domain.Department, 0, len(depts))
	for _, dept := range depts {
		if strings.Contains(strings.ToLower(dept.Name), search) {
			result = append(result, dept)
		}
	}
	return result
}
