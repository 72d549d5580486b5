package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaveEmployeeRequest - запрос на создание или обновление сотрудника
type SaveEmployeeRequest struct {
	FirstName    string          `json:"first_name" validate:"required,alpha,max=20"`
	LastName     string          `json:"last_name" validate:"required,alpha,max=20"`
	Email        string          `json:"email" validate:"required,email"`
	HireDate     string          `json:"hire_date" validate:"required,datetime=2006-01-02"`
	Salary       decimal.Decimal `json:"salary"`
	DepartmentID int64           `json:"department_id" validate:"required,min=1"`
}

// SaveDepartmentRequest - запрос на создание или обновление отдела
type SaveDepartmentRequest struct {
	Name string `json:"name" validate:"required,max=50"`
}

// EmployeeResponse - ответ с данными сотрудника
type EmployeeResponse struct {
	ID             int64           `json:"id"`
	FirstName      string          `json:"first_name"`
	LastName       string          `json:"last_name"`
	Email          string          `json:"email"`
	HireDate       string          `json:"hire_date"`
	Salary         decimal.Decimal `json:"salary"`
	DepartmentID   int64           `json:"department_id"`
	DepartmentName string          `json:"department_name,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

// DepartmentResponse - ответ с данными отдела
type DepartmentResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// EmployeeListResponse - ответ списка сотрудников с параметрами сортировки
type EmployeeListResponse struct {
	Items []EmployeeResponse `json:"items"`
	Sort  SortState          `json:"sort"`
}

// SortState - активная сортировка и направления переключения для каждой колонки
type SortState struct {
	Key  string            `json:"key"`
	Dir  string            `json:"dir"`
	Next map[string]string `json:"next"`
}

// DashboardResponse - сводка для главной страницы
type DashboardResponse struct {
	TotalEmployees  int                  `json:"total_employees"`
	SearchTerm      string               `json:"search_term"`
	Employees       []EmployeeResponse   `json:"employees"`
	Departments     []DepartmentResponse `json:"departments"`
	EmployeesByDept map[string]int       `json:"employees_by_department"`
	RecentHires     []EmployeeResponse   `json:"recent_hires"`
}

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}
