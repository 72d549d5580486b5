package service

import (
	"context"
	"strings"
	"time"

	"github.com/employee-management-api/internal/domain"
	"github.com/employee-management-api/internal/dto"
	"github.com/employee-management-api/internal/repository"
	"github.com/go-playground/validator/v10"
)

// EmployeeService определяет интерфейс бизнес-логики для сотрудников
type EmployeeService interface {
	GetAll(ctx context.Context) ([]domain.Employee, error)
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	Create(ctx context.Context, req *dto.SaveEmployeeRequest) (*domain.Employee, error)
	Update(ctx context.Context, id int64, req *dto.SaveEmployeeRequest) (*domain.Employee, error)
	Delete(ctx context.Context, id int64) error
}

type employeeService struct {
	empRepo  repository.EmployeeRepository
	deptRepo repository.DepartmentRepository
	validate *validator.Validate
	now      func() time.Time
}

// NewEmployeeService создаёт новый экземпляр сервиса
func NewEmployeeService(empRepo repository.EmployeeRepository, deptRepo repository.DepartmentRepository) EmployeeService {
	return &employeeService{
		empRepo:  empRepo,
		deptRepo: deptRepo,
		validate: newValidator(),
		now:      time.Now,
	}
}

func (s *employeeService) GetAll(ctx context.Context) ([]domain.Employee, error) {
	return s.empRepo.GetAll(ctx)
}

func (s *employeeService) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	return s.empRepo.GetByID(ctx, id)
}

func (s *employeeService) Create(ctx context.Context, req *dto.SaveEmployeeRequest) (*domain.Employee, error) {
	hireDate, err := s.validateFields(req)
	if err != nil {
		return nil, err
	}

	// Ссылочная целостность: отдел должен существовать
	if _, err := s.deptRepo.GetByID(ctx, req.DepartmentID); err != nil {
		return nil, err
	}

	emp := &domain.Employee{
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Email:        strings.TrimSpace(req.Email),
		HireDate:     hireDate,
		Salary:       req.Salary,
		DepartmentID: req.DepartmentID,
	}

	if err := s.empRepo.Create(ctx, emp); err != nil {
		return nil, err
	}

	return emp, nil
}

func (s *employeeService) Update(ctx context.Context, id int64, req *dto.SaveEmployeeRequest) (*domain.Employee, error) {
	emp, err := s.empRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	hireDate, err := s.validateFields(req)
	if err != nil {
		return nil, err
	}

	if _, err := s.deptRepo.GetByID(ctx, req.DepartmentID); err != nil {
		return nil, err
	}

	// Полная замена изменяемых полей; ID остаётся прежним
	emp.FirstName = strings.TrimSpace(req.FirstName)
	emp.LastName = strings.TrimSpace(req.LastName)
	emp.Email = strings.TrimSpace(req.Email)
	emp.HireDate = hireDate
	emp.Salary = req.Salary
	emp.DepartmentID = req.DepartmentID
	emp.Department = nil

	if err := s.empRepo.Update(ctx, emp); err != nil {
		return nil, err
	}

	return emp, nil
}

func (s *employeeService) Delete(ctx context.Context, id int64) error {
	return s.empRepo.Delete(ctx, id)
}

// validateFields проверяет полевые ограничения записи. Возвращает распарсенную
// дату найма при успехе либо ValidationError с сообщением на каждое поле
func (s *employeeService) validateFields(req *dto.SaveEmployeeRequest) (time.Time, error) {
	verr := domain.NewValidationError()

	if err := checkStruct(s.validate, req, verr); err != nil {
		return time.Time{}, err
	}

	var hireDate time.Time
	if _, ok := verr.Fields["hire_date"]; !ok {
		hireDate, _ = time.Parse("2006-01-02", req.HireDate)
		if hireDate.After(s.today()) {
			verr.Add("hire_date", "cannot be in the future")
		}
	}

	if !req.Salary.IsPositive() {
		verr.Add("salary", "must be greater than zero")
	}

	if verr.HasErrors() {
		return time.Time{}, verr
	}
	return hireDate, nil
}

// today возвращает текущую календарную дату как полночь UTC,
// в том же виде, в котором парсится hire_date
func (s *employeeService) today() time.Time {
	now := s.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
