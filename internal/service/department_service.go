package service

import (
	"context"
	"strings"

	"github.com/employee-management-api/internal/domain"
	"github.com/employee-management-api/internal/dto"
	"github.com/employee-management-api/internal/repository"
	"github.com/go-playground/validator/v10"
)

// DepartmentService определяет интерфейс бизнес-логики для отделов
type DepartmentService interface {
	GetAll(ctx context.Context) ([]domain.Department, error)
	GetByID(ctx context.Context, id int64) (*domain.Department, error)
	Create(ctx context.Context, req *dto.SaveDepartmentRequest) (*domain.Department, error)
	Update(ctx context.Context, id int64, req *dto.SaveDepartmentRequest) (*domain.Department, error)
	Delete(ctx context.Context, id int64) error
}

type departmentService struct {
	deptRepo repository.DepartmentRepository
	empRepo  repository.EmployeeRepository
	validate *validator.Validate
}

// NewDepartmentService создаёт новый экземпляр сервиса
func NewDepartmentService(deptRepo repository.DepartmentRepository, empRepo repository.EmployeeRepository) DepartmentService {
	return &departmentService{
		deptRepo: deptRepo,
		empRepo:  empRepo,
		validate: newValidator(),
	}
}

func (s *departmentService) GetAll(ctx context.Context) ([]domain.Department, error) {
	return s.deptRepo.GetAll(ctx)
}

func (s *departmentService) GetByID(ctx context.Context, id int64) (*domain.Department, error) {
	return s.deptRepo.GetByID(ctx, id)
}

func (s *departmentService) Create(ctx context.Context, req *dto.SaveDepartmentRequest) (*domain.Department, error) {
	name, err := s.validateName(req)
	if err != nil {
		return nil, err
	}

	// Проверяем уникальность имени до записи. Между проверкой и записью
	// нет блокировки, гонка параллельных создании принята как ограничение
	exists, err := s.deptRepo.ExistsByName(ctx, name, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateDepartmentName
	}

	dept := &domain.Department{Name: name}

	if err := s.deptRepo.Create(ctx, dept); err != nil {
		return nil, err
	}

	return dept, nil
}

func (s *departmentService) Update(ctx context.Context, id int64, req *dto.SaveDepartmentRequest) (*domain.Department, error) {
	dept, err := s.deptRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name, err := s.validateName(req)
	if err != nil {
		return nil, err
	}

	// Переименование отдела в его же текущее имя допустимо:
	// проверка уникальности исключает сам отдел
	exists, err := s.deptRepo.ExistsByName(ctx, name, &id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateDepartmentName
	}

	dept.Name = name

	if err := s.deptRepo.Update(ctx, dept); err != nil {
		return nil, err
	}

	return dept, nil
}

// Delete удаляет отдел, если на него не ссылается ни один сотрудник.
// Иначе возвращает ErrDepartmentHasEmployees, ничего не удаляя
func (s *departmentService) Delete(ctx context.Context, id int64) error {
	if _, err := s.deptRepo.GetByID(ctx, id); err != nil {
		return err
	}

	count, err := s.empRepo.CountByDepartmentID(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrDepartmentHasEmployees
	}

	return s.deptRepo.Delete(ctx, id)
}

func (s *departmentService) validateName(req *dto.SaveDepartmentRequest) (string, error) {
	verr := domain.NewValidationError()
	if err := checkStruct(s.validate, req, verr); err != nil {
		return "", err
	}
	if verr.HasErrors() {
		return "", verr
	}
	return strings.TrimSpace(req.Name), nil
}
