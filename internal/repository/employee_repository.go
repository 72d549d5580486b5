package repository

import (
	"context"
	"errors"

	"github.com/employee-management-api/internal/domain"
	"gorm.io/gorm"
)

// EmployeeRepository определяет интерфейс для работы с сотрудниками
type EmployeeRepository interface {
	GetAll(ctx context.Context) ([]domain.Employee, error)
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	Create(ctx context.Context, emp *domain.Employee) error
	Update(ctx context.Context, emp *domain.Employee) error
	Delete(ctx context.Context, id int64) error
	CountByDepartmentID(ctx context.Context, departmentID int64) (int64, error)
}

type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository создаёт новый экземпляр репозитория
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

// GetAll возвращает всех сотрудников с подгруженными отделами
// в порядке, в котором их вернуло хранилище
func (r *employeeRepository) GetAll(ctx context.Context) ([]domain.Employee, error) {
	var employees []domain.Employee
	err := r.db.WithContext(ctx).
		Preload("Department").
		Order("id ASC").
		Find(&employees).Error
	return employees, err
}

func (r *employeeRepository) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	var emp domain.Employee
	err := r.db.WithContext(ctx).Preload("Department").First(&emp, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &emp, nil
}

func (r *employeeRepository) Create(ctx context.Context, emp *domain.Employee) error {
	return r.db.WithContext(ctx).Create(emp).Error
}

func (r *employeeRepository) Update(ctx context.Context, emp *domain.Employee) error {
	return r.db.WithContext(ctx).Save(emp).Error
}

func (r *employeeRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.Employee{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepository) CountByDepartmentID(ctx context.Context, departmentID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Employee{}).
		Where("department_id = ?", departmentID).
		Count(&count).Error
	return count, err
}
