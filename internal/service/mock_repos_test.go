package service

import (
	"context"
	"time"

	"github.com/employee-management-api/internal/domain"
)

type mockDepartmentRepo struct {
	departments []*domain.Department
	nextID      int64
}

func newMockDepartmentRepo() *mockDepartmentRepo {
	return &mockDepartmentRepo{nextID: 1}
}

func (m *mockDepartmentRepo) GetAll(ctx context.Context) ([]domain.Department, error) {
	result := make([]domain.Department, 0, len(m.departments))
	for _, dept := range m.departments {
		result = append(result, *dept)
	}
	return result, nil
}

func (m *mockDepartmentRepo) GetByID(ctx context.Context, id int64) (*domain.Department, error) {
	for _, dept := range m.departments {
		if dept.ID == id {
			return dept, nil
		}
	}
	return nil, domain.ErrDepartmentNotFound
}

func (m *mockDepartmentRepo) Create(ctx context.Context, dept *domain.Department) error {
	dept.ID = m.nextID
	dept.CreatedAt = time.Now()
	m.nextID++
	m.departments = append(m.departments, dept)
	return nil
}

func (m *mockDepartmentRepo) Update(ctx context.Context, dept *domain.Department) error {
	for i, d := range m.departments {
		if d.ID == dept.ID {
			m.departments[i] = dept
			return nil
		}
	}
	return domain.ErrDepartmentNotFound
}

func (m *mockDepartmentRepo) Delete(ctx context.Context, id int64) error {
	for i, d := range m.departments {
		if d.ID == id {
			m.departments = append(m.departments[:i], m.departments[i+1:]...)
			return nil
		}
	}
	return domain.ErrDepartmentNotFound
}

func (m *mockDepartmentRepo) ExistsByName(ctx context.Context, name string, excludeID *int64) (bool, error) {
	for _, dept := range m.departments {
		if dept.Name == name {
			if excludeID == nil || dept.ID != *excludeID {
				return true, nil
			}
		}
	}
	return false, nil
}

type mockEmployeeRepo struct {
	employees []*domain.Employee
	nextID    int64
}

func newMockEmployeeRepo() *mockEmployeeRepo {
	return &mockEmployeeRepo{nextID: 1}
}

func (m *mockEmployeeRepo) GetAll(ctx context.Context) ([]domain.Employee, error) {
	result := make([]domain.Employee, 0, len(m.employees))
	for _, emp := range m.employees {
		result = append(result, *emp)
	}
	return result, nil
}

func (m *mockEmployeeRepo) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	for _, emp := range m.employees {
		if emp.ID == id {
			copied := *emp
			return &copied, nil
		}
	}
	return nil, domain.ErrEmployeeNotFound
}

func (m *mockEmployeeRepo) Create(ctx context.Context, emp *domain.Employee) error {
	emp.ID = m.nextID
	emp.CreatedAt = time.Now()
	m.nextID++
	m.employees = append(m.employees, emp)
	return nil
}

func (m *mockEmployeeRepo) Update(ctx context.Context, emp *domain.Employee) error {
	for i, e := range m.employees {
		if e.ID == emp.ID {
			m.employees[i] = emp
			return nil
		}
	}
	return domain.ErrEmployeeNotFound
}

func (m *mockEmployeeRepo) Delete(ctx context.Context, id int64) error {
	for i, e := range m.employees {
		if e.ID == id {
			m.employees = append(m.employees[:i], m.employees[i+1:]...)
			return nil
		}
	}
	return domain.ErrEmployeeNotFound
}

func (m *mockEmployeeRepo) CountByDepartmentID(ctx context.Context, departmentID int64) (int64, error) {
	var count int64
	for _, emp := range m.employees {
		if emp.DepartmentID == departmentID {
			count++
		}
	}
	return count, nil
}
