package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/employee-management-api/internal/domain"
	"github.com/employee-management-api/internal/dto"
	"github.com/shopspring/decimal"
)

func setupEmployeeService() (*employeeService, *mockEmployeeRepo, *mockDepartmentRepo) {
	empRepo := newMockEmployeeRepo()
	deptRepo := newMockDepartmentRepo()
	svc := NewEmployeeService(empRepo, deptRepo).(*employeeService)
	return svc, empRepo, deptRepo
}

func validEmployeeRequest(departmentID int64) *dto.SaveEmployeeRequest {
	return &dto.SaveEmployeeRequest{
		FirstName:    "Bob",
		LastName:     "Smith",
		Email:        "bob@x.com",
		HireDate:     time.Now().Format("2006-01-02"),
		Salary:       decimal.NewFromInt(1000),
		DepartmentID: departmentID,
	}
}

func TestEmployeeCreate_Success(t *testing.T) {
	svc, _, deptRepo := setupEmployeeService()

	dept := &domain.Department{Name: "IT"}
	deptRepo.Create(context.Background(), dept)

	emp, err := svc.Create(context.Background(), validEmployeeRequest(dept.ID))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if emp.ID == 0 {
		t.Error("expected assigned id")
	}
	if emp.DepartmentID != dept.ID {
		t.Errorf("expected department %d, got %d", dept.ID, emp.DepartmentID)
	}
}

func TestEmployeeCreate_HireDateTodayIsAllowed(t *testing.T) {
	svc, _, deptRepo := setupEmployeeService()

	dept := &domain.Department{Name: "IT"}
	deptRepo.Create(context.Background(), dept)

	req := validEmployeeRequest(dept.ID)
	req.HireDate = time.Now().Format("2006-01-02")

	if _, err := svc.Create(context.Background(), req); err != nil {
		t.Fatalf("hire date of today must pass validation: %v", err)
	}
}

func TestEmployeeCreate_FutureHireDateAlwaysRejected(t *testing.T) {
	svc, empRepo, deptRepo := setupEmployeeService()

	dept := &domain.Department{Name: "IT"}
	deptRepo.Create(context.Background(), dept)

	// Остальные поля валидны, отказ должен прийти именно по дате
	req := validEmployeeRequest(dept.ID)
	req.HireDate = time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	_, err := svc.Create(context.Background(), req)

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Fields["hire_date"] != "cannot be in the future" {
		t.Errorf("expected future hire date message, got %v", verr.Fields)
	}
	if len(empRepo.employees) != 0 {
		t.Error("validation failure must not persist anything")
	}
}

func TestEmployeeCreate_OneMessagePerInvalidField(t *testing.T) {
	svc, _, deptRepo := setupEmployeeService()

	dept := &domain.Department{Name: "IT"}
	deptRepo.Create(context.Background(), dept)

	_, err := svc.Create(context.Background(), &dto.SaveEmployeeRequest{
		FirstName:    "VeryLongFirstNameOverTwentyLetters",
		LastName:     "Sm1th",
		Email:        "broken",
		HireDate:     "15.01.2024",
		Salary:       decimal.Zero,
		DepartmentID: dept.ID,
	})

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	expected := []string{"first_name", "last_name", "email", "hire_date", "salary"}
	for _, field := range expected {
		if _, ok := verr.Fields[field]; !ok {
			t.Errorf("expected a message for field %q, got %v", field, verr.Fields)
		}
	}
	if len(verr.Fields) != len(expected) {
		t.Errorf("expected %d field messages, got %d: %v", len(expected), len(verr.Fields), verr.Fields)
	}
}

func TestEmployeeCreate_NegativeSalary(t *testing.T) {
	svc, _, deptRepo := setupEmployeeService()

	dept := &domain.Department{Name: "IT"}
	deptRepo.Create(context.Background(), dept)

	req := validEmployeeRequest(dept.ID)
	req.Salary = decimal.NewFromInt(-1)

	_, err := svc.Create(context.Background(), req)

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Fields["salary"] != "must be greater than zero" {
		t.Errorf("expected salary message, got %v", verr.Fields)
	}
}

func TestEmployeeCreate_MissingDepartment(t *testing.T) {
	svc, empRepo, _ := setupEmployeeService()

	_, err := svc.Create(context.Background(), validEmployeeRequest(999))
	if !errors.Is(err, domain.ErrDepartmentNotFound) {
		t.Fatalf("expected ErrDepartmentNotFound, got %v", err)
	}
	if len(empRepo.employees) != 0 {
		t.Error("failed create must not persist anything")
	}
}

func TestEmployeeUpdate_ReplacesMutableFields(t *testing.T) {
	svc, _, deptRepo := setupEmployeeService()

	it := &domain.Department{Name: "IT"}
	hr := &domain.Department{Name: "HR"}
	deptRepo.Create(context.Background(), it)
	deptRepo.Create(context.Background(), hr)

	created, err := svc.Create(context.Background(), validEmployeeRequest(it.ID))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := &dto.SaveEmployeeRequest{
		FirstName:    "Alice",
		LastName:     "Jones",
		Email:        "alice@x.com",
		HireDate:     time.Now().AddDate(0, -1, 0).Format("2006-01-02"),
		Salary:       decimal.NewFromInt(2000),
		DepartmentID: hr.ID,
	}

	updated, err := svc.Update(context.Background(), created.ID, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.ID != created.ID {
		t.Errorf("id must stay immutable, got %d", updated.ID)
	}
	if updated.FirstName != "Alice" || updated.DepartmentID != hr.ID {
		t.Errorf("expected replaced fields, got %+v", updated)
	}
	if !updated.Salary.Equal(decimal.NewFromInt(2000)) {
		t.Errorf("expected salary 2000, got %s", updated.Salary)
	}
}

func TestEmployeeUpdate_NotFound(t *testing.T) {
	svc, _, deptRepo := setupEmployeeService()

	dept := &domain.Department{Name: "IT"}
	deptRepo.Create(context.Background(), dept)

	_, err := svc.Update(context.Background(), 999, validEmployeeRequest(dept.ID))
	if !errors.Is(err, domain.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestEmployeeDelete(t *testing.T) {
	svc, empRepo, deptRepo := setupEmployeeService()

	dept := &domain.Department{Name: "IT"}
	deptRepo.Create(context.Background(), dept)
	emp, _ := svc.Create(context.Background(), validEmployeeRequest(dept.ID))

	if err := svc.Delete(context.Background(), emp.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(empRepo.employees) != 0 {
		t.Error("expected employee collection to be empty")
	}

	if err := svc.Delete(context.Background(), emp.ID); !errors.Is(err, domain.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}
