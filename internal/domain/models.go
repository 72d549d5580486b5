package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Department представляет отдел компании
type Department struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"type:varchar(50);not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	Employees []Employee `json:"employees,omitempty" gorm:"foreignKey:DepartmentID"`
}

// TableName задаёт имя таблицы для GORM
func (Department) TableName() string {
	return "departments"
}

// Employee представляет сотрудника
type Employee struct {
	ID           int64           `json:"id" gorm:"primaryKey;autoIncrement"`
	FirstName    string          `json:"first_name" gorm:"type:varchar(20);not null"`
	LastName     string          `json:"last_name" gorm:"type:varchar(20);not null"`
	Email        string          `json:"email" gorm:"type:varchar(254);not null"`
	HireDate     time.Time       `json:"hire_date" gorm:"type:date;not null"`
	Salary       decimal.Decimal `json:"salary" gorm:"type:decimal(12,2);not null"`
	DepartmentID int64           `json:"department_id" gorm:"not null;index"`
	CreatedAt    time.Time       `json:"created_at" gorm:"autoCreateTime"`

	Department *Department `json:"-" gorm:"foreignKey:DepartmentID"`
}

// TableName задаёт имя таблицы для GORM
func (Employee) TableName() string {
	return "employees"
}

// DepartmentName возвращает имя отдела сотрудника или пустую строку,
// если отдел не был подгружен
func (e *Employee) DepartmentName() string {
	if e.Department == nil {
		return ""
	}
	return e.Department.Name
}
