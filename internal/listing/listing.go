// Package listing сортирует и фильтрует коллекцию сотрудников для отображения.
// Движок чистый: принимает уже загруженную коллекцию и не ходит в хранилище.
package listing

import (
	"sort"
	"strings"

	"github.com/employee-management-api/internal/domain"
)

// SortKey - колонка, по которой сортируется список
type SortKey string

// Direction - направление сортировки
type Direction string

const (
	SortFirstName  SortKey = "first_name"
	SortLastName   SortKey = "last_name"
	SortEmail      SortKey = "email"
	SortHireDate   SortKey = "hire_date"
	SortSalary     SortKey = "salary"
	SortDepartment SortKey = "department"

	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// sortKeys перечисляет все сортируемые колонки
var sortKeys = []SortKey{
	SortFirstName, SortLastName, SortEmail,
	SortHireDate, SortSalary, SortDepartment,
}

// Params - параметры списка, приходящие из строки запроса
type Params struct {
	Query string
	Key   SortKey
	Dir   Direction
}

// Normalize приводит параметры к допустимым значениям:
// неизвестный ключ или направление заменяются значениями по умолчанию
func (p Params) Normalize() Params {
	valid := false
	for _, k := range sortKeys {
		if p.Key == k {
			valid = true
			break
		}
	}
	if !valid {
		p.Key = SortFirstName
	}
	if p.Dir != Descending {
		p.Dir = Ascending
	}
	return p
}

// Apply фильтрует и затем устойчиво сортирует коллекцию.
// Исходный срез не изменяется
func Apply(employees []domain.Employee, p Params) []domain.Employee {
	p = p.Normalize()
	result := Filter(employees, p.Query)

	sort.SliceStable(result, func(i, j int) bool {
		if p.Dir == Descending {
			return less(&result[j], &result[i], p.Key)
		}
		return less(&result[i], &result[j], p.Key)
	})

	return result
}

// Filter оставляет записи, у которых имя, фамилия или имя отдела содержат
// query без учёта регистра. Пустой query возвращает всю коллекцию.
// Запись без подгруженного отдела не совпадает только по условию отдела
func Filter(employees []domain.Employee, query string) []domain.Employee {
	result := make([]domain.Employee, 0, len(employees))

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return append(result, employees...)
	}

	for _, emp := range employees {
		if strings.Contains(strings.ToLower(emp.FirstName), query) ||
			strings.Contains(strings.ToLower(emp.LastName), query) ||
			(emp.Department != nil && strings.Contains(strings.ToLower(emp.Department.Name), query)) {
			result = append(result, emp)
		}
	}

	return result
}

// NextDirections вычисляет направление, которое получит каждая колонка
// при следующем клике: активная колонка переключается, остальные
// сбрасываются на сортировку по возрастанию
func NextDirections(active SortKey, dir Direction) map[SortKey]Direction {
	next := make(map[SortKey]Direction, len(sortKeys))
	for _, key := range sortKeys {
		if key == active && dir == Ascending {
			next[key] = Descending
		} else {
			next[key] = Ascending
		}
	}
	return next
}

func less(a, b *domain.Employee, key SortKey) bool {
	switch key {
	case SortLastName:
		return a.LastName < b.LastName
	case SortEmail:
		return a.Email < b.Email
	case SortHireDate:
		return a.HireDate.Before(b.HireDate)
	case SortSalary:
		return a.Salary.LessThan(b.Salary)
	case SortDepartment:
		return a.DepartmentName() < b.DepartmentName()
	default:
		return a.FirstName < b.FirstName
	}
}
