package domain

import (
	"errors"
	"sort"
	"strings"
)

// Определение бизнес-ошибок
var (
	ErrDepartmentNotFound      = errors.New("department not found")
	ErrEmployeeNotFound        = errors.New("employee not found")
	ErrDuplicateDepartmentName = errors.New("department with this name already exists")
	ErrDepartmentHasEmployees  = errors.New("department still has employees assigned to it")
)

// ValidationError содержит ошибки валидации полей записи:
// одно сообщение на каждое невалидное поле
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		parts = append(parts, field)
	}
	sort.Strings(parts)
	return "validation failed: " + strings.Join(parts, ", ")
}

// NewValidationError создаёт пустую ошибку валидации
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

// Add добавляет сообщение для поля; первое сообщение на поле выигрывает
func (e *ValidationError) Add(field, message string) {
	if _, ok := e.Fields[field]; !ok {
		e.Fields[field] = message
	}
}

// HasErrors сообщает, есть ли хотя бы одно невалидное поле
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}
