package service

import (
	"errors"
	"reflect"
	"strings"

	"github.com/employee-management-api/internal/domain"
	"github.com/go-playground/validator/v10"
)

// newValidator создаёт валидатор, который в ошибках использует
// имена полей из json-тегов вместо имён полей структуры
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// checkStruct прогоняет правила валидации по тегам и складывает
// по одному сообщению на каждое невалидное поле
func checkStruct(v *validator.Validate, req any, verr *domain.ValidationError) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		// Не ошибка полей, а сбой самого валидатора
		return err
	}

	for _, fe := range fieldErrors {
		verr.Add(fe.Field(), messageFor(fe))
	}
	return nil
}

// messageFor переводит нарушенное правило в сообщение для пользователя
func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "alpha":
		return "must contain only letters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "min":
		return "must be at least " + fe.Param()
	case "email":
		return "must be a valid email address"
	case "datetime":
		return "must be a date in format " + fe.Param()
	default:
		return "is invalid"
	}
}
