package validator

import (
	"log"

	"jobtracker_backend/internal/models"
	"jobtracker_backend/internal/utils"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules регистрирует кастомные функции валидации
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// Перечисления из statuses.go
	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-job-type", validateJobType)
	mustRegister("is-document-kind", validateDocumentKind)

	// 'not-blank': строка не пустая и не из одних пробелов
	mustRegister("not-blank", validateNotBlank)
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // Пустые значения проверяет 'required'
	}
	return models.UserRole(value).IsValid()
}

func validateJobType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.JobType(value).IsValid()
}

func validateDocumentKind(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.DocumentKind(value).IsValid()
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return !utils.IsBlank(fl.Field().String())
}
