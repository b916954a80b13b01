package services

import (
	"context"

	"jobtracker_backend/internal/auth"
	"jobtracker_backend/internal/models"
	"jobtracker_backend/internal/validator"
	"jobtracker_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// authorize переводит решение шлюза доступа в ошибку приложения
func authorize(identity *auth.Identity, action auth.Action, resource auth.Resource) error {
	return denied(auth.Authorize(identity, action, resource))
}

// authorizeRole - проверка роли до загрузки ресурса
func authorizeRole(identity *auth.Identity, action auth.Action) error {
	return denied(auth.AuthorizeRole(identity, action))
}

func denied(d auth.Decision) error {
	if d.Allowed {
		return nil
	}
	switch d.Reason {
	case auth.DenyUnauthenticated:
		return apperrors.NewUnauthorizedError("Authentication required")
	case auth.DenyNotOwner:
		return apperrors.ErrNotOwner
	}
	switch d.RequiredRole {
	case models.UserRoleEmployer:
		return apperrors.ErrNotEmployer
	case models.UserRoleJobSeeker:
		return apperrors.ErrNotJobSeeker
	}
	return apperrors.NewForbiddenError("Access denied")
}

// ctxOf возвращает контекст запроса, привязанный DBMiddleware
func ctxOf(db *gorm.DB) context.Context {
	if db != nil && db.Statement != nil && db.Statement.Context != nil {
		return db.Statement.Context
	}
	return context.Background()
}

func validateRequest(v *validator.Validator, req interface{}) error {
	if err := v.Validate(req); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			return apperrors.ValidationError(vErr.Errors)
		}
		return apperrors.InternalError(err)
	}
	return nil
}
