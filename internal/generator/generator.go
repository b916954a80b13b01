// Package generator - адаптер к внешнему генератору документов
// (резюме и сопроводительные письма). Сама модель не специфицируется:
// адаптер отвечает за таймаут, классификацию ошибок, лимиты и журнал вызовов.
package generator

import (
	"context"
	"errors"

	"jobtracker_backend/internal/models"
)

var (
	ErrUnavailable = errors.New("document generator unavailable")
	ErrTimeout     = errors.New("document generator timed out")
	// ErrRejected - генератор отказал или вернул пустой текст, повтор не поможет
	ErrRejected    = errors.New("document generator rejected the request")
	ErrRateLimited = errors.New("document generation rate limit exceeded")
)

// Applicant - данные профиля соискателя для генерации
type Applicant struct {
	ID         string
	FullName   string
	Email      string
	Phone      string
	Skills     []string
	Experience string
	Education  string
}

// JobSnapshot - поля вакансии, которые видит генератор
type JobSnapshot struct {
	ID           string
	Title        string
	Company      string
	Location     string
	Description  string
	Requirements string
}

type Request struct {
	Kind      models.DocumentKind
	Applicant Applicant
	Job       JobSnapshot
}

// Generator - любой источник текста документа.
// Реализации не хранят состояние между вызовами.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// GeneratorFunc позволяет использовать функцию как Generator
type GeneratorFunc func(ctx context.Context, req Request) (string, error)

func (f GeneratorFunc) Generate(ctx context.Context, req Request) (string, error) {
	return f(ctx, req)
}
