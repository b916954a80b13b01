package apperrors

import (
	"net/http"
)

/*
Предопределенные ошибки домена. Сравниваются через errors.Is по коду,
детали добавляются через WithDetails, который возвращает копию.
*/

// --- Auth & Identity ---

// ErrEmailAlreadyExists - email уже используется (регистронезависимо).
var ErrEmailAlreadyExists = New(
	CodeEmailAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

// ErrInvalidProfile - поля профиля не соответствуют роли.
var ErrInvalidProfile = New(
	CodeInvalidProfile,
	"auth",
	"Profile fields do not match the selected role",
	http.StatusBadRequest,
)

// ErrInvalidCredentials - неверный email или пароль. Одна и та же ошибка
// для неизвестного email и неверного пароля.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

// ErrInvalidSession - токен просрочен, отозван или подделан.
var ErrInvalidSession = New(
	CodeInvalidSession,
	"auth",
	"Session is expired or invalid",
	http.StatusUnauthorized,
)

// --- Access control ---

var ErrNotJobSeeker = New(
	CodeNotJobSeeker,
	"access",
	"Only job seekers can perform this action",
	http.StatusForbidden,
)

var ErrNotEmployer = New(
	CodeNotEmployer,
	"access",
	"Only employers can perform this action",
	http.StatusForbidden,
)

// ErrNotOwner - работодатель не владеет вакансией. Также возвращается для
// несуществующей вакансии, чтобы не раскрывать её наличие.
var ErrNotOwner = New(
	CodeNotOwner,
	"access",
	"Job not found or not owned by you",
	http.StatusForbidden,
)

// --- Jobs ---

var ErrJobNotFound = New(
	CodeJobNotFound,
	"job",
	"Job not found",
	http.StatusNotFound,
)

var ErrJobInactive = New(
	CodeJobInactive,
	"job",
	"Job is no longer accepting applications",
	http.StatusConflict,
)

// --- Applications ---

var ErrDuplicateApplication = New(
	CodeDuplicateApplication,
	"application",
	"You have already applied to this job",
	http.StatusConflict,
)

// ErrIncompleteContent - резюме или сопроводительное письмо пустые.
// Детали содержат список пустых полей.
var ErrIncompleteContent = New(
	CodeIncompleteContent,
	"application",
	"Resume and cover letter must not be empty",
	http.StatusBadRequest,
)

// --- Document generator ---

var ErrGeneratorUnavailable = &AppError{
	Code:      CodeGeneratorUnavailable,
	Domain:    "generator",
	Message:   "Document generator is unavailable",
	Retryable: true,
	HTTPCode:  http.StatusServiceUnavailable,
}

var ErrGeneratorTimeout = &AppError{
	Code:      CodeGeneratorTimeout,
	Domain:    "generator",
	Message:   "Document generator did not respond in time",
	Retryable: true,
	HTTPCode:  http.StatusGatewayTimeout,
}

// ErrGeneratorRejected - генератор отказал или вернул пустой результат. Повтор не поможет.
var ErrGeneratorRejected = &AppError{
	Code:     CodeGeneratorRejected,
	Domain:   "generator",
	Message:  "Document generator rejected the request",
	HTTPCode: http.StatusBadGateway,
}

var ErrGeneratorRateLimited = &AppError{
	Code:      CodeGeneratorRateLimited,
	Domain:    "generator",
	Message:   "Too many generation requests, try again later",
	Retryable: true,
	HTTPCode:  http.StatusTooManyRequests,
}
