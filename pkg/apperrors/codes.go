package apperrors

// ErrorCode - тип для кодов ошибок
type ErrorCode string

// Общие, не-доменные коды ошибок
const (
	// Системные и неизвестные ошибки
	CodeInternalError        ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError        ErrorCode = "DATABASE_ERROR"
	CodeExternalServiceError ErrorCode = "EXTERNAL_SERVICE_ERROR"

	// Общие ошибки бизнес-логики
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeAlreadyExists    ErrorCode = "ALREADY_EXISTS"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeConflict         ErrorCode = "CONFLICT"
	CodeLimitExceeded    ErrorCode = "LIMIT_EXCEEDED"

	// Аутентификация и авторизация
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeInvalidSession     ErrorCode = "INVALID_SESSION"
)

// Доменные коды
const (
	CodeEmailAlreadyExists   ErrorCode = "EMAIL_ALREADY_EXISTS"
	CodeInvalidProfile       ErrorCode = "INVALID_PROFILE"
	CodeJobNotFound          ErrorCode = "JOB_NOT_FOUND"
	CodeJobInactive          ErrorCode = "JOB_INACTIVE"
	CodeDuplicateApplication ErrorCode = "DUPLICATE_APPLICATION"
	CodeIncompleteContent    ErrorCode = "INCOMPLETE_CONTENT"
	CodeNotJobSeeker         ErrorCode = "NOT_JOB_SEEKER"
	CodeNotEmployer          ErrorCode = "NOT_EMPLOYER"
	CodeNotOwner             ErrorCode = "NOT_OWNER"

	CodeGeneratorUnavailable ErrorCode = "GENERATOR_UNAVAILABLE"
	CodeGeneratorTimeout     ErrorCode = "GENERATOR_TIMEOUT"
	CodeGeneratorRejected    ErrorCode = "GENERATOR_REJECTED"
	CodeGeneratorRateLimited ErrorCode = "GENERATOR_RATE_LIMITED"
)
