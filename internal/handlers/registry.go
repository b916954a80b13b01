package handlers

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	AuthHandler        *AuthHandler
	JobHandler         *JobHandler
	ApplicationHandler *ApplicationHandler
	HealthHandler      *HealthHandler
}
