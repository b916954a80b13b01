package handlers

import (
	"net/http"

	"jobtracker_backend/internal/middleware"
	"jobtracker_backend/internal/models"
	"jobtracker_backend/internal/services"
	"jobtracker_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
	}
}

func (h *ApplicationHandler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	seeker := rg.Group("")
	seeker.Use(authMW, middleware.RequireRoles(models.UserRoleJobSeeker))
	{
		seeker.POST("/applications", h.Submit)
		seeker.GET("/my-applications", h.ListMine)
		seeker.POST("/generate-document", h.GenerateDocument)
	}

	employer := rg.Group("")
	employer.Use(authMW, middleware.RequireRoles(models.UserRoleEmployer))
	{
		employer.GET("/job-applications/:jobId", h.ListForJob)
	}
}

// Submit godoc
// @Summary Откликнуться на вакансию
// @Description Один отклик на вакансию, резюме и сопроводительное письмо обязательны
// @Tags applications
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.SubmitApplicationRequest true "Отклик"
// @Success 201 {object} dto.ApplicationResponse
// @Failure 400 {object} apperrors.ErrorResponse "Пустое резюме или письмо"
// @Failure 403 {object} apperrors.ErrorResponse "Только для соискателей"
// @Failure 404 {object} apperrors.ErrorResponse "Вакансия не найдена"
// @Failure 409 {object} apperrors.ErrorResponse "Повторный отклик или вакансия закрыта"
// @Router /applications [post]
func (h *ApplicationHandler) Submit(c *gin.Context) {
	var req dto.SubmitApplicationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	application, err := h.applicationService.Submit(h.GetDB(c), h.GetIdentity(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, application)
}

// ListMine godoc
// @Summary Мои отклики
// @Tags applications
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.MyApplicationResponse
// @Router /my-applications [get]
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	applications, err := h.applicationService.ListMine(h.GetDB(c), h.GetIdentity(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, applications)
}

// ListForJob godoc
// @Summary Отклики на вакансию
// @Description Доступно только владельцу вакансии. skill_match - доля навыков соискателя, упомянутых в вакансии
// @Tags applications
// @Security BearerAuth
// @Produce json
// @Param jobId path string true "ID вакансии"
// @Success 200 {array} dto.JobApplicationResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Router /job-applications/{jobId} [get]
func (h *ApplicationHandler) ListForJob(c *gin.Context) {
	applications, err := h.applicationService.ListForJob(h.GetDB(c), h.GetIdentity(c), c.Param("jobId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, applications)
}

// GenerateDocument godoc
// @Summary Сгенерировать резюме или сопроводительное письмо
// @Description Текст не сохраняется
// @Tags applications
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.GenerateDocumentRequest true "Вакансия и тип документа"
// @Success 200 {object} dto.GeneratedDocumentResponse
// @Failure 429 {object} apperrors.ErrorResponse
// @Failure 502 {object} apperrors.ErrorResponse
// @Failure 503 {object} apperrors.ErrorResponse
// @Failure 504 {object} apperrors.ErrorResponse
// @Router /generate-document [post]
func (h *ApplicationHandler) GenerateDocument(c *gin.Context) {
	var req dto.GenerateDocumentRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	doc, err := h.applicationService.RequestGeneratedContent(h.GetDB(c), h.GetIdentity(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, doc)
}
