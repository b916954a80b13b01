package handlers

import (
	"net/http"

	"jobtracker_backend/internal/middleware"
	"jobtracker_backend/internal/models"
	"jobtracker_backend/internal/services"
	"jobtracker_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	*BaseHandler
	jobService services.JobService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
	}
}

func (h *JobHandler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	public := rg.Group("/jobs")
	{
		public.GET("", h.List)
		public.GET("/:jobId", h.Get)
	}

	employer := rg.Group("")
	employer.Use(authMW, middleware.RequireRoles(models.UserRoleEmployer))
	{
		employer.POST("/jobs", h.Create)
		employer.PUT("/jobs/:jobId", h.Update)
		employer.GET("/my-jobs", h.ListMine)
	}
}

// List godoc
// @Summary Каталог вакансий
// @Description Поиск без учета регистра по названию, компании и локации, новые первыми
// @Tags jobs
// @Produce json
// @Param search query string false "Подстрока"
// @Param job_type query string false "full_time, part_time, contract, internship"
// @Param limit query int false "Максимум записей"
// @Success 200 {array} dto.JobResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	var query dto.JobSearchQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	jobs, err := h.jobService.List(h.GetDB(c), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, jobs)
}

// Get godoc
// @Summary Вакансия по ID
// @Tags jobs
// @Produce json
// @Param jobId path string true "ID вакансии"
// @Success 200 {object} dto.JobResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /jobs/{jobId} [get]
func (h *JobHandler) Get(c *gin.Context) {
	job, err := h.jobService.Get(h.GetDB(c), c.Param("jobId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

// Create godoc
// @Summary Создать вакансию
// @Tags jobs
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateJobRequest true "Вакансия"
// @Success 201 {object} dto.JobResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 403 {object} apperrors.ErrorResponse "Только для работодателей"
// @Router /jobs [post]
func (h *JobHandler) Create(c *gin.Context) {
	var req dto.CreateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	job, err := h.jobService.Create(h.GetDB(c), h.GetIdentity(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, job)
}

// Update godoc
// @Summary Изменить вакансию
// @Description Частичное обновление, включая снятие с публикации через is_active
// @Tags jobs
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param jobId path string true "ID вакансии"
// @Param request body dto.UpdateJobRequest true "Изменения"
// @Success 200 {object} dto.JobResponse
// @Failure 403 {object} apperrors.ErrorResponse "Не владелец"
// @Router /jobs/{jobId} [put]
func (h *JobHandler) Update(c *gin.Context) {
	var req dto.UpdateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	job, err := h.jobService.Update(h.GetDB(c), h.GetIdentity(c), c.Param("jobId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

// ListMine godoc
// @Summary Мои вакансии
// @Tags jobs
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.JobResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Router /my-jobs [get]
func (h *JobHandler) ListMine(c *gin.Context) {
	jobs, err := h.jobService.ListByOwner(h.GetDB(c), h.GetIdentity(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, jobs)
}
