package services

import (
	"errors"
	"strings"

	"jobtracker_backend/internal/auth"
	"jobtracker_backend/internal/logger"
	"jobtracker_backend/internal/models"
	"jobtracker_backend/internal/repositories"
	"jobtracker_backend/internal/services/dto"
	"jobtracker_backend/internal/validator"
	"jobtracker_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type JobService interface {
	Create(db *gorm.DB, identity *auth.Identity, req *dto.CreateJobRequest) (*dto.JobResponse, error)
	// List - публичный каталог, новые первыми
	List(db *gorm.DB, query *dto.JobSearchQuery) ([]*dto.JobResponse, error)
	Get(db *gorm.DB, jobID string) (*dto.JobResponse, error)
	ListByOwner(db *gorm.DB, identity *auth.Identity) ([]*dto.JobResponse, error)
	Update(db *gorm.DB, identity *auth.Identity, jobID string, req *dto.UpdateJobRequest) (*dto.JobResponse, error)
}

type JobServiceImpl struct {
	jobRepo   repositories.JobRepository
	validator *validator.Validator
}

func NewJobService(jobRepo repositories.JobRepository, v *validator.Validator) JobService {
	return &JobServiceImpl{
		jobRepo:   jobRepo,
		validator: v,
	}
}

func (s *JobServiceImpl) Create(db *gorm.DB, identity *auth.Identity, req *dto.CreateJobRequest) (*dto.JobResponse, error) {
	if err := authorize(identity, auth.ActionCreateJob, auth.Resource{}); err != nil {
		return nil, err
	}
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	job := &models.Job{
		Title:        strings.TrimSpace(req.Title),
		Company:      strings.TrimSpace(req.Company),
		Description:  req.Description,
		Requirements: req.Requirements,
		Location:     strings.TrimSpace(req.Location),
		JobType:      req.JobType,
		Salary:       normalizeSalary(req.Salary),
		EmployerID:   identity.UserID,
		IsActive:     true,
	}
	if err := s.jobRepo.Create(db, job); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctxOf(db), "Job created", "job_id", job.ID, "employer_id", job.EmployerID)
	return dto.NewJobResponse(job), nil
}

func (s *JobServiceImpl) List(db *gorm.DB, query *dto.JobSearchQuery) ([]*dto.JobResponse, error) {
	if query == nil {
		query = &dto.JobSearchQuery{}
	}
	if err := validateRequest(s.validator, query); err != nil {
		return nil, err
	}

	jobs, err := s.jobRepo.FindWithFilter(db, repositories.JobFilter{
		Search:  query.Search,
		JobType: models.JobType(query.JobType),
		Limit:   query.Limit,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewJobResponses(jobs), nil
}

func (s *JobServiceImpl) Get(db *gorm.DB, jobID string) (*dto.JobResponse, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewJobResponse(job), nil
}

func (s *JobServiceImpl) ListByOwner(db *gorm.DB, identity *auth.Identity) ([]*dto.JobResponse, error) {
	if err := authorize(identity, auth.ActionListOwnJobs, auth.Resource{}); err != nil {
		return nil, err
	}
	jobs, err := s.jobRepo.FindByEmployer(db, identity.UserID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewJobResponses(jobs), nil
}

// Update меняет вакансию владельца. Несуществующая вакансия дает
// ErrNotOwner, чтобы не раскрывать наличие чужих id.
func (s *JobServiceImpl) Update(db *gorm.DB, identity *auth.Identity, jobID string, req *dto.UpdateJobRequest) (*dto.JobResponse, error) {
	if err := authorizeRole(identity, auth.ActionUpdateJob); err != nil {
		return nil, err
	}

	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotOwner
		}
		return nil, apperrors.InternalError(err)
	}
	if err := authorize(identity, auth.ActionUpdateJob, auth.Resource{OwnerID: job.EmployerID}); err != nil {
		return nil, err
	}
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	applyJobPatch(job, req)
	if err := s.jobRepo.Save(db, job); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctxOf(db), "Job updated", "job_id", job.ID, "is_active", job.IsActive)
	return dto.NewJobResponse(job), nil
}

func applyJobPatch(job *models.Job, req *dto.UpdateJobRequest) {
	if req.Title != nil {
		job.Title = strings.TrimSpace(*req.Title)
	}
	if req.Company != nil {
		job.Company = strings.TrimSpace(*req.Company)
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Requirements != nil {
		job.Requirements = *req.Requirements
	}
	if req.Location != nil {
		job.Location = strings.TrimSpace(*req.Location)
	}
	if req.JobType != nil {
		job.JobType = *req.JobType
	}
	if req.Salary != nil {
		job.Salary = normalizeSalary(req.Salary)
	}
	if req.IsActive != nil {
		job.IsActive = *req.IsActive
	}
}

// normalizeSalary - пустая строка означает "зарплата не указана"
func normalizeSalary(salary *string) *string {
	if salary == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*salary)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
