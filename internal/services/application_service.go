package services

import (
	"context"
	"errors"
	"time"

	"jobtracker_backend/internal/algorithms"
	"jobtracker_backend/internal/auth"
	"jobtracker_backend/internal/generator"
	"jobtracker_backend/internal/logger"
	"jobtracker_backend/internal/models"
	"jobtracker_backend/internal/repositories"
	"jobtracker_backend/internal/services/dto"
	"jobtracker_backend/internal/utils"
	"jobtracker_backend/internal/validator"
	"jobtracker_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ApplicationService interface {
	// Submit проверяет по порядку: роль, вакансия существует и активна,
	// нет повторного отклика, оба текста заполнены
	Submit(db *gorm.DB, identity *auth.Identity, req *dto.SubmitApplicationRequest) (*dto.ApplicationResponse, error)
	ListMine(db *gorm.DB, identity *auth.Identity) ([]*dto.MyApplicationResponse, error)
	ListForJob(db *gorm.DB, identity *auth.Identity, jobID string) ([]*dto.JobApplicationResponse, error)
	// RequestGeneratedContent ничего не сохраняет
	RequestGeneratedContent(db *gorm.DB, identity *auth.Identity, req *dto.GenerateDocumentRequest) (*dto.GeneratedDocumentResponse, error)
}

type ApplicationServiceImpl struct {
	applicationRepo repositories.ApplicationRepository
	jobRepo         repositories.JobRepository
	userRepo        repositories.UserRepository
	generator       generator.Generator
	notifier        NotificationService
	validator       *validator.Validator
	now             func() time.Time
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	userRepo repositories.UserRepository,
	gen generator.Generator,
	notifier NotificationService,
	v *validator.Validator,
) ApplicationService {
	return &ApplicationServiceImpl{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		userRepo:        userRepo,
		generator:       gen,
		notifier:        notifier,
		validator:       v,
		now:             time.Now,
	}
}

func (s *ApplicationServiceImpl) Submit(db *gorm.DB, identity *auth.Identity, req *dto.SubmitApplicationRequest) (*dto.ApplicationResponse, error) {
	if err := authorize(identity, auth.ActionSubmitApplication, auth.Resource{}); err != nil {
		return nil, err
	}
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	job, err := s.activeJob(db, req.JobID)
	if err != nil {
		return nil, err
	}

	exists, err := s.applicationRepo.Exists(db, identity.UserID, job.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.ErrDuplicateApplication
	}

	missing := make(map[string]string)
	if utils.IsBlank(req.ResumeContent) {
		missing["resume_content"] = "must not be empty"
	}
	if utils.IsBlank(req.CoverLetterContent) {
		missing["cover_letter_content"] = "must not be empty"
	}
	if len(missing) > 0 {
		return nil, apperrors.ErrIncompleteContent.WithDetails(missing)
	}

	application := &models.Application{
		JobID:              job.ID,
		ApplicantID:        identity.UserID,
		ResumeContent:      req.ResumeContent,
		CoverLetterContent: req.CoverLetterContent,
		Status:             models.ApplicationStatusSubmitted,
		AppliedAt:          s.now().UTC(),
	}
	if err := s.applicationRepo.Create(db, application); err != nil {
		// Параллельный отклик прошел проверку Exists раньше нас
		if errors.Is(err, repositories.ErrApplicationExists) {
			return nil, apperrors.ErrDuplicateApplication
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctxOf(db), "Application submitted",
		"application_id", application.ID,
		"job_id", job.ID,
		"applicant_id", identity.UserID,
	)

	if s.notifier != nil {
		s.notifier.NotifyApplicationSubmitted(db, job, application)
	}

	resp := dto.NewApplicationResponse(application)
	return &resp, nil
}

func (s *ApplicationServiceImpl) ListMine(db *gorm.DB, identity *auth.Identity) ([]*dto.MyApplicationResponse, error) {
	if err := authorize(identity, auth.ActionListOwnApplications, auth.Resource{}); err != nil {
		return nil, err
	}

	applications, err := s.applicationRepo.FindByApplicant(db, identity.UserID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := make([]*dto.MyApplicationResponse, 0, len(applications))
	for i := range applications {
		result = append(result, dto.NewMyApplicationResponse(&applications[i]))
	}
	return result, nil
}

// ListForJob - отклики на вакансию владельца. Несуществующая вакансия
// дает ErrNotOwner.
func (s *ApplicationServiceImpl) ListForJob(db *gorm.DB, identity *auth.Identity, jobID string) ([]*dto.JobApplicationResponse, error) {
	if err := authorizeRole(identity, auth.ActionListJobApplications); err != nil {
		return nil, err
	}

	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotOwner
		}
		return nil, apperrors.InternalError(err)
	}
	if err := authorize(identity, auth.ActionListJobApplications, auth.Resource{OwnerID: job.EmployerID}); err != nil {
		return nil, err
	}

	applications, err := s.applicationRepo.FindByJob(db, job.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := make([]*dto.JobApplicationResponse, 0, len(applications))
	for i := range applications {
		resp := dto.NewJobApplicationResponse(&applications[i])
		if resp.Applicant != nil {
			resp.SkillMatch = algorithms.CalculateSkillMatch(job, resp.Applicant.Skills)
		}
		result = append(result, resp)
	}
	return result, nil
}

func (s *ApplicationServiceImpl) RequestGeneratedContent(db *gorm.DB, identity *auth.Identity, req *dto.GenerateDocumentRequest) (*dto.GeneratedDocumentResponse, error) {
	if err := authorize(identity, auth.ActionGenerateDocument, auth.Resource{}); err != nil {
		return nil, err
	}
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	job, err := s.activeJob(db, req.JobID)
	if err != nil {
		return nil, err
	}

	applicant, err := s.userRepo.FindByID(db, identity.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidSession
		}
		return nil, apperrors.InternalError(err)
	}

	content, err := s.generator.Generate(ctxOf(db), generator.Request{
		Kind:      req.DocumentType,
		Applicant: applicantSnapshot(applicant),
		Job:       jobSnapshot(job),
	})
	if err != nil {
		return nil, generatorError(err)
	}

	return &dto.GeneratedDocumentResponse{
		Content:      content,
		DocumentType: req.DocumentType,
		JobID:        job.ID,
	}, nil
}

func (s *ApplicationServiceImpl) activeJob(db *gorm.DB, jobID string) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if !job.IsActive {
		return nil, apperrors.ErrJobInactive
	}
	return job, nil
}

func applicantSnapshot(user *models.User) generator.Applicant {
	a := generator.Applicant{
		ID:       user.ID,
		FullName: user.FullName,
		Email:    user.Email,
		Skills:   []string{},
	}
	if p := user.JobSeekerProfile; p != nil {
		a.Phone = p.Phone
		a.Skills = p.GetSkills()
		a.Experience = p.Experience
		a.Education = p.Education
	}
	return a
}

func jobSnapshot(job *models.Job) generator.JobSnapshot {
	return generator.JobSnapshot{
		ID:           job.ID,
		Title:        job.Title,
		Company:      job.Company,
		Location:     job.Location,
		Description:  job.Description,
		Requirements: job.Requirements,
	}
}

// generatorError переводит ошибки адаптера в ошибки API.
// Отмена запроса клиентом возвращается как есть.
func generatorError(err error) error {
	switch {
	case errors.Is(err, generator.ErrTimeout):
		return apperrors.ErrGeneratorTimeout.WithError(err)
	case errors.Is(err, generator.ErrRateLimited):
		return apperrors.ErrGeneratorRateLimited.WithError(err)
	case errors.Is(err, generator.ErrRejected):
		return apperrors.ErrGeneratorRejected.WithError(err)
	case errors.Is(err, generator.ErrUnavailable):
		return apperrors.ErrGeneratorUnavailable.WithError(err)
	case errors.Is(err, context.Canceled):
		return err
	default:
		return apperrors.ErrGeneratorUnavailable.WithError(err)
	}
}
