package services

import (
	"context"
	"sync"
	"time"

	"jobtracker_backend/internal/email"
	"jobtracker_backend/internal/logger"
	"jobtracker_backend/internal/models"
	"jobtracker_backend/internal/repositories"
	"jobtracker_backend/ws"

	"gorm.io/gorm"
)

const EventApplicationSubmitted = "application.submitted"

// Pusher - доставка событий подключенным пользователям
type Pusher interface {
	SendToUser(userID string, event ws.Event) int
}

// NotificationService сообщает работодателю о новом отклике.
// Ошибки уведомлений только логируются и не влияют на результат отклика.
type NotificationService interface {
	NotifyApplicationSubmitted(db *gorm.DB, job *models.Job, application *models.Application)
	// Wait дожидается отправки писем, запущенных ранее
	Wait()
}

type NotificationServiceImpl struct {
	userRepo      repositories.UserRepository
	emailProvider email.Provider
	pusher        Pusher
	wg            sync.WaitGroup
}

func NewNotificationService(
	userRepo repositories.UserRepository,
	emailProvider email.Provider,
	pusher Pusher,
) NotificationService {
	return &NotificationServiceImpl{
		userRepo:      userRepo,
		emailProvider: emailProvider,
		pusher:        pusher,
	}
}

func (s *NotificationServiceImpl) NotifyApplicationSubmitted(db *gorm.DB, job *models.Job, application *models.Application) {
	if s.pusher != nil {
		delivered := s.pusher.SendToUser(job.EmployerID, ws.Event{
			Type: EventApplicationSubmitted,
			Data: map[string]any{
				"application_id": application.ID,
				"job_id":         job.ID,
				"job_title":      job.Title,
				"applicant_id":   application.ApplicantID,
				"applied_at":     application.AppliedAt,
			},
		})
		logger.CtxDebug(ctxOf(db), "Application event pushed", "employer_id", job.EmployerID, "connections", delivered)
	}

	if s.emailProvider == nil {
		return
	}

	// Письмо уходит после ответа клиенту, отмена запроса его не прерывает
	ctx := context.WithoutCancel(ctxOf(db))
	bg := db.WithContext(ctx)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.sendSubmittedEmail(ctx, bg, job, application)
	}()
}

func (s *NotificationServiceImpl) sendSubmittedEmail(ctx context.Context, db *gorm.DB, job *models.Job, application *models.Application) {
	log := logger.FromContext(ctx).With("job_id", job.ID, "application_id", application.ID)

	employer, err := s.userRepo.FindByID(db, job.EmployerID)
	if err != nil {
		log.Warn("notification skipped: employer lookup failed", "error", err.Error())
		return
	}
	applicant, err := s.userRepo.FindByID(db, application.ApplicantID)
	if err != nil {
		log.Warn("notification skipped: applicant lookup failed", "error", err.Error())
		return
	}

	employerName := employer.FullName
	if employer.EmployerProfile != nil && employer.EmployerProfile.CompanyName != "" {
		employerName = employer.FullName + " (" + employer.EmployerProfile.CompanyName + ")"
	}

	err = s.emailProvider.SendTemplate(
		[]string{employer.Email},
		"New application: "+job.Title,
		email.TemplateApplicationSubmitted,
		email.TemplateData{
			"EmployerName":  employerName,
			"ApplicantName": applicant.FullName,
			"JobTitle":      job.Title,
			"Company":       job.Company,
			"AppliedAt":     application.AppliedAt.Format(time.RFC1123),
		},
	)
	if err != nil {
		log.Error("failed to send application email", "error", err.Error())
		return
	}
	log.Info("application email sent", "employer_id", employer.ID)
}

func (s *NotificationServiceImpl) Wait() {
	s.wg.Wait()
}
