package repositories

import (
	"errors"

	"jobtracker_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrApplicationExists = errors.New("application already exists")

type ApplicationRepository interface {
	// Create возвращает ErrApplicationExists при нарушении уникальности (applicant_id, job_id)
	Create(db *gorm.DB, application *models.Application) error
	Exists(db *gorm.DB, applicantID, jobID string) (bool, error)
	// FindByApplicant подгружает Job, новые первыми
	FindByApplicant(db *gorm.DB, applicantID string) ([]models.Application, error)
	// FindByJob подгружает соискателя с профилем, новые первыми
	FindByJob(db *gorm.DB, jobID string) ([]models.Application, error)
}

type applicationRepository struct{}

func NewApplicationRepository() ApplicationRepository {
	return &applicationRepository{}
}

func (r *applicationRepository) Create(db *gorm.DB, application *models.Application) error {
	err := db.Omit(clause.Associations).Create(application).Error
	if isUniqueViolation(err) {
		return ErrApplicationExists
	}
	return err
}

func (r *applicationRepository) Exists(db *gorm.DB, applicantID, jobID string) (bool, error) {
	var count int64
	err := db.Model(&models.Application{}).
		Where("applicant_id = ? AND job_id = ?", applicantID, jobID).
		Count(&count).Error
	return count > 0, err
}

func (r *applicationRepository) FindByApplicant(db *gorm.DB, applicantID string) ([]models.Application, error) {
	var applications []models.Application
	err := db.Preload("Job").
		Where("applicant_id = ?", applicantID).
		Order("applied_at DESC").Order("id DESC").
		Find(&applications).Error
	return applications, err
}

func (r *applicationRepository) FindByJob(db *gorm.DB, jobID string) ([]models.Application, error) {
	var applications []models.Application
	err := db.Preload("Applicant").Preload("Applicant.JobSeekerProfile").
		Where("job_id = ?", jobID).
		Order("applied_at DESC").Order("id DESC").
		Find(&applications).Error
	return applications, err
}
