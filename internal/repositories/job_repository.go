package repositories

import (
	"errors"

	"jobtracker_backend/internal/models"
	"jobtracker_backend/internal/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrJobNotFound = errors.New("job not found")

// JobFilter - параметры поиска. Пустые поля не ограничивают выборку,
// Limit <= 0 означает "без ограничения".
type JobFilter struct {
	Search  string
	JobType models.JobType
	Limit   int
}

type JobRepository interface {
	Create(db *gorm.DB, job *models.Job) error
	Save(db *gorm.DB, job *models.Job) error
	FindByID(db *gorm.DB, id string) (*models.Job, error)
	FindWithFilter(db *gorm.DB, filter JobFilter) ([]models.Job, error)
	FindByEmployer(db *gorm.DB, employerID string) ([]models.Job, error)
}

type jobRepository struct{}

func NewJobRepository() JobRepository {
	return &jobRepository{}
}

func (r *jobRepository) Create(db *gorm.DB, job *models.Job) error {
	return db.Omit(clause.Associations).Create(job).Error
}

func (r *jobRepository) Save(db *gorm.DB, job *models.Job) error {
	return db.Omit(clause.Associations).Save(job).Error
}

func (r *jobRepository) FindByID(db *gorm.DB, id string) (*models.Job, error) {
	var job models.Job
	if err := db.Where("id = ?", id).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

// FindWithFilter - новые первыми. Поиск подстроки идёт по свёрнутым
// колонкам, поэтому не зависит от collation конкретной СУБД.
func (r *jobRepository) FindWithFilter(db *gorm.DB, filter JobFilter) ([]models.Job, error) {
	query := db.Model(&models.Job{})

	if search := utils.Fold(filter.Search); search != "" {
		pattern := "%" + utils.EscapeLike(search) + "%"
		query = query.Where(
			"title_folded LIKE ? ESCAPE '!' OR company_folded LIKE ? ESCAPE '!' OR location_folded LIKE ? ESCAPE '!'",
			pattern, pattern, pattern,
		)
	}
	if filter.JobType != "" {
		query = query.Where("job_type = ?", filter.JobType)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var jobs []models.Job
	err := query.Order("created_at DESC").Order("id DESC").Find(&jobs).Error
	return jobs, err
}

func (r *jobRepository) FindByEmployer(db *gorm.DB, employerID string) ([]models.Job, error) {
	var jobs []models.Job
	err := db.Where("employer_id = ?", employerID).
		Order("created_at DESC").Order("id DESC").
		Find(&jobs).Error
	return jobs, err
}
