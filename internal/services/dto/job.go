package dto

import (
	"time"

	"jobtracker_backend/internal/models"
)

type CreateJobRequest struct {
	Title        string         `json:"title" validate:"required,not-blank,max=255"`
	Company      string         `json:"company" validate:"required,not-blank,max=255"`
	Description  string         `json:"description" validate:"required,not-blank,max=20000"`
	Requirements string         `json:"requirements" validate:"required,not-blank,max=20000"`
	Location     string         `json:"location" validate:"required,not-blank,max=255"`
	JobType      models.JobType `json:"job_type" validate:"required,is-job-type"`
	Salary       *string        `json:"salary,omitempty" validate:"omitempty,max=100"`
}

// UpdateJobRequest - частичное обновление, nil поля не меняются
type UpdateJobRequest struct {
	Title        *string         `json:"title,omitempty" validate:"omitnil,not-blank,max=255"`
	Company      *string         `json:"company,omitempty" validate:"omitnil,not-blank,max=255"`
	Description  *string         `json:"description,omitempty" validate:"omitnil,not-blank,max=20000"`
	Requirements *string         `json:"requirements,omitempty" validate:"omitnil,not-blank,max=20000"`
	Location     *string         `json:"location,omitempty" validate:"omitnil,not-blank,max=255"`
	JobType      *models.JobType `json:"job_type,omitempty" validate:"omitnil,required,is-job-type"`
	Salary       *string         `json:"salary,omitempty" validate:"omitempty,max=100"`
	IsActive     *bool           `json:"is_active,omitempty"`
}

// JobSearchQuery - limit 0 означает "без ограничения"
type JobSearchQuery struct {
	Search  string `form:"search" validate:"max=200"`
	JobType string `form:"job_type" validate:"omitempty,is-job-type"`
	Limit   int    `form:"limit" validate:"min=0,max=1000"`
}

type JobResponse struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Company      string         `json:"company"`
	Description  string         `json:"description"`
	Requirements string         `json:"requirements"`
	Location     string         `json:"location"`
	JobType      models.JobType `json:"job_type"`
	Salary       *string        `json:"salary"`
	EmployerID   string         `json:"employer_id"`
	IsActive     bool           `json:"is_active"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

func NewJobResponse(job *models.Job) *JobResponse {
	return &JobResponse{
		ID:           job.ID,
		Title:        job.Title,
		Company:      job.Company,
		Description:  job.Description,
		Requirements: job.Requirements,
		Location:     job.Location,
		JobType:      job.JobType,
		Salary:       job.Salary,
		EmployerID:   job.EmployerID,
		IsActive:     job.IsActive,
		CreatedAt:    job.CreatedAt,
		UpdatedAt:    job.UpdatedAt,
	}
}

func NewJobResponses(jobs []models.Job) []*JobResponse {
	result := make([]*JobResponse, 0, len(jobs))
	for i := range jobs {
		result = append(result, NewJobResponse(&jobs[i]))
	}
	return result
}
