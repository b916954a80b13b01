package dto

import (
	"time"

	"jobtracker_backend/internal/algorithms"
	"jobtracker_backend/internal/models"
)

// SubmitApplicationRequest - пустой текст проверяет сервис,
// чтобы сохранить порядок ошибок (роль, вакансия, дубль, содержимое)
type SubmitApplicationRequest struct {
	JobID              string `json:"job_id" validate:"required,max=36"`
	ResumeContent      string `json:"resume_content" validate:"max=100000"`
	CoverLetterContent string `json:"cover_letter_content" validate:"max=100000"`
}

type ApplicationResponse struct {
	ID                 string                   `json:"id"`
	JobID              string                   `json:"job_id"`
	ApplicantID        string                   `json:"applicant_id"`
	ResumeContent      string                   `json:"resume_content"`
	CoverLetterContent string                   `json:"cover_letter_content"`
	Status             models.ApplicationStatus `json:"status"`
	AppliedAt          time.Time                `json:"applied_at"`
}

// JobSummary - снимок вакансии для списка откликов соискателя
type JobSummary struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Company  string  `json:"company"`
	Location string  `json:"location"`
	Salary   *string `json:"salary"`
	IsActive bool    `json:"is_active"`
}

type MyApplicationResponse struct {
	ApplicationResponse
	Job *JobSummary `json:"job"`
}

// ApplicantSummary - данные соискателя, видимые работодателю
type ApplicantSummary struct {
	ID         string   `json:"id"`
	FullName   string   `json:"full_name"`
	Email      string   `json:"email"`
	Skills     []string `json:"skills"`
	Experience string   `json:"experience"`
	Education  string   `json:"education"`
}

type JobApplicationResponse struct {
	ApplicationResponse
	Applicant  *ApplicantSummary     `json:"applicant"`
	SkillMatch algorithms.SkillMatch `json:"skill_match"`
}

func NewApplicationResponse(a *models.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:                 a.ID,
		JobID:              a.JobID,
		ApplicantID:        a.ApplicantID,
		ResumeContent:      a.ResumeContent,
		CoverLetterContent: a.CoverLetterContent,
		Status:             a.Status,
		AppliedAt:          a.AppliedAt,
	}
}

func NewMyApplicationResponse(a *models.Application) *MyApplicationResponse {
	resp := &MyApplicationResponse{ApplicationResponse: NewApplicationResponse(a)}
	if a.Job != nil {
		resp.Job = &JobSummary{
			ID:       a.Job.ID,
			Title:    a.Job.Title,
			Company:  a.Job.Company,
			Location: a.Job.Location,
			Salary:   a.Job.Salary,
			IsActive: a.Job.IsActive,
		}
	}
	return resp
}

func NewJobApplicationResponse(a *models.Application) *JobApplicationResponse {
	resp := &JobApplicationResponse{ApplicationResponse: NewApplicationResponse(a)}
	if u := a.Applicant; u != nil {
		summary := &ApplicantSummary{
			ID:       u.ID,
			FullName: u.FullName,
			Email:    u.Email,
			Skills:   []string{},
		}
		if p := u.JobSeekerProfile; p != nil {
			summary.Skills = p.GetSkills()
			summary.Experience = p.Experience
			summary.Education = p.Education
		}
		resp.Applicant = summary
	}
	return resp
}
