package models

import "time"

// Application - отклик соискателя. Пара (applicant_id, job_id) уникальна,
// именно индекс гарантирует "не более одного отклика" при гонке запросов.
type Application struct {
	BaseModel
	JobID              string            `gorm:"type:varchar(36);not null;uniqueIndex:idx_applications_applicant_job,priority:2;index"`
	ApplicantID        string            `gorm:"type:varchar(36);not null;uniqueIndex:idx_applications_applicant_job,priority:1"`
	ResumeContent      string            `gorm:"type:text;not null"`
	CoverLetterContent string            `gorm:"type:text;not null"`
	Status             ApplicationStatus `gorm:"type:varchar(20);not null"`
	AppliedAt          time.Time         `gorm:"not null;index"`

	Job       *Job  `gorm:"foreignKey:JobID"`
	Applicant *User `gorm:"foreignKey:ApplicantID"`
}
