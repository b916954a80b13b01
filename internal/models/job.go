package models

import (
	"jobtracker_backend/internal/utils"

	"gorm.io/gorm"
)

// Job - вакансия. EmployerID не меняется после создания.
// *_folded колонки нужны для регистронезависимого поиска на любой СУБД.
type Job struct {
	BaseModel
	Title        string  `gorm:"type:varchar(255);not null"`
	Company      string  `gorm:"type:varchar(255);not null"`
	Description  string  `gorm:"type:text;not null"`
	Requirements string  `gorm:"type:text;not null"`
	Location     string  `gorm:"type:varchar(255);not null"`
	JobType      JobType `gorm:"type:varchar(20);not null;index"`
	Salary       *string `gorm:"type:varchar(100)"`
	EmployerID   string  `gorm:"type:varchar(36);not null;index"`
	IsActive     bool    `gorm:"not null"`

	TitleFolded    string `gorm:"type:varchar(255);not null"`
	CompanyFolded  string `gorm:"type:varchar(255);not null"`
	LocationFolded string `gorm:"type:varchar(255);not null"`

	Employer *User `gorm:"foreignKey:EmployerID"`
}

func (j *Job) BeforeSave(tx *gorm.DB) error {
	j.TitleFolded = utils.Fold(j.Title)
	j.CompanyFolded = utils.Fold(j.Company)
	j.LocationFolded = utils.Fold(j.Location)
	return nil
}
