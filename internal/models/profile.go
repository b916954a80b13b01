package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

type JobSeekerProfile struct {
	BaseModel
	UserID     string         `gorm:"type:varchar(36);uniqueIndex;not null"`
	Skills     datatypes.JSON `gorm:"not null"`
	Experience string         `gorm:"type:text"`
	Education  string         `gorm:"type:text"`
	Phone      string         `gorm:"type:varchar(50)"`
}

type EmployerProfile struct {
	BaseModel
	UserID             string `gorm:"type:varchar(36);uniqueIndex;not null"`
	CompanyName        string `gorm:"type:varchar(255);not null"`
	CompanyDescription string `gorm:"type:text"`
}

// GetSkills декодирует JSON-массив навыков
func (p *JobSeekerProfile) GetSkills() []string {
	var skills []string
	if len(p.Skills) == 0 {
		return []string{}
	}
	if err := json.Unmarshal(p.Skills, &skills); err != nil || skills == nil {
		return []string{}
	}
	return skills
}

// SetSkills сохраняет навыки как JSON-массив
func (p *JobSeekerProfile) SetSkills(skills []string) error {
	if skills == nil {
		skills = []string{}
	}
	data, err := json.Marshal(skills)
	if err != nil {
		return err
	}
	p.Skills = datatypes.JSON(data)
	return nil
}
