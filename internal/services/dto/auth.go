package dto

import (
	"time"

	"jobtracker_backend/internal/models"
)

// RegisterRequest - плоский запрос регистрации. Сервис превращает его
// в Registration с профилем ровно одной роли.
type RegisterRequest struct {
	Email    string          `json:"email" validate:"required,email,max=320"`
	Password string          `json:"password" validate:"required,min=8,max=72"`
	Role     models.UserRole `json:"role" validate:"required,is-user-role"`
	FullName string          `json:"full_name" validate:"required,not-blank,max=255"`

	// Поля соискателя
	Skills     []string `json:"skills,omitempty" validate:"omitempty,max=100,dive,max=100"`
	Experience string   `json:"experience,omitempty" validate:"max=10000"`
	Education  string   `json:"education,omitempty" validate:"max=10000"`
	Phone      string   `json:"phone,omitempty" validate:"max=50"`

	// Поля работодателя
	CompanyName        string `json:"company_name,omitempty" validate:"max=255"`
	CompanyDescription string `json:"company_description,omitempty" validate:"max=10000"`
}

// Profile - профиль одной из ролей
type Profile interface {
	Role() models.UserRole
}

type JobSeekerProfileData struct {
	Skills     []string
	Experience string
	Education  string
	Phone      string
}

func (JobSeekerProfileData) Role() models.UserRole { return models.UserRoleJobSeeker }

type EmployerProfileData struct {
	CompanyName        string
	CompanyDescription string
}

func (EmployerProfileData) Role() models.UserRole { return models.UserRoleEmployer }

// Registration - проверенные данные регистрации
type Registration struct {
	Email    string
	Password string
	FullName string
	Profile  Profile
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type JobSeekerProfileResponse struct {
	Skills     []string `json:"skills"`
	Experience string   `json:"experience"`
	Education  string   `json:"education"`
	Phone      string   `json:"phone"`
}

type EmployerProfileResponse struct {
	CompanyName        string `json:"company_name"`
	CompanyDescription string `json:"company_description"`
}

type UserResponse struct {
	ID               string                    `json:"id"`
	Email            string                    `json:"email"`
	FullName         string                    `json:"full_name"`
	Role             models.UserRole           `json:"role"`
	CreatedAt        time.Time                 `json:"created_at"`
	JobSeekerProfile *JobSeekerProfileResponse `json:"job_seeker_profile,omitempty"`
	EmployerProfile  *EmployerProfileResponse  `json:"employer_profile,omitempty"`
}

// SessionResponse - ответ на регистрацию и вход
type SessionResponse struct {
	AccessToken string        `json:"access_token"`
	TokenType   string        `json:"token_type"`
	ExpiresAt   time.Time     `json:"expires_at"`
	User        *UserResponse `json:"user"`
}

func NewUserResponse(user *models.User) *UserResponse {
	resp := &UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
	if p := user.JobSeekerProfile; p != nil {
		resp.JobSeekerProfile = &JobSeekerProfileResponse{
			Skills:     p.GetSkills(),
			Experience: p.Experience,
			Education:  p.Education,
			Phone:      p.Phone,
		}
	}
	if p := user.EmployerProfile; p != nil {
		resp.EmployerProfile = &EmployerProfileResponse{
			CompanyName:        p.CompanyName,
			CompanyDescription: p.CompanyDescription,
		}
	}
	return resp
}
