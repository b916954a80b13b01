package models

import "time"

// User - учётная запись. Email хранится в свёрнутом регистре,
// роль не меняется после регистрации, пользователи не удаляются.
type User struct {
	BaseModel
	Email        string   `gorm:"type:varchar(320);uniqueIndex;not null"`
	FullName     string   `gorm:"type:varchar(255);not null"`
	PasswordHash string   `gorm:"not null"`
	Role         UserRole `gorm:"type:varchar(20);not null"`

	// Relations: ровно один профиль в зависимости от роли
	JobSeekerProfile *JobSeekerProfile `gorm:"foreignKey:UserID"`
	EmployerProfile  *EmployerProfile  `gorm:"foreignKey:UserID"`
}

// Session - серверная запись о выданном токене. ID совпадает с jti.
type Session struct {
	ID        string    `gorm:"type:varchar(36);primaryKey"`
	UserID    string    `gorm:"type:varchar(36);not null;index"`
	ExpiresAt time.Time `gorm:"not null;index"`
	RevokedAt *time.Time
	CreatedAt time.Time
}

// Active - сессия не отозвана и не истекла на момент now
func (s *Session) Active(now time.Time) bool {
	return s.RevokedAt == nil && now.Before(s.ExpiresAt)
}
