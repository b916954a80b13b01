package repositories

import (
	"errors"
	"time"

	"jobtracker_backend/internal/models"

	"gorm.io/gorm"
)

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена в БД
	ErrSessionNotFound = errors.New("session not found")
)

// SessionRepository - операции с серверными сессиями
type SessionRepository interface {
	Create(db *gorm.DB, session *models.Session) error
	FindByID(db *gorm.DB, id string) (*models.Session, error)
	// Revoke помечает сессию отозванной. Повторный вызов не ошибка.
	Revoke(db *gorm.DB, id string, at time.Time) error
	// DeleteExpired удаляет истекшие сессии и возвращает их количество
	DeleteExpired(db *gorm.DB, now time.Time) (int64, error)
}

type sessionRepository struct{}

func NewSessionRepository() SessionRepository {
	return &sessionRepository{}
}

func (r *sessionRepository) Create(db *gorm.DB, session *models.Session) error {
	return db.Create(session).Error
}

func (r *sessionRepository) FindByID(db *gorm.DB, id string) (*models.Session, error) {
	var session models.Session
	if err := db.Where("id = ?", id).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) Revoke(db *gorm.DB, id string, at time.Time) error {
	result := db.Model(&models.Session{}).
		Where("id = ? AND revoked_at IS NULL", id).
		Update("revoked_at", at)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		if _, err := r.FindByID(db, id); err != nil {
			return err
		}
	}
	return nil
}

func (r *sessionRepository) DeleteExpired(db *gorm.DB, now time.Time) (int64, error) {
	result := db.Where("expires_at < ?", now).Delete(&models.Session{})
	return result.RowsAffected, result.Error
}
