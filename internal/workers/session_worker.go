package workers

import (
	"context"
	"time"

	"jobtracker_backend/internal/logger"
	"jobtracker_backend/internal/repositories"

	"gorm.io/gorm"
)

const sessionWorkerName = "session_cleanup"

// SessionWorker удаляет истекшие сессии. Отозванные сессии хранятся до
// истечения срока, чтобы повторный logout оставался идемпотентным.
type SessionWorker struct {
	db          *gorm.DB
	sessionRepo repositories.SessionRepository
	interval    time.Duration
	now         func() time.Time
}

func NewSessionWorker(db *gorm.DB, sessionRepo repositories.SessionRepository, interval time.Duration) *SessionWorker {
	if interval <= 0 {
		interval = time.Hour
	}
	return &SessionWorker{
		db:          db,
		sessionRepo: sessionRepo,
		interval:    interval,
		now:         time.Now,
	}
}

// Start запускает очистку в фоне до отмены ctx
func (w *SessionWorker) Start(ctx context.Context) {
	go w.run(ctx)
}

func (w *SessionWorker) run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Session worker stopped")
			return
		case <-ticker.C:
			w.Cleanup(ctx)
		}
	}
}

// Cleanup выполняет один проход очистки и возвращает число удаленных сессий
func (w *SessionWorker) Cleanup(ctx context.Context) int64 {
	deleted, err := w.sessionRepo.DeleteExpired(w.db.WithContext(ctx), w.now())
	if err != nil {
		logger.WorkerLog(sessionWorkerName, "delete_expired", err)
		return 0
	}
	if deleted > 0 {
		logger.WorkerLog(sessionWorkerName, "delete_expired", nil, "deleted", deleted)
	}
	return deleted
}
