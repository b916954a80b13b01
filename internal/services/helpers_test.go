package services

import (
	"sync"
	"testing"
	"time"

	"jobtracker_backend/internal/auth"
	"jobtracker_backend/internal/generator"
	"jobtracker_backend/internal/models"
	"jobtracker_backend/internal/repositories"
	"jobtracker_backend/internal/validator"
	"jobtracker_backend/pkg/apperrors"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newTestAuthService() *AuthServiceImpl {
	return NewAuthService(
		repositories.NewUserRepository(),
		repositories.NewSessionRepository(),
		auth.NewHasher(bcrypt.MinCost, 2),
		auth.NewTokenManager("test-secret", time.Hour, "test"),
		validator.New(),
	).(*AuthServiceImpl)
}

func newTestJobService() JobService {
	return NewJobService(repositories.NewJobRepository(), validator.New())
}

func newTestApplicationService(gen generator.Generator, notifier NotificationService) *ApplicationServiceImpl {
	if gen == nil {
		gen = generator.NewAdapter(generator.NewTemplateGenerator())
	}
	return NewApplicationService(
		repositories.NewApplicationRepository(),
		repositories.NewJobRepository(),
		repositories.NewUserRepository(),
		gen,
		notifier,
		validator.New(),
	).(*ApplicationServiceImpl)
}

func identityOf(u *models.User) *auth.Identity {
	return &auth.Identity{UserID: u.ID, Role: u.Role, SessionID: "test-session"}
}

func requireCode(t *testing.T, err error, code apperrors.ErrorCode) {
	t.Helper()
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok, "ожидалась AppError, получено %v", err)
	require.Equal(t, code, appErr.Code)
}

// recordingNotifier запоминает уведомления вместо отправки
type recordingNotifier struct {
	mu    sync.Mutex
	calls []string
}

func (n *recordingNotifier) NotifyApplicationSubmitted(db *gorm.DB, job *models.Job, application *models.Application) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, application.ID)
}

func (n *recordingNotifier) Wait() {}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.calls)
}
