package services

import (
	"testing"
	"time"

	"jobtracker_backend/internal/models"
	"jobtracker_backend/internal/services/dto"
	"jobtracker_backend/internal/testutil"
	"jobtracker_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seekerRequest(email string) *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Email:    email,
		Password: "password123",
		Role:     models.UserRoleJobSeeker,
		FullName: "Alice Smith",
		Skills:   []string{"Go", " go ", "SQL", ""},
		Phone:    "+1 555 0100",
	}
}

func TestAuthService_RegisterAuthenticateResolve(t *testing.T) {
	db := testutil.NewTestDB(t)
	s := newTestAuthService()

	registered, err := s.Register(db, seekerRequest("Alice@Example.com"))
	require.NoError(t, err)
	assert.Equal(t, "bearer", registered.TokenType)
	assert.Equal(t, "alice@example.com", registered.User.Email)
	require.NotNil(t, registered.User.JobSeekerProfile)
	assert.Equal(t, []string{"Go", "SQL"}, registered.User.JobSeekerProfile.Skills)
	assert.Nil(t, registered.User.EmployerProfile)

	login, err := s.Authenticate(db, &dto.LoginRequest{Email: "ALICE@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.NotEqual(t, registered.AccessToken, login.AccessToken)

	identity, err := s.Resolve(db, login.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, identity.UserID)
	assert.Equal(t, models.UserRoleJobSeeker, identity.Role)

	me, err := s.Me(db, identity)
	require.NoError(t, err)
	assert.Equal(t, "Alice Smith", me.FullName)
}

func TestAuthService_RegisterDuplicateEmailIgnoresCase(t *testing.T) {
	db := testutil.NewTestDB(t)
	s := newTestAuthService()

	_, err := s.Register(db, seekerRequest("bob@example.com"))
	require.NoError(t, err)

	_, err = s.Register(db, seekerRequest("BOB@example.com"))
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestAuthService_RegisterInvalidProfile(t *testing.T) {
	db := testutil.NewTestDB(t)
	s := newTestAuthService()

	tests := []struct {
		name string
		req  *dto.RegisterRequest
	}{
		{"работодатель без компании", &dto.RegisterRequest{
			Email: "e1@acme.io", Password: "password123", Role: models.UserRoleEmployer, FullName: "HR",
		}},
		{"работодатель с навыками", &dto.RegisterRequest{
			Email: "e2@acme.io", Password: "password123", Role: models.UserRoleEmployer, FullName: "HR",
			CompanyName: "Acme", Skills: []string{"Go"},
		}},
		{"соискатель с компанией", &dto.RegisterRequest{
			Email: "s1@mail.io", Password: "password123", Role: models.UserRoleJobSeeker, FullName: "Sam",
			CompanyName: "Acme",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Register(db, tt.req)
			assert.ErrorIs(t, err, apperrors.ErrInvalidProfile)
		})
	}

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Zero(t, count, "при ошибке профиля пользователь не создается")
}

func TestAuthService_RegisterValidation(t *testing.T) {
	db := testutil.NewTestDB(t)
	s := newTestAuthService()

	req := seekerRequest("short@example.com")
	req.Password = "short"
	_, err := s.Register(db, req)
	requireCode(t, err, apperrors.CodeValidationFailed)

	req = seekerRequest("norole@example.com")
	req.Role = "admin"
	_, err = s.Register(db, req)
	requireCode(t, err, apperrors.CodeValidationFailed)
}

func TestAuthService_AuthenticateUniformError(t *testing.T) {
	db := testutil.NewTestDB(t)
	s := newTestAuthService()

	_, err := s.Register(db, seekerRequest("carol@example.com"))
	require.NoError(t, err)

	_, err = s.Authenticate(db, &dto.LoginRequest{Email: "carol@example.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = s.Authenticate(db, &dto.LoginRequest{Email: "nobody@example.com", Password: "password123"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthService_RevokeAndExpiry(t *testing.T) {
	db := testutil.NewTestDB(t)
	s := newTestAuthService()

	resp, err := s.Register(db, seekerRequest("dave@example.com"))
	require.NoError(t, err)

	identity, err := s.Resolve(db, resp.AccessToken)
	require.NoError(t, err)

	require.NoError(t, s.Revoke(db, identity))
	require.NoError(t, s.Revoke(db, identity), "повторный logout не ошибка")

	_, err = s.Resolve(db, resp.AccessToken)
	assert.ErrorIs(t, err, apperrors.ErrInvalidSession)

	fresh, err := s.Authenticate(db, &dto.LoginRequest{Email: "dave@example.com", Password: "password123"})
	require.NoError(t, err)

	s.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = s.Resolve(db, fresh.AccessToken)
	assert.ErrorIs(t, err, apperrors.ErrInvalidSession, "сессия истекла по серверному времени")

	_, err = s.Resolve(db, "garbage")
	assert.ErrorIs(t, err, apperrors.ErrInvalidSession)
}

func TestNormalizeSkills(t *testing.T) {
	assert.Equal(t, []string{"Go", "Kubernetes", "Straße"},
		NormalizeSkills([]string{"Go", "GO", " ", "Kubernetes", "Straße", "STRASSE"}))
	assert.Empty(t, NormalizeSkills(nil))
}
