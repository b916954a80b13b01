package services

import (
	"errors"
	"strings"
	"time"

	"jobtracker_backend/internal/auth"
	"jobtracker_backend/internal/logger"
	"jobtracker_backend/internal/models"
	"jobtracker_backend/internal/repositories"
	"jobtracker_backend/internal/services/dto"
	"jobtracker_backend/internal/utils"
	"jobtracker_backend/internal/validator"
	"jobtracker_backend/pkg/apperrors"

	mapset "github.com/deckarep/golang-set/v2"
	"gorm.io/gorm"
)

const tokenTypeBearer = "bearer"

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.SessionResponse, error)
	Authenticate(db *gorm.DB, req *dto.LoginRequest) (*dto.SessionResponse, error)
	// Resolve - токен в Identity. Любая проблема с токеном или сессией
	// дает ErrInvalidSession.
	Resolve(db *gorm.DB, token string) (*auth.Identity, error)
	Revoke(db *gorm.DB, identity *auth.Identity) error
	Me(db *gorm.DB, identity *auth.Identity) (*dto.UserResponse, error)
}

type AuthServiceImpl struct {
	userRepo    repositories.UserRepository
	sessionRepo repositories.SessionRepository
	hasher      *auth.Hasher
	tokens      *auth.TokenManager
	validator   *validator.Validator
	now         func() time.Time
}

func NewAuthService(
	userRepo repositories.UserRepository,
	sessionRepo repositories.SessionRepository,
	hasher *auth.Hasher,
	tokens *auth.TokenManager,
	v *validator.Validator,
) AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		hasher:      hasher,
		tokens:      tokens,
		validator:   v,
		now:         time.Now,
	}
}

// Register - регистрация с профилем роли и выдачей сессии
func (s *AuthServiceImpl) Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.SessionResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ValidationError(map[string]string{"password": err.Error()})
	}

	reg, err := BuildRegistration(req)
	if err != nil {
		return nil, err
	}

	exists, err := s.userRepo.ExistsByEmail(db, reg.Email)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hash, err := s.hasher.Hash(ctxOf(db), reg.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        reg.Email,
		FullName:     reg.FullName,
		PasswordHash: hash,
		Role:         reg.Profile.Role(),
	}
	switch p := reg.Profile.(type) {
	case dto.JobSeekerProfileData:
		profile := &models.JobSeekerProfile{
			Experience: p.Experience,
			Education:  p.Education,
			Phone:      p.Phone,
		}
		if err := profile.SetSkills(p.Skills); err != nil {
			return nil, apperrors.InternalError(err)
		}
		user.JobSeekerProfile = profile
	case dto.EmployerProfileData:
		user.EmployerProfile = &models.EmployerProfile{
			CompanyName:        p.CompanyName,
			CompanyDescription: p.CompanyDescription,
		}
	}

	if err := s.userRepo.CreateWithProfile(db, user); err != nil {
		// Проверка выше не защищает от гонки, финальное слово за уникальным индексом
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctxOf(db), "User registered", "user_id", user.ID, "role", user.Role)
	return s.issueSession(db, user)
}

// Authenticate - вход по email и паролю
func (s *AuthServiceImpl) Authenticate(db *gorm.DB, req *dto.LoginRequest) (*dto.SessionResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	ctx := ctxOf(db)

	user, err := s.userRepo.FindByEmail(db, utils.NormalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			if err := s.hasher.CompareDummy(ctx, req.Password); err != nil {
				return nil, err
			}
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	ok, err := s.hasher.Compare(ctx, user.PasswordHash, req.Password)
	if err != nil {
		return nil, err
	}
	if !ok {
		logger.CtxWarn(ctx, "Failed login attempt", "user_id", user.ID)
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueSession(db, user)
}

func (s *AuthServiceImpl) issueSession(db *gorm.DB, user *models.User) (*dto.SessionResponse, error) {
	issued, err := s.tokens.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	session := &models.Session{
		ID:        issued.SessionID,
		UserID:    user.ID,
		ExpiresAt: issued.ExpiresAt,
		CreatedAt: s.now(),
	}
	if err := s.sessionRepo.Create(db, session); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.SessionResponse{
		AccessToken: issued.Token,
		TokenType:   tokenTypeBearer,
		ExpiresAt:   issued.ExpiresAt,
		User:        dto.NewUserResponse(user),
	}, nil
}

func (s *AuthServiceImpl) Resolve(db *gorm.DB, token string) (*auth.Identity, error) {
	claims, err := s.tokens.ParseToken(token)
	if err != nil {
		return nil, apperrors.ErrInvalidSession
	}

	session, err := s.sessionRepo.FindByID(db, claims.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrSessionNotFound) {
			return nil, apperrors.ErrInvalidSession
		}
		return nil, apperrors.InternalError(err)
	}
	if !session.Active(s.now()) || session.UserID != claims.UserID {
		return nil, apperrors.ErrInvalidSession
	}

	return &auth.Identity{
		UserID:    claims.UserID,
		Role:      claims.Role,
		SessionID: session.ID,
	}, nil
}

// Revoke - выход. Повторный вызов для отозванной сессии не ошибка.
func (s *AuthServiceImpl) Revoke(db *gorm.DB, identity *auth.Identity) error {
	if identity == nil || identity.SessionID == "" {
		return apperrors.NewUnauthorizedError("Authentication required")
	}
	if err := s.sessionRepo.Revoke(db, identity.SessionID, s.now()); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AuthServiceImpl) Me(db *gorm.DB, identity *auth.Identity) (*dto.UserResponse, error) {
	if err := authorize(identity, auth.ActionViewSelf, auth.Resource{}); err != nil {
		return nil, err
	}
	user, err := s.userRepo.FindByID(db, identity.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidSession
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewUserResponse(user), nil
}

// BuildRegistration проверяет, что поля профиля соответствуют роли,
// и собирает профиль ровно одной роли
func BuildRegistration(req *dto.RegisterRequest) (*dto.Registration, error) {
	reg := &dto.Registration{
		Email:    utils.NormalizeEmail(req.Email),
		Password: req.Password,
		FullName: strings.TrimSpace(req.FullName),
	}

	problems := make(map[string]string)
	switch req.Role {
	case models.UserRoleEmployer:
		if utils.IsBlank(req.CompanyName) {
			problems["company_name"] = "is required for employers"
		}
		if len(req.Skills) > 0 {
			problems["skills"] = "is only allowed for job seekers"
		}
		if req.Experience != "" {
			problems["experience"] = "is only allowed for job seekers"
		}
		if req.Education != "" {
			problems["education"] = "is only allowed for job seekers"
		}
		if req.Phone != "" {
			problems["phone"] = "is only allowed for job seekers"
		}
		reg.Profile = dto.EmployerProfileData{
			CompanyName:        strings.TrimSpace(req.CompanyName),
			CompanyDescription: req.CompanyDescription,
		}
	case models.UserRoleJobSeeker:
		if req.CompanyName != "" {
			problems["company_name"] = "is only allowed for employers"
		}
		if req.CompanyDescription != "" {
			problems["company_description"] = "is only allowed for employers"
		}
		reg.Profile = dto.JobSeekerProfileData{
			Skills:     NormalizeSkills(req.Skills),
			Experience: req.Experience,
			Education:  req.Education,
			Phone:      strings.TrimSpace(req.Phone),
		}
	default:
		problems["role"] = "must be job_seeker or employer"
	}

	if len(problems) > 0 {
		return nil, apperrors.ErrInvalidProfile.WithDetails(problems)
	}
	return reg, nil
}

// NormalizeSkills убирает пустые навыки и дубликаты без учета регистра,
// сохраняя порядок первого вхождения
func NormalizeSkills(skills []string) []string {
	seen := mapset.NewThreadUnsafeSet[string]()
	result := make([]string, 0, len(skills))
	for _, skill := range skills {
		skill = strings.TrimSpace(skill)
		if skill == "" {
			continue
		}
		if seen.Add(utils.Fold(skill)) {
			result = append(result, skill)
		}
	}
	return result
}
