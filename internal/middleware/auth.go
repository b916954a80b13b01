package middleware

import (
	"strings"

	"jobtracker_backend/internal/auth"
	"jobtracker_backend/internal/logger"
	"jobtracker_backend/internal/models"
	"jobtracker_backend/pkg/apperrors"
	"jobtracker_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const identityKey = "identity"

// SessionResolver - проверка токена по сохранённой сессии
type SessionResolver interface {
	Resolve(db *gorm.DB, token string) (*auth.Identity, error)
}

// AuthMiddleware - проверка Bearer-токена и серверной сессии.
// Для websocket токен можно передать в query-параметре token.
func AuthMiddleware(resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authorization header missing or invalid"))
			return
		}

		identity, err := resolver.Resolve(requestDB(c), token)
		if err != nil {
			apperrors.HandleError(c, err)
			return
		}

		c.Set(identityKey, identity)
		c.Set("userID", identity.UserID)
		c.Set("role", identity.Role)
		c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), identity.UserID))
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	if header == "" {
		return c.Query("token")
	}
	return ""
}

func requestDB(c *gin.Context) *gorm.DB {
	if val, ok := c.Get(string(contextkeys.DBContextKey)); ok {
		if db, ok := val.(*gorm.DB); ok {
			return db
		}
	}
	panic("critical error: DBMiddleware did not set the db key")
}

// RequireRoles - быстрый отказ по роли до разбора тела запроса.
// Владение ресурсом проверяют сервисы.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := make(map[models.UserRole]bool, len(roles))
	for _, r := range roles {
		roleSet[r] = true
	}

	return func(c *gin.Context) {
		identity := GetIdentity(c)
		if identity == nil {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authentication required"))
			return
		}

		if !roleSet[identity.Role] {
			switch {
			case len(roles) == 1 && roles[0] == models.UserRoleEmployer:
				apperrors.HandleError(c, apperrors.ErrNotEmployer)
			case len(roles) == 1 && roles[0] == models.UserRoleJobSeeker:
				apperrors.HandleError(c, apperrors.ErrNotJobSeeker)
			default:
				apperrors.HandleError(c, apperrors.NewForbiddenError("Access denied: insufficient role"))
			}
			return
		}

		c.Next()
	}
}

// GetIdentity возвращает аутентифицированного пользователя или nil
func GetIdentity(c *gin.Context) *auth.Identity {
	val, exists := c.Get(identityKey)
	if !exists {
		return nil
	}
	identity, ok := val.(*auth.Identity)
	if !ok {
		return nil
	}
	return identity
}

// GetUserID извлекает ID пользователя из контекста
func GetUserID(c *gin.Context) string {
	if identity := GetIdentity(c); identity != nil {
		return identity.UserID
	}
	return ""
}
