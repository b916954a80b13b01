package auth

import "jobtracker_backend/internal/models"

// Identity - аутентифицированный пользователь, полученный из сессии.
// nil означает анонимный запрос.
type Identity struct {
	UserID    string
	Role      models.UserRole
	SessionID string
}

type Action string

const (
	ActionRegister     Action = "auth:register"
	ActionAuthenticate Action = "auth:authenticate"
	ActionViewSelf     Action = "auth:me"
	ActionHealth       Action = "system:health"

	ActionListJobs    Action = "jobs:list"
	ActionViewJob     Action = "jobs:view"
	ActionCreateJob   Action = "jobs:create"
	ActionUpdateJob   Action = "jobs:update"
	ActionListOwnJobs Action = "jobs:list_own"

	ActionSubmitApplication   Action = "applications:submit"
	ActionListOwnApplications Action = "applications:list_own"
	ActionListJobApplications Action = "applications:list_for_job"
	ActionGenerateDocument    Action = "documents:generate"

	ActionSubscribeNotifications Action = "notifications:subscribe"
)

// Resource - объект действия. OwnerID пуст для действий без владельца.
type Resource struct {
	OwnerID string
}

type DenyReason string

const (
	DenyUnauthenticated DenyReason = "unauthenticated"
	DenyWrongRole       DenyReason = "wrong_role"
	DenyNotOwner        DenyReason = "not_owner"
)

// Decision - результат проверки. При DenyWrongRole в RequiredRole
// указана роль, которой разрешено действие.
type Decision struct {
	Allowed      bool
	Reason       DenyReason
	RequiredRole models.UserRole
}

type rule struct {
	public    bool
	role      models.UserRole
	ownerOnly bool
}

var policy = map[Action]rule{
	ActionRegister:     {public: true},
	ActionAuthenticate: {public: true},
	ActionHealth:       {public: true},
	ActionListJobs:     {public: true},
	ActionViewJob:      {public: true},

	ActionViewSelf: {},

	ActionCreateJob:   {role: models.UserRoleEmployer},
	ActionUpdateJob:   {role: models.UserRoleEmployer, ownerOnly: true},
	ActionListOwnJobs: {role: models.UserRoleEmployer},

	ActionSubmitApplication:   {role: models.UserRoleJobSeeker},
	ActionListOwnApplications: {role: models.UserRoleJobSeeker},
	ActionGenerateDocument:    {role: models.UserRoleJobSeeker},

	ActionListJobApplications:    {role: models.UserRoleEmployer, ownerOnly: true},
	ActionSubscribeNotifications: {role: models.UserRoleEmployer},
}

func Allow() Decision {
	return Decision{Allowed: true}
}

// Authorize - чистая функция без обращений к хранилищу.
// Неизвестное действие запрещено.
func Authorize(identity *Identity, action Action, resource Resource) Decision {
	r, known := policy[action]
	if known && r.public {
		return Allow()
	}
	if identity == nil || identity.UserID == "" {
		return Decision{Reason: DenyUnauthenticated}
	}
	if !known {
		return Decision{Reason: DenyWrongRole}
	}
	if r.role != "" && identity.Role != r.role {
		return Decision{Reason: DenyWrongRole, RequiredRole: r.role}
	}
	if r.ownerOnly && resource.OwnerID != identity.UserID {
		return Decision{Reason: DenyNotOwner}
	}
	return Allow()
}

// AuthorizeRole проверяет аутентификацию и роль без учета владельца.
// Используется до загрузки ресурса, чтобы отказ по роли шел первым.
func AuthorizeRole(identity *Identity, action Action) Decision {
	return Authorize(identity, action, Resource{OwnerID: ownerOf(identity)})
}

func ownerOf(identity *Identity) string {
	if identity == nil {
		return ""
	}
	return identity.UserID
}
