package ws

import (
	"net/http"

	"jobtracker_backend/internal/auth"
	"jobtracker_backend/internal/logger"
	"jobtracker_backend/internal/middleware"
	"jobtracker_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type WebSocketHandler struct {
	Manager  *WebSocketManager
	upgrader websocket.Upgrader
}

// NewWebSocketHandler - checkOrigin nil разрешает любой origin
func NewWebSocketHandler(manager *WebSocketManager, checkOrigin func(r *http.Request) bool) *WebSocketHandler {
	if checkOrigin == nil {
		checkOrigin = func(r *http.Request) bool { return true }
	}
	return &WebSocketHandler{
		Manager: manager,
		upgrader: websocket.Upgrader{
			CheckOrigin:     checkOrigin,
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// ServeWS подключает работодателя к потоку уведомлений об откликах.
// Требует AuthMiddleware перед собой.
func (h *WebSocketHandler) ServeWS(c *gin.Context) {
	identity := middleware.GetIdentity(c)
	decision := auth.Authorize(identity, auth.ActionSubscribeNotifications, auth.Resource{})
	if !decision.Allowed {
		if decision.Reason == auth.DenyUnauthenticated {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authentication required"))
		} else {
			apperrors.HandleError(c, apperrors.ErrNotEmployer)
		}
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.CtxWarn(c.Request.Context(), "WebSocket upgrade error", "error", err.Error())
		return
	}

	client := &Client{
		UserID:  identity.UserID,
		Conn:    conn,
		Send:    make(chan any, sendBuffer),
		Manager: h.Manager,
	}

	h.Manager.register <- client

	go client.readPump()
	go client.writePump()
}
