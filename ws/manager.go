package ws

import (
	"context"
	"sync"

	"jobtracker_backend/internal/logger"
)

// Event - сообщение, отправляемое клиенту
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// WebSocketManager хранит подключения по пользователям. У одного
// пользователя может быть несколько вкладок.
type WebSocketManager struct {
	clients    map[string]map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	mu         sync.RWMutex
}

func NewWebSocketManager() *WebSocketManager {
	return &WebSocketManager{
		clients:    make(map[string]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client, 16),
		done:       make(chan struct{}),
	}
}

// Run обрабатывает регистрацию клиентов до отмены ctx
func (manager *WebSocketManager) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(manager.done)
			manager.closeAll()
			return

		case client := <-manager.register:
			manager.mu.Lock()
			conns, ok := manager.clients[client.UserID]
			if !ok {
				conns = make(map[*Client]struct{})
				manager.clients[client.UserID] = conns
			}
			conns[client] = struct{}{}
			manager.mu.Unlock()
			logger.Debug("ws client registered", "user_id", client.UserID, "connections", len(conns))

		case client := <-manager.unregister:
			manager.remove(client)
		}
	}
}

func (manager *WebSocketManager) remove(client *Client) {
	manager.mu.Lock()
	defer manager.mu.Unlock()

	conns, ok := manager.clients[client.UserID]
	if !ok {
		return
	}
	if _, exists := conns[client]; !exists {
		return
	}
	close(client.Send)
	delete(conns, client)
	if len(conns) == 0 {
		delete(manager.clients, client.UserID)
	}
	logger.Debug("ws client unregistered", "user_id", client.UserID)
}

func (manager *WebSocketManager) closeAll() {
	manager.mu.Lock()
	defer manager.mu.Unlock()

	for userID, conns := range manager.clients {
		for client := range conns {
			close(client.Send)
		}
		delete(manager.clients, userID)
	}
}

// SendToUser отправляет событие во все подключения пользователя.
// Медленный клиент с заполненным буфером отключается.
func (manager *WebSocketManager) SendToUser(userID string, event Event) int {
	manager.mu.RLock()
	defer manager.mu.RUnlock()

	delivered := 0
	for client := range manager.clients[userID] {
		select {
		case client.Send <- event:
			delivered++
		default:
			go manager.leave(client)
		}
	}
	return delivered
}

// leave отправляет клиента на удаление, если менеджер ещё работает
func (manager *WebSocketManager) leave(client *Client) {
	select {
	case manager.unregister <- client:
	case <-manager.done:
	}
}

// IsUserConnected проверяет, есть ли у пользователя открытые подключения
func (manager *WebSocketManager) IsUserConnected(userID string) bool {
	manager.mu.RLock()
	defer manager.mu.RUnlock()
	return len(manager.clients[userID]) > 0
}
