package v1

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// session - серверная сессия оператора; токен непрозрачен для клиента
type session struct {
	username  string
	expiresAt time.Time
}

// sessionStore хранит активные сессии в памяти процесса.
// Отзыв токена при logout возможен именно потому, что состояние серверное.
type sessionStore struct {
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[string]session
	now      func() time.Time
}

func newSessionStore(ttl time.Duration) *sessionStore {
	return &sessionStore{
		ttl:      ttl,
		sessions: make(map[string]session),
		now:      time.Now,
	}
}

// create выдает новый токен для пользователя
func (s *sessionStore) create(username string) (string, time.Time) {
	token := uuid.NewString()
	expiresAt := s.now().Add(s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = session{username: username, expiresAt: expiresAt}
	return token, expiresAt
}

// validate проверяет токен и удаляет его, если срок истек
func (s *sessionStore) validate(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok {
		return false
	}
	if s.now().After(sess.expiresAt) {
		delete(s.sessions, token)
		return false
	}
	return true
}

// revoke отзывает токен
func (s *sessionStore) revoke(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

// SessionAuthMiddleware - middleware аутентификации по сессионному токену
func (h *Handler) SessionAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			h.logger.Warn("Session token missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		if !h.sessions.validate(token) {
			h.logger.Warn("Invalid or expired session token provided")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session"})
			return
		}

		c.Next()
	}
}

// bearerToken извлекает токен из заголовка Authorization
func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}
