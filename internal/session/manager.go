package session

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// CookieName identifica la sesión del navegador.
	CookieName = "sensor_session"

	contextKey = "session"
)

// Manager guarda las sesiones vivas del proceso. Las sesiones inactivas se
// limpian en segundo plano, igual que los IPs viejos del rate limiter.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	idleTTL  time.Duration
}

func NewManager(idleTTL time.Duration) *Manager {
	m := &Manager{
		sessions: make(map[string]*Session),
		idleTTL:  idleTTL,
	}

	go m.cleanupLoop()

	return m
}

func (m *Manager) cleanupLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		cutoff := time.Now().Add(-m.idleTTL)

		m.mu.Lock()
		for id, sess := range m.sessions {
			if sess.idleSince(cutoff) {
				delete(m.sessions, id)
			}
		}
		m.mu.Unlock()
	}
}

// Acquire devuelve la sesión con ese ID, creándola si no existe o si el ID
// viene vacío (cookie nueva).
func (m *Manager) Acquire(id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if id != "" {
		if sess, ok := m.sessions[id]; ok {
			sess.touch(time.Now())
			return sess
		}
	}

	sess := &Session{ID: uuid.NewString()}
	sess.touch(time.Now())
	m.sessions[sess.ID] = sess
	return sess
}

// Count devuelve cuántas sesiones siguen vivas.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Middleware asocia cada request a su sesión vía cookie y la deja en el
// contexto de Gin.
func (m *Manager) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := c.Cookie(CookieName)

		sess := m.Acquire(id)
		if sess.ID != id {
			c.SetCookie(CookieName, sess.ID, 0, "/", "", false, true)
		}

		c.Set(contextKey, sess)
		c.Next()
	}
}

// FromContext recupera la sesión asociada al request actual.
func FromContext(c *gin.Context) *Session {
	value, exists := c.Get(contextKey)
	if !exists {
		return nil
	}

	sess, ok := value.(*Session)
	if !ok {
		return nil
	}
	return sess
}

// AbortIfMissing es un guardia para handlers que requieren sesión.
func AbortIfMissing(c *gin.Context) *Session {
	sess := FromContext(c)
	if sess == nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error": "No hay sesión activa para este request",
		})
	}
	return sess
}
