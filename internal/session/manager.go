package session

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const cookieName = "session_id"

// Manager ties browser cookies to stored session bags.
type Manager struct {
	store Store
	ttl   time.Duration
}

func NewManager(store Store, ttl time.Duration) *Manager {
	return &Manager{store: store, ttl: ttl}
}

// Middleware loads the request's session bag (creating a fresh one when the
// cookie is absent or stale), threads it through the context, and persists
// it after the handler when it changed.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, sess := m.load(r)
		if sess == nil {
			id = uuid.NewString()
			sess = &Session{}
			http.SetCookie(w, &http.Cookie{
				Name:     cookieName,
				Value:    id,
				Path:     "/",
				MaxAge:   int(m.ttl.Seconds()),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		next.ServeHTTP(w, r.WithContext(newContext(r.Context(), sess)))

		if sess.dirty {
			if err := m.store.Save(r.Context(), id, sess); err != nil {
				slog.Error("saving session", "id", id, "error", err)
			}
		}
	})
}

func (m *Manager) load(r *http.Request) (string, *Session) {
	c, err := r.Cookie(cookieName)
	if err != nil {
		return "", nil
	}
	sess, err := m.store.Get(r.Context(), c.Value)
	if err != nil {
		slog.Error("loading session", "id", c.Value, "error", err)
		return "", nil
	}
	if sess == nil {
		return "", nil
	}
	return c.Value, sess
}
