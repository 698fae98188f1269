// Package session holds the per-browser-session bag: the authenticated
// identity, the UI theme preference, and one-shot flash messages. The bag
// lives server side under an opaque cookie id and is threaded through each
// request's context, never kept in a package-level global.
package session

import "context"

// Theme values recognized by the UI. An unset theme renders as light.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

type Session struct {
	UserID string `json:"user_id,omitempty"`
	Email  string `json:"email,omitempty"`
	Theme  string `json:"theme,omitempty"`
	Flash  string `json:"flash,omitempty"`

	dirty bool
}

// Store persists session bags by id. Get returns (nil, nil) for an unknown
// id.
type Store interface {
	Get(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, id string, s *Session) error
}

func (s *Session) LoggedIn() bool {
	return s.UserID != ""
}

// SetUser records the authenticated identity.
func (s *Session) SetUser(id, email string) {
	s.UserID = id
	s.Email = email
	s.dirty = true
}

// ClearUser drops the authenticated identity but keeps the theme.
func (s *Session) ClearUser() {
	s.UserID = ""
	s.Email = ""
	s.dirty = true
}

// ToggleTheme flips between dark and light. Unset flips to dark, so two
// toggles from a fresh session land back on the light default.
func (s *Session) ToggleTheme() {
	if s.Theme == ThemeDark {
		s.Theme = ThemeLight
	} else {
		s.Theme = ThemeDark
	}
	s.dirty = true
}

// PutFlash stores a one-shot message for the next rendered page.
func (s *Session) PutFlash(msg string) {
	s.Flash = msg
	s.dirty = true
}

// PopFlash returns the pending flash message and clears it.
func (s *Session) PopFlash() string {
	msg := s.Flash
	if msg != "" {
		s.Flash = ""
		s.dirty = true
	}
	return msg
}

type ctxKey struct{}

// FromContext returns the request's session. The session middleware
// guarantees one on every wrapped route.
func FromContext(ctx context.Context) *Session {
	s, _ := ctx.Value(ctxKey{}).(*Session)
	return s
}

func newContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}
