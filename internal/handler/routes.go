package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MatheusFelipeLS/movie-watchlist/internal/session"
)

// Routes builds the full router: request logging, panic recovery, the
// session bag, and every page of the app.
func (h *Handler) Routes(sessions *session.Manager) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(sessions.Middleware)

	r.Get("/", h.Index)

	r.Get("/register", h.Register)
	r.Post("/register", h.Register)
	r.Get("/login", h.Login)
	r.Post("/login", h.Login)
	r.Get("/logout", h.Logout)

	r.Get("/add", h.AddMovie)
	r.Post("/add", h.AddMovie)
	r.Get("/movie/{id}", h.MovieDetail)
	r.Get("/edit/{id}", h.EditMovie)
	r.Post("/edit/{id}", h.EditMovie)
	r.Get("/movie/{id}/rate", h.RateMovie)
	r.Get("/movie/{id}/watch", h.MarkWatched)

	r.Get("/toggle-theme", h.ToggleTheme)

	r.NotFound(h.notFound)

	return r
}
