// Package handler is the request-handling layer: parse, validate, call the
// services, then redirect or re-render.
package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/MatheusFelipeLS/movie-watchlist/internal/service"
	"github.com/MatheusFelipeLS/movie-watchlist/internal/session"
)

type Handler struct {
	movies   *service.MovieService
	auth     *service.AuthService
	renderer *Renderer
}

func New(movies *service.MovieService, auth *service.AuthService, renderer *Renderer) *Handler {
	return &Handler{movies: movies, auth: auth, renderer: renderer}
}

// newTemplateData seeds a view context from the request's session bag.
func (h *Handler) newTemplateData(r *http.Request) *templateData {
	data := &templateData{
		Theme:       session.ThemeLight,
		CurrentPage: r.URL.RequestURI(),
	}
	if sess := session.FromContext(r.Context()); sess != nil {
		if sess.Theme != "" {
			data.Theme = sess.Theme
		}
		data.Flash = sess.PopFlash()
		data.Email = sess.Email
	}
	return data
}

func (h *Handler) serverError(w http.ResponseWriter, r *http.Request, err error) {
	slog.Error("handler failure", "method", r.Method, "path", r.URL.Path, "error", err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	data := h.newTemplateData(r)
	data.Title = "Not found"
	h.renderer.Render(w, http.StatusNotFound, "not_found", data)
}

// localPath keeps redirects on this site. Anything that is not a plain local
// path falls back to the index.
func localPath(target string) string {
	if strings.HasPrefix(target, "/") && !strings.HasPrefix(target, "//") {
		return target
	}
	return "/"
}
