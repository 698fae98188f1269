package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MatheusFelipeLS/movie-watchlist/internal/forms"
	"github.com/MatheusFelipeLS/movie-watchlist/internal/models"
	"github.com/MatheusFelipeLS/movie-watchlist/internal/service"
)

func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	movies, err := h.movies.List(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	data := h.newTemplateData(r)
	data.Title = "Movies watchlist"
	data.Movies = movies
	h.renderer.Render(w, http.StatusOK, "index", data)
}

func (h *Handler) AddMovie(w http.ResponseWriter, r *http.Request) {
	form := forms.NewMovieForm()

	if form.ValidateOnSubmit(r) {
		m, err := h.movies.Create(r.Context(),
			form.Get("title"), form.Get("director"), form.Int("year"))
		if err != nil {
			h.serverError(w, r, err)
			return
		}
		http.Redirect(w, r, "/movie/"+m.ID, http.StatusSeeOther)
		return
	}

	data := h.newTemplateData(r)
	data.Title = "Movie Watchlist - Add Movie"
	data.Form = form
	h.renderer.Render(w, http.StatusOK, "new_movie", data)
}

func (h *Handler) MovieDetail(w http.ResponseWriter, r *http.Request) {
	m, err := h.movies.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, service.ErrMovieNotFound) {
		h.notFound(w, r)
		return
	}
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	data := h.newTemplateData(r)
	data.Title = m.Title
	data.Movie = m
	h.renderer.Render(w, http.StatusOK, "movie_details", data)
}

func (h *Handler) EditMovie(w http.ResponseWriter, r *http.Request) {
	m, err := h.movies.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, service.ErrMovieNotFound) {
		h.notFound(w, r)
		return
	}
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	form := forms.NewExtendedMovieForm()

	if form.ValidateOnSubmit(r) {
		applyEdit(m, form)
		if err := h.movies.Update(r.Context(), m); err != nil {
			h.serverError(w, r, err)
			return
		}
		http.Redirect(w, r, "/movie/"+m.ID, http.StatusSeeOther)
		return
	}

	if r.Method == http.MethodGet {
		prefill(form, m)
	}

	data := h.newTemplateData(r)
	data.Title = "Movie Watchlist - Edit Movie"
	data.Movie = m
	data.Form = form
	h.renderer.Render(w, http.StatusOK, "edit_movie", data)
}

// applyEdit overwrites every editable field from the validated form. The id
// stays, and rating/last_watched belong to their own routes.
func applyEdit(m *models.Movie, form *forms.Form) {
	m.Title = form.Get("title")
	m.Director = form.Get("director")
	m.Year = form.Int("year")
	m.Cast = form.Lines("cast")
	m.Series = form.Lines("series")
	m.Tags = form.Lines("tags")
	m.Description = form.Get("description")
	m.VideoLink = form.Get("video_link")
}

func prefill(form *forms.Form, m *models.Movie) {
	form.Set("title", m.Title)
	form.Set("director", m.Director)
	form.Set("year", strconv.Itoa(m.Year))
	form.Set("cast", strings.Join(m.Cast, "\n"))
	form.Set("series", strings.Join(m.Series, "\n"))
	form.Set("tags", strings.Join(m.Tags, "\n"))
	form.Set("description", m.Description)
	form.Set("video_link", m.VideoLink)
}

func (h *Handler) RateMovie(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	rating, err := strconv.Atoi(r.URL.Query().Get("rating"))
	if err != nil {
		http.Error(w, "rating must be an integer", http.StatusBadRequest)
		return
	}

	err = h.movies.Rate(r.Context(), id, rating)
	if errors.Is(err, service.ErrMovieNotFound) {
		h.notFound(w, r)
		return
	}
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	http.Redirect(w, r, "/movie/"+id, http.StatusSeeOther)
}

func (h *Handler) MarkWatched(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	_, err := h.movies.MarkWatched(r.Context(), id)
	if errors.Is(err, service.ErrMovieNotFound) {
		h.notFound(w, r)
		return
	}
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	http.Redirect(w, r, "/movie/"+id, http.StatusSeeOther)
}
