package handler

import (
	"errors"
	"net/http"

	"github.com/MatheusFelipeLS/movie-watchlist/internal/forms"
	"github.com/MatheusFelipeLS/movie-watchlist/internal/service"
	"github.com/MatheusFelipeLS/movie-watchlist/internal/session"
)

// Both login failure modes surface this one message.
const credentialErrorMessage = "Incorrect email or password."

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	if sess.LoggedIn() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	form := forms.NewRegisterForm()

	if form.ValidateOnSubmit(r) {
		_, err := h.auth.Register(r.Context(), form.Get("email"), form.Get("password"))
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			form.Errors["email"] = append(form.Errors["email"], "This email is already registered.")
		case err != nil:
			h.serverError(w, r, err)
			return
		default:
			sess.PutFlash("Account created. Please log in.")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
	}

	data := h.newTemplateData(r)
	data.Title = "Movie Watchlist - Register"
	data.Form = form
	h.renderer.Render(w, http.StatusOK, "register", data)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	if sess.LoggedIn() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	form := forms.NewLoginForm()
	var formError string

	if form.ValidateOnSubmit(r) {
		u, err := h.auth.Login(r.Context(), form.Get("email"), form.Get("password"))
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			formError = credentialErrorMessage
		case err != nil:
			h.serverError(w, r, err)
			return
		default:
			sess.SetUser(u.ID, u.Email)
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
	}

	data := h.newTemplateData(r)
	data.Title = "Movie Watchlist - Login"
	data.Form = form
	data.FormError = formError
	h.renderer.Render(w, http.StatusOK, "login", data)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	session.FromContext(r.Context()).ClearUser()
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *Handler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	session.FromContext(r.Context()).ToggleTheme()
	http.Redirect(w, r, localPath(r.URL.Query().Get("current_page")), http.StatusSeeOther)
}
