package handler

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"strings"

	"github.com/MatheusFelipeLS/movie-watchlist/internal/forms"
	"github.com/MatheusFelipeLS/movie-watchlist/internal/models"
)

//go:embed templates
var templateFS embed.FS

// templateData is the context every view renders with. Handlers fill in
// what their page needs; the session-derived fields come from newTemplateData.
type templateData struct {
	Title       string
	Theme       string
	Flash       string
	Email       string
	CurrentPage string

	Movies []models.Movie
	Movie  *models.Movie
	Form   *forms.Form
	// FormError is a non-field message shown above the form, e.g. the
	// generic credential error.
	FormError string
}

var templateFuncs = template.FuncMap{
	"join": strings.Join,
}

// Renderer parses the embedded templates once and renders pages against the
// shared base layout.
type Renderer struct {
	cache map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	pages, err := fs.Glob(templateFS, "templates/pages/*.html")
	if err != nil {
		return nil, err
	}

	cache := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		name := strings.TrimSuffix(path.Base(page), ".html")
		ts, err := template.New(name).Funcs(templateFuncs).
			ParseFS(templateFS, "templates/base.html", page)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", page, err)
		}
		cache[name] = ts
	}
	return &Renderer{cache: cache}, nil
}

func (rd *Renderer) Render(w http.ResponseWriter, status int, page string, data *templateData) {
	ts, ok := rd.cache[page]
	if !ok {
		slog.Error("unknown template", "page", page)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	// Render to a buffer first so a template failure can still become a
	// clean 500 instead of a half-written page.
	var buf bytes.Buffer
	if err := ts.ExecuteTemplate(&buf, "base", data); err != nil {
		slog.Error("rendering template", "page", page, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
