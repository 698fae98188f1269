// Package models holds the stored record shapes and their conversion to and
// from raw documents. Conversion is strict: a document with a key no model
// field claims is an error, and Doc() is the exact inverse of the From*
// constructor for every field, empty optional sequences included.
package models

import (
	"fmt"
	"time"

	"github.com/MatheusFelipeLS/movie-watchlist/internal/storage"
)

type Movie struct {
	ID          string
	Title       string
	Director    string
	Year        int
	Cast        []string
	Series      []string
	Tags        []string
	Description string
	VideoLink   string
	Rating      *int
	LastWatched *time.Time
}

var movieKeys = map[string]bool{
	"_id": true, "title": true, "director": true, "year": true,
	"cast": true, "series": true, "tags": true,
	"description": true, "video_link": true,
	"rating": true, "last_watched": true,
}

// MovieFromDoc builds a Movie from a stored document. Optional fields absent
// from the document get their zero defaults; list fields come back as empty,
// never nil.
func MovieFromDoc(d storage.Doc) (*Movie, error) {
	if err := checkKeys(d, movieKeys); err != nil {
		return nil, fmt.Errorf("movie document: %w", err)
	}

	m := &Movie{
		ID:          asString(d["_id"]),
		Title:       asString(d["title"]),
		Director:    asString(d["director"]),
		Description: asString(d["description"]),
		VideoLink:   asString(d["video_link"]),
	}

	year, err := asInt(d["year"])
	if err != nil {
		return nil, fmt.Errorf("movie document %q: year: %w", m.ID, err)
	}
	m.Year = year

	for key, dst := range map[string]*[]string{
		"cast": &m.Cast, "series": &m.Series, "tags": &m.Tags,
	} {
		vals, err := asStrings(d[key])
		if err != nil {
			return nil, fmt.Errorf("movie document %q: %s: %w", m.ID, key, err)
		}
		*dst = vals
	}

	if v, ok := d["rating"]; ok && v != nil {
		r, err := asInt(v)
		if err != nil {
			return nil, fmt.Errorf("movie document %q: rating: %w", m.ID, err)
		}
		m.Rating = &r
	}

	if v, ok := d["last_watched"]; ok && v != nil {
		t, err := time.Parse(time.RFC3339, asString(v))
		if err != nil {
			return nil, fmt.Errorf("movie document %q: last_watched: %w", m.ID, err)
		}
		m.LastWatched = &t
	}

	return m, nil
}

// Doc serializes the movie back to its stored form. rating and last_watched
// are present only when set; the list fields are always present.
func (m *Movie) Doc() storage.Doc {
	d := storage.Doc{
		"_id":         m.ID,
		"title":       m.Title,
		"director":    m.Director,
		"year":        m.Year,
		"cast":        toAny(m.Cast),
		"series":      toAny(m.Series),
		"tags":        toAny(m.Tags),
		"description": m.Description,
		"video_link":  m.VideoLink,
	}
	if m.Rating != nil {
		d["rating"] = *m.Rating
	}
	if m.LastWatched != nil {
		d["last_watched"] = m.LastWatched.UTC().Format(time.RFC3339)
	}
	return d
}

func checkKeys(d storage.Doc, allowed map[string]bool) error {
	for k := range d {
		if !allowed[k] {
			return fmt.Errorf("unexpected field %q", k)
		}
	}
	return nil
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asInt(v any) (int, error) {
	switch t := v.(type) {
	case int:
		return t, nil
	case int32:
		return int(t), nil
	case int64:
		return int(t), nil
	case float64:
		return int(t), nil
	default:
		return 0, fmt.Errorf("not an integer: %v (%T)", v, v)
	}
}

func asStrings(v any) ([]string, error) {
	if v == nil {
		return []string{}, nil
	}
	switch t := v.(type) {
	case []string:
		out := make([]string, len(t))
		copy(out, t)
		return out, nil
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range t {
			s, ok := e.(string)
			if !ok {
				return nil, fmt.Errorf("not a string: %v (%T)", e, e)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("not a string list: %v (%T)", v, v)
	}
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
