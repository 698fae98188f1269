package forms

import (
	"net/http/httptest"
	"net/url"
	"reflect"
	"strings"
	"testing"
)

func submit(t *testing.T, f *Form, values url.Values) bool {
	t.Helper()
	r := httptest.NewRequest("POST", "/", strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return f.ValidateOnSubmit(r)
}

func TestMovieFormValid(t *testing.T) {
	f := NewMovieForm()
	ok := submit(t, f, url.Values{
		"title":    {"Inception"},
		"director": {"Christopher Nolan"},
		"year":     {"2010"},
	})
	if !ok {
		t.Fatalf("valid movie form failed: %v", f.Errors)
	}
	if f.Int("year") != 2010 {
		t.Errorf("Int(year) = %d, want 2010", f.Int("year"))
	}
}

func TestMovieFormYearRange(t *testing.T) {
	tests := []struct {
		year string
		ok   bool
	}{
		{"1878", true},
		{"2024", true},
		{"1877", false},
		{"2025", false},
		{"abcd", false},
		{"", false},
	}
	for _, tt := range tests {
		f := NewMovieForm()
		ok := submit(t, f, url.Values{
			"title": {"t"}, "director": {"d"}, "year": {tt.year},
		})
		if ok != tt.ok {
			t.Errorf("year %q: valid = %v, want %v (errors: %v)", tt.year, ok, tt.ok, f.Errors)
		}
		if !tt.ok && len(f.Errors["year"]) == 0 {
			t.Errorf("year %q: no error message recorded", tt.year)
		}
	}
}

func TestRequiredShortCircuits(t *testing.T) {
	f := NewMovieForm()
	submit(t, f, url.Values{"director": {"d"}, "year": {""}})
	// Required fails first; the range rule must not add a second message.
	if got := len(f.Errors["year"]); got != 1 {
		t.Errorf("year errors = %d, want 1 (short circuit)", got)
	}
}

func TestValidateOnSubmitIgnoresGet(t *testing.T) {
	f := NewMovieForm()
	r := httptest.NewRequest("GET", "/", nil)
	if f.ValidateOnSubmit(r) {
		t.Error("GET request validated as a submission")
	}
	if len(f.Errors) != 0 {
		t.Errorf("GET request recorded errors: %v", f.Errors)
	}
}

func TestFailedFormKeepsSubmittedValues(t *testing.T) {
	f := NewMovieForm()
	submit(t, f, url.Values{
		"title": {"Inception"}, "director": {""}, "year": {"3000"},
	})
	if got := f.Get("title"); got != "Inception" {
		t.Errorf("Get(title) = %q, want the submitted value", got)
	}
	if got := f.Get("year"); got != "3000" {
		t.Errorf("Get(year) = %q, want the submitted value preserved", got)
	}
}

func TestLines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", []string{}},
		{"single", "Leonardo DiCaprio", []string{"Leonardo DiCaprio"}},
		{"multi", "a\nb\nc", []string{"a", "b", "c"}},
		{"trimmed", "  a  \n\tb\t", []string{"a", "b"}},
		{"crlf", "a\r\nb", []string{"a", "b"}},
		{"blank between content", "a\n\nb", []string{"a", "", "b"}},
		{"whitespace only is not empty", " \n ", []string{"", ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := New(Field{Name: "cast"})
			f.Set("cast", tt.in)
			if got := f.Lines("cast"); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Lines(%q) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLinesRoundTrip(t *testing.T) {
	in := "Leonardo DiCaprio \n Joseph Gordon-Levitt\nElliot Page"
	f := New(Field{Name: "cast"})
	f.Set("cast", in)
	got := strings.Join(f.Lines("cast"), "\n")
	want := "Leonardo DiCaprio\nJoseph Gordon-Levitt\nElliot Page"
	if got != want {
		t.Errorf("join(Lines()) = %q, want %q", got, want)
	}
}

func TestRegisterFormPasswordMismatch(t *testing.T) {
	f := NewRegisterForm()
	ok := submit(t, f, url.Values{
		"email":            {"me@example.com"},
		"password":         {"secret1"},
		"confirm_password": {"secret2"},
	})
	if ok {
		t.Fatal("mismatched passwords validated")
	}
	if len(f.Errors["confirm_password"]) == 0 {
		t.Error("no error recorded on confirm_password")
	}
}

func TestRegisterFormPasswordLength(t *testing.T) {
	for _, pw := range []string{"abc", strings.Repeat("x", 21)} {
		f := NewRegisterForm()
		ok := submit(t, f, url.Values{
			"email":            {"me@example.com"},
			"password":         {pw},
			"confirm_password": {pw},
		})
		if ok {
			t.Errorf("password of length %d validated", len(pw))
		}
	}
}

func TestRegisterFormEmailShape(t *testing.T) {
	for _, email := range []string{"nope", "a@", "@b.com", "a b@c.com"} {
		f := NewRegisterForm()
		ok := submit(t, f, url.Values{
			"email":            {email},
			"password":         {"secret"},
			"confirm_password": {"secret"},
		})
		if ok {
			t.Errorf("email %q validated", email)
		}
	}
}

func TestExtendedFormOptionalFields(t *testing.T) {
	f := NewExtendedMovieForm()
	ok := submit(t, f, url.Values{
		"title": {"t"}, "director": {"d"}, "year": {"1999"},
	})
	if !ok {
		t.Fatalf("extended form with empty optional fields failed: %v", f.Errors)
	}
	if got := f.Lines("tags"); len(got) != 0 {
		t.Errorf("Lines(tags) = %v, want empty", got)
	}
}

func TestExtendedFormVideoLinkAdvisoryOnly(t *testing.T) {
	f := NewExtendedMovieForm()
	ok := submit(t, f, url.Values{
		"title": {"t"}, "director": {"d"}, "year": {"1999"},
		"video_link": {"not a url"},
	})
	if !ok {
		t.Fatalf("malformed video_link blocked submission: %v", f.Errors)
	}
	if len(f.Warnings["video_link"]) == 0 {
		t.Error("malformed video_link produced no warning")
	}
}
