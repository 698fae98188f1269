// Package forms implements declarative per-field validation for submitted
// form data. A form is an ordered set of named fields, each carrying rules
// evaluated in declaration order; the first failing rule for a field stops
// further checks on that field. Submitted values survive validation so a
// failed form can be redisplayed pre-filled.
package forms

import (
	"net/http"
	"strconv"
	"strings"
)

// Rule checks one submitted value. It returns a human-readable message on
// failure and the empty string on success. Rules can read sibling values
// through the form.
type Rule func(f *Form, value string) string

type Field struct {
	Name  string
	Rules []Rule
}

type Form struct {
	fields []Field
	values map[string]string
	// Errors maps field name to the messages of its failed rules. At most
	// one message per field per validation pass.
	Errors map[string][]string
	// Warnings holds advisory messages that never block submission.
	Warnings map[string][]string
}

func New(fields ...Field) *Form {
	return &Form{
		fields:   fields,
		values:   make(map[string]string),
		Errors:   make(map[string][]string),
		Warnings: make(map[string][]string),
	}
}

// Set stores a value for a field, used to pre-fill a form from an existing
// record before rendering.
func (f *Form) Set(name, value string) {
	f.values[name] = value
}

// Get returns the current (possibly unvalidated) value of a field.
func (f *Form) Get(name string) string {
	return f.values[name]
}

// Bind copies the request's submitted values for the form's declared fields.
func (f *Form) Bind(r *http.Request) {
	_ = r.ParseForm()
	for _, fld := range f.fields {
		f.values[fld.Name] = r.PostForm.Get(fld.Name)
	}
}

// ValidateOnSubmit binds and validates only for a submission-style request.
// A plain fetch of the form returns false without recording any errors.
func (f *Form) ValidateOnSubmit(r *http.Request) bool {
	if r.Method != http.MethodPost {
		return false
	}
	f.Bind(r)
	return f.Validate()
}

// Validate runs every field's rules and reports whether all fields passed.
func (f *Form) Validate() bool {
	for _, fld := range f.fields {
		value := f.values[fld.Name]
		for _, rule := range fld.Rules {
			if msg := rule(f, value); msg != "" {
				f.Errors[fld.Name] = append(f.Errors[fld.Name], msg)
				break
			}
		}
	}
	return len(f.Errors) == 0
}

// Int returns the field parsed as an integer. Call only after a successful
// Validate on a field whose rules guarantee integer shape.
func (f *Form) Int(name string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(f.values[name]))
	return n
}

// Lines coerces a multi-line text field to a sequence: a wholly empty value
// yields an empty sequence, anything else is split on newlines with each
// line trimmed. Order is preserved and blank lines between content survive
// as empty strings; only the wholly empty value collapses to nothing.
func (f *Form) Lines(name string) []string {
	raw := f.values[name]
	if raw == "" {
		return []string{}
	}
	lines := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = strings.TrimSpace(line)
	}
	return out
}
