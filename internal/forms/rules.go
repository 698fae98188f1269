package forms

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Required fails on an empty submitted value. Whitespace-only input counts
// as submitted.
func Required() Rule {
	return func(f *Form, value string) string {
		if value == "" {
			return "This field is required."
		}
		return ""
	}
}

// IntRange parses the value as an integer and checks it against an inclusive
// range, failing with msg either way.
func IntRange(min, max int, msg string) Rule {
	return func(f *Form, value string) string {
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || n < min || n > max {
			return msg
		}
		return ""
	}
}

// Email fails when the value is not shaped like an email address.
func Email() Rule {
	return func(f *Form, value string) string {
		if validate.Var(value, "email") != nil {
			return "Please enter a valid email address."
		}
		return ""
	}
}

// LengthRange fails when the value's length is outside [min, max].
func LengthRange(min, max int) Rule {
	return func(f *Form, value string) string {
		if len(value) < min || len(value) > max {
			return fmt.Sprintf("Field must be between %d and %d characters long.", min, max)
		}
		return ""
	}
}

// EqualTo fails unless the value exactly equals the named sibling field's
// current value.
func EqualTo(other, msg string) Rule {
	return func(f *Form, value string) string {
		if value != f.Get(other) {
			return msg
		}
		return ""
	}
}

// Advisory downgrades a rule: its message lands in Warnings and never fails
// validation.
func Advisory(name string, rule Rule) Rule {
	return func(f *Form, value string) string {
		if value == "" {
			return ""
		}
		if msg := rule(f, value); msg != "" {
			f.Warnings[name] = append(f.Warnings[name], msg)
		}
		return ""
	}
}

// URLShape fails when the value is not a well-formed URL.
func URLShape() Rule {
	return func(f *Form, value string) string {
		if validate.Var(value, "url") != nil {
			return "This does not look like a URL."
		}
		return ""
	}
}
