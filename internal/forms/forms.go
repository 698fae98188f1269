package forms

// Year bounds: from the first film ever made to the present.
const (
	MinYear = 1878
	MaxYear = 2024
)

func movieFields() []Field {
	return []Field{
		{Name: "title", Rules: []Rule{Required()}},
		{Name: "director", Rules: []Rule{Required()}},
		{Name: "year", Rules: []Rule{
			Required(),
			IntRange(MinYear, MaxYear, "Please enter a year in format YYYY."),
		}},
	}
}

// NewMovieForm validates the add-movie submission.
func NewMovieForm() *Form {
	return New(movieFields()...)
}

// NewExtendedMovieForm extends the movie form with the enrichment fields
// edited on an existing record. video_link gets an advisory URL check only.
func NewExtendedMovieForm() *Form {
	fields := append(movieFields(),
		Field{Name: "cast"},
		Field{Name: "series"},
		Field{Name: "tags"},
		Field{Name: "description"},
		Field{Name: "video_link", Rules: []Rule{Advisory("video_link", URLShape())}},
	)
	return New(fields...)
}

// NewRegisterForm validates account creation.
func NewRegisterForm() *Form {
	return New(
		Field{Name: "email", Rules: []Rule{Required(), Email()}},
		Field{Name: "password", Rules: []Rule{Required(), LengthRange(4, 20)}},
		Field{Name: "confirm_password", Rules: []Rule{
			Required(),
			EqualTo("password", "Passwords must match."),
		}},
	)
}

// NewLoginForm validates a login attempt. Password length is deliberately
// unchecked here; the credential comparison decides.
func NewLoginForm() *Form {
	return New(
		Field{Name: "email", Rules: []Rule{Required(), Email()}},
		Field{Name: "password", Rules: []Rule{Required()}},
	)
}
