package models

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Genres are the suggestions offered by the add-book form. Genre itself is
// free text.
var Genres = []string{
	"Fiction",
	"Non-Fiction",
	"Science Fiction",
	"Fantasy",
	"Mystery",
	"Thriller",
	"Romance",
	"Horror",
	"Biography",
	"History",
	"Self-Help",
	"Business",
	"Children",
	"Young Adult",
	"Poetry",
	"Comics/Graphic Novels",
	"Other",
}

// BookForm is what a user fills in to list a new book.
type BookForm struct {
	Title    string `json:"title" validate:"required"`
	Author   string `json:"author" validate:"required"`
	Genre    string `json:"genre,omitempty"`
	Location string `json:"location" validate:"required"`
	Contact  string `json:"contact" validate:"required"`
	CoverURL string `json:"coverUrl,omitempty" validate:"omitempty,url"`
}

// NewBook is the POST /api/books payload: the form plus ownership fields.
type NewBook struct {
	BookForm
	IsRented  bool   `json:"isRented"`
	OwnerID   string `json:"ownerId"`
	OwnerName string `json:"ownerName"`
}

// NewBookFor attaches owner to a form. New listings are never rented.
func NewBookFor(form BookForm, owner User) NewBook {
	return NewBook{
		BookForm:  form,
		IsRented:  false,
		OwnerID:   owner.ID,
		OwnerName: owner.Name,
	}
}

var fieldMessages = map[string]map[string]string{
	"title":    {"required": "Title is required"},
	"author":   {"required": "Author is required"},
	"location": {"required": "Location is required"},
	"contact":  {"required": "Contact information is required"},
	"coverUrl": {"url": "Cover URL must be a valid URL"},
}

// FieldError is a single schema violation.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists every violated field in declaration order.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Message returns the message for field, if it failed.
func (e *ValidationError) Message(field string) (string, bool) {
	for _, f := range e.Fields {
		if f.Field == field {
			return f.Message, true
		}
	}
	return "", false
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func formValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// Validate checks the form against its schema and returns a
// *ValidationError describing every failing field.
func (f BookForm) Validate() error {
	err := formValidator().Struct(f)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("validate book form: %w", err)
	}

	out := &ValidationError{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		msg, ok := fieldMessages[fe.Field()][fe.Tag()]
		if !ok {
			msg = fmt.Sprintf("failed %q check", fe.Tag())
		}
		out.Fields = append(out.Fields, FieldError{Field: fe.Field(), Message: msg})
	}
	return out
}
