package models

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// PostForm is the submitted create/edit post form.
type PostForm struct {
	Author  string `json:"author"`
	Title   string `json:"title" validate:"required,max=200"`
	Summary string `json:"summary" validate:"required,max=250"`
	Content string `json:"content" validate:"required"`
}

// CommentForm is the submitted comment, either JSON or form encoded.
type CommentForm struct {
	Title string `json:"title" validate:"required,max=200"`
	Text  string `json:"text" validate:"required,max=1000"`
}

// Validate checks the post form fields.
func (f *PostForm) Validate() error {
	f.Title = strings.TrimSpace(f.Title)
	f.Summary = strings.TrimSpace(f.Summary)
	f.Content = strings.TrimSpace(f.Content)
	return validate.Struct(f)
}

// ValidateNew additionally requires an author, which only the create form has.
func (f *PostForm) ValidateNew() error {
	if err := f.Validate(); err != nil {
		return err
	}
	return validate.Struct(&authorField{Author: f.Author})
}

type authorField struct {
	Author string `json:"author" validate:"required"`
}

// Validate checks the comment fields.
func (f *CommentForm) Validate() error {
	f.Title = strings.TrimSpace(f.Title)
	f.Text = strings.TrimSpace(f.Text)
	return validate.Struct(f)
}

// ValidationDetails maps each failing field to a short message. It returns
// nil for errors that did not come from validation.
func ValidationDetails(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			out[fe.Field()] = "is required"
		case "max":
			out[fe.Field()] = "must be at most " + fe.Param() + " characters"
		default:
			out[fe.Field()] = "is invalid"
		}
	}
	return out
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}
