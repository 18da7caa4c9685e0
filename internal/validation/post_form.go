// Package validation declares the field-level rules for the post form,
// checked before any submission reaches the data-access layer. Tags are
// validated as the single raw string the form produces; comma-splitting
// happens after validation.
package validation

import (
	"github.com/go-playground/validator/v10"
)

// PostForm is the raw create/edit form payload.
type PostForm struct {
	Title       string `form:"title" validate:"required,min=3,max=30"`
	Body        string `form:"body" validate:"required,min=10,max=200"`
	CreatorName string `form:"creatorName" validate:"required,min=5,max=15"`
	Tags        string `form:"tags" validate:"required,min=1"`
}

// FieldErrors maps form field names to user-facing messages.
type FieldErrors map[string]string

var validate = validator.New()

// ValidatePostForm checks every field and returns per-field messages.
// An empty map means the form may be submitted.
func ValidatePostForm(form PostForm) FieldErrors {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	errs := make(FieldErrors)
	for _, fe := range err.(validator.ValidationErrors) {
		switch fe.Field() {
		case "Title":
			errs["title"] = titleMessage(fe)
		case "Body":
			errs["body"] = bodyMessage(fe)
		case "CreatorName":
			errs["creatorName"] = creatorNameMessage(fe)
		case "Tags":
			errs["tags"] = "At least one tag is required"
		}
	}
	return errs
}

func titleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Title is required"
	case "min":
		return "Title is too short"
	default:
		return "Title should not exceed 30 characters"
	}
}

func bodyMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Description is required"
	case "min":
		return "Description is too short"
	default:
		return "Description should not exceed 200 characters"
	}
}

func creatorNameMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Creator name is required"
	case "min":
		return "Name is too short"
	default:
		return "Creator name should not exceed 15 characters"
	}
}
