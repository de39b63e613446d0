// Package forms holds the HTML form models and their validation rules.
package forms

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// RegisterForm carries the registration fields.
type RegisterForm struct {
	Name     string `form:"name" validate:"required,min=4,max=30"`
	Username string `form:"username" validate:"required,min=5,max=35"`
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
	Confirm  string `form:"confirm" validate:"eqfield=Password"`
}

// LoginForm carries the login fields. Credentials are checked against
// the store, not here, so there are no length rules.
type LoginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// PostForm carries the post authoring fields, shared by the create and
// edit pages.
type PostForm struct {
	Title   string `form:"title" validate:"required,min=5,max=100"`
	Content string `form:"content" validate:"required,min=100,max=50000"`
}

// Validate checks a form against its rules and returns user-facing
// messages keyed by lowercased field name. An empty map means valid.
func Validate(form any) map[string]string {
	errs := make(map[string]string)

	err := validate.Struct(form)
	if err == nil {
		return errs
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		errs["form"] = "Invalid input."
		return errs
	}

	for _, fe := range verrs {
		errs[strings.ToLower(fe.Field())] = message(fe)
	}
	return errs
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "min":
		return fmt.Sprintf("Must be at least %s characters.", fe.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s characters.", fe.Param())
	case "email":
		return "Please enter a valid email address."
	case "eqfield":
		return "Your password doesn't match!"
	default:
		return "Invalid value."
	}
}
