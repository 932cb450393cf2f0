package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// registrationInput mirrors the registration form fields the service must
// stay correct without: callers bypassing the UI still get these checks.
type registrationInput struct {
	Fullname string `validate:"required"`
	Username string `validate:"required,min=3,excludesall=0x20"`
	Password string `validate:"required,min=4"`
	Role     string `validate:"required,oneof=admin user"`
}

func validateRegistration(fullname, username, password, role string) error {
	in := registrationInput{
		Fullname: fullname,
		Username: username,
		Password: password,
		Role:     role,
	}
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		msgs := make([]string, 0, len(ve))
		for _, fe := range ve {
			msgs = append(msgs, fieldError(fe))
		}
		return fmt.Errorf("%s", strings.Join(msgs, "; "))
	}
	return err
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "excludesall":
		return field + " must not contain spaces"
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
