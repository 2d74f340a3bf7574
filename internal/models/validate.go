package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report fields by their wire names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// FormError describes the first field of a form that failed validation
type FormError struct {
	Field string
	Rule  string
	Param string
}

func (e *FormError) Error() string {
	switch e.Rule {
	case "required":
		return fmt.Sprintf("%s is required", e.Field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", e.Field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", e.Field, e.Param)
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters", e.Field, e.Param)
	case "numeric":
		return fmt.Sprintf("%s must only contain digits", e.Field)
	case "eqfield":
		return fmt.Sprintf("%s does not match", e.Field)
	}
	return fmt.Sprintf("%s failed %s validation", e.Field, e.Rule)
}

func (e *FormError) Unwrap() error {
	return ErrInvalidForm
}

// ValidateForm checks a request payload against its validate tags
func ValidateForm(form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &FormError{Field: fe.Field(), Rule: fe.Tag(), Param: fe.Param()}
	}
	return fmt.Errorf("%w: %v", ErrInvalidForm, err)
}
