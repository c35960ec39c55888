package service

import (
	"errors"
	"sync"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/limbo/wellness/internal/error_values"
	"github.com/limbo/wellness/pkg/datekey"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		// YYYY-MM-DD that is also a real calendar day
		validate.RegisterValidation("datekey", func(fl validator.FieldLevel) bool {
			return datekey.Valid(fl.Field().String())
		})
	})
}

// validateStruct wraps every field error into ErrValidation so callers can match on it.
func validateStruct(s any) error {
	InitValidator()
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		errs := []error{errorvalues.ErrValidation}
		for _, fieldErr := range validationErrors {
			errs = append(errs, fieldErr)
		}
		return errors.Join(errs...)
	}
	return errors.Join(errorvalues.ErrValidation, err)
}
