package validator

import (
	"sync"

	ierr "github.com/billyribeiro-ux/fieldforge/internal/errors"
	"github.com/go-playground/validator/v10"
)

var (
	instance *validator.Validate
	once     sync.Once
)

// GetValidator returns the shared validator instance
func GetValidator() *validator.Validate {
	once.Do(func() {
		instance = validator.New()
	})
	return instance
}

// ValidateRequest validates a struct using its validate tags and wraps
// failures in a validation error with field level details.
func ValidateRequest(req interface{}) error {
	if err := GetValidator().Struct(req); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			details := make(map[string]any, len(verrs))
			for _, fe := range verrs {
				details[fe.Field()] = fe.Tag()
			}
			return ierr.WithError(err).
				WithHint("Request validation failed").
				WithReportableDetails(details).
				Mark(ierr.ErrValidation)
		}
		return ierr.WithError(err).
			WithHint("Request validation failed").
			Mark(ierr.ErrValidation)
	}
	return nil
}
