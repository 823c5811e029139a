package middleware

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/champlain/campus/internal/app/models"
	"github.com/champlain/campus/internal/pkg/apperrors"
)

var registerOnce sync.Once

// RegisterValidators adds the custom validation tags to gin's binding engine
// and reports JSON field names in validation errors.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(jsonFieldName)
		_ = v.RegisterValidation("semester", validateSemester)
	})
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

func validateSemester(fl validator.FieldLevel) bool {
	return models.Semester(fl.Field().String()).IsValid()
}

// BindingError converts a request binding failure into a bad request error
// with a readable message.
func BindingError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		msgs := make([]string, 0, len(verrs))
		for _, e := range verrs {
			msgs = append(msgs, formatValidationError(e))
		}
		return apperrors.NewValidationError(strings.Join(msgs, "; "))
	}
	return apperrors.NewBadRequestError("Invalid request body: " + err.Error())
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "gte":
		return e.Field() + " must be at least " + e.Param()
	case "semester":
		names := make([]string, len(models.Semesters))
		for i, s := range models.Semesters {
			names[i] = string(s)
		}
		return e.Field() + " must be one of: " + strings.Join(names, ", ")
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
