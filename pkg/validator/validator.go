package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	return &CustomValidator{
		validator: validator.New(),
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// FormatValidationErrors flattens validator errors into a single message
// suitable for the flat {"error": "..."} failure body.
func (cv *CustomValidator) FormatValidationErrors(err error) string {
	var messages []string

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := strings.ToLower(e.Field())
			switch e.Tag() {
			case "required":
				messages = append(messages, field+" required")
			case "email":
				messages = append(messages, field+" must be a valid email address")
			case "oneof":
				messages = append(messages, "invalid "+field)
			case "gte":
				messages = append(messages, field+" must be at least "+e.Param())
			case "lte":
				messages = append(messages, field+" must be at most "+e.Param())
			case "datetime":
				messages = append(messages, field+" must be a date in YYYY-MM-DD format")
			default:
				messages = append(messages, field+" is invalid")
			}
		}
	}

	if len(messages) == 0 {
		return "Invalid request"
	}
	return strings.Join(messages, "; ")
}
