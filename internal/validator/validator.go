package validator

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate
	once     sync.Once
)

// Get returns the shared validator instance with custom rules registered.
// Field names in error output follow the struct's json tags.
func Get() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		registerRules(validate)
	})
	return validate
}

// Struct validates v and, on failure, returns a map of field name to a
// human-readable message suitable for the error response details.
func Struct(v interface{}) map[string]string {
	err := Get().Struct(v)
	if err == nil {
		return nil
	}

	fields := make(map[string]string)
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		fields["_"] = err.Error()
		return fields
	}
	for _, fe := range validationErrs {
		fields[fe.Field()] = message(fe)
	}
	return fields
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "enquiry_type":
		return "must be one of: contact, project, demo, consultation"
	case "enquiry_status":
		return "must be one of: new, read, contacted, archived"
	case "application_status":
		return "must be one of: pending, reviewed, contacted, rejected"
	case "enrollment_status":
		return "must be one of: pending, confirmed, cancelled"
	case "batch_mode":
		return "must be one of: online, offline, hybrid"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
