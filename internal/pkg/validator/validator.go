package validator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate struct fields
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	for _, err := range err.(validator.ValidationErrors) {
		errors[err.Field()] = err.Tag()
	}
	return errors
}

// Message flattens a field->rule map into a single error message.
func Message(errors map[string]string) string {
	fields := make([]string, 0, len(errors))
	for field, tag := range errors {
		fields = append(fields, fmt.Sprintf("%s (%s)", field, tag))
	}
	sort.Strings(fields)
	return "Validation failed: " + strings.Join(fields, ", ")
}
