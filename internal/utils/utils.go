package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/haojie06/openai-image-http/internal/model"
)

// FormErrorMessage turns a binding or validation error into a message shown next to the form.
func FormErrorMessage(err error) string {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		messages := make([]string, 0, len(validationErrors))
		for _, fieldErr := range validationErrors {
			messages = append(messages, fmt.Sprintf("%s is %s", formFieldName(fieldErr.Field()), fieldErr.Tag()))
		}
		return strings.Join(messages, ", ")
	}
	var sizeErr *model.ValidationError
	if errors.As(err, &sizeErr) {
		return fmt.Sprintf("unsupported %s %q, expected one of 256, 512, 1024", sizeErr.Field, sizeErr.Value)
	}
	return "invalid form: " + err.Error()
}

func formFieldName(field string) string {
	switch field {
	case "N":
		return "n"
	default:
		return strings.ToLower(field)
	}
}
