package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"roo-petroleum-web/internal/domain"
)

// FieldLabels maps form fields to the labels used in messages
var FieldLabels = map[domain.Field]string{
	domain.FieldName:        "Name",
	domain.FieldEmail:       "Email",
	domain.FieldPhone:       "Phone number",
	domain.FieldCompany:     "Company",
	domain.FieldSubject:     "Subject",
	domain.FieldMessage:     "Message",
	domain.FieldServiceType: "Service interest",
}

// ContactErrors validates a draft and returns its error set. A valid draft yields an empty, non-nil set.
func ContactErrors(v *validator.Validate, data domain.ContactFormData) domain.FieldErrors {
	out := domain.FieldErrors{}
	err := v.Struct(data)
	if err == nil {
		return out
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// InvalidValidationError only happens on programming mistakes
		panic(fmt.Sprintf("validation: %v", err))
	}

	for _, e := range validationErrors {
		field, ok := domain.ParseField(e.Field())
		if !ok {
			continue
		}
		// validator reports at most one failing tag per field; keep the first regardless
		if _, exists := out[field]; !exists {
			out[field] = formatSingleError(field, e)
		}
	}
	return out
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(field domain.Field, e validator.FieldError) string {
	label := getFieldLabel(field)

	switch e.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("%s is required", label)

	case "basic_email", "email":
		return "Please enter a valid email address"

	case "trimmed_min", "min":
		return fmt.Sprintf("%s must be at least %s characters long", label, e.Param())

	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", label, e.Param())

	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}

// FormatValidationErrors flattens validator errors (used for content checks)
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, fmt.Sprintf("%s: failed %q", strings.TrimPrefix(e.Namespace(), "SiteContent."), e.Tag()))
	}
	return messages
}

func getFieldLabel(field domain.Field) string {
	if label, ok := FieldLabels[field]; ok {
		return label
	}
	return string(field)
}
