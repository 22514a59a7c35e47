package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required":  "{field} is required",
		"gte":       "{field} must be greater than or equal to {param}",
		"gt":        "{field} must be greater than {param}",
		"lte":       "{field} must be less than or equal to {param}",
		"oneof":     "{field} must be one of {param}",
		"max":       "{field} must be less than or equal to {param}",
		"min":       "{field} must be greater than or equal to {param}",
		"len":       "{field} must have a length of {param}",
		"email":     "{field} must be a valid email address",
		"url":       "{field} must be a valid URL",
		"uuid":      "{field} must be a valid UUID",
		"datetime":  "{field} must match the format {param}",
		"digits":    "{field} must contain digits only",
		"expiry":    "{field} must be in MM/YY format",
		"mimetypes": "{field} must be one of {param}",
	}
)

// fieldPath strips the root struct from the namespace so nested fields read host.name.
func fieldPath(valErr val.FieldError) string {
	namespace := valErr.Namespace()

	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}

	return valErr.Field()
}

func fieldMessage(valErr val.FieldError, custom map[string]string) string {
	field := fieldPath(valErr)

	if msg, ok := custom[field+"."+valErr.Tag()]; ok {
		return msg
	}

	errStr := messages[valErr.Tag()]
	if errStr == "" {
		return valErr.Error()
	}

	errStr = strings.ReplaceAll(errStr, "{field}", field)
	errStr = strings.ReplaceAll(errStr, "{param}", valErr.Param())

	return errStr
}

func message(err error) string {
	var valErrors val.ValidationErrors

	if errors.As(err, &valErrors) {
		for _, valErr := range valErrors {
			if messages[valErr.Tag()] != "" {
				return fieldMessage(valErr, nil)
			}
		}

		return valErrors.Error()
	}

	return err.Error()
}
