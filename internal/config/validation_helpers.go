package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	themeerrors "github.com/alexisbeaulieu97/themestyle/pkg/errors"
)

// ValidateTheme checks a theme document.
func ValidateTheme(doc *ThemeDocument) error {
	if doc == nil {
		return themeerrors.NewValidationError("theme", "document is nil", nil)
	}
	return convertValidationError(validatorInstance().Struct(doc))
}

// ValidateStyles checks a style document.
func ValidateStyles(doc *StyleDocument) error {
	if doc == nil {
		return themeerrors.NewValidationError("styles", "document is nil", nil)
	}
	return convertValidationError(validatorInstance().Struct(doc))
}

// convertValidationError normalizes validator errors into document validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := documentFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return themeerrors.NewValidationError(field, msg, err)
	}

	return themeerrors.NewValidationError("document", err.Error(), err)
}

// documentFieldName drops the leading struct name from the namespace.
func documentFieldName(fe validator.FieldError) string {
	parts := strings.SplitN(fe.Namespace(), ".", 2)
	if len(parts) == 2 {
		return parts[1]
	}
	return fe.Field()
}
