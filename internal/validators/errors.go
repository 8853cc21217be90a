package validators

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/reclaim/models"
)

var (
	// ErrValidation is matched by every error returned from [Validator.Validate].
	ErrValidation = errors.New("validation failed")

	ErrUnsupportedType = errors.New("unsupported type for validation")
)

var (
	errRequired           = errors.New("is required")
	errTooLong            = errors.New("is too long")
	errInvalidContactType = errors.New("must be one of email, phone, other")
	errInvalidEmail       = errors.New("must be a valid e-mail address")
	errInvalidPhone       = errors.New("must be a phone number like +15551234567")
	errNoPlatforms        = errors.New("must name at least one platform")
)

// tag-level messages, overridden per field in customErrors
var tagErrors = map[string]error{
	"required": errRequired,
	"max":      errTooLong,
	"oneof":    errInvalidContactType,
	"min":      errNoPlatforms,
}

// customErrors is keyed by "<Struct>.<Field>.<tag>".
var customErrors = map[string]error{
	"ContactInput.ContactMethod.contactmethod": errInvalidEmail,
}

// FieldError describes one rejected field by its JSON name.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists every rejected field of one request.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+" "+f.Message)
	}
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// newValidationError converts validator errors into a [ValidationError].
// The contact method message depends on the declared contact type.
func newValidationError(errs validator.ValidationErrors, contactType string) *ValidationError {
	out := &ValidationError{Fields: make([]FieldError, 0, len(errs))}
	for _, e := range errs {
		msg := fmt.Sprintf("is invalid (%s)", e.Tag())
		if v, ok := tagErrors[e.Tag()]; ok {
			msg = v.Error()
		}
		if v, ok := customErrors[e.StructNamespace()+"."+e.Tag()]; ok {
			msg = v.Error()
		}
		if e.Tag() == tagContactMethod && contactType == string(models.ContactTypePhone) {
			msg = errInvalidPhone.Error()
		}

		out.Fields = append(out.Fields, FieldError{Field: e.Field(), Message: msg})
	}
	return out
}
