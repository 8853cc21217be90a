package validators

import (
	"context"
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/reclaim/models"
)

const tagContactMethod = "contactmethod"

var (
	phonePattern     = regexp.MustCompile(`^\+?[1-9]\d{6,14}$`)
	phoneSeparators  = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", ".", "")
	supportedStructs = []reflect.Type{
		reflect.TypeFor[models.ContactInput](),
		reflect.TypeFor[models.OnboardRequest](),
		reflect.TypeFor[models.SuspicionReport](),
		reflect.TypeFor[models.BreachDetection](),
		reflect.TypeFor[models.MessageRequest](),
		reflect.TypeFor[models.SecurityActionRequest](),
	}
)

// RequestValidator validates the request models by their `validate` tags.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator builds a validator with the contact method rule
// registered and JSON field names in error reports.
func NewRequestValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	// registration only fails on an empty tag or nil func
	_ = v.RegisterValidation(tagContactMethod, func(fl validator.FieldLevel) bool {
		return validContactMethod(v, fl)
	})

	return &RequestValidator{validate: v}
}

// Validate checks obj, a request model or a pointer to one. When fields are
// given only those (Go field names) are checked.
func (r *RequestValidator) Validate(_ context.Context, obj any, fields ...string) error {
	value := reflect.ValueOf(obj)
	for value.Kind() == reflect.Pointer && !value.IsNil() {
		value = value.Elem()
	}
	if !isSupported(value) {
		return ErrUnsupportedType
	}

	var err error
	if len(fields) > 0 {
		err = r.validate.StructPartial(value.Interface(), fields...)
	} else {
		err = r.validate.Struct(value.Interface())
	}

	var errs validator.ValidationErrors
	if errors.As(err, &errs) {
		contactType := ""
		if input, ok := value.Interface().(models.ContactInput); ok {
			contactType = string(input.Type)
		}
		return newValidationError(errs, contactType)
	}

	return err
}

func isSupported(value reflect.Value) bool {
	if !value.IsValid() || value.Kind() != reflect.Struct {
		return false
	}
	for _, t := range supportedStructs {
		if value.Type() == t {
			return true
		}
	}
	return false
}

// validContactMethod checks the method against the sibling Type field:
// e-mail addresses for email, E.164-like numbers for phone, anything
// non-blank for other.
func validContactMethod(v *validator.Validate, fl validator.FieldLevel) bool {
	method := strings.TrimSpace(fl.Field().String())
	if method == "" {
		return false
	}

	parent := fl.Parent()
	if parent.Kind() == reflect.Pointer {
		parent = parent.Elem()
	}
	typeField := parent.FieldByName("Type")
	if !typeField.IsValid() {
		return true
	}

	switch models.ContactType(typeField.String()) {
	case models.ContactTypeEmail:
		return v.Var(method, "email") == nil
	case models.ContactTypePhone:
		return phonePattern.MatchString(phoneSeparators.Replace(method))
	default:
		return true
	}
}
