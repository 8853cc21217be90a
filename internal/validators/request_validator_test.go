package validators

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/reclaim/models"
)

func fieldMessages(t *testing.T, err error) map[string]string {
	t.Helper()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
	out := make(map[string]string, len(verr.Fields))
	for _, f := range verr.Fields {
		out[f.Field] = f.Message
	}
	return out
}

func TestValidate_ContactInput(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	tests := []struct {
		name      string
		input     models.ContactInput
		wantField string
		wantMsg   string
	}{
		{
			name:  "valid email contact",
			input: models.ContactInput{Name: "Alice", ContactMethod: "alice@example.com", Type: models.ContactTypeEmail},
		},
		{
			name:  "valid phone with separators",
			input: models.ContactInput{Name: "Bob", ContactMethod: "+1 (555) 123-4567", Type: models.ContactTypePhone},
		},
		{
			name:  "other accepts free text",
			input: models.ContactInput{Name: "Carol", ContactMethod: "signal: carol", Type: models.ContactTypeOther},
		},
		{
			name:      "missing name",
			input:     models.ContactInput{ContactMethod: "a@b.co", Type: models.ContactTypeEmail},
			wantField: "name",
			wantMsg:   "is required",
		},
		{
			name:      "bad email",
			input:     models.ContactInput{Name: "Alice", ContactMethod: "not-an-email", Type: models.ContactTypeEmail},
			wantField: "contactMethod",
			wantMsg:   "must be a valid e-mail address",
		},
		{
			name:      "bad phone",
			input:     models.ContactInput{Name: "Bob", ContactMethod: "call me", Type: models.ContactTypePhone},
			wantField: "contactMethod",
			wantMsg:   "must be a phone number like +15551234567",
		},
		{
			name:      "unknown type",
			input:     models.ContactInput{Name: "Eve", ContactMethod: "eve", Type: "pigeon"},
			wantField: "type",
			wantMsg:   "must be one of email, phone, other",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.input)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrValidation)
			assert.Equal(t, tt.wantMsg, fieldMessages(t, err)[tt.wantField])
		})
	}
}

func TestValidate_PointerInput(t *testing.T) {
	v := NewRequestValidator()
	err := v.Validate(context.Background(), &models.OnboardRequest{Name: "Ada", AuthMethod: "passkey"})
	assert.NoError(t, err)
}

func TestValidate_BreachDetectionNeedsPlatforms(t *testing.T) {
	v := NewRequestValidator()

	err := v.Validate(context.Background(), models.BreachDetection{})
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "must name at least one platform", fieldMessages(t, err)["platforms"])

	err = v.Validate(context.Background(), models.BreachDetection{Platforms: []string{"email", ""}})
	require.ErrorIs(t, err, ErrValidation)
}

func TestValidate_PartialFields(t *testing.T) {
	v := NewRequestValidator()
	input := models.ContactInput{Name: "Alice"}

	assert.NoError(t, v.Validate(context.Background(), input, "Name"))
	assert.ErrorIs(t, v.Validate(context.Background(), input), ErrValidation)
}

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewRequestValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), struct{ A int }{}), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), (*models.ContactInput)(nil)), ErrUnsupportedType)
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Fields: []FieldError{{Field: "name", Message: "is required"}}}
	assert.Equal(t, "validation failed: name is required", err.Error())
	assert.ErrorIs(t, err, ErrValidation)
}
