package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/allisson/apikeys/internal/errors"
)

func TestWrapValidationError(t *testing.T) {
	t.Run("wraps non-nil error as ErrInvalidInput", func(t *testing.T) {
		err := WrapValidationError(errors.New("name: must not be blank"))
		assert.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
		assert.Contains(t, err.Error(), "must not be blank")
	})

	t.Run("returns nil for nil error", func(t *testing.T) {
		assert.NoError(t, WrapValidationError(nil))
	})
}

func TestNotBlank(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"valid string", "Billing Service", false},
		{"empty string", "", false}, // empty values are skipped; combine with Required
		{"only spaces", "   ", true},
		{"only tabs and newlines", "\t\n", true},
		{"padded string", "  name  ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NotBlank.Validate(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
