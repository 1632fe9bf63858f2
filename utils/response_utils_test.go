package utils

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"absent title uses default", "", "cartoon_video"},
		{"single word unchanged", "Adventure", "Adventure"},
		{"spaces become underscores", "My Cool Video", "My_Cool_Video"},
		{"whitespace runs collapse", "My \t Cool\n\nVideo", "My_Cool_Video"},
		{"hindi title preserved", "मेरी कहानी", "मेरी_कहानी"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeTitle(tt.title))
		})
	}
}

func TestFormatValidationErrors(t *testing.T) {
	type payload struct {
		Name  string  `validate:"required"`
		Count float64 `validate:"gt=1"`
	}

	err := validator.New().Struct(payload{Count: 0.5})
	require.Error(t, err)

	messages := FormatValidationErrors(err)
	require.Len(t, messages, 2)
	assert.Contains(t, messages[0], "Name")
	assert.Contains(t, messages[0], "required")
	assert.Contains(t, messages[1], "Count")
	assert.Contains(t, messages[1], "gt")
}

func TestFormatValidationErrorsNil(t *testing.T) {
	assert.Empty(t, FormatValidationErrors(nil))
}
