package scaffold

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	oerrors "github.com/opmodel/create-vue/internal/errors"
)

func TestIsValidPackageName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"vue-project", true},
		{"@scope/pkg", true},
		{"a.b_c~d", true},
		{"_private", false},
		{".hidden", false},
		{`d\sdsd`, false},
		{"d!sdsd", false},
		{"d`sdsd", false},
		{"d(sdsd", false},
		{"ds'dsd", false},
		{"Upper", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidPackageName(tt.name))
		})
	}
}

func TestToValidPackageName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{" dsdsd", "dsdsd"},
		{"d sdsd", "d-sdsd"},
		{"d%%%sdsd", "d-sdsd"},
		{"My App", "my-app"},
		{"_underscored", "underscored"},
		{".dotted", "dotted"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := ToValidPackageName(tt.in)
			assert.Equal(t, tt.want, got)
			assert.True(t, IsValidPackageName(got))
		})
	}
}

func TestValidatePackageName(t *testing.T) {
	assert.NoError(t, ValidatePackageName("ok"))

	err := ValidatePackageName("Not OK")
	assert.True(t, errors.Is(err, oerrors.ErrValidation))
	assert.Contains(t, err.Error(), `"not-ok"`)
}
