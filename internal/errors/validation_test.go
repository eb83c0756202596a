package errors_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dungeonforge/dungeonforge-api/internal/errors"
)

func TestValidationBuilder_NoErrors(t *testing.T) {
	vb := errors.NewValidationBuilder()
	assert.NoError(t, vb.Build())
}

func TestValidationBuilder_CollectsFields(t *testing.T) {
	err := errors.NewValidationBuilder().
		RequiredField("Catalog").
		InvalidField("PartySize", "must be positive").
		Build()

	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))

	var customErr *errors.Error
	require.True(t, errors.As(err, &customErr))

	fields, ok := customErr.Meta["validation_errors"].(map[string][]string)
	require.True(t, ok)
	assert.Equal(t, []string{"is required"}, fields["Catalog"])
	assert.Equal(t, []string{"is invalid: must be positive"}, fields["PartySize"])
}

func TestValidationBuilder_MultipleErrorsSameField(t *testing.T) {
	err := errors.NewValidationBuilder().
		Field("Theme", "is empty").
		Field("Theme", "is unknown").
		Build()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Theme")
}
