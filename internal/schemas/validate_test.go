package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig_Valid(t *testing.T) {
	err := ValidateConfig([]byte(`{"base_url": "http://localhost:3001", "verbose": false}`))
	assert.NoError(t, err)
}

func TestValidateConfig_EmptyObject(t *testing.T) {
	assert.NoError(t, ValidateConfig([]byte(`{}`)))
}

func TestValidateConfig_UnknownProperty(t *testing.T) {
	err := ValidateConfig([]byte(`{"token": "should-not-live-here"}`))
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.NotEmpty(t, validationErr.Errors)
	assert.Contains(t, err.Error(), "config validation failed")
}

func TestValidateConfig_WrongType(t *testing.T) {
	err := ValidateConfig([]byte(`{"verbose": "yes"}`))
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "verbose", validationErr.Errors[0].Field)
}

func TestValidateConfig_BadURLPattern(t *testing.T) {
	err := ValidateConfig([]byte(`{"base_url": "ftp://wrong-scheme"}`))
	require.Error(t, err)
}

func TestValidateConfig_NotJSON(t *testing.T) {
	err := ValidateConfig([]byte(`nope`))
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}
