// internal/utils/validator_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type createForm struct {
	Name  string   `json:"name" validate:"required,min=2,max=80"`
	Price *float64 `json:"price" validate:"required,gte=0"`
}

func TestValidationMessagesUseJSONFieldNames(t *testing.T) {
	price := -1.0
	err := ValidateStruct(&createForm{Name: "x", Price: &price})
	require.Error(t, err)

	messages := ValidationMessages(err)
	require.Len(t, messages, 2)
	assert.Equal(t, "name must be at least 2 characters", messages[0])
	assert.Equal(t, "price must not be negative", messages[1])
}

func TestValidationMessagesRequired(t *testing.T) {
	messages := ValidationMessages(ValidateStruct(&createForm{}))
	require.Len(t, messages, 2)
	assert.Equal(t, "name is required", messages[0])
	assert.Equal(t, "price is required", messages[1])
}

func TestValidationMessagesNilError(t *testing.T) {
	assert.Nil(t, ValidationMessages(nil))
}
