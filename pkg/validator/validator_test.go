package validator

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type supplierPayload struct {
	Supplier  string `json:"supplier" validate:"required,supplier"`
	Direction string `json:"direction" validate:"omitempty,oneof=up down"`
}

func newValidate(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New(validator.WithRequiredStructEnabled())
	require.NoError(t, Register(v))
	return v
}

func TestSupplierTag(t *testing.T) {
	v := newValidate(t)

	assert.NoError(t, v.Struct(supplierPayload{Supplier: "supply3"}))

	err := v.Struct(supplierPayload{Supplier: "supply9", Direction: "left"})
	require.Error(t, err)
	fields := FieldErrors(err)
	assert.Equal(t, "Unknown supplier", fields["supplier"])
	assert.Equal(t, "Must be one of: up down", fields["direction"])
	assert.Equal(t, "direction: Must be one of: up down; supplier: Unknown supplier", Describe(err))
}

func TestFieldErrors_NonValidationError(t *testing.T) {
	assert.Empty(t, FieldErrors(assert.AnError))
	assert.Equal(t, "", Describe(nil))
}

func TestRegisterGin(t *testing.T) {
	assert.NoError(t, RegisterGin())
	assert.NoError(t, RegisterGin())
}
