package entity_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/evgeniy-krivenko/blog-calendar/internal/entity"
)

func TestStoreErrorCarriesStoreMessage(t *testing.T) {
	cause := errors.New("duplicate key value violates unique constraint")
	err := fmt.Errorf("usecase save memo: %w", entity.NewStoreError("save memo", cause))

	assert.True(t, entity.IsStore(err))
	assert.False(t, entity.IsValidation(err))
	assert.ErrorIs(t, err, cause)

	var se *entity.StoreError
	if assert.ErrorAs(t, err, &se) {
		assert.Equal(t, cause.Error(), se.Error())
		assert.Equal(t, "save memo", se.Op)
	}
}

func TestValidationError(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", entity.NewValidationError("date", "must be in YYYY-MM-DD format"))

	assert.True(t, entity.IsValidation(err))
	assert.EqualError(t, errors.Unwrap(err), "date must be in YYYY-MM-DD format")
}
