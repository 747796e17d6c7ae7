package service_test

import (
	"errors"
	"testing"

	"hackfest/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestValidation(t *testing.T) {
	err := service.Validation("name is required")

	assert.True(t, errors.Is(err, service.ErrValidation))
	assert.False(t, errors.Is(err, service.ErrConflict))
	assert.Equal(t, "validation error: name is required", err.Error())
}

func TestConflict(t *testing.T) {
	err := service.Conflict("already a member")

	assert.True(t, errors.Is(err, service.ErrConflict))
	assert.Equal(t, "conflict: already a member", err.Error())
}
