package errs_test

import (
	"errors"
	"testing"

	"campus/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestErrorsUnwrapToSentinels(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"object not found", errs.NewObjectNotFoundError("fulfillment", "42"), errs.ErrObjectNotFound},
		{"object not found with cause", errs.NewObjectNotFoundErrorWithCause("fulfillment", "42", cause), errs.ErrObjectNotFound},
		{"value is invalid", errs.NewValueIsInvalidError("quantity"), errs.ErrValueIsInvalid},
		{"value is invalid with cause", errs.NewValueIsInvalidErrorWithCause("quantity", cause), errs.ErrValueIsInvalid},
		{"value is out of range", errs.NewValueIsOutOfRangeError("copies", 0, 1, 100), errs.ErrValueIsOutOfRange},
		{"value is required", errs.NewValueIsRequiredError("cart lines"), errs.ErrValueIsRequired},
		{"forbidden", errs.NewForbiddenError("actor-1", "fulfillment 42"), errs.ErrForbidden},
		{"invalid transition", errs.NewInvalidTransitionError("Ready", "accept"), errs.ErrInvalidTransition},
		{"storage unavailable", errs.NewStorageUnavailableError("fulfillment insert", cause), errs.ErrStorageUnavailable},
	}

	for _, test := range tests {
		t.Run("should classify "+test.name, func(t *testing.T) {
			assert.ErrorIs(t, test.err, test.sentinel)
			assert.NotEmpty(t, test.err.Error())
		})
	}
}

func TestErrorMessages(t *testing.T) {
	t.Run("should mention the cause when present", func(t *testing.T) {
		err := errs.NewValueIsInvalidErrorWithCause("role", errors.New("\"superuser\" is not a valid role"))

		assert.Contains(t, err.Error(), "role")
		assert.Contains(t, err.Error(), "superuser")
	})

	t.Run("should keep messages on a single line", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("fulfillment", "first\nsecond")

		assert.NotContains(t, err.Error(), "\n")
	})

	t.Run("should name actor and resource on forbidden", func(t *testing.T) {
		err := errs.NewForbiddenError("actor-1", "canteen menu")

		assert.Contains(t, err.Error(), "actor-1")
		assert.Contains(t, err.Error(), "canteen menu")
	})

	t.Run("should name the illegal move on transition errors", func(t *testing.T) {
		err := errs.NewInvalidTransitionError("Ready", "accept")

		assert.Contains(t, err.Error(), "accept")
		assert.Contains(t, err.Error(), "Ready")
	})
}
