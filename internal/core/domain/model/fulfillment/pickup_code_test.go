package fulfillment_test

import (
	"strconv"
	"testing"

	"campus/internal/core/domain/model/fulfillment"
	"campus/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRandomPickupCode(t *testing.T) {
	t.Run("should always produce six digits in range", func(t *testing.T) {
		for i := 0; i < 1000; i++ {
			code := fulfillment.NewRandomPickupCode()

			require.NoError(t, code.Validate())
			require.Len(t, code.String(), 6)

			value, err := strconv.Atoi(code.String())
			require.NoError(t, err)
			assert.GreaterOrEqual(t, value, 100000)
			assert.LessOrEqual(t, value, 999999)
		}
	})
}

func TestPickupCodeFromString(t *testing.T) {
	t.Run("should accept a six digit code", func(t *testing.T) {
		code, err := fulfillment.PickupCodeFromString("483920")

		require.NoError(t, err)
		assert.Equal(t, "483920", code.String())
	})

	t.Run("should reject malformed codes", func(t *testing.T) {
		for _, raw := range []string{"", "12345", "1234567", "12a456"} {
			_, err := fulfillment.PickupCodeFromString(raw)
			require.Error(t, err, "code %q must be rejected", raw)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}
