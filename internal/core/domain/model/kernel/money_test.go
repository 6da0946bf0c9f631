package kernel_test

import (
	"testing"

	"campus/internal/core/domain/model/kernel"
	"campus/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should create from paise", func(t *testing.T) {
		money, err := kernel.NewMoney(2800)

		require.NoError(t, err)
		assert.Equal(t, int64(2800), money.Paise())
	})

	t.Run("should reject negative amounts", func(t *testing.T) {
		_, err := kernel.NewMoney(-1)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should create from whole rupees", func(t *testing.T) {
		money, err := kernel.NewMoneyFromRupees(10)

		require.NoError(t, err)
		assert.Equal(t, int64(1000), money.Paise())
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("should add amounts", func(t *testing.T) {
		a, err := kernel.NewMoney(2000)
		require.NoError(t, err)
		b, err := kernel.NewMoney(800)
		require.NoError(t, err)

		assert.Equal(t, int64(2800), a.Add(b).Paise())
	})

	t.Run("should multiply by a quantity", func(t *testing.T) {
		price, err := kernel.NewMoney(1000)
		require.NoError(t, err)

		total, err := price.MultiplyBy(2)

		require.NoError(t, err)
		assert.Equal(t, int64(2000), total.Paise())
	})

	t.Run("should reject negative quantities", func(t *testing.T) {
		price, err := kernel.NewMoney(1000)
		require.NoError(t, err)

		_, err = price.MultiplyBy(-1)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should start from zero", func(t *testing.T) {
		assert.Equal(t, int64(0), kernel.Zero().Paise())
	})
}

func TestMoney_String(t *testing.T) {
	tests := []struct {
		paise int64
		want  string
	}{
		{2800, "28.00"},
		{1050, "10.50"},
		{5, "0.05"},
		{0, "0.00"},
	}

	for _, test := range tests {
		t.Run("should render "+test.want, func(t *testing.T) {
			money, err := kernel.NewMoney(test.paise)
			require.NoError(t, err)

			assert.Equal(t, test.want, money.String())
		})
	}
}
