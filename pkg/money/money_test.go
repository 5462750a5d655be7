package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-ledger-api/pkg/money"
)

func TestAdd_MismaMoneda(t *testing.T) {
	a := money.BRL(decimal.NewFromFloat(10.50))
	b := money.BRL(decimal.NewFromFloat(4.25))

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.True(t, sum.Amount.Equal(decimal.NewFromFloat(14.75)))
	assert.Equal(t, money.DefaultCurrency, sum.Currency)
}

func TestAdd_MonedasDistintas_Falla(t *testing.T) {
	a := money.BRL(decimal.NewFromInt(10))
	b := money.New(decimal.NewFromInt(10), "USD")

	_, err := a.Add(b)
	require.Error(t, err)
	assert.ErrorIs(t, err, money.ErrCurrencyMismatch)

	_, err = a.Sub(b)
	assert.ErrorIs(t, err, money.ErrCurrencyMismatch)
}

func TestSub_MismaMoneda(t *testing.T) {
	a := money.BRL(decimal.NewFromInt(10))
	b := money.BRL(decimal.NewFromInt(3))

	diff, err := a.Sub(b)
	require.NoError(t, err)
	assert.True(t, diff.Amount.Equal(decimal.NewFromInt(7)))
}

func TestMul(t *testing.T) {
	unit := money.BRL(decimal.NewFromFloat(2.50))
	total := unit.Mul(decimal.NewFromInt(4))
	assert.True(t, total.Amount.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, money.DefaultCurrency, total.Currency)
}

func TestZeroYPredicados(t *testing.T) {
	zero := money.Zero("USD")
	assert.True(t, zero.IsZero())
	assert.False(t, zero.IsPositive())

	pos := money.BRL(decimal.NewFromFloat(0.01))
	assert.True(t, pos.IsPositive())
	assert.False(t, pos.IsZero())
}

func TestFormatted(t *testing.T) {
	assert.Equal(t, "R$ 12.50", money.BRL(decimal.NewFromFloat(12.5)).Formatted())
	assert.Equal(t, "USD 3.00", money.New(decimal.NewFromInt(3), "USD").Formatted())
}
