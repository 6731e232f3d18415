package valueobject_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/message-adapter/internal/domain/valueobject"
)

func TestNewPaymentAmount_Valid(t *testing.T) {
	amt, err := valueobject.NewPaymentAmount(decimal.RequireFromString("50000.00"), "USD")

	require.NoError(t, err)
	assert.Equal(t, "USD", amt.Currency())
	assert.True(t, amt.IsPositive())
	assert.Equal(t, "50000 USD", amt.String())
}

func TestNewPaymentAmount_InvalidCodeLowercase(t *testing.T) {
	_, err := valueobject.NewPaymentAmount(decimal.NewFromInt(1), "usd")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid currency code")
}

func TestNewPaymentAmount_InvalidCodeTooLong(t *testing.T) {
	_, err := valueobject.NewPaymentAmount(decimal.NewFromInt(1), "USDD")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid currency code")
}

func TestNewPaymentAmount_NotInSet(t *testing.T) {
	_, err := valueobject.NewPaymentAmount(decimal.NewFromInt(1), "ZZZ")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not in the supported set")
}

func TestNewPaymentAmountIn_CustomSet(t *testing.T) {
	set := valueobject.NewCurrencySet("THB")

	amt, err := valueobject.NewPaymentAmountIn(decimal.NewFromInt(100), "THB", set)
	require.NoError(t, err)
	assert.Equal(t, "THB", amt.Currency())

	_, err = valueobject.NewPaymentAmountIn(decimal.NewFromInt(100), "USD", set)
	require.Error(t, err)
}

func TestReconstructPaymentAmount_SkipsAllowList(t *testing.T) {
	// Persistence rebuilds must accept whatever currency passed validation
	// on ingest, including codes outside the default set.
	amt := valueobject.ReconstructPaymentAmount(decimal.RequireFromString("99.99"), "ZZZ")

	assert.Equal(t, "ZZZ", amt.Currency())
	assert.True(t, amt.Value().Equal(decimal.RequireFromString("99.99")))
	assert.False(t, amt.IsZero())
}

func TestPaymentAmount_PreservesPrecision(t *testing.T) {
	amt, err := valueobject.NewPaymentAmount(decimal.RequireFromString("0.00000001"), "XNA")

	require.NoError(t, err)
	assert.Equal(t, "0.00000001", amt.Value().String())
	assert.True(t, amt.IsPositive())
}

func TestPaymentAmount_Equal(t *testing.T) {
	a, _ := valueobject.NewPaymentAmount(decimal.RequireFromString("10.50"), "EUR")
	b, _ := valueobject.NewPaymentAmount(decimal.RequireFromString("10.5"), "EUR")
	c, _ := valueobject.NewPaymentAmount(decimal.RequireFromString("10.50"), "GBP")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestPaymentAmount_NegativeNotPositive(t *testing.T) {
	amt, err := valueobject.NewPaymentAmount(decimal.RequireFromString("-5"), "USD")

	require.NoError(t, err)
	assert.False(t, amt.IsPositive())
}

func TestPaymentAmount_ZeroValue(t *testing.T) {
	var amt valueobject.PaymentAmount

	assert.True(t, amt.IsZero())
	assert.False(t, amt.IsPositive())
}
