package customer

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func TestNew(t *testing.T) {
	c := New("John Doe", d("1000"))

	assert.Equal(t, "John Doe", c.Name())
	assert.True(t, d("1000").Equal(c.Balance()))
	require.NotNil(t, c.Cart())
	assert.True(t, c.Cart().IsEmpty())
}

func TestDebitBalance(t *testing.T) {
	c := New("John Doe", d("100"))

	require.NoError(t, c.DebitBalance(d("40.50")))
	assert.True(t, d("59.50").Equal(c.Balance()))

	// Debiting the exact remaining balance is allowed.
	require.NoError(t, c.DebitBalance(d("59.50")))
	assert.True(t, decimal.Zero.Equal(c.Balance()))
}

func TestDebitBalance_Insufficient(t *testing.T) {
	c := New("John Doe", d("100"))

	err := c.DebitBalance(d("100.01"))
	var balErr *InsufficientBalanceError
	require.ErrorAs(t, err, &balErr)
	assert.Equal(t, "John Doe", balErr.Customer)
	assert.True(t, d("100.01").Equal(balErr.Required))
	assert.True(t, d("100").Equal(balErr.Balance))
	assert.True(t, d("100").Equal(c.Balance()), "failed debit must not change balance")
}
