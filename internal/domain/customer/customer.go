// Package customer models the buyer: a name, a cash balance, and the single
// cart the customer owns for their lifetime.
package customer

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/xenking/retail-checkout/internal/domain/cart"
)

// InsufficientBalanceError indicates a debit larger than the customer's
// current balance.
type InsufficientBalanceError struct {
	Customer string
	Required decimal.Decimal
	Balance  decimal.Decimal
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance for %s: required %s, available %s",
		e.Customer, e.Required.StringFixed(2), e.Balance.StringFixed(2))
}

// Customer owns exactly one cart and a mutable cash balance. The balance can
// only go down through DebitBalance, which is the sole negative-balance gate.
type Customer struct {
	name    string
	balance decimal.Decimal
	cart    *cart.Cart
}

// New creates a customer with the given starting balance and an empty cart.
func New(name string, balance decimal.Decimal) *Customer {
	return &Customer{
		name:    name,
		balance: balance,
		cart:    cart.New(),
	}
}

func (c *Customer) Name() string             { return c.name }
func (c *Customer) Balance() decimal.Decimal { return c.balance }
func (c *Customer) Cart() *cart.Cart         { return c.cart }

// DebitBalance subtracts amount from the balance. It returns
// *InsufficientBalanceError when amount exceeds the current balance and
// leaves the balance unchanged.
func (c *Customer) DebitBalance(amount decimal.Decimal) error {
	if amount.GreaterThan(c.balance) {
		return &InsufficientBalanceError{
			Customer: c.name,
			Required: amount,
			Balance:  c.balance,
		}
	}
	c.balance = c.balance.Sub(amount)
	return nil
}
