// Package order implements checkout: the single orchestration that validates
// a customer's cart, prices it, settles payment, decrements inventory, and
// hands shippable units to the shipping collaborator.
package order

import (
	"fmt"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// ErrEmptyCart is returned when checkout is attempted on an empty cart.
var ErrEmptyCart = errors.New("cart is empty")

// ExpiredProductError indicates a cart line references a product that expired
// before checkout.
type ExpiredProductError struct {
	Product string
}

func (e *ExpiredProductError) Error() string {
	return fmt.Sprintf("product %s is expired", e.Product)
}

// Receipt summarizes a successful checkout.
type Receipt struct {
	ID           string
	Subtotal     decimal.Decimal
	ShippingFees decimal.Decimal
	PaidAmount   decimal.Decimal
	// Balance is the customer's balance after payment.
	Balance   decimal.Decimal
	CreatedAt time.Time
}
