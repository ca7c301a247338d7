package order

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/xenking/retail-checkout/internal/domain/customer"
	"github.com/xenking/retail-checkout/internal/domain/product"
	"github.com/xenking/retail-checkout/internal/domain/shipping"
)

// shippingFeePerKG is the flat shipping rate: 10 currency units per kilogram
// of shipped weight.
var shippingFeePerKG = decimal.NewFromInt(10)

// Service encapsulates the checkout business logic.
type Service struct {
	shipper shipping.Service
	now     func() time.Time
}

// NewService creates a checkout Service dispatching through shipper.
func NewService(shipper shipping.Service) *Service {
	return &Service{shipper: shipper, now: time.Now}
}

// Checkout runs the full flow over the customer's cart: per-line stock and
// expiry validation, subtotal and shipping fee computation, balance check,
// then payment, inventory reduction, dispatch, and cart clearing. The first
// validation failure aborts with a typed error and zero mutation; mutation
// starts only after every check has passed.
func (s *Service) Checkout(ctx context.Context, cust *customer.Customer) (*Receipt, error) {
	crt := cust.Cart()
	if crt.IsEmpty() {
		return nil, ErrEmptyCart
	}

	subtotal := decimal.Zero
	var parcels []shipping.Parcel

	for _, item := range crt.Items() {
		p := item.Product

		// Stock is re-checked against current quantity on hand: it may have
		// decreased since the line was added, never increased.
		if item.Quantity > p.QuantityOnHand() {
			return nil, &product.InsufficientStockError{
				Product:   p.Name(),
				Requested: item.Quantity,
				InStock:   p.QuantityOnHand(),
			}
		}
		if e, ok := p.(product.Expirable); ok && e.Expired() {
			return nil, &ExpiredProductError{Product: p.Name()}
		}

		subtotal = subtotal.Add(item.LineTotal())

		// One parcel per unit: a quantity of 3 contributes 3 entries.
		if sp, ok := p.(product.Shippable); ok {
			for range item.Quantity {
				parcels = append(parcels, sp)
			}
		}
	}

	fees := totalWeight(parcels).Mul(shippingFeePerKG)
	paid := subtotal.Add(fees)

	if cust.Balance().LessThan(paid) {
		return nil, &customer.InsufficientBalanceError{
			Customer: cust.Name(),
			Required: paid,
			Balance:  cust.Balance(),
		}
	}

	// Mutation phase. Every condition was validated above, so a failure here
	// is a programming error, not user input.
	if err := cust.DebitBalance(paid); err != nil {
		return nil, errors.Wrap(err, "debit balance")
	}
	for _, item := range crt.Items() {
		if err := item.Product.ReduceQuantity(item.Quantity); err != nil {
			return nil, errors.Wrapf(err, "reduce quantity of %s", item.Product.Name())
		}
	}

	if len(parcels) > 0 {
		if err := s.shipper.ShipItems(ctx, parcels); err != nil {
			return nil, errors.Wrap(err, "ship items")
		}
	}

	receipt := &Receipt{
		ID:           uuid.New().String(),
		Subtotal:     subtotal,
		ShippingFees: fees,
		PaidAmount:   paid,
		Balance:      cust.Balance(),
		CreatedAt:    s.now(),
	}

	crt.Clear()
	return receipt, nil
}

// totalWeight sums the weight of every parcel.
func totalWeight(parcels []shipping.Parcel) decimal.Decimal {
	sum := decimal.Zero
	for _, p := range parcels {
		sum = sum.Add(p.Weight())
	}
	return sum
}
