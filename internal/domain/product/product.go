// Package product models catalog items as a core Product contract plus
// optional Expirable and Shippable capabilities. Capabilities are discovered
// with type assertions, so a product may carry neither, either, or both.
package product

import (
	"fmt"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// Sentinel errors for invalid construction arguments.
var (
	ErrEmptyName        = errors.New("product name must not be empty")
	ErrNegativePrice    = errors.New("price must not be negative")
	ErrNegativeQuantity = errors.New("quantity on hand must not be negative")
	ErrNegativeWeight   = errors.New("weight must not be negative")
)

// InsufficientStockError indicates a requested amount exceeds the product's
// current quantity on hand.
type InsufficientStockError struct {
	Product   string
	Requested int
	InStock   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s: requested %d, in stock %d",
		e.Product, e.Requested, e.InStock)
}

// Product is the contract every catalog item satisfies.
type Product interface {
	Name() string
	Price() decimal.Decimal
	QuantityOnHand() int
	// Available reports whether the product can be sold right now: it has
	// stock and, for expirable products, has not expired.
	Available() bool
	// ReduceQuantity decreases quantity on hand by amount. It returns
	// *InsufficientStockError when amount exceeds current stock. Stock only
	// ever decreases; there is no restock operation.
	ReduceQuantity(amount int) error
}

// Expirable is the optional capability of products that carry an expiry date.
// A product is expired when the current date is strictly after the expiry
// date; on the expiry date itself it is still sellable.
type Expirable interface {
	Product
	ExpiryDate() time.Time
	Expired() bool
}

// Shippable is the optional capability of products with a physical weight,
// expressed in kilograms.
type Shippable interface {
	Product
	Weight() decimal.Decimal
}

type options struct {
	expiry *time.Time
	weight *decimal.Decimal
	now    func() time.Time
}

// Option configures optional product capabilities at construction time.
type Option func(*options)

// WithExpiry attaches the Expirable capability with the given expiry date.
// Only the date part is significant.
func WithExpiry(date time.Time) Option {
	return func(o *options) { o.expiry = &date }
}

// WithWeight attaches the Shippable capability with the given weight in
// kilograms.
func WithWeight(kg decimal.Decimal) Option {
	return func(o *options) { o.weight = &kg }
}

// WithClock overrides the clock used for expiry checks. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// New constructs a product. The returned value implements exactly the
// capability interfaces implied by the supplied options, so callers can
// discover capabilities with type assertions. Price, weight, and expiry are
// immutable after construction.
func New(name string, price decimal.Decimal, quantity int, opts ...Option) (Product, error) {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	if name == "" {
		return nil, ErrEmptyName
	}
	if price.IsNegative() {
		return nil, ErrNegativePrice
	}
	if quantity < 0 {
		return nil, ErrNegativeQuantity
	}
	if o.weight != nil && o.weight.IsNegative() {
		return nil, ErrNegativeWeight
	}

	b := base{name: name, price: price, quantity: quantity}

	switch {
	case o.expiry != nil && o.weight != nil:
		return &expirableShippable{
			expirable: expirable{base: b, expiry: *o.expiry, now: o.now},
			weight:    *o.weight,
		}, nil
	case o.expiry != nil:
		return &expirable{base: b, expiry: *o.expiry, now: o.now}, nil
	case o.weight != nil:
		return &shippable{base: b, weight: *o.weight}, nil
	default:
		return &b, nil
	}
}

// base implements the core Product contract without any capability.
type base struct {
	name     string
	price    decimal.Decimal
	quantity int
}

func (b *base) Name() string           { return b.name }
func (b *base) Price() decimal.Decimal { return b.price }
func (b *base) QuantityOnHand() int    { return b.quantity }
func (b *base) Available() bool        { return b.quantity > 0 }

func (b *base) ReduceQuantity(amount int) error {
	if amount < 0 {
		return errors.Errorf("reduce quantity: negative amount %d", amount)
	}
	if amount > b.quantity {
		return &InsufficientStockError{Product: b.name, Requested: amount, InStock: b.quantity}
	}
	b.quantity -= amount
	return nil
}

type expirable struct {
	base
	expiry time.Time
	now    func() time.Time
}

func (p *expirable) ExpiryDate() time.Time { return p.expiry }

func (p *expirable) Expired() bool {
	return dateOf(p.now()).After(dateOf(p.expiry))
}

// Available additionally requires the product not to be expired.
func (p *expirable) Available() bool {
	return p.base.Available() && !p.Expired()
}

type shippable struct {
	base
	weight decimal.Decimal
}

func (p *shippable) Weight() decimal.Decimal { return p.weight }

type expirableShippable struct {
	expirable
	weight decimal.Decimal
}

func (p *expirableShippable) Weight() decimal.Decimal { return p.weight }

// dateOf truncates t to its calendar date, discarding the time of day.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
