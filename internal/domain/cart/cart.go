// Package cart holds a customer's pending purchase lines keyed by product
// name. All validation happens at add time against the product's current
// stock; checkout re-validates later because stock may have decreased in the
// meantime.
package cart

import (
	"fmt"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/xenking/retail-checkout/internal/domain/product"
)

// ErrNonPositiveQuantity is returned when adding a product with a quantity
// of zero or less.
var ErrNonPositiveQuantity = errors.New("quantity must be greater than 0")

// NotAvailableError indicates a product cannot be added because it is out of
// stock or expired.
type NotAvailableError struct {
	Product string
}

func (e *NotAvailableError) Error() string {
	return fmt.Sprintf("product %s is not available", e.Product)
}

// Item is a single cart line: a product reference and the requested quantity.
type Item struct {
	Product  product.Product
	Quantity int
}

// LineTotal returns price multiplied by quantity for this line.
func (i *Item) LineTotal() decimal.Decimal {
	return i.Product.Price().Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart maps product names to lines. Iteration over Items follows insertion
// order so reports stay deterministic.
type Cart struct {
	lines map[string]*Item
	order []string
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{lines: make(map[string]*Item)}
}

// AddProduct adds quantity units of p to the cart, merging with an existing
// line for the same product. It fails when the quantity is non-positive, the
// product is unavailable, or the requested (or combined) quantity exceeds the
// product's current stock.
func (c *Cart) AddProduct(p product.Product, quantity int) error {
	if quantity <= 0 {
		return ErrNonPositiveQuantity
	}
	if !p.Available() {
		return &NotAvailableError{Product: p.Name()}
	}
	if quantity > p.QuantityOnHand() {
		return &product.InsufficientStockError{
			Product:   p.Name(),
			Requested: quantity,
			InStock:   p.QuantityOnHand(),
		}
	}

	if existing, ok := c.lines[p.Name()]; ok {
		combined := existing.Quantity + quantity
		// Re-check against current stock, not the stock seen at first add.
		if combined > p.QuantityOnHand() {
			return &product.InsufficientStockError{
				Product:   p.Name(),
				Requested: combined,
				InStock:   p.QuantityOnHand(),
			}
		}
		existing.Quantity = combined
		return nil
	}

	c.lines[p.Name()] = &Item{Product: p, Quantity: quantity}
	c.order = append(c.order, p.Name())
	return nil
}

// Items returns the cart lines in insertion order.
func (c *Cart) Items() []*Item {
	items := make([]*Item, 0, len(c.order))
	for _, name := range c.order {
		items = append(items, c.lines[name])
	}
	return items
}

// IsEmpty reports whether the cart holds no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Clear removes every line from the cart.
func (c *Cart) Clear() {
	c.lines = make(map[string]*Item)
	c.order = c.order[:0]
}
