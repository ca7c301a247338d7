package order

import (
	"fmt"
	"io"
	"time"

	"github.com/go-faster/jx"
)

// WriteText renders the human-readable checkout report, all figures fixed to
// two decimal places.
func (r *Receipt) WriteText(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"Checkout successful!\n"+
			"Order subtotal: $%s\n"+
			"Shipping fees: $%s\n"+
			"Paid amount: $%s\n"+
			"Customer new balance: $%s\n",
		r.Subtotal.StringFixed(2),
		r.ShippingFees.StringFixed(2),
		r.PaidAmount.StringFixed(2),
		r.Balance.StringFixed(2),
	)
	return err
}

// Encode writes the receipt as a JSON object. Monetary figures are encoded as
// fixed two-decimal strings to avoid float rounding on the consumer side.
func (r *Receipt) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("id")
	e.Str(r.ID)
	e.FieldStart("subtotal")
	e.Str(r.Subtotal.StringFixed(2))
	e.FieldStart("shipping_fees")
	e.Str(r.ShippingFees.StringFixed(2))
	e.FieldStart("paid_amount")
	e.Str(r.PaidAmount.StringFixed(2))
	e.FieldStart("balance")
	e.Str(r.Balance.StringFixed(2))
	e.FieldStart("created_at")
	e.Str(r.CreatedAt.UTC().Format(time.RFC3339))
	e.ObjEnd()
}

// MarshalJSON implements json.Marshaler via the jx encoder.
func (r *Receipt) MarshalJSON() ([]byte, error) {
	var e jx.Encoder
	r.Encode(&e)
	return e.Bytes(), nil
}
