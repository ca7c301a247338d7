package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/xenking/retail-checkout/internal/domain/customer"
	"github.com/xenking/retail-checkout/internal/domain/order"
	"github.com/xenking/retail-checkout/internal/domain/product"
	"github.com/xenking/retail-checkout/internal/domain/shipping"
)

// cartLine pairs a catalog product with the quantity the demo scenario
// requests.
type cartLine struct {
	product  product.Product
	quantity int
}

// Run executes the fixed illustrative scenario: build the catalog, populate
// the customer's cart (logging and skipping lines that fail add-time
// validation), run checkout with the console shipping service, and print the
// receipt. It is the single wiring point for the application.
func Run(ctx context.Context, lg *zap.Logger, cfg *Config) error {
	balance, err := decimal.NewFromString(cfg.CustomerBalance)
	if err != nil {
		return errors.Wrap(err, "parse customer balance")
	}

	lines, err := buildCatalog()
	if err != nil {
		return errors.Wrap(err, "build catalog")
	}

	cust := customer.New(cfg.CustomerName, balance)
	lg.Info("Scenario starting",
		zap.String("customer", cust.Name()),
		zap.String("balance", cust.Balance().StringFixed(2)),
	)

	for _, line := range lines {
		if err := cust.Cart().AddProduct(line.product, line.quantity); err != nil {
			lg.Warn("Add to cart failed",
				zap.String("product", line.product.Name()),
				zap.Int("quantity", line.quantity),
				zap.Error(err),
			)
			continue
		}
		lg.Info("Added to cart",
			zap.String("product", line.product.Name()),
			zap.Int("quantity", line.quantity),
		)
	}

	svc := order.NewService(shipping.NewConsoleService(lg))

	receipt, err := svc.Checkout(ctx, cust)
	if err != nil {
		lg.Error("Checkout aborted", zap.Error(err))
		return errors.Wrap(err, "checkout")
	}

	if cfg.JSONReceipt {
		data, err := receipt.MarshalJSON()
		if err != nil {
			return errors.Wrap(err, "encode receipt")
		}
		fmt.Fprintln(os.Stdout, string(data))
	} else {
		if err := receipt.WriteText(os.Stdout); err != nil {
			return errors.Wrap(err, "write receipt")
		}
	}

	lg.Info("Checkout complete",
		zap.String("receipt_id", receipt.ID),
		zap.String("paid", receipt.PaidAmount.StringFixed(2)),
		zap.String("new_balance", receipt.Balance.StringFixed(2)),
	)
	return nil
}

// buildCatalog creates the demo products: every capability combination is
// represented.
func buildCatalog() ([]cartLine, error) {
	now := time.Now()

	cheese, err := product.New("Cheese", decimal.NewFromInt(10), 5,
		product.WithExpiry(now.AddDate(0, 0, 5)),
		product.WithWeight(decimal.RequireFromString("1.5")),
	)
	if err != nil {
		return nil, err
	}

	biscuit, err := product.New("Biscuit", decimal.NewFromInt(5), 10,
		product.WithExpiry(now.AddDate(0, 0, 30)),
	)
	if err != nil {
		return nil, err
	}

	tv, err := product.New("TV", decimal.NewFromInt(300), 2,
		product.WithWeight(decimal.NewFromInt(10)),
	)
	if err != nil {
		return nil, err
	}

	card, err := product.New("Mobile Scratch Card", decimal.NewFromInt(20), 20)
	if err != nil {
		return nil, err
	}

	return []cartLine{
		{product: cheese, quantity: 3},
		{product: biscuit, quantity: 5},
		{product: tv, quantity: 1},
		{product: card, quantity: 5},
	}, nil
}
