// Package shipping defines the dispatch collaborator checkout hands its
// shippable units to, plus a console reference implementation.
package shipping

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Parcel is one physical unit handed to the shipping service. Any shippable
// product satisfies it structurally.
type Parcel interface {
	Name() string
	Weight() decimal.Decimal
}

// Service dispatches parcels. Checkout depends on this interface only, so
// tests substitute a recording implementation.
type Service interface {
	ShipItems(ctx context.Context, parcels []Parcel) error
}

// ConsoleService logs one line per parcel and a manifest summary. It is the
// reference dispatch behaviour for the demo scenario.
type ConsoleService struct {
	lg *zap.Logger
}

// NewConsoleService creates a ConsoleService logging through lg.
func NewConsoleService(lg *zap.Logger) *ConsoleService {
	return &ConsoleService{lg: lg}
}

// ShipItems logs each parcel's name and weight, then the package count and
// total weight of the shipment.
func (s *ConsoleService) ShipItems(_ context.Context, parcels []Parcel) error {
	total := decimal.Zero
	for _, p := range parcels {
		s.lg.Info("Shipping item",
			zap.String("name", p.Name()),
			zap.String("weight_kg", p.Weight().String()),
		)
		total = total.Add(p.Weight())
	}

	s.lg.Info("Shipment dispatched",
		zap.Int("packages", len(parcels)),
		zap.String("total_weight_kg", total.String()),
	)
	return nil
}
