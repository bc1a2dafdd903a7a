// Package lookup defines the contract with the external reference-pricing
// provider. The core consumes its output only on the legacy path, when the
// customer supplies no unit price.
package lookup

import (
	"context"

	"github.com/shopspring/decimal"

	"cartonquote/internal/quote"
)

// QtyBand is the quantity range a price row applies to.
type QtyBand struct {
	Min int
	Max int
}

// LeadTimes carries the provider's textual lead-time descriptions per tariff.
type LeadTimes struct {
	Standard  string
	Urgent    string
	Strategic string
}

// PriceInfo is a per-unit price with the provider's margin.
type PriceInfo struct {
	PricePerUnit decimal.Decimal
	MarginPct    float64
}

// Prices groups the per-tariff price rows.
type Prices struct {
	Standard  PriceInfo
	Urgent    PriceInfo
	Strategic PriceInfo
}

// Result is the provider's reference data for one request. The core treats
// it as opaque except for the SKU and the standard per-unit price.
type Result struct {
	SKU      string
	QtyBand  QtyBand
	LeadTime LeadTimes
	Prices   Prices
	Terms    []string
}

// Provider resolves reference pricing for a box specification. A nil result
// with a nil error means the provider has no data for the request; callers
// must tolerate both failure modes.
type Provider interface {
	LookupPrice(ctx context.Context, form quote.Form) (*Result, error)
	HealthCheck(ctx context.Context) bool
}
