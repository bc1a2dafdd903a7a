// Package offer runs the full quote pipeline: validation, tariff
// resolution, quote assembly and document rendering.
package offer

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"cartonquote/internal/lookup"
	"cartonquote/internal/pricing"
	"cartonquote/internal/quote"
	"cartonquote/internal/render"
	"cartonquote/internal/workdays"
)

// ErrNoPrice is returned when the form carries no unit price and the lookup
// provider has no reference data to fall back on.
var ErrNoPrice = errors.New("offer: no unit price supplied and no lookup data available")

// Generator wires the resolvers together. Construct it with NewGenerator.
type Generator struct {
	log       *zap.Logger
	provider  lookup.Provider
	assembler *quote.Assembler

	// pdf is optional; when nil the PDF step is skipped and only HTML is
	// produced (offline tooling, tests).
	pdf *render.PDFRenderer

	now func() time.Time
}

// NewGenerator builds a Generator. provider may not be nil; pdf may be nil
// to skip PDF rendering.
func NewGenerator(log *zap.Logger, provider lookup.Provider, assembler *quote.Assembler, pdf *render.PDFRenderer) *Generator {
	return &Generator{
		log:       log,
		provider:  provider,
		assembler: assembler,
		pdf:       pdf,
		now:       time.Now,
	}
}

// Result is the outcome of a successful pipeline run.
type Result struct {
	Quote quote.Quote
	HTML  string
	PDF   []byte
}

// Generate validates the form and produces the offer document. Validation
// violations are returned as the second value and are not errors; the third
// value reports pipeline failures (collaborators, rendering).
func (g *Generator) Generate(ctx context.Context, form quote.Form) (*Result, []quote.FieldError, error) {
	if errs := form.Validate(); len(errs) > 0 {
		g.log.Info("quote form rejected", zap.Int("violations", len(errs)))
		return nil, errs, nil
	}

	// Reference data supplies the SKU for the summary and, on the legacy
	// path, the unit price. The provider is allowed to fail or come back
	// empty; only the legacy path requires it.
	var sku string
	ref, err := g.provider.LookupPrice(ctx, form)
	if err != nil {
		g.log.Warn("lookup provider failed", zap.Error(err))
		ref = nil
	}
	if ref != nil {
		sku = ref.SKU
	}

	unitPrice, err := g.resolveUnitPrice(form, ref)
	if err != nil {
		return nil, nil, err
	}

	tiers := pricing.ResolveTierPrices(unitPrice, form.Qty, form.PriceOverrides())
	delivery := workdays.ResolveDeliveryDates(g.now(), form.DeliveryDays, form.DayOverrides())

	q := g.assembler.Assemble(form, delivery, tiers, sku)

	html, err := render.HTML(q)
	if err != nil {
		return nil, nil, err
	}

	result := &Result{Quote: q, HTML: html}
	if g.pdf != nil {
		pdf, err := g.pdf.PDF(ctx, html)
		if err != nil {
			return nil, nil, err
		}
		result.PDF = pdf
	}

	g.log.Info("offer generated",
		zap.String("lead_id", q.LeadID),
		zap.String("fefco", string(form.FEFCO)),
		zap.Int("qty", form.Qty),
		zap.Int("tiers", len(q.Tiers)),
	)
	return result, nil, nil
}

// resolveUnitPrice prefers the caller's explicit price; absent one, the
// lookup provider's standard per-unit price is the legacy fallback.
func (g *Generator) resolveUnitPrice(form quote.Form, ref *lookup.Result) (decimal.Decimal, error) {
	if form.UnitPrice != nil {
		return *form.UnitPrice, nil
	}
	if ref == nil {
		return decimal.Decimal{}, ErrNoPrice
	}
	g.log.Info("using lookup fallback price",
		zap.String("sku", ref.SKU),
		zap.String("unit_price", ref.Prices.Standard.PricePerUnit.String()),
	)
	return ref.Prices.Standard.PricePerUnit, nil
}
