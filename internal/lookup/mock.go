package lookup

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"cartonquote/internal/quote"
)

// MockProvider returns canned reference data for any request. It stands in
// for the real pricing backend in development and tests.
type MockProvider struct{}

var _ Provider = MockProvider{}

// LookupPrice returns a deterministic result derived from the box spec.
func (MockProvider) LookupPrice(_ context.Context, form quote.Form) (*Result, error) {
	return &Result{
		SKU:     fmt.Sprintf("SKU-%s-%dx%dx%d", form.FEFCO, form.WidthMM, form.LengthMM, form.HeightMM),
		QtyBand: QtyBand{Min: 100, Max: 10000},
		LeadTime: LeadTimes{
			Standard:  "5-7 рабочих дней",
			Urgent:    "2-3 рабочих дня",
			Strategic: "10-14 рабочих дней",
		},
		Prices: Prices{
			Standard:  PriceInfo{PricePerUnit: decimal.NewFromFloat(15.50), MarginPct: 25.0},
			Urgent:    PriceInfo{PricePerUnit: decimal.NewFromFloat(18.50), MarginPct: 30.0},
			Strategic: PriceInfo{PricePerUnit: decimal.NewFromFloat(12.50), MarginPct: 20.0},
		},
		Terms: []string{
			"Цены указаны без учета НДС",
			"Минимальный заказ 100 штук",
			"Доставка по Москве бесплатно",
			"Предоплата 50%",
		},
	}, nil
}

// HealthCheck always succeeds for the mock.
func (MockProvider) HealthCheck(context.Context) bool { return true }
