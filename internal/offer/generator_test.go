package offer

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"cartonquote/internal/lookup"
	"cartonquote/internal/pricing"
	"cartonquote/internal/quote"
)

type failingProvider struct{}

func (failingProvider) LookupPrice(context.Context, quote.Form) (*lookup.Result, error) {
	return nil, errors.New("backend down")
}
func (failingProvider) HealthCheck(context.Context) bool { return false }

func testForm() quote.Form {
	price := decimal.NewFromFloat(15.50)
	return quote.Form{
		FEFCO:          "0201",
		CardboardType:  quote.MaterialThreeLayer,
		CardboardGrade: "Т23 крафт",
		WidthMM:        300,
		LengthMM:       200,
		HeightMM:       150,
		Qty:            1000,
		UnitPrice:      &price,
		DeliveryDays:   10,
		SelectedTariffs: []pricing.Tariff{
			pricing.TariffStandard, pricing.TariffUrgent, pricing.TariffStrategic,
		},
	}
}

func newTestGenerator(provider lookup.Provider) *Generator {
	assembler := quote.NewAssembler(quote.CompanyInfo{Name: "ООО Тест-Упак"})
	return NewGenerator(zap.NewNop(), provider, assembler, nil)
}

func TestGenerate_Success(t *testing.T) {
	g := newTestGenerator(lookup.MockProvider{})

	result, fieldErrs, err := g.Generate(context.Background(), testForm())
	require.NoError(t, err)
	require.Empty(t, fieldErrs)
	require.NotNil(t, result)

	assert.NotEmpty(t, result.Quote.LeadID)
	assert.Equal(t, "SKU-0201-300x200x150", result.Quote.Summary.SKU)
	assert.Contains(t, result.HTML, "Коммерческое предложение")
	assert.Nil(t, result.PDF, "PDF step skipped without a renderer")

	require.Len(t, result.Quote.Tiers, 3)
	assert.True(t, result.Quote.Tiers[1].TotalPrice.Equal(decimal.NewFromInt(18600)))
}

func TestGenerate_ValidationShortCircuits(t *testing.T) {
	form := testForm()
	form.WidthMM = 5

	g := newTestGenerator(lookup.MockProvider{})
	result, fieldErrs, err := g.Generate(context.Background(), form)

	require.NoError(t, err)
	assert.Nil(t, result)
	require.Len(t, fieldErrs, 1)
	assert.Equal(t, "x_mm", fieldErrs[0].Field)
}

func TestGenerate_LookupFallbackPrice(t *testing.T) {
	form := testForm()
	form.UnitPrice = nil // legacy path

	g := newTestGenerator(lookup.MockProvider{})
	result, fieldErrs, err := g.Generate(context.Background(), form)

	require.NoError(t, err)
	require.Empty(t, fieldErrs)
	require.Len(t, result.Quote.Tiers, 3)

	// Mock std price 15.50 * 1000.
	assert.True(t, result.Quote.Tiers[0].TotalPrice.Equal(decimal.NewFromInt(15500)))
}

func TestGenerate_NoPriceAnywhere(t *testing.T) {
	form := testForm()
	form.UnitPrice = nil

	g := newTestGenerator(failingProvider{})
	result, fieldErrs, err := g.Generate(context.Background(), form)

	assert.Nil(t, result)
	assert.Empty(t, fieldErrs)
	require.ErrorIs(t, err, ErrNoPrice)
}

func TestGenerate_LookupFailureToleratedWithExplicitPrice(t *testing.T) {
	g := newTestGenerator(failingProvider{})

	result, fieldErrs, err := g.Generate(context.Background(), testForm())
	require.NoError(t, err)
	require.Empty(t, fieldErrs)
	require.NotNil(t, result)

	assert.Empty(t, result.Quote.Summary.SKU)
}
