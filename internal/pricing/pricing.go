// Package pricing computes the three commercial tiers offered on every
// quote: standard, urgent and strategic.
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Tariff identifies one of the three pricing tiers.
type Tariff string

const (
	TariffStandard  Tariff = "standard"
	TariffUrgent    Tariff = "urgent"
	TariffStrategic Tariff = "strategic"
)

// Tariffs lists all tiers in presentation order.
var Tariffs = []Tariff{TariffStandard, TariffUrgent, TariffStrategic}

// DisplayName returns the Russian tier name used in the offer document.
func (t Tariff) DisplayName() string {
	switch t {
	case TariffStandard:
		return "Стандарт"
	case TariffUrgent:
		return "Срочно"
	case TariffStrategic:
		return "Стратегический"
	}
	return string(t)
}

// Valid reports whether t is one of the three known tariffs.
func (t Tariff) Valid() bool {
	switch t {
	case TariffStandard, TariffUrgent, TariffStrategic:
		return true
	}
	return false
}

// Urgency premium and long-term discount applied when the caller supplies no
// fixed price for a tier. An earlier revision scaled the urgent premium with
// the lead time (base * (1 + days*0.1)); that formula is abandoned in favor
// of the flat multiplier and must not be reintroduced.
var (
	urgentFactor    = decimal.NewFromFloat(1.2)
	strategicFactor = decimal.NewFromFloat(0.85)
)

// PriceOverrides carries caller-supplied fixed batch totals per tariff. A
// nil field means the formula-derived price applies.
type PriceOverrides struct {
	Standard  *decimal.Decimal
	Urgent    *decimal.Decimal
	Strategic *decimal.Decimal
}

// Tier is the priced form of one tariff.
type Tier struct {
	Tariff        Tariff
	UnitPrice     decimal.Decimal
	TotalPrice    decimal.Decimal
	IsCustomPrice bool
}

// Tiers holds the priced standard, urgent and strategic tiers.
type Tiers struct {
	Standard  Tier
	Urgent    Tier
	Strategic Tier
}

// ByTariff returns the tier for the given tariff.
func (ts Tiers) ByTariff(t Tariff) Tier {
	switch t {
	case TariffUrgent:
		return ts.Urgent
	case TariffStrategic:
		return ts.Strategic
	default:
		return ts.Standard
	}
}

// ResolveTierPrices derives the batch total and per-unit price for every
// tariff from the unit price and quantity. An override replaces the derived
// total for its tier and is recorded on the IsCustomPrice flag.
//
// qty < 1 is a programming error: form validation rejects such requests
// before pricing runs, so the resolver treats it as a broken contract.
func ResolveTierPrices(unitPrice decimal.Decimal, qty int, overrides PriceOverrides) Tiers {
	if qty < 1 {
		panic(fmt.Sprintf("pricing: quantity %d violates the qty >= 1 precondition", qty))
	}

	base := unitPrice.Mul(decimal.NewFromInt(int64(qty)))

	return Tiers{
		Standard:  makeTier(TariffStandard, base, overrides.Standard, qty),
		Urgent:    makeTier(TariffUrgent, base.Mul(urgentFactor), overrides.Urgent, qty),
		Strategic: makeTier(TariffStrategic, base.Mul(strategicFactor), overrides.Strategic, qty),
	}
}

func makeTier(tariff Tariff, derived decimal.Decimal, override *decimal.Decimal, qty int) Tier {
	total := derived
	custom := false
	if override != nil {
		total = *override
		custom = true
	}

	return Tier{
		Tariff:        tariff,
		UnitPrice:     total.Div(decimal.NewFromInt(int64(qty))),
		TotalPrice:    total,
		IsCustomPrice: custom,
	}
}
