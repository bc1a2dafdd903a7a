// Package quote defines the customer quote form, its validation rules and
// the assembly of the renderer-ready quote record.
package quote

import (
	"github.com/shopspring/decimal"

	"cartonquote/internal/pricing"
	"cartonquote/internal/workdays"
)

// FEFCOCode is an industry box-style code from the FEFCO catalogue.
type FEFCOCode string

// The closed set of box styles the factory produces.
var fefcoCodes = map[FEFCOCode]bool{
	"0200": true, "0201": true, "0202": true, "0203": true,
	"0204": true, "0205": true, "0206": true, "0207": true,
	"0208": true, "0209": true, "0210": true, "0211": true,
	"0215": true, "0426": true, "0427": true, "501": true,
}

// Valid reports whether the code belongs to the supported FEFCO set.
func (c FEFCOCode) Valid() bool { return fefcoCodes[c] }

// Material is one of the two corrugated-board variants.
type Material string

const (
	MaterialThreeLayer      Material = "3-х слойный гофрокартон"
	MaterialThreeLayerMicro Material = "3-х слойный микрогофрокартон"
)

// Valid reports whether the material is a known variant.
func (m Material) Valid() bool {
	return m == MaterialThreeLayer || m == MaterialThreeLayerMicro
}

// Print is the tri-state print option. The empty value means "not specified".
type Print string

const (
	PrintYes         Print = "Да"
	PrintNo          Print = "Нет"
	PrintUnspecified Print = ""
)

// Valid reports whether the print value is one of the allowed states.
func (p Print) Valid() bool {
	return p == PrintYes || p == PrintNo || p == PrintUnspecified
}

// Display returns the value shown in the offer document; unspecified reads
// as "Нет".
func (p Print) Display() string {
	if p == PrintUnspecified {
		return string(PrintNo)
	}
	return string(p)
}

// VolumePricePair is one optional row of the supplementary price-break
// table. Either side may be absent; only complete pairs reach the document.
type VolumePricePair struct {
	Volume *int             `json:"volume"`
	Price  *decimal.Decimal `json:"price"`
}

// Complete reports whether both sides of the pair are present.
func (p VolumePricePair) Complete() bool { return p.Volume != nil && p.Price != nil }

// Form is the quote request as submitted by the customer. It is validated
// once at ingestion and treated as immutable afterwards.
type Form struct {
	// Box specification.
	FEFCO          FEFCOCode `json:"fefco"`
	CardboardType  Material  `json:"cardboard_type"`
	CardboardGrade string    `json:"cardboard_grade,omitempty"`
	WidthMM        int       `json:"x_mm"`
	LengthMM       int       `json:"y_mm"`
	HeightMM       int       `json:"z_mm"`
	Print          Print     `json:"print,omitempty"`

	// Batch and pricing inputs.
	Qty          int              `json:"qty"`
	UnitPrice    *decimal.Decimal `json:"unit_price,omitempty"`
	DeliveryDays int              `json:"delivery_days"`

	// Per-tariff overrides; presence suppresses the derived value.
	CustomStandardPrice  *decimal.Decimal `json:"custom_standard_price,omitempty"`
	CustomUrgentPrice    *decimal.Decimal `json:"custom_urgent_price,omitempty"`
	CustomStrategicPrice *decimal.Decimal `json:"custom_strategic_price,omitempty"`
	CustomStandardDays   *int             `json:"custom_standard_days,omitempty"`
	CustomUrgentDays     *int             `json:"custom_urgent_days,omitempty"`
	CustomStrategicDays  *int             `json:"custom_strategic_days,omitempty"`

	// Which tiers appear in the document. Empty means no pricing section.
	SelectedTariffs []pricing.Tariff `json:"selected_tariffs,omitempty"`

	// Optional price-break table.
	VolumePrices []VolumePricePair `json:"volume_prices,omitempty"`

	// Contact metadata, validation only.
	Company      string `json:"company,omitempty"`
	ContactName  string `json:"contact_name,omitempty"`
	City         string `json:"city,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Email        string `json:"email,omitempty"`
	TGUsername   string `json:"tg_username,omitempty"`
	ConsentGiven bool   `json:"consent_given,omitempty"`
}

// Normalize maps frontend "not supplied" sentinels to the semantic unset
// state before any enum or requirement check runs.
func (f *Form) Normalize() {
	if string(f.Print) == "undefined" {
		f.Print = PrintUnspecified
	}
	if f.TGUsername == "undefined" {
		f.TGUsername = ""
	}
}

// PriceOverrides converts the form's fixed prices to resolver overrides.
func (f *Form) PriceOverrides() pricing.PriceOverrides {
	return pricing.PriceOverrides{
		Standard:  f.CustomStandardPrice,
		Urgent:    f.CustomUrgentPrice,
		Strategic: f.CustomStrategicPrice,
	}
}

// DayOverrides converts the form's fixed lead times to resolver overrides.
func (f *Form) DayOverrides() workdays.DayOverrides {
	return workdays.DayOverrides{
		Standard:  f.CustomStandardDays,
		Urgent:    f.CustomUrgentDays,
		Strategic: f.CustomStrategicDays,
	}
}

// hasCustomDays reports whether a lead-time override exists for the tariff.
func (f *Form) hasCustomDays(t pricing.Tariff) bool {
	switch t {
	case pricing.TariffStandard:
		return f.CustomStandardDays != nil
	case pricing.TariffUrgent:
		return f.CustomUrgentDays != nil
	case pricing.TariffStrategic:
		return f.CustomStrategicDays != nil
	}
	return false
}
