package quote

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"cartonquote/internal/pricing"
	"cartonquote/internal/workdays"
)

// How long an issued offer stays valid.
const offerValidity = 72 * time.Hour

// CompanyInfo identifies the selling company on the offer document. It is
// injected into the assembler so the package carries no global contact data.
type CompanyInfo struct {
	Name     string
	Telegram string
	Phone    string
	WhatsApp string
}

// AssetRefs carries the base64 image payloads embedded into the document.
// Empty fields mean the asset is unavailable and its block is omitted.
type AssetRefs struct {
	TelegramQR string
	WhatsAppQR string
	Logo       string
}

// CTA is the call-to-action block of the offer.
type CTA struct {
	Contacts CompanyInfo
	Assets   AssetRefs
}

// Summary restates the customer's order on the document.
type Summary struct {
	FEFCO      FEFCOCode
	Dimensions string
	Material   Material
	Grade      string
	Print      string
	Qty        int
	SKU        string
}

// TierView is one rendered pricing option.
type TierView struct {
	Tariff        pricing.Tariff
	Name          string
	UnitPrice     decimal.Decimal
	TotalPrice    decimal.Decimal
	LeadTimeDays  int
	DeliveryDate  string
	IsCustomPrice bool
	IsCustomDays  bool
}

// VolumePriceRow is one complete row of the price-break table.
type VolumePriceRow struct {
	Volume int
	Price  decimal.Decimal
}

// Quote is the finalized, renderer-ready record. It is handed to the
// rendering collaborator and not retained.
type Quote struct {
	LeadID      string
	ContactName string
	Summary     Summary
	Tiers       []TierView
	Notes       []string
	ValidUntil  string
	VolumeTable []VolumePriceRow
	CTA         CTA
}

// Assembler merges validated form data with resolver output into a Quote.
// The zero value is not usable; construct it with NewAssembler.
type Assembler struct {
	company CompanyInfo
	assets  AssetRefs
	now     func() time.Time
	leadID  func() string
}

// Option customizes an Assembler.
type Option func(*Assembler)

// WithClock replaces the wall clock, used by tests.
func WithClock(now func() time.Time) Option {
	return func(a *Assembler) { a.now = now }
}

// WithLeadIDFunc replaces the lead identifier generator.
func WithLeadIDFunc(gen func() string) Option {
	return func(a *Assembler) { a.leadID = gen }
}

// WithAssets sets the QR and logo payloads embedded into documents.
func WithAssets(assets AssetRefs) Option {
	return func(a *Assembler) { a.assets = assets }
}

// NewAssembler returns an Assembler selling on behalf of company.
func NewAssembler(company CompanyInfo, opts ...Option) *Assembler {
	a := &Assembler{
		company: company,
		now:     time.Now,
		leadID:  func() string { return "lead-" + uuid.NewString() },
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Assemble builds the quote record from the validated form and the resolved
// delivery dates and tier prices. Tiers not present in the form's selected
// set are dropped; an empty selection yields a document without a pricing
// section, which is not an error.
func (a *Assembler) Assemble(form Form, delivery workdays.DeliveryDates, tiers pricing.Tiers, sku string) Quote {
	now := a.now()
	validUntil := workdays.FormatRussianDate(now.Add(offerValidity))

	return Quote{
		LeadID:      a.leadID(),
		ContactName: form.ContactName,
		Summary: Summary{
			FEFCO:      form.FEFCO,
			Dimensions: fmt.Sprintf("%d×%d×%d мм", form.WidthMM, form.LengthMM, form.HeightMM),
			Material:   form.CardboardType,
			Grade:      form.CardboardGrade,
			Print:      form.Print.Display(),
			Qty:        form.Qty,
			SKU:        sku,
		},
		Tiers:       a.selectTiers(form, delivery, tiers),
		Notes:       a.notes(validUntil),
		ValidUntil:  validUntil,
		VolumeTable: volumeTable(form.VolumePrices),
		CTA:         CTA{Contacts: a.company, Assets: a.assets},
	}
}

func (a *Assembler) selectTiers(form Form, delivery workdays.DeliveryDates, tiers pricing.Tiers) []TierView {
	selected := make(map[pricing.Tariff]bool, len(form.SelectedTariffs))
	for _, t := range form.SelectedTariffs {
		selected[t] = true
	}

	views := make([]TierView, 0, len(pricing.Tariffs))
	for _, tariff := range pricing.Tariffs {
		if !selected[tariff] {
			continue
		}

		tier := tiers.ByTariff(tariff)
		var dd workdays.DeliveryDate
		switch tariff {
		case pricing.TariffUrgent:
			dd = delivery.Urgent
		case pricing.TariffStrategic:
			dd = delivery.Strategic
		default:
			dd = delivery.Standard
		}

		views = append(views, TierView{
			Tariff:        tariff,
			Name:          tariff.DisplayName(),
			UnitPrice:     tier.UnitPrice,
			TotalPrice:    tier.TotalPrice,
			LeadTimeDays:  dd.Days,
			DeliveryDate:  dd.FormattedDate,
			IsCustomPrice: tier.IsCustomPrice,
			IsCustomDays:  form.hasCustomDays(tariff),
		})
	}
	return views
}

func (a *Assembler) notes(validUntil string) []string {
	return []string{
		"Предложение действительно до " + validUntil,
		"Минимальный заказ: 50 шт",
		"Возможна доставка по всей России",
	}
}

// volumeTable keeps only pairs with both volume and price present; partial
// pairs are dropped silently.
func volumeTable(pairs []VolumePricePair) []VolumePriceRow {
	var rows []VolumePriceRow
	for _, p := range pairs {
		if !p.Complete() {
			continue
		}
		rows = append(rows, VolumePriceRow{Volume: *p.Volume, Price: *p.Price})
	}
	return rows
}
