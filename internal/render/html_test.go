package render

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cartonquote/internal/pricing"
	"cartonquote/internal/quote"
)

func sampleQuote() quote.Quote {
	return quote.Quote{
		LeadID:      "lead-42",
		ContactName: "Иван",
		Summary: quote.Summary{
			FEFCO:      "0201",
			Dimensions: "300×200×150 мм",
			Material:   quote.MaterialThreeLayer,
			Grade:      "Т23 крафт",
			Print:      "Да",
			Qty:        1000,
			SKU:        "SKU-0201-300x200x150",
		},
		Tiers: []quote.TierView{
			{
				Tariff:       pricing.TariffStandard,
				Name:         "Стандарт",
				UnitPrice:    decimal.NewFromFloat(15.5),
				TotalPrice:   decimal.NewFromInt(15500),
				LeadTimeDays: 10,
				DeliveryDate: "27 октября 2025",
			},
		},
		Notes:      []string{"Предложение действительно до 16 октября 2025"},
		ValidUntil: "16 октября 2025",
		CTA: quote.CTA{
			Contacts: quote.CompanyInfo{Name: "ООО Тест-Упак", Telegram: "@testpack", Phone: "+70000000000"},
		},
	}
}

func TestHTML_ContainsOrderAndTiers(t *testing.T) {
	html, err := HTML(sampleQuote())
	require.NoError(t, err)

	assert.Contains(t, html, "Иван")
	assert.Contains(t, html, "0201")
	assert.Contains(t, html, "300×200×150 мм")
	assert.Contains(t, html, "Стандарт")
	assert.Contains(t, html, "15 500 руб")
	assert.Contains(t, html, "27 октября 2025")
	assert.Contains(t, html, "@testpack")
	assert.Contains(t, html, "16 октября 2025")
}

func TestHTML_NoTiersNoPricingSection(t *testing.T) {
	q := sampleQuote()
	q.Tiers = nil

	html, err := HTML(q)
	require.NoError(t, err)

	assert.NotContains(t, html, "Варианты сотрудничества")
	assert.Contains(t, html, "Важная информация")
}

func TestHTML_AnonymousGreeting(t *testing.T) {
	q := sampleQuote()
	q.ContactName = ""

	html, err := HTML(q)
	require.NoError(t, err)

	assert.Contains(t, html, "Доброго времени суток!")
}

func TestHTML_VolumeTable(t *testing.T) {
	q := sampleQuote()
	q.VolumeTable = []quote.VolumePriceRow{
		{Volume: 100, Price: decimal.NewFromInt(12)},
		{Volume: 5000, Price: decimal.NewFromFloat(9.5)},
	}

	html, err := HTML(q)
	require.NoError(t, err)

	assert.Contains(t, html, "Цены при больших тиражах")
	assert.Contains(t, html, "5000")
}

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		in   decimal.Decimal
		want string
	}{
		{decimal.NewFromInt(0), "0"},
		{decimal.NewFromInt(950), "950"},
		{decimal.NewFromInt(15500), "15 500"},
		{decimal.NewFromInt(1234567), "1 234 567"},
		{decimal.NewFromFloat(13175.4), "13 175"},
		{decimal.NewFromInt(-15500), "-15 500"},
	}
	for _, tc := range cases {
		if got := formatMoney(tc.in); got != tc.want {
			t.Fatalf("formatMoney(%s) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestHTML_EscapesUserInput(t *testing.T) {
	q := sampleQuote()
	q.ContactName = `<script>alert("x")</script>`

	html, err := HTML(q)
	require.NoError(t, err)

	assert.False(t, strings.Contains(html, "<script>alert"))
}
