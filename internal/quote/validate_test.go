package quote

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cartonquote/internal/pricing"
)

func validForm() Form {
	price := decimal.NewFromFloat(15.50)
	return Form{
		FEFCO:          "0201",
		CardboardType:  MaterialThreeLayer,
		CardboardGrade: "Т23 крафт",
		WidthMM:        300,
		LengthMM:       200,
		HeightMM:       150,
		Print:          PrintYes,
		Qty:            1000,
		UnitPrice:      &price,
		DeliveryDays:   10,
		SelectedTariffs: []pricing.Tariff{
			pricing.TariffStandard, pricing.TariffUrgent, pricing.TariffStrategic,
		},
		Company:     "ООО Ромашка",
		ContactName: "Иван",
		City:        "Уфа",
		Phone:       "+7 999 000-00-00",
		Email:       "test@example.com",
	}
}

func fieldsOf(errs []FieldError) []string {
	fields := make([]string, len(errs))
	for i, e := range errs {
		fields[i] = e.Field
	}
	return fields
}

func TestValidate_ValidForm(t *testing.T) {
	form := validForm()
	require.Empty(t, form.Validate())
}

func TestValidate_DimensionBounds(t *testing.T) {
	cases := []struct {
		name  string
		mut   func(*Form)
		field string
	}{
		{"width too small", func(f *Form) { f.WidthMM = 19 }, "x_mm"},
		{"width too large", func(f *Form) { f.WidthMM = 3001 }, "x_mm"},
		{"length too small", func(f *Form) { f.LengthMM = 0 }, "y_mm"},
		{"height too large", func(f *Form) { f.HeightMM = 5000 }, "z_mm"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := validForm()
			tc.mut(&form)
			errs := form.Validate()
			require.Len(t, errs, 1)
			assert.Equal(t, tc.field, errs[0].Field)
		})
	}

	// Closed-interval boundaries pass.
	form := validForm()
	form.WidthMM, form.LengthMM, form.HeightMM = 20, 3000, 20
	require.Empty(t, form.Validate())
}

func TestValidate_QuantityBounds(t *testing.T) {
	form := validForm()
	form.Qty = 0
	errs := form.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "qty", errs[0].Field)

	form.Qty = 100001
	errs = form.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "qty", errs[0].Field)

	form.Qty = 100000
	require.Empty(t, form.Validate())
}

func TestValidate_UnknownEnums(t *testing.T) {
	form := validForm()
	form.FEFCO = "9999"
	form.CardboardType = "картон из фанеры"
	form.Print = "может быть"

	fields := fieldsOf(form.Validate())
	assert.Contains(t, fields, "fefco")
	assert.Contains(t, fields, "cardboard_type")
	assert.Contains(t, fields, "print")
}

func TestValidate_GradeRequiredForThreeLayerOnly(t *testing.T) {
	form := validForm()
	form.CardboardGrade = ""
	errs := form.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "cardboard_grade", errs[0].Field)

	// Blank after trim is still missing.
	form.CardboardGrade = "   "
	errs = form.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "cardboard_grade", errs[0].Field)

	// The micro variant does not require a grade.
	form.CardboardType = MaterialThreeLayerMicro
	form.CardboardGrade = ""
	require.Empty(t, form.Validate())
}

func TestValidate_GradeRuleReportedOnce(t *testing.T) {
	form := validForm()
	form.CardboardGrade = ""

	count := 0
	for _, e := range form.Validate() {
		if e.Field == "cardboard_grade" {
			count++
		}
	}
	assert.Equal(t, 1, count, "conditional-required rule must produce a single error")
}

func TestValidate_Email(t *testing.T) {
	form := validForm()
	form.Email = "invalid-email"
	errs := form.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "email", errs[0].Field)

	form.Email = "" // optional
	require.Empty(t, form.Validate())
}

func TestValidate_SentinelNormalization(t *testing.T) {
	form := validForm()
	form.Print = "undefined"
	form.TGUsername = "undefined"

	require.Empty(t, form.Validate())
	assert.Equal(t, PrintUnspecified, form.Print)
	assert.Equal(t, "", form.TGUsername)
}

func TestValidate_DeliveryDaysMustBePositive(t *testing.T) {
	for _, days := range []int{0, -5} {
		form := validForm()
		form.DeliveryDays = days
		errs := form.Validate()
		require.Len(t, errs, 1)
		assert.Equal(t, "delivery_days", errs[0].Field)
	}
}

func TestValidate_OverrideBounds(t *testing.T) {
	form := validForm()
	zeroDays := 0
	negPrice := decimal.NewFromInt(-1)
	form.CustomUrgentDays = &zeroDays
	form.CustomStrategicPrice = &negPrice

	fields := fieldsOf(form.Validate())
	assert.Contains(t, fields, "custom_urgent_days")
	assert.Contains(t, fields, "custom_strategic_price")
}

func TestValidate_UnknownSelectedTariff(t *testing.T) {
	form := validForm()
	form.SelectedTariffs = append(form.SelectedTariffs, pricing.Tariff("express"))

	fields := fieldsOf(form.Validate())
	assert.Contains(t, fields, "selected_tariffs")
}

func TestValidate_ContactLengthCaps(t *testing.T) {
	form := validForm()
	form.Company = strings.Repeat("а", 201)
	form.Phone = strings.Repeat("7", 21)

	fields := fieldsOf(form.Validate())
	assert.Contains(t, fields, "company")
	assert.Contains(t, fields, "phone")
}

func TestValidate_UnitPriceOptionalButPositive(t *testing.T) {
	form := validForm()
	form.UnitPrice = nil // legacy lookup fallback path
	require.Empty(t, form.Validate())

	zero := decimal.Zero
	form.UnitPrice = &zero
	errs := form.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "unit_price", errs[0].Field)
}
