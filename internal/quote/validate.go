package quote

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Geometry and batch bounds accepted by production.
const (
	minDimensionMM = 20
	maxDimensionMM = 3000
	minQty         = 1
	maxQty         = 100000
)

// Length caps on free-text contact fields.
const (
	maxGradeLen   = 50
	maxCompanyLen = 200
	maxContactLen = 100
	maxCityLen    = 100
	maxPhoneLen   = 20
	maxTGLen      = 50
)

// Deliberately permissive local@domain.tld shape, not full RFC 5322.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// FieldError is a single field-level validation violation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string { return e.Field + ": " + e.Message }

// Validate normalizes the form and checks every rule, returning all
// violations in field order. A nil result means the form is valid and safe
// to hand to the resolvers.
func (f *Form) Validate() []FieldError {
	f.Normalize()

	var errs []FieldError
	add := func(field, message string) {
		errs = append(errs, FieldError{Field: field, Message: message})
	}

	if !f.FEFCO.Valid() {
		add("fefco", "неизвестный код FEFCO")
	}
	if !f.CardboardType.Valid() {
		add("cardboard_type", "неизвестный тип картона")
	}
	if len([]rune(f.CardboardGrade)) > maxGradeLen {
		add("cardboard_grade", fmt.Sprintf("марка картона не длиннее %d символов", maxGradeLen))
	}

	checkDimension(&errs, "x_mm", f.WidthMM)
	checkDimension(&errs, "y_mm", f.LengthMM)
	checkDimension(&errs, "z_mm", f.HeightMM)

	if !f.Print.Valid() {
		add("print", "значение печати должно быть «Да» или «Нет»")
	}

	if f.Qty < minQty || f.Qty > maxQty {
		add("qty", fmt.Sprintf("тираж должен быть от %d до %d", minQty, maxQty))
	}
	if f.UnitPrice != nil && !f.UnitPrice.IsPositive() {
		add("unit_price", "цена за единицу должна быть больше нуля")
	}
	if f.DeliveryDays < 1 {
		add("delivery_days", "срок изготовления должен быть не менее 1 рабочего дня")
	}

	checkDayOverride(&errs, "custom_standard_days", f.CustomStandardDays)
	checkDayOverride(&errs, "custom_urgent_days", f.CustomUrgentDays)
	checkDayOverride(&errs, "custom_strategic_days", f.CustomStrategicDays)
	checkPriceOverride(&errs, "custom_standard_price", f.CustomStandardPrice)
	checkPriceOverride(&errs, "custom_urgent_price", f.CustomUrgentPrice)
	checkPriceOverride(&errs, "custom_strategic_price", f.CustomStrategicPrice)

	for _, tariff := range f.SelectedTariffs {
		if !tariff.Valid() {
			add("selected_tariffs", fmt.Sprintf("неизвестный тариф %q", tariff))
		}
	}

	checkLen(&errs, "company", f.Company, maxCompanyLen)
	checkLen(&errs, "contact_name", f.ContactName, maxContactLen)
	checkLen(&errs, "city", f.City, maxCityLen)
	checkLen(&errs, "phone", f.Phone, maxPhoneLen)
	checkLen(&errs, "tg_username", f.TGUsername, maxTGLen)

	if f.Email != "" && !emailPattern.MatchString(f.Email) {
		add("email", "неверный формат email")
	}

	// Cross-field invariant, checked once after the single-field rules: the
	// grade is mandatory only for plain three-layer board.
	if f.CardboardType == MaterialThreeLayer && strings.TrimSpace(f.CardboardGrade) == "" {
		add("cardboard_grade", "марка картона обязательна для 3-х слойного гофрокартона")
	}

	return errs
}

func checkDimension(errs *[]FieldError, field string, value int) {
	if value < minDimensionMM || value > maxDimensionMM {
		*errs = append(*errs, FieldError{
			Field:   field,
			Message: fmt.Sprintf("размер должен быть от %d до %d мм", minDimensionMM, maxDimensionMM),
		})
	}
}

func checkDayOverride(errs *[]FieldError, field string, value *int) {
	if value != nil && *value < 1 {
		*errs = append(*errs, FieldError{Field: field, Message: "срок должен быть не менее 1 рабочего дня"})
	}
}

func checkPriceOverride(errs *[]FieldError, field string, value *decimal.Decimal) {
	if value != nil && !value.IsPositive() {
		*errs = append(*errs, FieldError{Field: field, Message: "цена должна быть больше нуля"})
	}
}

func checkLen(errs *[]FieldError, field, value string, limit int) {
	if len([]rune(value)) > limit {
		*errs = append(*errs, FieldError{Field: field, Message: fmt.Sprintf("не длиннее %d символов", limit)})
	}
}
