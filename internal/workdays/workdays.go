// Package workdays implements business-day arithmetic and the per-tariff
// delivery date resolution used when building an offer.
package workdays

import (
	"fmt"
	"time"
)

// Russian month names in genitive case, as they appear after a day number.
var months = [12]string{
	"января", "февраля", "марта", "апреля", "мая", "июня",
	"июля", "августа", "сентября", "октября", "ноября", "декабря",
}

// AddBusinessDays returns the date that is days working days after start.
// Saturdays and Sundays are skipped and are never returned as the terminal
// date. For days <= 0 start is returned unchanged.
func AddBusinessDays(start time.Time, days int) time.Time {
	if days <= 0 {
		return start
	}

	current := start
	added := 0
	for added < days {
		current = current.AddDate(0, 0, 1)
		switch current.Weekday() {
		case time.Saturday, time.Sunday:
		default:
			added++
		}
	}
	return current
}

// FormatRussianDate renders a date as "21 октября 2025". The day is not
// zero-padded.
func FormatRussianDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), months[int(t.Month())-1], t.Year())
}

// DeliveryDate describes one resolved tariff lead time.
type DeliveryDate struct {
	Days          int
	Date          time.Time
	FormattedDate string
}

// DayOverrides carries caller-supplied fixed lead times per tariff. A nil
// field means the formula-derived value applies.
type DayOverrides struct {
	Standard  *int
	Urgent    *int
	Strategic *int
}

// DeliveryDates holds the resolved lead time for each of the three tariffs.
type DeliveryDates struct {
	Standard  DeliveryDate
	Urgent    DeliveryDate
	Strategic DeliveryDate
}

// ResolveDeliveryDates derives per-tariff lead times from the base number of
// working days and maps each to a calendar date counted from now.
//
// baseDays must be >= 1; the form validation layer guarantees this before
// the resolver runs.
func ResolveDeliveryDates(now time.Time, baseDays int, overrides DayOverrides) DeliveryDates {
	standard := baseDays
	if overrides.Standard != nil {
		standard = *overrides.Standard
	}

	urgent := baseDays / 2
	if urgent < 1 {
		urgent = 1
	}
	if overrides.Urgent != nil {
		urgent = *overrides.Urgent
	}

	strategic := baseDays * 3 / 2
	if overrides.Strategic != nil {
		strategic = *overrides.Strategic
	}

	return DeliveryDates{
		Standard:  resolveOne(now, standard),
		Urgent:    resolveOne(now, urgent),
		Strategic: resolveOne(now, strategic),
	}
}

func resolveOne(now time.Time, days int) DeliveryDate {
	date := AddBusinessDays(now, days)
	return DeliveryDate{
		Days:          days,
		Date:          date,
		FormattedDate: FormatRussianDate(date),
	}
}
