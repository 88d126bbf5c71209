// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package ordctlordinal converts calendar date/time values into proleptic
// Gregorian ordinal day numbers.
//
// The ordinal of an instant is a float64 whose integer part counts days since
// the epoch (0001-01-01 is day 1) and whose fractional part encodes the time
// of day as a fraction of a day. The day count follows the proleptic Gregorian
// leap-year rule: every year divisible by 4 is a leap year, except centuries,
// except every 400th year.
//
// Conversion is pure and deterministic. Invalid values fail with an error
// matching xtime.ErrInvalidFields; failures are never encoded as numeric
// sentinel values.
package ordctlordinal

import (
	"fmt"
	"time"

	"github.com/bufdev/ordctl/internal/standard/xtime"
)

const (
	hoursPerDay        = 24
	minutesPerDay      = 60 * hoursPerDay
	secondsPerDay      = 60 * minutesPerDay
	microsecondsPerDay = 1e6 * secondsPerDay
)

// daysBeforeMonthTable[m] is the number of days in a non-leap year strictly
// before month m.
var daysBeforeMonthTable = [...]int{0, 0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

// FromInstant converts an instant to its ordinal day number.
//
// The fractional part is computed with floating-point division and summed in
// a fixed order (hour, minute, second, microsecond), so repeated calls with
// identical input yield bit-identical output.
func FromInstant(instant xtime.Instant) (float64, error) {
	if err := instant.Validate(); err != nil {
		return 0, err
	}
	dayCount, err := FromDate(instant.Date)
	if err != nil {
		return 0, err
	}
	ord := float64(dayCount)
	ord += float64(instant.Hour)/hoursPerDay +
		float64(instant.Minute)/minutesPerDay +
		float64(instant.Second)/secondsPerDay +
		float64(instant.Microsecond)/microsecondsPerDay
	return ord, nil
}

// FromDate converts a date to its integer day count since the epoch,
// with 0001-01-01 as day 1.
func FromDate(date xtime.Date) (int, error) {
	if !date.IsValid() {
		return 0, fmt.Errorf("%w: %s is not a real calendar date", xtime.ErrInvalidFields, date)
	}
	if date.Year < 1 {
		return 0, fmt.Errorf("%w: year %d is before the epoch year 1", xtime.ErrInvalidFields, date.Year)
	}
	return daysBeforeYear(date.Year) + daysBeforeMonth(date.Year, date.Month) + date.Day, nil
}

// FromInstants converts a sequence of instants to ordinals, preserving order.
//
// Element i of the output depends only on element i of the input. The first
// invalid element fails the whole batch with its index in the error.
func FromInstants(instants []xtime.Instant) ([]float64, error) {
	ordinals := make([]float64, len(instants))
	for i, instant := range instants {
		ordinal, err := FromInstant(instant)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		ordinals[i] = ordinal
	}
	return ordinals, nil
}

// Breakdown decomposes a conversion into its terms.
type Breakdown struct {
	// DaysBeforeYear is the number of days in all years strictly before the instant's year.
	DaysBeforeYear int `json:"days_before_year"`
	// DaysBeforeMonth is the number of days in all months of the instant's year
	// strictly before the instant's month.
	DaysBeforeMonth int `json:"days_before_month"`
	// Day is the day of the month.
	Day int `json:"day"`
	// DayCount is the total day count since the epoch (the ordinal's integer part).
	DayCount int `json:"day_count"`
	// Fraction is the time of day as a fraction of a day.
	Fraction float64 `json:"fraction"`
	// Ordinal is the complete ordinal day number.
	Ordinal float64 `json:"ordinal"`
}

// Explain converts an instant and reports the terms of the conversion.
func Explain(instant xtime.Instant) (*Breakdown, error) {
	ordinal, err := FromInstant(instant)
	if err != nil {
		return nil, err
	}
	dayCount, err := FromDate(instant.Date)
	if err != nil {
		return nil, err
	}
	return &Breakdown{
		DaysBeforeYear:  daysBeforeYear(instant.Date.Year),
		DaysBeforeMonth: daysBeforeMonth(instant.Date.Year, instant.Date.Month),
		Day:             instant.Date.Day,
		DayCount:        dayCount,
		Fraction:        ordinal - float64(dayCount),
		Ordinal:         ordinal,
	}, nil
}

// isLeapYear reports whether year is a leap year under the proleptic Gregorian rule.
func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// daysBeforeYear returns the number of days in all years strictly before year.
func daysBeforeYear(year int) int {
	y := year - 1
	return 365*y + y/4 - y/100 + y/400
}

// daysBeforeMonth returns the number of days in all months of year strictly before month.
func daysBeforeMonth(year int, month time.Month) int {
	days := daysBeforeMonthTable[month]
	if month > time.February && isLeapYear(year) {
		days++
	}
	return days
}
