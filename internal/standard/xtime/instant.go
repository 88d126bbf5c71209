// Copyright 2026 Peter Edge
//
// All rights reserved.

package xtime

import (
	"errors"
	"fmt"
	"time"
)

// ErrNotADateTime indicates a value that is not recognizable as a calendar date/time.
var ErrNotADateTime = errors.New("not a recognizable calendar date/time")

// ErrInvalidFields indicates a structurally well-formed value whose fields do not
// form a real calendar date/time (e.g., February 29 in a non-leap year).
var ErrInvalidFields = errors.New("invalid calendar date/time fields")

// instantLayouts are the built-in layouts tried by ParseInstant, in order.
// The fractional second is optional in every layout that carries one.
var instantLayouts = []string{
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04:05.999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Instant represents a civil date with a time of day at microsecond resolution.
//
// Like Date, an Instant carries no location information and does not describe
// a unique point in absolute time.
type Instant struct {
	// Date is the calendar date.
	Date Date
	// Hour is the hour of the day (0-23).
	Hour int
	// Minute is the minute of the hour (0-59).
	Minute int
	// Second is the second of the minute (0-59).
	Second int
	// Microsecond is the microsecond of the second (0-999999).
	Microsecond int
}

// TimeToInstant returns the Instant at which a time occurs in that time's location.
// Sub-microsecond precision is truncated.
func TimeToInstant(t time.Time) Instant {
	return Instant{
		Date:        TimeToDate(t),
		Hour:        t.Hour(),
		Minute:      t.Minute(),
		Second:      t.Second(),
		Microsecond: t.Nanosecond() / 1000,
	}
}

// ParseInstant parses a datetime string into an Instant.
//
// The extraLayouts are Go time layouts tried before the built-in layouts,
// so callers can support additional input formats. The built-in layouts accept
// RFC 3339 date-time without a zone offset (with optional fractional seconds),
// the same with a space separating date and time, date-time without seconds,
// and a bare RFC 3339 full-date (parsed as midnight).
//
// A string that matches none of the layouts fails with an error matching
// ErrNotADateTime.
func ParseInstant(s string, extraLayouts ...string) (Instant, error) {
	for _, layout := range extraLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return TimeToInstant(t), nil
		}
	}
	for _, layout := range instantLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return TimeToInstant(t), nil
		}
	}
	return Instant{}, fmt.Errorf("%w: %q", ErrNotADateTime, s)
}

// String returns the canonical form of the instant: the RFC 3339 full-date,
// a "T" separator, and the time of day with six fractional-second digits.
func (i Instant) String() string {
	return fmt.Sprintf("%sT%02d:%02d:%02d.%06d", i.Date, i.Hour, i.Minute, i.Second, i.Microsecond)
}

// IsValid reports whether the instant is a real calendar date/time.
func (i Instant) IsValid() bool {
	return i.Validate() == nil
}

// Validate returns an error matching ErrInvalidFields if the instant is not
// a real calendar date/time, and nil otherwise.
func (i Instant) Validate() error {
	if !i.Date.IsValid() {
		return fmt.Errorf("%w: %s is not a real calendar date", ErrInvalidFields, i.Date)
	}
	if i.Hour < 0 || i.Hour > 23 {
		return fmt.Errorf("%w: hour %d out of range [0,23]", ErrInvalidFields, i.Hour)
	}
	if i.Minute < 0 || i.Minute > 59 {
		return fmt.Errorf("%w: minute %d out of range [0,59]", ErrInvalidFields, i.Minute)
	}
	if i.Second < 0 || i.Second > 59 {
		return fmt.Errorf("%w: second %d out of range [0,59]", ErrInvalidFields, i.Second)
	}
	if i.Microsecond < 0 || i.Microsecond > 999999 {
		return fmt.Errorf("%w: microsecond %d out of range [0,999999]", ErrInvalidFields, i.Microsecond)
	}
	return nil
}

// In returns the time corresponding to the instant in the location.
func (i Instant) In(loc *time.Location) time.Time {
	return time.Date(i.Date.Year, i.Date.Month, i.Date.Day, i.Hour, i.Minute, i.Second, i.Microsecond*1000, loc)
}

// Before reports whether i occurs before i2 in calendar order.
func (i Instant) Before(i2 Instant) bool {
	return i.Compare(i2) < 0
}

// After reports whether i occurs after i2 in calendar order.
func (i Instant) After(i2 Instant) bool {
	return i.Compare(i2) > 0
}

// Compare compares i and i2 in calendar order. If i is before i2, it returns -1;
// if i is after i2, it returns +1; otherwise it returns 0.
func (i Instant) Compare(i2 Instant) int {
	if c := i.Date.Compare(i2.Date); c != 0 {
		return c
	}
	for _, pair := range [][2]int{
		{i.Hour, i2.Hour},
		{i.Minute, i2.Minute},
		{i.Second, i2.Second},
		{i.Microsecond, i2.Microsecond},
	} {
		if pair[0] < pair[1] {
			return -1
		}
		if pair[0] > pair[1] {
			return +1
		}
	}
	return 0
}

// IsZero reports whether all instant fields are set to their default value.
func (i Instant) IsZero() bool {
	return i.Date.IsZero() && i.Hour == 0 && i.Minute == 0 && i.Second == 0 && i.Microsecond == 0
}

// MarshalText implements the encoding.TextMarshaler interface.
// The output is the result of i.String().
func (i Instant) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
// The instant is expected to be a string in a format accepted by ParseInstant.
func (i *Instant) UnmarshalText(data []byte) error {
	var err error
	*i, err = ParseInstant(string(data))
	return err
}
