// Copyright 2026 Peter Edge
//
// All rights reserved.

package xtime

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestParseInstant(t *testing.T) {
	t.Parallel()
	for _, test := range []struct {
		str  string
		want Instant // if zero, expect an error
	}{
		{"2014-07-29T12:30:45.500000", Instant{Date{2014, 7, 29}, 12, 30, 45, 500000}},
		{"2014-07-29T12:30:45", Instant{Date{2014, 7, 29}, 12, 30, 45, 0}},
		{"2014-07-29 12:30:45", Instant{Date{2014, 7, 29}, 12, 30, 45, 0}},
		{"2014-07-29T12:30", Instant{Date{2014, 7, 29}, 12, 30, 0, 0}},
		{"2014-07-29", Instant{Date{2014, 7, 29}, 0, 0, 0, 0}},
		{"0001-01-01", Instant{Date{1, 1, 1}, 0, 0, 0, 0}},
		{"1900-02-29", Instant{}},
		{"2014-13-01", Instant{}},
		{"not-a-datetime", Instant{}},
		{"", Instant{}},
	} {
		got, err := ParseInstant(test.str)
		if got != test.want {
			t.Errorf("ParseInstant(%q) = %+v, want %+v", test.str, got, test.want)
		}
		if test.want == (Instant{}) {
			if !errors.Is(err, ErrNotADateTime) {
				t.Errorf("ParseInstant(%q): got error %v, want ErrNotADateTime", test.str, err)
			}
		} else if err != nil {
			t.Errorf("Unexpected error %v from ParseInstant(%q)", err, test.str)
		}
	}
}

func TestParseInstantExtraLayouts(t *testing.T) {
	t.Parallel()
	got, err := ParseInstant("07/29/2014 12:30", "01/02/2006 15:04")
	if err != nil {
		t.Fatal(err)
	}
	if want := (Instant{Date{2014, 7, 29}, 12, 30, 0, 0}); got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestInstantString(t *testing.T) {
	t.Parallel()
	for _, test := range []struct {
		instant Instant
		want    string
	}{
		{Instant{Date{2014, 7, 29}, 12, 30, 45, 500000}, "2014-07-29T12:30:45.500000"},
		{Instant{Date{1, 1, 1}, 0, 0, 0, 0}, "0001-01-01T00:00:00.000000"},
		{Instant{Date{1, 1, 1}, 0, 0, 0, 1}, "0001-01-01T00:00:00.000001"},
	} {
		if got := test.instant.String(); got != test.want {
			t.Errorf("%#v.String() = %q, want %q", test.instant, got, test.want)
		}
	}
}

func TestInstantValidate(t *testing.T) {
	t.Parallel()
	for _, test := range []struct {
		instant Instant
		want    bool
	}{
		{Instant{Date{2014, 7, 29}, 0, 0, 0, 0}, true},
		{Instant{Date{2000, 2, 29}, 23, 59, 59, 999999}, true},
		{Instant{Date{1900, 2, 29}, 0, 0, 0, 0}, false},
		{Instant{Date{2014, 4, 31}, 0, 0, 0, 0}, false},
		{Instant{Date{2014, 13, 1}, 0, 0, 0, 0}, false},
		{Instant{Date{2014, 7, 29}, 24, 0, 0, 0}, false},
		{Instant{Date{2014, 7, 29}, 0, 60, 0, 0}, false},
		{Instant{Date{2014, 7, 29}, 0, 0, 60, 0}, false},
		{Instant{Date{2014, 7, 29}, 0, 0, 0, 1000000}, false},
		{Instant{Date{2014, 7, 29}, -1, 0, 0, 0}, false},
	} {
		if got := test.instant.IsValid(); got != test.want {
			t.Errorf("%#v.IsValid() = %t, want %t", test.instant, got, test.want)
		}
		err := test.instant.Validate()
		if test.want && err != nil {
			t.Errorf("%#v.Validate() = %v, want nil", test.instant, err)
		}
		if !test.want && !errors.Is(err, ErrInvalidFields) {
			t.Errorf("%#v.Validate() = %v, want ErrInvalidFields", test.instant, err)
		}
	}
}

func TestInstantCompare(t *testing.T) {
	t.Parallel()
	for _, test := range []struct {
		i1, i2 Instant
		want   int
	}{
		{Instant{Date{2016, 12, 31}, 0, 0, 0, 0}, Instant{Date{2017, 1, 1}, 0, 0, 0, 0}, -1},
		{Instant{Date{2016, 1, 1}, 12, 0, 0, 0}, Instant{Date{2016, 1, 1}, 12, 0, 0, 0}, 0},
		{Instant{Date{2016, 1, 1}, 12, 0, 0, 1}, Instant{Date{2016, 1, 1}, 12, 0, 0, 0}, +1},
		{Instant{Date{2016, 1, 1}, 0, 59, 0, 0}, Instant{Date{2016, 1, 1}, 1, 0, 0, 0}, -1},
		{Instant{Date{2016, 1, 1}, 0, 0, 59, 0}, Instant{Date{2016, 1, 1}, 0, 1, 0, 0}, -1},
	} {
		if got := test.i1.Compare(test.i2); got != test.want {
			t.Errorf("%v.Compare(%v): got %d, want %d", test.i1, test.i2, got, test.want)
		}
		if got, want := test.i1.Before(test.i2), test.want < 0; got != want {
			t.Errorf("%v.Before(%v): got %t, want %t", test.i1, test.i2, got, want)
		}
		if got, want := test.i1.After(test.i2), test.want > 0; got != want {
			t.Errorf("%v.After(%v): got %t, want %t", test.i1, test.i2, got, want)
		}
	}
}

func TestInstantIn(t *testing.T) {
	t.Parallel()
	instant := Instant{Date{2014, 7, 29}, 12, 30, 45, 500000}
	want := time.Date(2014, time.July, 29, 12, 30, 45, 500000000, time.UTC)
	if got := instant.In(time.UTC); !got.Equal(want) {
		t.Errorf("%v.In(UTC) = %v, want %v", instant, got, want)
	}
	if got := TimeToInstant(want); got != instant {
		t.Errorf("TimeToInstant(%v) = %+v, want %+v", want, got, instant)
	}
}

func TestInstantJSON(t *testing.T) {
	t.Parallel()
	instant := Instant{Date{1987, 4, 15}, 6, 30, 0, 250000}
	data, err := json.Marshal(instant)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(data), `"1987-04-15T06:30:00.250000"`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
	var got Instant
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if got != instant {
		t.Errorf("round trip: got %+v, want %+v", got, instant)
	}
	for _, bad := range []string{"", `""`, `"bad"`, `"1987-04-15x"`, `19870415`} {
		if json.Unmarshal([]byte(bad), &got) == nil {
			t.Errorf("%q: got nil, want error", bad)
		}
	}
}
