// Copyright 2026 Peter Edge
//
// All rights reserved.

package datetimeio

import (
	"strings"
	"testing"

	"github.com/bufdev/ordctl/internal/standard/xtime"
	"github.com/stretchr/testify/require"
)

func TestParseFileNumericCSV(t *testing.T) {
	t.Parallel()
	records, err := ParseFile("testdata/sample.csv")
	require.NoError(t, err)
	require.Len(t, records, 3)
	require.Equal(t, "2000,2,29,12,0,0,0", records[0].Raw)
	require.Equal(t, xtime.Instant{
		Date: xtime.Date{Year: 2000, Month: 2, Day: 29},
		Hour: 12,
	}, records[0].Instant)
	require.Equal(t, xtime.Instant{
		Date:        xtime.Date{Year: 1970, Month: 1, Day: 1},
		Hour:        6,
		Minute:      30,
		Second:      15,
		Microsecond: 500000,
	}, records[1].Instant)
	require.Equal(t, xtime.Instant{
		Date: xtime.Date{Year: 1, Month: 1, Day: 1},
	}, records[2].Instant)
}

func TestParseFileLines(t *testing.T) {
	t.Parallel()
	records, err := ParseFile("testdata/datetimes.txt")
	require.NoError(t, err)
	require.Len(t, records, 3)
	require.Equal(t, "2014-07-29T12:30:45.500000", records[0].Raw)
	require.Equal(t, xtime.Instant{
		Date:        xtime.Date{Year: 2014, Month: 7, Day: 29},
		Hour:        12,
		Minute:      30,
		Second:      45,
		Microsecond: 500000,
	}, records[0].Instant)
	require.Equal(t, xtime.Instant{Date: xtime.Date{Year: 2016, Month: 1, Day: 2}}, records[2].Instant)
}

func TestReadShortNumericHeader(t *testing.T) {
	t.Parallel()
	// Missing time columns default to zero.
	records, err := Read(strings.NewReader("year,month,day\n2024,1,1\n"))
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, xtime.Instant{Date: xtime.Date{Year: 2024, Month: 1, Day: 1}}, records[0].Instant)
}

func TestReadDatetimeHeader(t *testing.T) {
	t.Parallel()
	records, err := Read(strings.NewReader("datetime\n2024-01-01\n2024-01-02T06:00:00\n"))
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, "2024-01-01", records[0].Raw)
	require.Equal(t, xtime.Instant{Date: xtime.Date{Year: 2024, Month: 1, Day: 2}, Hour: 6}, records[1].Instant)
}

func TestReadExtraLayouts(t *testing.T) {
	t.Parallel()
	records, err := Read(strings.NewReader("07/29/2014\n"), "01/02/2006")
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, xtime.Instant{Date: xtime.Date{Year: 2014, Month: 7, Day: 29}}, records[0].Instant)
}

func TestReadEmpty(t *testing.T) {
	t.Parallel()
	records, err := Read(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestReadErrors(t *testing.T) {
	t.Parallel()
	// Unparseable line, with its line number.
	_, err := Read(strings.NewReader("2024-01-01\nnot-a-datetime\n"))
	require.ErrorIs(t, err, xtime.ErrNotADateTime)
	require.ErrorContains(t, err, "line 2")

	// Non-integer numeric column, with its line number.
	_, err = Read(strings.NewReader("year,month,day\n2024,xx,1\n"))
	require.ErrorIs(t, err, xtime.ErrNotADateTime)
	require.ErrorContains(t, err, "line 2")

	// Unrecognized CSV header.
	_, err = Read(strings.NewReader("foo,bar\n1,2\n"))
	require.ErrorIs(t, err, xtime.ErrNotADateTime)
	require.ErrorContains(t, err, "unrecognized CSV header")
}
