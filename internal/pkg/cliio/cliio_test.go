// Copyright 2026 Peter Edge
//
// All rights reserved.

package cliio

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()
	for _, test := range []struct {
		str  string
		want Format
	}{
		{"table", FormatTable},
		{"TABLE", FormatTable},
		{"csv", FormatCSV},
		{"json", FormatJSON},
	} {
		format, err := ParseFormat(test.str)
		require.NoError(t, err)
		require.Equal(t, test.want, format)
	}
	_, err := ParseFormat("xml")
	require.Error(t, err)
}

func TestFormatOrdinal(t *testing.T) {
	t.Parallel()
	for _, test := range []struct {
		ordinal   float64
		precision int
		want      string
	}{
		{1, 6, "1.000000"},
		{1.5, 6, "1.500000"},
		{730179.5, 2, "730179.50"},
		{719163.25, 0, "719163"},
	} {
		require.Equal(t, test.want, FormatOrdinal(test.ordinal, test.precision))
	}
}
