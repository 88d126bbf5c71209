// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package ordctlconvert builds display rows for datetime-to-ordinal conversion output.
package ordctlconvert

import (
	"fmt"
	"io"

	"github.com/bufdev/ordctl/internal/ordctl/ordctlordinal"
	"github.com/bufdev/ordctl/internal/pkg/cliio"
	"github.com/bufdev/ordctl/internal/pkg/datetimeio"
	"github.com/bufdev/ordctl/internal/standard/xtime"
)

// Row represents a single converted datetime for display.
type Row struct {
	// Input is the datetime value as it appeared in the input.
	Input string `json:"input"`
	// DateTime is the canonical form of the parsed datetime.
	DateTime string `json:"datetime"`
	// Ordinal is the ordinal day number.
	Ordinal float64 `json:"ordinal"`
}

// Headers returns the column headers for table/CSV output.
func Headers() []string {
	return []string{"INPUT", "DATETIME", "ORDINAL"}
}

// RowToStrings converts a Row to a string slice for table/CSV output,
// formatting the ordinal with the given number of decimal places.
func RowToStrings(row *Row, precision int) []string {
	return []string{
		row.Input,
		row.DateTime,
		cliio.FormatOrdinal(row.Ordinal, precision),
	}
}

// Convert converts all records to display rows using the batch conversion,
// preserving input order.
func Convert(records []datetimeio.Record) ([]*Row, error) {
	instants := make([]xtime.Instant, len(records))
	for i, record := range records {
		instants[i] = record.Instant
	}
	ordinals, err := ordctlordinal.FromInstants(instants)
	if err != nil {
		return nil, err
	}
	rows := make([]*Row, len(records))
	for i, record := range records {
		rows[i] = &Row{
			Input:    record.Raw,
			DateTime: record.Instant.String(),
			Ordinal:  ordinals[i],
		}
	}
	return rows, nil
}

// WriteRows writes rows to the writer in the given format.
// Table and CSV output format ordinals with the given number of decimal places;
// JSON output carries the ordinal as a number.
func WriteRows(writer io.Writer, format cliio.Format, precision int, rows []*Row) error {
	switch format {
	case cliio.FormatTable:
		tableRows := make([][]string, len(rows))
		for i, row := range rows {
			tableRows[i] = RowToStrings(row, precision)
		}
		return cliio.WriteTable(writer, Headers(), tableRows)
	case cliio.FormatCSV:
		csvRecords := make([][]string, 0, len(rows)+1)
		csvRecords = append(csvRecords, Headers())
		for _, row := range rows {
			csvRecords = append(csvRecords, RowToStrings(row, precision))
		}
		return cliio.WriteCSVRecords(writer, csvRecords)
	case cliio.FormatJSON:
		return cliio.WriteJSON(writer, rows...)
	default:
		return fmt.Errorf("unknown format: %q", format)
	}
}
