// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package datetimeio reads datetime records from input files for batch conversion.
//
// Two shapes of input are supported. CSV files carry a header row that is either
// the single column "datetime", or the numeric columns "year,month,day" optionally
// extended with "hour,minute,second,microsecond". Files whose first line contains
// no comma are treated as line-oriented, one datetime string per line, with blank
// lines ignored.
//
// Records that cannot be read as a date/time fail with an error matching
// xtime.ErrNotADateTime, wrapped with the offending line number.
package datetimeio

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/bufdev/ordctl/internal/standard/xtime"
)

// numericColumns is the full numeric header, in order. A numeric header may
// stop after any column from "day" onward; missing time columns default to zero.
var numericColumns = []string{"year", "month", "day", "hour", "minute", "second", "microsecond"}

// Record is a single datetime value read from an input source.
type Record struct {
	// Raw is the value as it appeared in the input.
	Raw string
	// Instant is the parsed datetime.
	Instant xtime.Instant
}

// ParseFile reads all datetime records from the file at filePath.
// The extraLayouts are tried by datetime string parsing before the built-in layouts.
func ParseFile(filePath string, extraLayouts ...string) (_ []Record, retErr error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := file.Close(); err != nil && retErr == nil {
			retErr = err
		}
	}()
	records, err := Read(file, extraLayouts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	return records, nil
}

// Read reads all datetime records from the reader.
func Read(reader io.Reader, extraLayouts ...string) ([]Record, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	firstLine, rest, _ := bytes.Cut(data, []byte("\n"))
	if bytes.ContainsRune(firstLine, ',') {
		return readCSV(bytes.NewReader(data), extraLayouts)
	}
	// A single "datetime" column header marks the remainder as line-oriented data.
	if strings.EqualFold(strings.TrimSpace(string(firstLine)), "datetime") {
		return readLines(rest, 1, extraLayouts)
	}
	return readLines(data, 0, extraLayouts)
}

// readCSV reads a CSV input with either a "datetime" column header or numeric
// year/month/day[/hour/minute/second/microsecond] column headers.
func readCSV(reader io.Reader, extraLayouts []string) ([]Record, error) {
	csvReader := csv.NewReader(reader)
	rows, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", xtime.ErrNotADateTime, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	header := make([]string, len(rows[0]))
	for i, column := range rows[0] {
		header[i] = strings.ToLower(strings.TrimSpace(column))
	}
	if !isNumericHeader(header) {
		return nil, fmt.Errorf("%w: unrecognized CSV header %q, expected \"datetime\" or \"year,month,day[,hour,minute,second,microsecond]\"", xtime.ErrNotADateTime, strings.Join(rows[0], ","))
	}
	records := make([]Record, 0, len(rows)-1)
	for rowIndex, row := range rows[1:] {
		// The header is line 1; data rows start at line 2.
		line := rowIndex + 2
		record, err := numericRowToRecord(row, line)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// isNumericHeader reports whether the header is a prefix of the numeric columns
// covering at least year, month, and day.
func isNumericHeader(header []string) bool {
	if len(header) < 3 || len(header) > len(numericColumns) {
		return false
	}
	for i, column := range header {
		if column != numericColumns[i] {
			return false
		}
	}
	return true
}

// numericRowToRecord converts a numeric CSV row to a Record.
// Missing trailing time columns default to zero.
func numericRowToRecord(row []string, line int) (Record, error) {
	fields := make([]int, len(numericColumns))
	for i, field := range row {
		value, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return Record{}, fmt.Errorf("line %d: %w: column %s: %q is not an integer", line, xtime.ErrNotADateTime, numericColumns[i], field)
		}
		fields[i] = value
	}
	return Record{
		Raw: strings.Join(row, ","),
		Instant: xtime.Instant{
			Date: xtime.Date{
				Year:  fields[0],
				Month: time.Month(fields[1]),
				Day:   fields[2],
			},
			Hour:        fields[3],
			Minute:      fields[4],
			Second:      fields[5],
			Microsecond: fields[6],
		},
	}, nil
}

// readLines reads a line-oriented input, one datetime string per line.
// lineOffset is the number of input lines consumed before data (the header, if any).
func readLines(data []byte, lineOffset int, extraLayouts []string) ([]Record, error) {
	var records []Record
	for lineIndex, lineData := range bytes.Split(data, []byte("\n")) {
		raw := strings.TrimSpace(string(lineData))
		if raw == "" {
			continue
		}
		instant, err := xtime.ParseInstant(raw, extraLayouts...)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineOffset+lineIndex+1, err)
		}
		records = append(records, Record{Raw: raw, Instant: instant})
	}
	return records, nil
}
