// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package convert implements the "convert" command.
package convert

import (
	"context"
	"os"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/ordctl/cmd/ordctl/internal/ordctlcmd"
	"github.com/bufdev/ordctl/internal/ordctl/ordctlconvert"
	"github.com/bufdev/ordctl/internal/pkg/datetimeio"
	"github.com/bufdev/ordctl/internal/standard/xos"
	"github.com/bufdev/ordctl/internal/standard/xtime"
	"github.com/spf13/pflag"
)

const (
	// inputFlagName is the flag name for the input file path.
	inputFlagName = "input"
	// formatFlagName is the flag name for the output format.
	formatFlagName = "format"
	// precisionFlagName is the flag name for the ordinal decimal places.
	precisionFlagName = "precision"
)

// NewCommand returns a new convert command.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name + " [datetimes ...]",
		Short: "Convert datetimes to ordinal day numbers",
		Long: `Convert datetimes to ordinal day numbers.

An ordinal day number is a float64 whose integer part counts days since
0001-01-01 (day 1) in the proleptic Gregorian calendar and whose fractional
part encodes the time of day.

Datetimes are given as positional arguments, or read from a file with --input
(use "-" for stdin). Input files are either line-oriented (one datetime per
line, optionally under a "datetime" header) or CSV with a
"year,month,day[,hour,minute,second,microsecond]" header.`,
		Run: builder.NewRunFunc(
			func(ctx context.Context, container appext.Container) error {
				return run(ctx, container, flags)
			},
		),
		BindFlags: flags.Bind,
	}
}

type flags struct {
	// Input is the input file path ("-" for stdin).
	Input string
	// Format is the output format (table, csv, json).
	Format string
	// Precision is the number of ordinal decimal places in table and CSV output.
	Precision int
}

func newFlags() *flags {
	return &flags{}
}

// Bind registers the flag definitions with the given flag set.
func (f *flags) Bind(flagSet *pflag.FlagSet) {
	flagSet.StringVar(
		&f.Input,
		inputFlagName,
		"",
		`Input file with datetimes to convert ("-" for stdin)`,
	)
	flagSet.StringVar(
		&f.Format,
		formatFlagName,
		"",
		"Output format (table, csv, json)",
	)
	flagSet.IntVar(
		&f.Precision,
		precisionFlagName,
		ordctlcmd.UseConfigPrecision,
		"Ordinal decimal places in table and CSV output (0-17)",
	)
}

func run(_ context.Context, container appext.Container, flags *flags) error {
	// Read the optional configuration file for layouts and output defaults.
	config, err := ordctlcmd.ReadConfig(container)
	if err != nil {
		return err
	}
	format, err := ordctlcmd.ResolveFormat(config, flags.Format)
	if err != nil {
		return appcmd.NewInvalidArgumentError(err.Error())
	}
	precision, err := ordctlcmd.ResolvePrecision(config, flags.Precision)
	if err != nil {
		return appcmd.NewInvalidArgumentError(err.Error())
	}
	// Gather input records from the file or the positional arguments.
	records, err := getRecords(container, flags, config.Layouts)
	if err != nil {
		return err
	}
	rows, err := ordctlconvert.Convert(records)
	if err != nil {
		return err
	}
	container.Logger().Debug("converted datetimes", "count", len(rows))
	// Write output in the requested format.
	return ordctlconvert.WriteRows(os.Stdout, format, precision, rows)
}

func getRecords(container appext.Container, flags *flags, layouts []string) ([]datetimeio.Record, error) {
	if flags.Input != "" {
		if container.NumArgs() > 0 {
			return nil, appcmd.NewInvalidArgumentErrorf("cannot give positional datetimes together with --%s", inputFlagName)
		}
		if flags.Input == "-" {
			return datetimeio.Read(container.Stdin(), layouts...)
		}
		inputPath, err := xos.ExpandHome(flags.Input)
		if err != nil {
			return nil, err
		}
		return datetimeio.ParseFile(inputPath, layouts...)
	}
	if container.NumArgs() == 0 {
		return nil, appcmd.NewInvalidArgumentErrorf("at least one datetime argument or --%s is required", inputFlagName)
	}
	records := make([]datetimeio.Record, 0, container.NumArgs())
	for i := 0; i < container.NumArgs(); i++ {
		arg := container.Arg(i)
		instant, err := xtime.ParseInstant(arg, layouts...)
		if err != nil {
			return nil, appcmd.NewInvalidArgumentError(err.Error())
		}
		records = append(records, datetimeio.Record{Raw: arg, Instant: instant})
	}
	return records, nil
}
