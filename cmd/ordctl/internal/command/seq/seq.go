// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package seq implements the "seq" command.
package seq

import (
	"context"
	"os"
	"time"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/ordctl/cmd/ordctl/internal/ordctlcmd"
	"github.com/bufdev/ordctl/internal/ordctl/ordctlconvert"
	"github.com/bufdev/ordctl/internal/pkg/datetimeio"
	"github.com/bufdev/ordctl/internal/standard/xtime"
	"github.com/spf13/pflag"
)

const (
	// fromFlagName is the flag name for the first datetime of the series.
	fromFlagName = "from"
	// toFlagName is the flag name for the last datetime of the series.
	toFlagName = "to"
	// stepFlagName is the flag name for the step between datetimes.
	stepFlagName = "step"
	// formatFlagName is the flag name for the output format.
	formatFlagName = "format"
	// precisionFlagName is the flag name for the ordinal decimal places.
	precisionFlagName = "precision"
)

// maxSteps bounds the series length so a bad --step cannot produce unbounded output.
const maxSteps = 1_000_000

// NewCommand returns a new seq command.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name,
		Short: "Emit the ordinal series for a datetime range",
		Long: `Emit the ordinal series for a datetime range.

Walks from --from to --to inclusive at --step (default 24h) and prints each
datetime with its ordinal day number.`,
		Args: appcmd.NoArgs,
		Run: builder.NewRunFunc(
			func(ctx context.Context, container appext.Container) error {
				return run(ctx, container, flags)
			},
		),
		BindFlags: flags.Bind,
	}
}

type flags struct {
	// From is the first datetime of the series.
	From string
	// To is the last datetime of the series.
	To string
	// Step is the step between datetimes.
	Step time.Duration
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
		&f.From,
		fromFlagName,
		"",
		"First datetime of the series (required)",
	)
	flagSet.StringVar(
		&f.To,
		toFlagName,
		"",
		"Last datetime of the series (required)",
	)
	flagSet.DurationVar(
		&f.Step,
		stepFlagName,
		24*time.Hour,
		"Step between datetimes",
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
	if flags.From == "" || flags.To == "" {
		return appcmd.NewInvalidArgumentErrorf("--%s and --%s are both required", fromFlagName, toFlagName)
	}
	if flags.Step <= 0 {
		return appcmd.NewInvalidArgumentErrorf("--%s must be positive, got %v", stepFlagName, flags.Step)
	}
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
	fromInstant, err := xtime.ParseInstant(flags.From, config.Layouts...)
	if err != nil {
		return appcmd.NewInvalidArgumentErrorf("invalid --%s: %v", fromFlagName, err)
	}
	toInstant, err := xtime.ParseInstant(flags.To, config.Layouts...)
	if err != nil {
		return appcmd.NewInvalidArgumentErrorf("invalid --%s: %v", toFlagName, err)
	}
	if fromInstant.After(toInstant) {
		return appcmd.NewInvalidArgumentErrorf("--%s %s is after --%s %s", fromFlagName, fromInstant, toFlagName, toInstant)
	}
	// Walk the range in UTC; instants carry no location, so any fixed location works.
	endTime := toInstant.In(time.UTC)
	records := make([]datetimeio.Record, 0)
	for t := fromInstant.In(time.UTC); !t.After(endTime); t = t.Add(flags.Step) {
		if len(records) == maxSteps {
			return appcmd.NewInvalidArgumentErrorf("series would exceed %d elements, use a larger --%s", maxSteps, stepFlagName)
		}
		instant := xtime.TimeToInstant(t)
		records = append(records, datetimeio.Record{Raw: instant.String(), Instant: instant})
	}
	rows, err := ordctlconvert.Convert(records)
	if err != nil {
		return err
	}
	container.Logger().Debug("generated series", "count", len(rows))
	return ordctlconvert.WriteRows(os.Stdout, format, precision, rows)
}
