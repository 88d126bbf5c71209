// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package debugordinal implements the "debug ordinal" command for inspecting a single conversion.
package debugordinal

import (
	"context"
	"fmt"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/ordctl/cmd/ordctl/internal/ordctlcmd"
	"github.com/bufdev/ordctl/internal/ordctl/ordctlordinal"
	"github.com/bufdev/ordctl/internal/pkg/cliio"
	"github.com/bufdev/ordctl/internal/standard/xtime"
)

// NewCommand returns a new debug ordinal command that prints the terms of a conversion.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	return &appcmd.Command{
		Use:   name + " <datetime>",
		Short: "Print the terms of a datetime-to-ordinal conversion",
		Long: `Print the terms of a datetime-to-ordinal conversion.

Shows the day count before the year, the day count before the month within
the year, the day of the month, the resulting total day count, and the
time-of-day fraction that together form the ordinal.`,
		Args: appcmd.ExactArgs(1),
		Run: builder.NewRunFunc(
			func(ctx context.Context, container appext.Container) error {
				return run(ctx, container)
			},
		),
	}
}

func run(_ context.Context, container appext.Container) error {
	config, err := ordctlcmd.ReadConfig(container)
	if err != nil {
		return err
	}
	instant, err := xtime.ParseInstant(container.Arg(0), config.Layouts...)
	if err != nil {
		return appcmd.NewInvalidArgumentError(err.Error())
	}
	breakdown, err := ordctlordinal.Explain(instant)
	if err != nil {
		return err
	}
	// Print the terms to stdout.
	_, err = fmt.Fprintf(
		container.Stdout(),
		"datetime: %s\ndays_before_year: %d\ndays_before_month: %d\nday: %d\nday_count: %d\nfraction: %s\nordinal: %s\n",
		instant,
		breakdown.DaysBeforeYear,
		breakdown.DaysBeforeMonth,
		breakdown.Day,
		breakdown.DayCount,
		cliio.FormatOrdinal(breakdown.Fraction, config.Precision),
		cliio.FormatOrdinal(breakdown.Ordinal, config.Precision),
	)
	return err
}
