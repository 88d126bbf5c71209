// Copyright 2026 Peter Edge
//
// All rights reserved.

package main

import (
	"context"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/ordctl/cmd/ordctl/internal/command/config"
	"github.com/bufdev/ordctl/cmd/ordctl/internal/command/convert"
	"github.com/bufdev/ordctl/cmd/ordctl/internal/command/debug"
	"github.com/bufdev/ordctl/cmd/ordctl/internal/command/seq"
)

func main() {
	appcmd.Main(context.Background(), newRootCommand("ordctl"))
}

// newRootCommand creates the root ordctl command with all sub-commands.
func newRootCommand(name string) *appcmd.Command {
	builder := appext.NewBuilder(name)
	return &appcmd.Command{
		Use:                 name,
		Short:               "Convert datetimes to proleptic Gregorian ordinal day numbers",
		BindPersistentFlags: builder.BindRoot,
		SubCommands: []*appcmd.Command{
			convert.NewCommand("convert", builder),
			seq.NewCommand("seq", builder),
			config.NewCommand("config", builder),
			debug.NewCommand("debug", builder),
		},
	}
}
