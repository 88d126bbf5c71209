// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package debug implements the "debug" command group.
package debug

import (
	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/ordctl/cmd/ordctl/internal/command/debug/debugordinal"
)

// NewCommand returns a new debug command group.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	return &appcmd.Command{
		Use:   name,
		Short: "Debug conversion internals",
		SubCommands: []*appcmd.Command{
			debugordinal.NewCommand("ordinal", builder),
		},
	}
}
