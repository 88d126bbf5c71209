// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package ordctlcmd provides shared wiring for ordctl commands
// (configuration loading and output option resolution).
package ordctlcmd

import (
	"fmt"

	"buf.build/go/app/appext"
	"github.com/bufdev/ordctl/internal/ordctl/ordctlconfig"
	"github.com/bufdev/ordctl/internal/pkg/cliio"
)

// UseConfigPrecision is the precision flag default that defers to the configuration.
const UseConfigPrecision = -1

// ReadConfig reads the optional configuration file from the appext container's
// config directory, falling back to built-in defaults when it is absent.
func ReadConfig(container appext.Container) (*ordctlconfig.Config, error) {
	return ordctlconfig.ReadConfigIfPresent(container.ConfigDirPath())
}

// ResolveFormat resolves the output format from the --format flag value and the
// configured default. An empty flag value defers to the configuration.
func ResolveFormat(config *ordctlconfig.Config, formatFlag string) (cliio.Format, error) {
	if formatFlag == "" {
		return config.Format, nil
	}
	return cliio.ParseFormat(formatFlag)
}

// ResolvePrecision resolves the ordinal decimal places from the --precision flag
// value and the configured default. UseConfigPrecision defers to the configuration.
func ResolvePrecision(config *ordctlconfig.Config, precisionFlag int) (int, error) {
	if precisionFlag == UseConfigPrecision {
		return config.Precision, nil
	}
	if precisionFlag < 0 || precisionFlag > 17 {
		return 0, fmt.Errorf("precision %d out of range [0,17]", precisionFlag)
	}
	return precisionFlag, nil
}
