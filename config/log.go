// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2021 The nmcd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package config

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"gitlab.com/nmcore/nmcd/corelog"
)

// Subsystem logger units.  A single backend logger is created and all
// subsystem loggers derived from it share its writers, differing only in the
// unit tag they stamp on each event.
const (
	logUnitCNFG = "CNFG"
	logUnitCHAN = "CHAN"
)

// log is the logger for the config package itself.  It stays disabled until
// setLogLevels builds the backend so nothing is written before the log
// destination is known.
var log = corelog.Disabled

// subsystemLoggers holds one logger per subsystem; consumers fetch theirs via
// SubsystemLogger during startup wiring.
var subsystemLoggers = map[string]zerolog.Logger{}

// SubsystemLogger returns the logger for the named subsystem unit, or the
// disabled logger when the unit is unknown or logging has not been
// configured yet.
func SubsystemLogger(unit string) zerolog.Logger {
	if logger, ok := subsystemLoggers[unit]; ok {
		return logger
	}
	return corelog.Disabled
}

// setLogLevels builds the logging backend at the requested level and
// re-derives every subsystem logger from it.
func setLogLevels(logLevel string, logCfg corelog.Config) error {
	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		return errors.Wrapf(err, "invalid log level %q", logLevel)
	}

	for _, unit := range []string{logUnitCNFG, logUnitCHAN} {
		subsystemLoggers[unit] = corelog.New(unit, level, logCfg)
	}
	log = subsystemLoggers[logUnitCNFG]

	return nil
}
