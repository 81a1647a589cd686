// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2021 The nmcd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"gitlab.com/nmcore/nmcd/corelog"
	"gitlab.com/nmcore/nmcd/types/chaincfg"
)

const (
	defaultConfigFilename = "nmcd.yaml"
	defaultDataDirname    = "data"
	defaultLogDirname     = "logs"
	defaultLogLevel       = "info"
)

// Config defines the startup configuration of the node.  Only the pieces the
// consensus parameter layer needs are defined here: which network to run, and
// how to log.
type Config struct {
	ConfigFile string `yaml:"-" short:"C" long:"configfile" description:"Path to configuration file"`
	DataDir    string `yaml:"data_dir" short:"b" long:"datadir" description:"Directory to store data"`
	LogDir     string `yaml:"log_dir" long:"logdir" description:"Directory to log output"`
	DebugLevel string `yaml:"debug_level" short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, fatal}"`

	TestNet3       bool `yaml:"testnet" long:"testnet" description:"Use the test network"`
	RegressionTest bool `yaml:"regtest" long:"regtest" description:"Use the regression test network"`

	LogConfig corelog.Config `yaml:"log_config" no-flag:"true"`
}

// validLogLevel returns whether or not logLevel is a valid debug log level.
func validLogLevel(logLevel string) bool {
	switch logLevel {
	case "trace", "debug", "info", "warn", "error", "fatal":
		return true
	}
	return false
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	if strings.HasPrefix(path, "~") {
		if homeDir, err := os.UserHomeDir(); err == nil {
			path = strings.Replace(path, "~", homeDir, 1)
		}
	}

	// NOTE: os.ExpandEnv doesn't work with Windows-style %VARIABLE%, but
	// the variables can still be expanded via POSIX-style $VARIABLE.
	return filepath.Clean(os.ExpandEnv(path))
}

// LoadConfig initializes and parses the config using a config file and
// command line options.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Pre-parse the command line to check for an alternative config file
//  3. Load configuration file overwriting defaults with any specified options
//  4. Parse CLI options and overwrite/add any specified options
//
// A configuration error is fatal to startup: the node must never run with a
// half-valid network definition, so no partially-loaded Config is returned.
// LoadConfig also assigns ActiveNetParams, which is the single construction
// point of the per-process parameter record.
func LoadConfig(args []string) (*Config, error) {
	cfg := Config{
		DataDir:    defaultDataDirname,
		DebugLevel: defaultLogLevel,
		LogConfig:  corelog.Config{}.Default(),
	}

	// Pre-parse the command line options to see if an alternative config
	// file was specified.
	preCfg := cfg
	preParser := flags.NewParser(&preCfg, flags.HelpFlag|flags.IgnoreUnknown)
	if _, err := preParser.ParseArgs(args); err != nil {
		return nil, errors.Wrap(err, "unable to pre-parse arguments")
	}

	configFile := preCfg.ConfigFile
	if configFile == "" {
		configFile = defaultConfigFilename
	}

	// Load additional config from file when it exists.  A missing default
	// config file is not an error; an unreadable or unparsable one is.
	if rawCfg, err := os.ReadFile(configFile); err == nil {
		if err := yaml.Unmarshal(rawCfg, &cfg); err != nil {
			return nil, errors.Wrapf(err, "failed to parse config file %s", configFile)
		}
	} else if !os.IsNotExist(err) || preCfg.ConfigFile != "" {
		return nil, errors.Wrapf(err, "failed to read config file %s", configFile)
	}

	// Parse command line options again to ensure they take precedence.
	parser := flags.NewParser(&cfg, flags.HelpFlag|flags.IgnoreUnknown)
	if _, err := parser.ParseArgs(args); err != nil {
		return nil, errors.Wrap(err, "unable to parse arguments")
	}

	// Multiple networks can't be selected simultaneously.
	numNets := 0
	ActiveNetParams = &chaincfg.MainNetParams
	if cfg.TestNet3 {
		numNets++
		ActiveNetParams = &chaincfg.TestNet3Params
	}
	if cfg.RegressionTest {
		numNets++
		ActiveNetParams = &chaincfg.RegressionNetParams
	}
	if numNets > 1 {
		return nil, errors.New("loadConfig: the testnet and regtest params " +
			"can't be used together -- choose one of the two")
	}

	if !validLogLevel(cfg.DebugLevel) {
		return nil, errors.Errorf("loadConfig: the specified debug level "+
			"[%v] is invalid", cfg.DebugLevel)
	}

	// Append the network type to the data and log directories so they are
	// "namespaced" per network.  All data is specific to a network, so
	// namespacing the directories means each individual piece of
	// serialized data does not have to worry about changing names per
	// network and such.
	cfg.DataDir = filepath.Join(cleanAndExpandPath(cfg.DataDir), netName(ActiveNetParams))
	if cfg.LogDir == "" {
		// The data directory already carries the network suffix.
		cfg.LogDir = filepath.Join(cfg.DataDir, defaultLogDirname)
	} else {
		cfg.LogDir = filepath.Join(cleanAndExpandPath(cfg.LogDir), netName(ActiveNetParams))
	}

	cfg.LogConfig.Directory = cfg.LogDir
	cfg.LogConfig.Filename = corelog.DefaultLogFile
	if err := setLogLevels(cfg.DebugLevel, cfg.LogConfig); err != nil {
		return nil, errors.Wrap(err, "loadConfig: unable to configure logging")
	}

	log.Info().
		Str("network", netName(ActiveNetParams)).
		Str("magic", ActiveNetParams.Net.String()).
		Str("dataDir", cfg.DataDir).
		Msg("chain parameters loaded")

	return &cfg, nil
}
