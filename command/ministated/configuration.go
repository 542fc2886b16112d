// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/minichain/account"
	"github.com/bitmark-inc/minichain/chain"
	"github.com/bitmark-inc/minichain/configuration"
	"github.com/bitmark-inc/minichain/fault"
	"github.com/bitmark-inc/minichain/runtime"
	"github.com/bitmark-inc/minichain/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLevelDBDirectory = "data"
	defaultDatabaseSuffix   = ".leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "ministated.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		"main":            "info",
		logger.DefaultTag: "critical",
	}
)

type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

type CurrencyType struct {
	ModuleID       string `gluamapper:"module_id" json:"module_id"`
	Minter         uint32 `gluamapper:"minter" json:"minter"`
	MinimumBalance uint64 `gluamapper:"minimum_balance" json:"minimum_balance"`
}

type StakingType struct {
	ModuleID string `gluamapper:"module_id" json:"module_id"`
}

type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Chain         string               `gluamapper:"chain" json:"chain"`
	Database      DatabaseType         `gluamapper:"database" json:"database"`
	Currency      CurrencyType         `gluamapper:"currency" json:"currency"`
	Staking       StakingType          `gluamapper:"staking" json:"staking"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		DataDirectory: defaultDataDirectory,
		Chain:         chain.Local,

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      "",
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	variables := map[string]string{
		"config_directory": dataDirectory,
	}
	if err := configuration.ParseConfigurationFile(configurationFileName, options, variables); err != nil {
		return nil, err
	}

	options.Chain = strings.ToLower(options.Chain)
	defaults, err := chain.Parameters(options.Chain)
	if nil != err {
		return nil, err
	}

	// anything not set by the file comes from the chain
	if "" == options.Currency.ModuleID {
		options.Currency.ModuleID = defaults.CurrencyModuleID
	}
	if 0 == options.Currency.Minter {
		options.Currency.Minter = uint32(defaults.Minter)
	}
	if 0 == options.Currency.MinimumBalance {
		options.Currency.MinimumBalance = defaults.MinimumBalance
	}
	if "" == options.Staking.ModuleID {
		options.Staking.ModuleID = defaults.StakingModuleID
	}
	if "" == options.Database.Name {
		options.Database.Name = options.Chain + defaultDatabaseSuffix
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fault.ErrDataDirectoryMissing
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fault.ErrDataDirectoryMissing
	}

	// fail if any of these are not simple file names
	for _, f := range []string{options.Database.Name, options.Logging.File} {
		if !util.IsPlainFileName(f) {
			return nil, fault.ErrNotPlainFileName
		}
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	} {
		*d, err = util.EnsureDirectory(options.DataDirectory, *d)
		if nil != err {
			return nil, err
		}
	}
	options.Database.Name = util.EnsureAbsolute(options.Database.Directory, options.Database.Name)

	return options, nil
}

// the runtime settings held in the configuration
func (c *Configuration) runtimeConfig() runtime.Config {
	return runtime.Config{
		Chain:            c.Chain,
		CurrencyModuleID: c.Currency.ModuleID,
		StakingModuleID:  c.Staking.ModuleID,
		Minter:           account.ID(c.Currency.Minter),
		MinimumBalance:   runtime.Balance(c.Currency.MinimumBalance),
	}
}
