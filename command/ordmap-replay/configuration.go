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

	"github.com/bitmark-inc/ordmap/configuration"
	"github.com/bitmark-inc/ordmap/fault"
	"github.com/bitmark-inc/ordmap/replay"
)

const (
	defaultVariant = replay.VariantRedBlack
	defaultKeyType = replay.KeyInteger

	defaultLogDirectory = "log"
	defaultLogFile      = "ordmap-replay.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

type LoglevelMap map[string]string

var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "info",
	}
)

// Configuration - contents of the Lua configuration file
type Configuration struct {
	Variant string               `gluamapper:"variant"`
	KeyType string               `gluamapper:"key_type"`
	Check   bool                 `gluamapper:"check"`
	Logging logger.Configuration `gluamapper:"logging"`
}

func defaultConfiguration() *Configuration {
	levels := make(LoglevelMap, len(defaultLogLevels))
	for k, v := range defaultLogLevels {
		levels[k] = v
	}
	return &Configuration{
		Variant: defaultVariant,
		KeyType: defaultKeyType,
		Check:   false,
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    levels,
		},
	}
}

// read the configuration file, an empty name gives the defaults
// relative to the current directory
func getConfiguration(configurationFileName string) (*Configuration, error) {

	options := defaultConfiguration()

	if "" == configurationFileName {
		dir, err := os.Getwd()
		if nil != err {
			return nil, err
		}
		configurationFileName = filepath.Join(dir, "ordmap-replay.conf")

	} else {
		name, err := filepath.Abs(filepath.Clean(configurationFileName))
		if nil != err {
			return nil, err
		}
		configurationFileName = name

		if err := configuration.ParseConfigurationFile(configurationFileName, options); nil != err {
			return nil, err
		}
	}

	options.Variant = strings.ToLower(options.Variant)
	if _, err := replay.MakeMap(options.Variant); nil != err {
		return nil, err
	}
	options.KeyType = strings.ToLower(options.KeyType)
	if !replay.ValidKeyType(options.KeyType) {
		return nil, fault.ErrInvalidKeyType
	}

	// force all relevant items to be absolute paths
	options.Logging.Directory = configuration.ResolvePath(configurationFileName, options.Logging.Directory)

	return options, nil
}
