// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ordmap/configuration"
	"github.com/bitmark-inc/ordmap/fault"
)

type loggingType struct {
	Directory string            `gluamapper:"directory"`
	File      string            `gluamapper:"file"`
	Count     int               `gluamapper:"count"`
	Levels    map[string]string `gluamapper:"levels"`
}

type testConfiguration struct {
	Variant string      `gluamapper:"variant"`
	KeyType string      `gluamapper:"key_type"`
	Check   bool        `gluamapper:"check"`
	Source  string      `gluamapper:"source"`
	Logging loggingType `gluamapper:"logging"`
}

const testLua = `
local name = arg[0]
return {
    variant = "redblack",
    check = true,
    source = name,
    logging = {
        directory = "log",
        count = 3,
        levels = { DEFAULT = "debug", replay = "warn" },
    },
}
`

func writeFile(t *testing.T, text string) (string, func()) {
	dir, err := ioutil.TempDir("", "ordmap-configuration")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	fileName := filepath.Join(dir, "test.conf")
	if err := ioutil.WriteFile(fileName, []byte(text), 0600); nil != err {
		t.Fatalf("write error: %s", err)
	}
	return fileName, func() { _ = os.RemoveAll(dir) }
}

func TestParseConfigurationFile(t *testing.T) {
	fileName, cleanup := writeFile(t, testLua)
	defer cleanup()

	options := &testConfiguration{
		KeyType: "integer",
		Logging: loggingType{
			File: "default.log",
		},
	}
	err := configuration.ParseConfigurationFile(fileName, options)
	assert.Nil(t, err, "parse")

	assert.Equal(t, "redblack", options.Variant, "variant")
	assert.Equal(t, "integer", options.KeyType, "default kept")
	assert.True(t, options.Check, "check")
	assert.Equal(t, fileName, options.Source, "arg[0]")
	assert.Equal(t, "log", options.Logging.Directory, "log directory")
	assert.Equal(t, "default.log", options.Logging.File, "log file default kept")
	assert.Equal(t, 3, options.Logging.Count, "log count")
	assert.Equal(t, "warn", options.Logging.Levels["replay"], "log level")
}

func TestParseConfigurationErrors(t *testing.T) {
	fileName, cleanup := writeFile(t, `return 42`)
	defer cleanup()

	options := &testConfiguration{}
	err := configuration.ParseConfigurationFile(fileName, options)
	assert.Equal(t, fault.ErrNoConfigurationTable, err, "not a table")

	err = configuration.ParseConfigurationFile(fileName, *options)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "not a pointer")

	badName, badCleanup := writeFile(t, `return {`)
	defer badCleanup()
	err = configuration.ParseConfigurationFile(badName, options)
	assert.NotNil(t, err, "syntax error")

	err = configuration.ParseConfigurationFile(filepath.Join(os.TempDir(), "no-such-ordmap.conf"), options)
	assert.NotNil(t, err, "missing file")
}

func TestResolvePath(t *testing.T) {
	assert.Equal(t, "/etc/ordmap/log", configuration.ResolvePath("/etc/ordmap/replay.conf", "log"), "relative")
	assert.Equal(t, "/var/log", configuration.ResolvePath("/etc/ordmap/replay.conf", "/var/log/"), "absolute")
}
