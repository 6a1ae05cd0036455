// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ordmap/fault"
	"github.com/bitmark-inc/ordmap/replay"
)

func writeConfiguration(t *testing.T, text string) (string, func()) {
	dir, err := ioutil.TempDir("", "ordmap-replay")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	fileName := filepath.Join(dir, "ordmap-replay.conf")
	if err := ioutil.WriteFile(fileName, []byte(text), 0600); nil != err {
		t.Fatalf("write error: %s", err)
	}
	return fileName, func() { _ = os.RemoveAll(dir) }
}

func TestDefaultConfiguration(t *testing.T) {
	options, err := getConfiguration("")
	assert.Nil(t, err, "defaults")
	assert.Equal(t, replay.VariantRedBlack, options.Variant, "variant")
	assert.Equal(t, replay.KeyInteger, options.KeyType, "key type")
	assert.False(t, options.Check, "check")
	assert.True(t, filepath.IsAbs(options.Logging.Directory), "absolute log directory")
	assert.Equal(t, defaultLogFile, options.Logging.File, "log file")
}

func TestSampleConfiguration(t *testing.T) {
	options, err := getConfiguration("ordmap-replay.conf.sample")
	assert.Nil(t, err, "sample")
	assert.Equal(t, replay.VariantRedBlack, options.Variant, "variant")
	assert.Equal(t, "info", options.Logging.Levels["replay"], "replay log level")

	wd, _ := os.Getwd()
	assert.Equal(t, filepath.Join(wd, "log"), options.Logging.Directory, "log directory")
}

func TestConfigurationOverrides(t *testing.T) {
	fileName, cleanup := writeConfiguration(t, `
return {
    variant = "AVL",
    key_type = "string",
    check = true,
    logging = { directory = "/tmp/ordmap-logs", count = 2 },
}
`)
	defer cleanup()

	options, err := getConfiguration(fileName)
	assert.Nil(t, err, "parse")
	assert.Equal(t, replay.VariantAVL, options.Variant, "variant lowered")
	assert.Equal(t, replay.KeyString, options.KeyType, "key type")
	assert.True(t, options.Check, "check")
	assert.Equal(t, "/tmp/ordmap-logs", options.Logging.Directory, "absolute kept")
	assert.Equal(t, 2, options.Logging.Count, "count")
	assert.Equal(t, defaultLogSize, options.Logging.Size, "size default kept")
}

func TestConfigurationInvalid(t *testing.T) {
	fileName, cleanup := writeConfiguration(t, `return { variant = "splay" }`)
	defer cleanup()
	_, err := getConfiguration(fileName)
	assert.Equal(t, fault.ErrInvalidVariant, err, "variant")

	keyName, keyCleanup := writeConfiguration(t, `return { key_type = "float" }`)
	defer keyCleanup()
	_, err = getConfiguration(keyName)
	assert.Equal(t, fault.ErrInvalidKeyType, err, "key type")
}

func TestRunScript(t *testing.T) {
	scriptName, cleanup := writeConfiguration(t, `
key_type: string
operations:
  - {op: insert, key: "b", value: "2"}
  - {op: insert, key: "a", value: "1"}
  - {op: get, key: "a", expect: "2"}
`)
	defer cleanup()

	dir := filepath.Dir(scriptName)
	stats := &replay.Stats{}
	options := defaultConfiguration()

	r := runScript(scriptName, options, replay.VariantAVL, true, stats)
	assert.Nil(t, r.err, "run")
	assert.Equal(t, replay.VariantAVL, r.variant, "command line variant wins")
	assert.Equal(t, 2, r.count, "count")
	assert.Equal(t, 2, r.height, "height")
	assert.Equal(t, 1, len(r.result.Failures), "failures")
	assert.Equal(t, uint64(2), stats.Checks.Uint64(), "checks forced")

	r = runScript(scriptName, options, "", false, stats)
	assert.Nil(t, r.err, "run")
	assert.Equal(t, replay.VariantRedBlack, r.variant, "configuration variant")

	r = runScript(filepath.Join(dir, "missing.yaml"), options, "", false, stats)
	assert.NotNil(t, r.err, "missing script")
}
