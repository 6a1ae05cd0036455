// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"sync"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ordmap/fault"
	"github.com/bitmark-inc/ordmap/replay"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// outcome of one script file
type scriptResult struct {
	fileName string
	variant  string
	count    int
	height   int
	result   replay.Result
	err      error
}

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "variant", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 't'},
		{Long: "check", HasArg: getoptions.NO_ARGUMENT, Short: 'k'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--quiet] [--config-file=FILE] [--variant=avl|redblack] [--check] script.yaml...", program)
	}

	if len(options["config-file"]) > 1 {
		exitwithstatus.Message("%s: only one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	}
	if len(options["variant"]) > 1 {
		exitwithstatus.Message("%s: only one variant option is allowed, %d were detected", program, len(options["variant"]))
	}
	if len(arguments) < 1 {
		exitwithstatus.Message("%s: at least one script file is required", program)
	}

	verbose := len(options["verbose"]) > 0
	quiet := len(options["quiet"]) > 0

	configurationFile := ""
	if 1 == len(options["config-file"]) {
		configurationFile = options["config-file"][0]
	}
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	variant := ""
	if 1 == len(options["variant"]) {
		variant = options["variant"][0]
		if _, err := replay.MakeMap(variant); nil != err {
			exitwithstatus.Message("%s: variant: %q  error: %s", program, variant, err)
		}
	}
	forceCheck := len(options["check"]) > 0

	// start logging
	if err := os.MkdirAll(theConfiguration.Logging.Directory, 0700); nil != err {
		exitwithstatus.Message("%s: log directory: %q  error: %s", program, theConfiguration.Logging.Directory, err)
	}
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err := fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	stats := &replay.Stats{}
	results := make([]scriptResult, len(arguments))

	wg := sync.WaitGroup{}
	for i, fileName := range arguments {
		wg.Add(1)
		go func(i int, fileName string) {
			defer wg.Done()
			results[i] = runScript(fileName, theConfiguration, variant, forceCheck, stats)
		}(i, fileName)
	}
	wg.Wait()

	failed := false
	for _, r := range results {
		switch {
		case nil != r.err:
			failed = true
			if fault.IsErrInvariant(r.err) {
				fault.Criticalf("%s: %s  tree corrupt: %s", r.variant, r.fileName, r.err)
			}
			log.Errorf("script: %q  error: %s", r.fileName, r.err)
			fmt.Fprintf(os.Stderr, "%s: %s  error: %s\n", program, r.fileName, r.err)

		case len(r.result.Failures) > 0:
			failed = true
			if !quiet {
				fmt.Printf("%s: %s  steps: %d  count: %d  height: %d  failures: %d\n",
					r.variant, r.fileName, r.result.Steps, r.count, r.height, len(r.result.Failures))
			}
			if verbose {
				for _, f := range r.result.Failures {
					fmt.Printf("  %s\n", f)
				}
			}

		default:
			if !quiet {
				fmt.Printf("%s: %s  steps: %d  count: %d  height: %d  ok\n",
					r.variant, r.fileName, r.result.Steps, r.count, r.height)
			}
		}
	}

	log.Infof("steps: %d  inserts: %d  removes: %d  lookups: %d  checks: %d  mismatches: %d",
		stats.Steps.Uint64(), stats.Inserts.Uint64(), stats.Removes.Uint64(),
		stats.Lookups.Uint64(), stats.Checks.Uint64(), stats.Mismatches.Uint64())

	if !quiet {
		fmt.Printf("total  scripts: %d  steps: %d  inserts: %d  removes: %d  lookups: %d  mismatches: %d\n",
			len(results), stats.Steps.Uint64(), stats.Inserts.Uint64(), stats.Removes.Uint64(),
			stats.Lookups.Uint64(), stats.Mismatches.Uint64())
	}

	if failed {
		exitwithstatus.Message("%s: %s", program, fault.ErrExpectationFailed)
	}
}

// each script runs on its own map
//
// precedence: command line, then the script, then the configuration
func runScript(fileName string, theConfiguration *Configuration, variant string, forceCheck bool, stats *replay.Stats) scriptResult {

	r := scriptResult{
		fileName: fileName,
	}

	script, err := replay.LoadScript(fileName)
	if nil != err {
		r.err = err
		return r
	}

	r.variant = variant
	if "" == r.variant {
		r.variant = script.Variant
	}
	if "" == r.variant {
		r.variant = theConfiguration.Variant
	}

	keyType := script.KeyType
	if "" == keyType {
		keyType = theConfiguration.KeyType
	}

	m, err := replay.MakeMap(r.variant)
	if nil != err {
		r.err = err
		return r
	}

	engine, err := replay.New(m, keyType, forceCheck || script.Check || theConfiguration.Check, logger.New("replay"), stats)
	if nil != err {
		r.err = err
		return r
	}

	r.result, r.err = engine.Run(script)
	r.count = m.Count()
	r.height = m.Height()
	return r
}
