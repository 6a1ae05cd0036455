// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package replay

import (
	"fmt"
	"strconv"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ordmap/fault"
	"github.com/bitmark-inc/ordmap/ordered"
)

// Failure - an operation whose outcome differed from its expectation
type Failure struct {
	Step      int
	Operation Operation
	Expected  string
	Actual    string
}

func (f Failure) String() string {
	return fmt.Sprintf("step: %d  op: %s  key: %q  expected: %q  actual: %q",
		f.Step, f.Operation.Op, f.Operation.Key, f.Expected, f.Actual)
}

// Result - outcome of running one script
type Result struct {
	Steps    int
	Failures []Failure
}

// Engine - applies scripts to a single map
type Engine struct {
	m       ordered.Map
	keyType string
	check   bool
	log     *logger.L
	stats   *Stats
}

// New - create an engine for a map
//
// check enables a full invariant check after every mutating step
func New(m ordered.Map, keyType string, check bool, log *logger.L, stats *Stats) (*Engine, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	if !ValidKeyType(keyType) {
		return nil, fault.ErrInvalidKeyType
	}
	if nil == stats {
		stats = &Stats{}
	}
	return &Engine{
		m:       m,
		keyType: keyType,
		check:   check,
		log:     log,
		stats:   stats,
	}, nil
}

// Map - the map operations are applied to
func (engine *Engine) Map() ordered.Map {
	return engine.m
}

// Run - apply every operation of a script in order
//
// mismatches are collected in the result; an error stops the run
// either for a malformed step or when the map fails its invariant
// check, the result then covers the steps completed so far
func (engine *Engine) Run(script *Script) (Result, error) {
	result := Result{}

	for i := range script.Operations {
		op := script.Operations[i]

		engine.log.Debugf("step: %d  op: %s  key: %q  value: %q  expect: %q", i, op.Op, op.Key, op.Value, op.Expect)

		expected, actual, err := engine.apply(&op)
		if nil != err {
			engine.log.Errorf("step: %d  op: %s  error: %s", i, op.Op, err)
			return result, err
		}
		engine.stats.Steps.Increment()
		result.Steps += 1

		if "" != expected && expected != actual {
			f := Failure{
				Step:      i,
				Operation: op,
				Expected:  expected,
				Actual:    actual,
			}
			engine.log.Warnf("mismatch: %s", f)
			engine.stats.Mismatches.Increment()
			result.Failures = append(result.Failures, f)
		}

		if engine.check && isMutation(op.Op) {
			engine.stats.Checks.Increment()
			if err := engine.m.Check(); nil != err {
				engine.log.Errorf("step: %d  op: %s  key: %q  invariant: %s", i, op.Op, op.Key, err)
				return result, err
			}
		}
	}

	engine.log.Infof("completed: %d steps  failures: %d  count: %d", result.Steps, len(result.Failures), engine.m.Count())
	return result, nil
}

// run one operation
// returns the expectation (empty for don't care) and the outcome
func (engine *Engine) apply(op *Operation) (string, string, error) {
	if err := op.validate(); nil != err {
		return "", "", err
	}

	var key ordered.Item
	if op.needsKey() {
		k, err := ParseKey(engine.keyType, op.Key)
		if nil != err {
			return "", "", err
		}
		key = k
	}

	switch op.Op {
	case OpInsert:
		err := engine.m.Insert(key, op.Value)
		if nil == err {
			engine.stats.Inserts.Increment()
		}
		return defaultOk(op.Expect), outcome(err), nil

	case OpRemove:
		value, err := engine.m.Remove(key)
		if nil != err {
			return defaultOk(op.Expect), outcome(err), nil
		}
		engine.stats.Removes.Increment()
		switch op.Expect {
		case "", ExpectOk:
			return ExpectOk, ExpectOk, nil
		}
		return op.Expect, fmt.Sprint(value), nil

	case OpGet:
		engine.stats.Lookups.Increment()
		value, err := engine.m.Get(key)
		if nil != err {
			return op.Expect, outcome(err), nil
		}
		return op.Expect, fmt.Sprint(value), nil

	case OpContains:
		engine.stats.Lookups.Increment()
		return op.Expect, strconv.FormatBool(engine.m.ContainsKey(key)), nil

	case OpCount:
		return op.Expect, strconv.Itoa(engine.m.Count()), nil

	case OpClear:
		engine.m.Clear()
		return defaultOk(op.Expect), ExpectOk, nil

	case OpCheck:
		engine.stats.Checks.Increment()
		if err := engine.m.Check(); nil != err {
			return "", "", err
		}
		return defaultOk(op.Expect), ExpectOk, nil
	}
	return "", "", fault.ErrInvalidOperation
}

func isMutation(op string) bool {
	switch op {
	case OpInsert, OpRemove, OpClear:
		return true
	}
	return false
}

func defaultOk(expect string) string {
	if "" == expect {
		return ExpectOk
	}
	return expect
}

// map an error from the map to its expectation name
func outcome(err error) string {
	switch err {
	case nil:
		return ExpectOk
	case fault.ErrDuplicateKey:
		return ExpectDuplicate
	case fault.ErrKeyNotFound:
		return ExpectNotFound
	default:
		return err.Error()
	}
}
