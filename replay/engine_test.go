// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package replay_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ordmap/fault"
	"github.com/bitmark-inc/ordmap/ordered"
	"github.com/bitmark-inc/ordmap/ordered/mocks"
	"github.com/bitmark-inc/ordmap/replay"
)

func TestNewEngine(t *testing.T) {
	log := logger.New("testing")

	_, err := replay.New(nil, replay.KeyInteger, false, nil, nil)
	assert.Equal(t, fault.ErrInvalidLoggerChannel, err, "no logger")

	_, err = replay.New(nil, "float", false, log, nil)
	assert.Equal(t, fault.ErrInvalidKeyType, err, "bad key type")

	engine, err := replay.New(nil, replay.KeyString, false, log, nil)
	assert.Nil(t, err, "new")
	assert.NotNil(t, engine, "engine")
}

func TestRunSampleBothVariants(t *testing.T) {
	for _, variant := range []string{replay.VariantAVL, replay.VariantRedBlack} {
		script, err := replay.ReadScript(strings.NewReader(sampleScript))
		assert.Nil(t, err, "read")

		m, err := replay.MakeMap(variant)
		assert.Nil(t, err, "make map")

		stats := &replay.Stats{}
		engine, err := replay.New(m, replay.KeyInteger, true, logger.New("testing"), stats)
		assert.Nil(t, err, "new")

		result, err := engine.Run(script)
		assert.Nil(t, err, variant+" run")
		assert.Equal(t, 8, result.Steps, variant+" steps")
		assert.Equal(t, 0, len(result.Failures), variant+" failures")

		assert.Equal(t, uint64(8), stats.Steps.Uint64(), variant+" stats steps")
		assert.Equal(t, uint64(1), stats.Inserts.Uint64(), variant+" stats inserts")
		assert.Equal(t, uint64(0), stats.Removes.Uint64(), variant+" stats removes")
		assert.Equal(t, uint64(2), stats.Lookups.Uint64(), variant+" stats lookups")
		assert.True(t, stats.Mismatches.IsZero(), variant+" stats mismatches")

		// insert x2, remove, clear and the explicit check
		assert.Equal(t, uint64(5), stats.Checks.Uint64(), variant+" stats checks")
		assert.True(t, engine.Map().IsEmpty(), variant+" cleared")
	}
}

func TestRunMismatches(t *testing.T) {
	const text = `
operations:
  - {op: insert, key: "apple", value: "red"}
  - {op: insert, key: "apple", value: "green"}
  - {op: get, key: "apple", expect: "green"}
  - {op: get, key: "pear"}
  - {op: contains, key: "pear", expect: "true"}
  - {op: remove, key: "apple", expect: "red"}
  - {op: remove, key: "apple"}
  - {op: count, expect: "0"}
`
	script, err := replay.ReadScript(strings.NewReader(text))
	assert.Nil(t, err, "read")

	m, _ := replay.MakeMap(replay.VariantRedBlack)
	stats := &replay.Stats{}
	engine, err := replay.New(m, replay.KeyString, true, logger.New("testing"), stats)
	assert.Nil(t, err, "new")

	result, err := engine.Run(script)
	assert.Nil(t, err, "run")
	assert.Equal(t, 8, result.Steps, "steps")

	expected := []replay.Failure{
		{Step: 1, Operation: script.Operations[1], Expected: replay.ExpectOk, Actual: replay.ExpectDuplicate},
		{Step: 2, Operation: script.Operations[2], Expected: "green", Actual: "red"},
		{Step: 4, Operation: script.Operations[4], Expected: "true", Actual: "false"},
		{Step: 6, Operation: script.Operations[6], Expected: replay.ExpectOk, Actual: replay.ExpectNotFound},
	}
	assert.Equal(t, expected, result.Failures, "failures")
	assert.Equal(t, uint64(4), stats.Mismatches.Uint64(), "stats mismatches")
	assert.Contains(t, result.Failures[1].String(), `expected: "green"`, "failure text")
}

func TestRunStopsOnBadKey(t *testing.T) {
	const text = `
operations:
  - {op: insert, key: "1"}
  - {op: insert, key: "one"}
  - {op: insert, key: "2"}
`
	script, err := replay.ReadScript(strings.NewReader(text))
	assert.Nil(t, err, "read")

	m, _ := replay.MakeMap(replay.VariantAVL)
	engine, _ := replay.New(m, replay.KeyInteger, false, logger.New("testing"), nil)

	result, err := engine.Run(script)
	assert.Equal(t, fault.ErrInvalidKey, err, "bad key")
	assert.Equal(t, 1, result.Steps, "steps before the error")
	assert.Equal(t, 1, m.Count(), "count")
}

func TestRunRejectsUnvalidatedOperation(t *testing.T) {
	script := &replay.Script{
		Operations: []replay.Operation{
			{Op: "upsert", Key: "1"},
		},
	}
	m, _ := replay.MakeMap(replay.VariantAVL)
	engine, _ := replay.New(m, replay.KeyInteger, false, logger.New("testing"), nil)

	_, err := engine.Run(script)
	assert.Equal(t, fault.ErrInvalidOperation, err, "unknown operation")
}

// the engine must stop as soon as a tree reports corruption
func TestRunStopsOnInvariant(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMap(ctl)

	gomock.InOrder(
		m.EXPECT().Insert(ordered.IntKey(1), "a").Return(nil).Times(1),
		m.EXPECT().Check().Return(nil).Times(1),
		m.EXPECT().Insert(ordered.IntKey(2), "b").Return(nil).Times(1),
		m.EXPECT().Check().Return(fault.ErrRedChildOfRed).Times(1),
	)

	script := &replay.Script{
		Operations: []replay.Operation{
			{Op: replay.OpInsert, Key: "1", Value: "a"},
			{Op: replay.OpInsert, Key: "2", Value: "b"},
			{Op: replay.OpInsert, Key: "3", Value: "c"},
		},
	}

	engine, err := replay.New(m, replay.KeyInteger, true, logger.New("testing"), nil)
	assert.Nil(t, err, "new")

	result, err := engine.Run(script)
	assert.Equal(t, fault.ErrRedChildOfRed, err, "invariant error")
	assert.Equal(t, 2, result.Steps, "steps")
	assert.True(t, fault.IsErrInvariant(err), "invariant class")
}

func TestRunWithoutCheck(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMap(ctl)

	gomock.InOrder(
		m.EXPECT().Insert(ordered.StringKey("k"), "v").Return(nil).Times(1),
		m.EXPECT().Remove(ordered.StringKey("k")).Return("v", nil).Times(1),
		m.EXPECT().Count().Return(0).Times(2),
	)

	script := &replay.Script{
		Operations: []replay.Operation{
			{Op: replay.OpInsert, Key: "k", Value: "v"},
			{Op: replay.OpRemove, Key: "k", Expect: "v"},
			{Op: replay.OpCount, Expect: "0"},
		},
	}

	engine, err := replay.New(m, replay.KeyString, false, logger.New("testing"), nil)
	assert.Nil(t, err, "new")

	result, err := engine.Run(script)
	assert.Nil(t, err, "run")
	assert.Equal(t, 0, len(result.Failures), "failures")
}

func TestRunParallelSharedStats(t *testing.T) {
	const engines = 4

	operations := make([]replay.Operation, 0, 300)
	for i := 0; i < 100; i += 1 {
		k := ordered.IntKey(i).String()
		operations = append(operations,
			replay.Operation{Op: replay.OpInsert, Key: k, Value: k},
			replay.Operation{Op: replay.OpGet, Key: k, Expect: k},
		)
	}
	for i := 0; i < 100; i += 2 {
		k := ordered.IntKey(i).String()
		operations = append(operations, replay.Operation{Op: replay.OpRemove, Key: k, Expect: k})
	}
	script := &replay.Script{Operations: operations}

	stats := &replay.Stats{}
	wg := sync.WaitGroup{}
	for e := 0; e < engines; e += 1 {
		variant := replay.VariantAVL
		if 1 == e%2 {
			variant = replay.VariantRedBlack
		}
		m, _ := replay.MakeMap(variant)
		engine, err := replay.New(m, replay.KeyInteger, true, logger.New("testing"), stats)
		assert.Nil(t, err, "new")

		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := engine.Run(script)
			assert.Nil(t, err, "run")
			assert.Equal(t, 0, len(result.Failures), "failures")
			assert.Equal(t, 50, engine.Map().Count(), "count")
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(engines*len(operations)), stats.Steps.Uint64(), "steps")
	assert.Equal(t, uint64(engines*100), stats.Inserts.Uint64(), "inserts")
	assert.Equal(t, uint64(engines*50), stats.Removes.Uint64(), "removes")
	assert.Equal(t, uint64(engines*100), stats.Lookups.Uint64(), "lookups")
	assert.True(t, stats.Mismatches.IsZero(), "mismatches")
}
