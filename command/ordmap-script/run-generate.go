// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"math/rand"
	"strconv"

	"github.com/google/btree"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/ordmap/replay"
)

func runRandom(c *cli.Context) error {
	script, err := makeRandom(c.Int("count"), c.Int64("seed"), c.Int("keys"), c.String("variant"))
	if nil != err {
		return err
	}
	return output(c, script)
}

func runAscending(c *cli.Context) error {
	script, err := makeAscending(c.Int("count"), c.String("variant"))
	if nil != err {
		return err
	}
	return output(c, script)
}

// element of the model set
type modelEntry struct {
	key   int
	value string
}

func (m modelEntry) Less(than btree.Item) bool {
	return m.key < than.(modelEntry).key
}

const modelDegree = 8

// random operations with expectations from a btree model
func makeRandom(count int, seed int64, keys int, variant string) (*replay.Script, error) {
	if count <= 0 {
		return nil, ErrInvalidCount
	}
	if keys <= 0 {
		return nil, ErrInvalidKeyRange
	}

	r := rand.New(rand.NewSource(seed))
	model := btree.New(modelDegree)

	script := &replay.Script{
		Variant:    variant,
		KeyType:    replay.KeyInteger,
		Check:      true,
		Operations: make([]replay.Operation, 0, count+1),
	}

	for i := 0; i < count; i += 1 {
		k := r.Intn(keys)
		key := strconv.Itoa(k)
		probe := modelEntry{key: k}

		var op replay.Operation
		switch n := r.Intn(10); {
		case n < 4:
			// value records the step so duplicates show the first one
			value := "v" + strconv.Itoa(i)
			op = replay.Operation{Op: replay.OpInsert, Key: key, Value: value, Expect: replay.ExpectOk}
			if model.Has(probe) {
				op.Expect = replay.ExpectDuplicate
			} else {
				model.ReplaceOrInsert(modelEntry{key: k, value: value})
			}

		case n < 7:
			op = replay.Operation{Op: replay.OpRemove, Key: key, Expect: replay.ExpectNotFound}
			if item := model.Delete(probe); nil != item {
				op.Expect = item.(modelEntry).value
			}

		case n < 9:
			op = replay.Operation{Op: replay.OpGet, Key: key, Expect: replay.ExpectNotFound}
			if item := model.Get(probe); nil != item {
				op.Expect = item.(modelEntry).value
			}

		default:
			op = replay.Operation{Op: replay.OpContains, Key: key, Expect: strconv.FormatBool(model.Has(probe))}
		}
		script.Operations = append(script.Operations, op)
	}

	script.Operations = append(script.Operations, replay.Operation{
		Op:     replay.OpCount,
		Expect: strconv.Itoa(model.Len()),
	})
	return script, nil
}

// sequential inserts followed by removes in the same order
func makeAscending(count int, variant string) (*replay.Script, error) {
	if count <= 0 {
		return nil, ErrInvalidCount
	}

	script := &replay.Script{
		Variant:    variant,
		KeyType:    replay.KeyInteger,
		Check:      true,
		Operations: make([]replay.Operation, 0, 2*count+3),
	}

	for i := 1; i <= count; i += 1 {
		key := strconv.Itoa(i)
		script.Operations = append(script.Operations, replay.Operation{Op: replay.OpInsert, Key: key, Value: key})
	}
	script.Operations = append(script.Operations, replay.Operation{Op: replay.OpCount, Expect: strconv.Itoa(count)})
	for i := 1; i <= count; i += 1 {
		key := strconv.Itoa(i)
		script.Operations = append(script.Operations, replay.Operation{Op: replay.OpRemove, Key: key, Expect: key})
	}
	script.Operations = append(script.Operations,
		replay.Operation{Op: replay.OpCount, Expect: "0"},
		replay.Operation{Op: replay.OpCheck},
	)
	return script, nil
}
