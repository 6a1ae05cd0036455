// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ordmap/avl"
	"github.com/bitmark-inc/ordmap/fault"
	"github.com/bitmark-inc/ordmap/ordered"
	"github.com/bitmark-inc/ordmap/ordered/orderedtest"
)

func TestConformance(t *testing.T) {
	orderedtest.Run(t, func() ordered.Map {
		return avl.New()
	})
}

func TestAscendingSeven(t *testing.T) {
	tree := avl.New()
	for i := 1; i <= 7; i += 1 {
		assert.Nil(t, tree.Insert(ordered.IntKey(i), i), "insert")
	}

	assert.Equal(t, 3, tree.Height(), "height")
	root := tree.Root()
	assert.Equal(t, ordered.IntKey(4), root.Key(), "root key")
	assert.Equal(t, 4, root.Value(), "root value")
	assert.Equal(t, ordered.IntKey(2), root.Left().Key(), "left key")
	assert.Equal(t, ordered.IntKey(6), root.Right().Key(), "right key")
	assert.Equal(t, 2, root.Left().Height(), "left height")
	assert.Equal(t, 2, root.Right().Height(), "right height")
	assert.Nil(t, tree.Check(), "check")
}

// insert cases: the rotation needed depends on where the new key lands
func TestRotations(t *testing.T) {
	items := []struct {
		name string
		keys []int
	}{
		{"LL", []int{3, 2, 1}},
		{"RR", []int{1, 2, 3}},
		{"LR", []int{3, 1, 2}},
		{"RL", []int{1, 3, 2}},
	}

	for _, item := range items {
		tree := avl.New()
		for _, k := range item.keys {
			assert.Nil(t, tree.Insert(ordered.IntKey(k), k), item.name)
		}
		assert.Equal(t, 2, tree.Height(), item.name+" height")
		root := tree.Root()
		assert.Equal(t, ordered.IntKey(2), root.Key(), item.name+" root")
		assert.Equal(t, ordered.IntKey(1), root.Left().Key(), item.name+" left")
		assert.Equal(t, ordered.IntKey(3), root.Right().Key(), item.name+" right")
		assert.Nil(t, tree.Check(), item.name+" check")
	}
}

// deleting a node with two children copies the successor up
func TestRemoveInterior(t *testing.T) {
	tree := avl.New()
	for _, k := range []int{50, 30, 70, 20, 40, 60, 80, 65} {
		assert.Nil(t, tree.Insert(ordered.IntKey(k), k*10), "insert")
	}

	v, err := tree.Remove(ordered.IntKey(50))
	assert.Nil(t, err, "remove")
	assert.Equal(t, 500, v, "removed value")
	assert.Equal(t, ordered.IntKey(60), tree.Root().Key(), "successor at root")
	assert.Equal(t, 600, tree.Root().Value(), "successor value travels with key")
	assert.Nil(t, tree.Check(), "check")

	v, err = tree.Get(ordered.IntKey(65))
	assert.Nil(t, err, "get")
	assert.Equal(t, 650, v, "get value")
}

func TestHeightBound(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	tree := avl.New()

	for i := 0; i < 20000; i += 1 {
		_ = tree.Insert(ordered.IntKey(r.Intn(1000000)), nil)
		if 0 == i%997 {
			n := float64(tree.Count())
			bound := int(math.Ceil(1.44 * math.Log2(n+2)))
			if tree.Height() > bound {
				t.Fatalf("count: %d  height: %d  exceeds: %d", tree.Count(), tree.Height(), bound)
			}
		}
	}

	// sequential keys too
	tree.Clear()
	for i := 0; i < 4095; i += 1 {
		_ = tree.Insert(ordered.IntKey(i), nil)
	}
	assert.Equal(t, 12, tree.Height(), "perfect tree height")
}

func TestFirstLast(t *testing.T) {
	tree := avl.New()
	assert.Nil(t, tree.First(), "first of empty")
	assert.Nil(t, tree.Last(), "last of empty")

	for _, k := range orderedtest.LongList {
		_ = tree.Insert(k, nil)
	}
	assert.Equal(t, ordered.StringKey("0017"), tree.First().Key(), "first")

	max, err := tree.Max()
	assert.Nil(t, err, "max")
	assert.Equal(t, max.Key, tree.Last().Key(), "last")
}

func TestSearch(t *testing.T) {
	tree := avl.New()
	assert.Nil(t, tree.Search(ordered.IntKey(1)), "search empty")

	for i := 0; i < 10; i += 1 {
		_ = tree.Insert(ordered.IntKey(i*2), i)
	}
	p := tree.Search(ordered.IntKey(8))
	if assert.NotNil(t, p, "search present") {
		assert.Equal(t, 4, p.Value(), "search value")
	}
	assert.Nil(t, tree.Search(ordered.IntKey(9)), "search absent")

	_, err := tree.Get(ordered.IntKey(9))
	assert.Equal(t, fault.ErrKeyNotFound, err, "get absent")
	assert.True(t, fault.IsErrNotFound(err), "not found class")
}
