// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package orderedtest

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/google/btree"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ordmap/fault"
	"github.com/bitmark-inc/ordmap/ordered"
)

// Factory - create an empty map of the implementation under test
type Factory func() ordered.Map

// Run - the full conformance suite as sub-tests
func Run(t *testing.T, factory Factory) {
	t.Run("ListShort", func(t *testing.T) {
		doList(t, factory, ShortList)
		doTraverse(t, factory, ShortList)
	})
	t.Run("ListDuplicates", func(t *testing.T) {
		doList(t, factory, DuplicateList)
		doTraverse(t, factory, DuplicateList)
	})
	t.Run("ListLong", func(t *testing.T) {
		doList(t, factory, LongList)
		doTraverse(t, factory, LongList)
	})
	t.Run("Empty", func(t *testing.T) { doEmpty(t, factory) })
	t.Run("Duplicate", func(t *testing.T) { doDuplicate(t, factory) })
	t.Run("RemoveSole", func(t *testing.T) { doRemoveSole(t, factory) })
	t.Run("RoundTrip", func(t *testing.T) { doRoundTrip(t, factory) })
	t.Run("CopyTo", func(t *testing.T) { doCopyTo(t, factory) })
	t.Run("Clear", func(t *testing.T) { doClear(t, factory) })
	t.Run("Sequential", func(t *testing.T) { doSequential(t, factory) })
	t.Run("Random", func(t *testing.T) {
		doRandom(t, factory, 1, 2000, 400)
		doRandom(t, factory, 2, 5000, 50)
		doRandom(t, factory, 3, 3000, 3000)
	})
}

func dataFor(key ordered.Item) string {
	return fmt.Sprintf("data:%v", key)
}

// insert everything, then delete a growing prefix followed by the
// remainder, checking consistency between each phase
func doList(t *testing.T, factory Factory, addList []ordered.StringKey) {

	for i := 0; i < len(addList)+1; i += 1 {

		m := factory()
		seen := make(map[ordered.StringKey]struct{})
		for _, key := range addList {
			err := m.Insert(key, dataFor(key))
			if _, ok := seen[key]; ok {
				if fault.ErrDuplicateKey != err {
					t.Fatalf("duplicate insert: %q  error: %v", key, err)
				}
			} else if nil != err {
				t.Fatalf("insert: %q  error: %s", key, err)
			}
			seen[key] = struct{}{}
		}
		if len(seen) != m.Count() {
			t.Fatalf("count: actual: %d  expected: %d", m.Count(), len(seen))
		}
		if err := m.Check(); nil != err {
			t.Fatalf("add: inconsistent tree: %s", err)
		}

		alreadyDeleted := make(map[ordered.StringKey]struct{})

	delete_items:
		for _, key := range addList[:i] {
			if _, ok := alreadyDeleted[key]; ok {
				continue delete_items
			}
			alreadyDeleted[key] = struct{}{}
			dv, err := m.Remove(key)
			if nil != err {
				t.Fatalf("delete: %q  error: %s", key, err)
			}
			if ev := dataFor(key); dv != ev {
				t.Fatalf("delete returned: %q  expected: %q", dv, ev)
			}
		}

		if err := m.Check(); nil != err {
			t.Fatalf("delete: inconsistent tree: %s", err)
		}

	delete_remainder:
		for _, key := range addList[i:] {
			if _, ok := alreadyDeleted[key]; ok {
				continue delete_remainder
			}
			alreadyDeleted[key] = struct{}{}
			dv, err := m.Remove(key)
			if nil != err {
				t.Fatalf("delete: %q  error: %s", key, err)
			}
			if ev := dataFor(key); dv != ev {
				t.Fatalf("delete returned: %q  expected: %q", dv, ev)
			}
		}

		if !m.IsEmpty() || 0 != m.Count() {
			t.Fatalf("remainder: remaining nodes: %d", m.Count())
		}
		if err := m.Check(); nil != err {
			t.Fatalf("empty: inconsistent tree: %s", err)
		}
	}
}

// enumerate in every available way and compare with a sorted copy
func doTraverse(t *testing.T, factory Factory, addList []ordered.StringKey) {

	unique := make(map[string]struct{})
	m := factory()
	for _, key := range addList {
		unique[key.String()] = struct{}{}
		_ = m.Insert(key, dataFor(key))
	}

	expected := make([]string, 0, len(unique))
	for key := range unique {
		expected = append(expected, key)
	}
	sort.Strings(expected)

	entries := m.Entries()
	keys := m.Keys()
	values := m.Values()
	assert.Equal(t, len(expected), len(entries), "entries length")
	assert.Equal(t, len(expected), len(keys), "keys length")
	assert.Equal(t, len(expected), len(values), "values length")

	for i, key := range expected {
		k := ordered.StringKey(key)
		assert.Equal(t, k, entries[i].Key, "entry key")
		assert.Equal(t, dataFor(k), entries[i].Value, "entry value")
		assert.Equal(t, k, keys[i], "key")
		assert.Equal(t, dataFor(k), values[i], "value")
	}

	// strictly increasing
	for i := 1; i < len(entries); i += 1 {
		if entries[i-1].Key.Compare(entries[i].Key) >= 0 {
			t.Fatalf("order: %q >= %q", entries[i-1].Key, entries[i].Key)
		}
	}

	// walk stops when the visitor refuses
	n := 0
	err := m.Walk(func(e ordered.Entry) bool {
		assert.Equal(t, ordered.StringKey(expected[n]), e.Key, "walk key")
		n += 1
		return n < 3
	})
	assert.Nil(t, err, "walk error")
	assert.Equal(t, 3, n, "walk visits")

	first, err := m.Min()
	assert.Nil(t, err, "min error")
	assert.Equal(t, ordered.StringKey(expected[0]), first.Key, "min key")

	last, err := m.Max()
	assert.Nil(t, err, "max error")
	assert.Equal(t, ordered.StringKey(expected[len(expected)-1]), last.Key, "max key")
}

func doEmpty(t *testing.T, factory Factory) {
	m := factory()

	assert.True(t, m.IsEmpty(), "empty")
	assert.Equal(t, 0, m.Count(), "count")
	assert.Equal(t, 0, m.Height(), "height")
	assert.Nil(t, m.Check(), "check")

	v, err := m.Remove(ordered.IntKey(1))
	assert.Nil(t, v, "remove value")
	assert.Equal(t, fault.ErrKeyNotFound, err, "remove error")

	v, err = m.Get(ordered.IntKey(1))
	assert.Nil(t, v, "get value")
	assert.Equal(t, fault.ErrKeyNotFound, err, "get error")

	v, ok := m.TryGet(ordered.IntKey(1))
	assert.Nil(t, v, "try get value")
	assert.False(t, ok, "try get found")
	assert.False(t, m.ContainsKey(ordered.IntKey(1)), "contains")

	called := false
	err = m.Walk(func(ordered.Entry) bool {
		called = true
		return true
	})
	assert.Equal(t, fault.ErrEmptyTree, err, "walk error")
	assert.False(t, called, "walk visitor called")

	_, err = m.Min()
	assert.Equal(t, fault.ErrEmptyTree, err, "min error")
	_, err = m.Max()
	assert.Equal(t, fault.ErrEmptyTree, err, "max error")

	assert.Equal(t, 0, len(m.Entries()), "entries")
	assert.Equal(t, 0, len(m.Keys()), "keys")
	assert.Equal(t, 0, len(m.Values()), "values")
	assert.Equal(t, 0, m.Count(), "count after failures")
}

func doDuplicate(t *testing.T, factory Factory) {
	m := factory()

	assert.Nil(t, m.Insert(ordered.IntKey(5), "first"), "first insert")
	assert.Equal(t, fault.ErrDuplicateKey, m.Insert(ordered.IntKey(5), "second"), "second insert")
	assert.Equal(t, 1, m.Count(), "count")

	v, err := m.Get(ordered.IntKey(5))
	assert.Nil(t, err, "get error")
	assert.Equal(t, "first", v, "value must not be overwritten")
	assert.Nil(t, m.Check(), "check")
}

func doRemoveSole(t *testing.T, factory Factory) {
	m := factory()

	assert.Nil(t, m.Insert(ordered.IntKey(42), "answer"), "insert")
	v, err := m.Remove(ordered.IntKey(42))
	assert.Nil(t, err, "remove error")
	assert.Equal(t, "answer", v, "removed value")
	assert.Equal(t, 0, m.Count(), "count")
	assert.True(t, m.IsEmpty(), "empty")

	_, err = m.Get(ordered.IntKey(42))
	assert.Equal(t, fault.ErrKeyNotFound, err, "get after remove")

	_, err = m.Remove(ordered.IntKey(42))
	assert.Equal(t, fault.ErrKeyNotFound, err, "second remove")
	assert.Nil(t, m.Check(), "check")
}

func doRoundTrip(t *testing.T, factory Factory) {
	m := factory()

	for i := 0; i < 100; i += 1 {
		k := ordered.IntKey((i * 37) % 101)
		assert.Nil(t, m.Insert(k, i), "insert")
		v, err := m.Get(k)
		assert.Nil(t, err, "get")
		assert.Equal(t, i, v, "get value")
	}
	for i := 0; i < 100; i += 1 {
		k := ordered.IntKey((i * 37) % 101)
		_, err := m.Remove(k)
		assert.Nil(t, err, "remove")
		_, err = m.Get(k)
		assert.Equal(t, fault.ErrKeyNotFound, err, "get after remove")
		assert.False(t, m.ContainsKey(k), "contains after remove")
	}
}

func doCopyTo(t *testing.T, factory Factory) {
	m := factory()
	for _, k := range []int{3, 1, 2} {
		_ = m.Insert(ordered.IntKey(k), k*10)
	}

	buffer := make([]ordered.Entry, 5)
	assert.Nil(t, m.CopyTo(buffer, 2), "copy")
	assert.Nil(t, buffer[0].Key, "untouched slot 0")
	assert.Nil(t, buffer[1].Key, "untouched slot 1")
	for i := 0; i < 3; i += 1 {
		assert.Equal(t, ordered.IntKey(i+1), buffer[2+i].Key, "copied key")
		assert.Equal(t, (i+1)*10, buffer[2+i].Value, "copied value")
	}

	small := make([]ordered.Entry, 4)
	assert.Equal(t, fault.ErrBufferTooSmall, m.CopyTo(small, 2), "too small")
	for _, e := range small {
		assert.Nil(t, e.Key, "nothing written on failure")
	}

	assert.Equal(t, fault.ErrInvalidOffset, m.CopyTo(buffer, -1), "negative offset")
	assert.Equal(t, fault.ErrInvalidOffset, m.CopyTo(buffer, 6), "offset past end")

	empty := factory()
	assert.Nil(t, empty.CopyTo(buffer, 5), "empty map at end of buffer")
}

func doClear(t *testing.T, factory Factory) {
	m := factory()
	for i := 0; i < 50; i += 1 {
		_ = m.Insert(ordered.IntKey(i), i)
	}
	m.Clear()
	assert.True(t, m.IsEmpty(), "empty after clear")
	assert.Equal(t, 0, m.Count(), "count after clear")
	assert.False(t, m.ContainsKey(ordered.IntKey(10)), "contains after clear")
	assert.Nil(t, m.Check(), "check after clear")

	// still usable
	assert.Nil(t, m.Insert(ordered.IntKey(10), "again"), "insert after clear")
	assert.Equal(t, 1, m.Count(), "count after reuse")
	assert.Nil(t, m.Check(), "check after reuse")
}

// ascending and descending runs are the worst case for an
// unbalanced tree
func doSequential(t *testing.T, factory Factory) {
	const n = 500

	up := factory()
	down := factory()
	for i := 0; i < n; i += 1 {
		if err := up.Insert(ordered.IntKey(i), i); nil != err {
			t.Fatalf("insert: %d  error: %s", i, err)
		}
		if err := down.Insert(ordered.IntKey(n-i), i); nil != err {
			t.Fatalf("insert: %d  error: %s", n-i, err)
		}
		if err := up.Check(); nil != err {
			t.Fatalf("ascending insert: %d  inconsistent tree: %s", i, err)
		}
		if err := down.Check(); nil != err {
			t.Fatalf("descending insert: %d  inconsistent tree: %s", n-i, err)
		}
	}
	for i := 0; i < n; i += 1 {
		if _, err := up.Remove(ordered.IntKey(i)); nil != err {
			t.Fatalf("remove: %d  error: %s", i, err)
		}
		if err := up.Check(); nil != err {
			t.Fatalf("ascending remove: %d  inconsistent tree: %s", i, err)
		}
	}
	assert.True(t, up.IsEmpty(), "empty after removing all")
}

// random operations compared against a btree holding the same keys
func doRandom(t *testing.T, factory Factory, seed int64, steps int, keySpace int) {
	r := rand.New(rand.NewSource(seed))

	m := factory()
	oracle := btree.New(4)
	values := make(map[int]int)

	inserted := 0
	removed := 0

	for step := 0; step < steps; step += 1 {
		k := r.Intn(keySpace)
		key := ordered.IntKey(k)
		present := oracle.Has(btree.Int(k))

		switch r.Intn(3) {
		case 0, 1:
			err := m.Insert(key, step)
			if present {
				if fault.ErrDuplicateKey != err {
					t.Fatalf("step: %d insert: %d  expected duplicate, got: %v", step, k, err)
				}
			} else {
				if nil != err {
					t.Fatalf("step: %d insert: %d  error: %s", step, k, err)
				}
				oracle.ReplaceOrInsert(btree.Int(k))
				values[k] = step
				inserted += 1
			}
		case 2:
			v, err := m.Remove(key)
			if present {
				if nil != err {
					t.Fatalf("step: %d remove: %d  error: %s", step, k, err)
				}
				if values[k] != v {
					t.Fatalf("step: %d remove: %d  value: %v  expected: %d", step, k, v, values[k])
				}
				oracle.Delete(btree.Int(k))
				delete(values, k)
				removed += 1
			} else if fault.ErrKeyNotFound != err {
				t.Fatalf("step: %d remove: %d  expected not found, got: %v", step, k, err)
			}
		}

		if inserted-removed != m.Count() {
			t.Fatalf("step: %d  count: %d  expected: %d", step, m.Count(), inserted-removed)
		}
		if err := m.Check(); nil != err {
			t.Fatalf("step: %d  inconsistent tree: %s", step, err)
		}
	}

	entries := m.Entries()
	assert.Equal(t, oracle.Len(), len(entries), "final length")
	i := 0
	oracle.Ascend(func(item btree.Item) bool {
		k := int(item.(btree.Int))
		if i >= len(entries) {
			return false
		}
		assert.Equal(t, ordered.IntKey(k), entries[i].Key, "final key")
		assert.Equal(t, values[k], entries[i].Value, "final value")
		i += 1
		return true
	})
}
