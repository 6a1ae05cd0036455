// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ordered

import (
	"github.com/bitmark-inc/ordmap/fault"
)

// Entry - one key/value pair from a map
type Entry struct {
	Key   Item
	Value interface{}
}

// Map - an ordered key to value map
//
// errors are the fault package singletons:
//   Insert of a present key:          fault.ErrDuplicateKey
//   Remove or Get of an absent key:   fault.ErrKeyNotFound
//   Walk, Min or Max on an empty map: fault.ErrEmptyTree
// a failed call never modifies the map
type Map interface {
	Insert(key Item, value interface{}) error
	Remove(key Item) (interface{}, error)
	Get(key Item) (interface{}, error)
	TryGet(key Item) (interface{}, bool)
	ContainsKey(key Item) bool
	Count() int
	IsEmpty() bool

	// enumeration in ascending key order
	Entries() []Entry
	CopyTo(buffer []Entry, offset int) error
	Walk(visit func(Entry) bool) error
	Keys() []Item
	Values() []interface{}
	Min() (Entry, error)
	Max() (Entry, error)

	Clear()
	Height() int
	Check() error
}

// CheckCopy - verify that count entries fit in buffer from offset
func CheckCopy(buffer []Entry, offset int, count int) error {
	if offset < 0 || offset > len(buffer) {
		return fault.ErrInvalidOffset
	}
	if len(buffer)-offset < count {
		return fault.ErrBufferTooSmall
	}
	return nil
}
