// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ordered

import (
	"sync"
)

type synchronised struct {
	sync.Mutex
	m Map
}

// Synchronise - wrap a map so that every call holds an exclusive lock
//
// rotations leave a tree half-modified while they run, so whole
// calls are serialised rather than using a read/write lock.  Walk
// holds the lock for the entire enumeration; the visitor must not
// call back into the map.
func Synchronise(m Map) Map {
	return &synchronised{m: m}
}

func (s *synchronised) Insert(key Item, value interface{}) error {
	s.Lock()
	defer s.Unlock()
	return s.m.Insert(key, value)
}

func (s *synchronised) Remove(key Item) (interface{}, error) {
	s.Lock()
	defer s.Unlock()
	return s.m.Remove(key)
}

func (s *synchronised) Get(key Item) (interface{}, error) {
	s.Lock()
	defer s.Unlock()
	return s.m.Get(key)
}

func (s *synchronised) TryGet(key Item) (interface{}, bool) {
	s.Lock()
	defer s.Unlock()
	return s.m.TryGet(key)
}

func (s *synchronised) ContainsKey(key Item) bool {
	s.Lock()
	defer s.Unlock()
	return s.m.ContainsKey(key)
}

func (s *synchronised) Count() int {
	s.Lock()
	defer s.Unlock()
	return s.m.Count()
}

func (s *synchronised) IsEmpty() bool {
	s.Lock()
	defer s.Unlock()
	return s.m.IsEmpty()
}

func (s *synchronised) Entries() []Entry {
	s.Lock()
	defer s.Unlock()
	return s.m.Entries()
}

func (s *synchronised) CopyTo(buffer []Entry, offset int) error {
	s.Lock()
	defer s.Unlock()
	return s.m.CopyTo(buffer, offset)
}

func (s *synchronised) Walk(visit func(Entry) bool) error {
	s.Lock()
	defer s.Unlock()
	return s.m.Walk(visit)
}

func (s *synchronised) Keys() []Item {
	s.Lock()
	defer s.Unlock()
	return s.m.Keys()
}

func (s *synchronised) Values() []interface{} {
	s.Lock()
	defer s.Unlock()
	return s.m.Values()
}

func (s *synchronised) Min() (Entry, error) {
	s.Lock()
	defer s.Unlock()
	return s.m.Min()
}

func (s *synchronised) Max() (Entry, error) {
	s.Lock()
	defer s.Unlock()
	return s.m.Max()
}

func (s *synchronised) Clear() {
	s.Lock()
	defer s.Unlock()
	s.m.Clear()
}

func (s *synchronised) Height() int {
	s.Lock()
	defer s.Unlock()
	return s.m.Height()
}

func (s *synchronised) Check() error {
	s.Lock()
	defer s.Unlock()
	return s.m.Check()
}
