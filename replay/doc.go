// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package replay - apply a YAML script of map operations to an
// ordered.Map and compare each outcome with its expectation
//
// a script looks like:
//
//   variant: avl
//   key_type: integer
//   check: true
//   operations:
//     - {op: insert, key: "5", value: "five"}
//     - {op: insert, key: "5", value: "again", expect: duplicate}
//     - {op: get, key: "5", expect: "five"}
//     - {op: remove, key: "9", expect: not-found}
//     - {op: count, expect: "1"}
//
// expectations are "ok", "duplicate", "not-found" or a literal: the
// value for get and remove, a number for count and true/false for
// contains.  An empty expectation on get, count or contains accepts
// anything.
package replay
