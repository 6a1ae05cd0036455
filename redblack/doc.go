// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package redblack - colour balanced binary search tree
//
// nodes live in a per-tree arena addressed by index.  Slot zero is
// the sentinel that every absent link points at; it is black, has no
// key and is never written, so trees share no state.
//
// released slots are linked into a free list through their parent
// index and reused by later inserts.
//
// a tree is not safe for concurrent use, see ordered.Synchronise
package redblack
