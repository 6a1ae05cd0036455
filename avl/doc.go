// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL height balanced tree implementing ordered.Map
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use ordered.Synchronise to restrict
//       access.
//
// Every node caches the height of its sub-tree.  Insert and delete
// recurse down to the affected leaf and recompute heights on the way
// back up, rotating any node whose children differ in height by more
// than one.  Unwinding stops doing work as soon as a sub-tree keeps
// its previous height.
//
// Keys are unique: inserting an existing key is rejected rather than
// overwriting the data already held.
package avl
