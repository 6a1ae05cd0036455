// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package redblack

import (
	"github.com/bitmark-inc/ordmap/ordered"
)

// allocate a new red node, reuses released slots if any are available
//
// the arena may move, so callers must not hold a *node across this
func (tree *Tree) newNode(key ordered.Item, value interface{}) index {
	n := node{
		left:   sentinel,
		right:  sentinel,
		up:     sentinel,
		key:    key,
		value:  value,
		colour: red,
	}
	if sentinel == tree.free {
		tree.nodes = append(tree.nodes, n)
		return index(len(tree.nodes) - 1)
	}
	i := tree.free
	tree.free = tree.nodes[i].up
	tree.nodes[i] = n // ensure free list pointer is cleared
	return i
}

// release a slot to the free list
func (tree *Tree) freeNode(i index) {
	if sentinel == i {
		panic("redblack: free of sentinel")
	}
	tree.nodes[i] = node{
		up: tree.free, // use as free list pointer
	}
	tree.free = i
}
