// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package redblack

import (
	"github.com/bitmark-inc/ordmap/ordered"
)

type colour int

const (
	black colour = iota // zero value so the sentinel is black
	red
)

// position of a node in the arena
type index uint32

// the sentinel slot
const sentinel index = 0

// an arena slot
type node struct {
	left   index        // left sub-tree
	right  index        // right sub-tree
	up     index        // parent, or next free slot when released
	key    ordered.Item // key part for ordering
	value  interface{}  // value part for data storage
	colour colour
}

// Tree - type to hold the arena and the root index of a tree
type Tree struct {
	nodes []node
	free  index // head of the free list
	root  index
	count int
}

// compile time check
var _ ordered.Map = (*Tree)(nil)

const initialArena = 16

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		nodes: make([]node, 1, initialArena),
		free:  sentinel,
		root:  sentinel,
		count: 0,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return sentinel == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Allocated - number of arena slots in use or on the free list
func (tree *Tree) Allocated() int {
	return len(tree.nodes) - 1
}

// Height - number of nodes on the longest root to leaf path
func (tree *Tree) Height() int {
	return tree.height(tree.root)
}

func (tree *Tree) height(i index) int {
	if sentinel == i {
		return 0
	}
	l := tree.height(tree.nodes[i].left)
	r := tree.height(tree.nodes[i].right)
	if l > r {
		return l + 1
	}
	return r + 1
}

// BlackHeight - black nodes on any root to leaf path, not counting
// the sentinel
func (tree *Tree) BlackHeight() int {
	h := 0
	for i := tree.root; sentinel != i; i = tree.nodes[i].left {
		if black == tree.nodes[i].colour {
			h += 1
		}
	}
	return h
}

// Clear - drop every node and the arena with them
func (tree *Tree) Clear() {
	tree.nodes = make([]node, 1, initialArena)
	tree.free = sentinel
	tree.root = sentinel
	tree.count = 0
}

// colour tests read the sentinel like any other node
func (tree *Tree) isRed(i index) bool {
	return red == tree.nodes[i].colour
}

func (tree *Tree) isBlack(i index) bool {
	return black == tree.nodes[i].colour
}

// the sentinel is never written
func (tree *Tree) setColour(i index, c colour) {
	if sentinel != i {
		tree.nodes[i].colour = c
	}
}
