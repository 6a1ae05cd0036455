// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/ordmap/ordered"
)

// Node - a node in the tree
type Node struct {
	left   *Node        // left sub-tree
	right  *Node        // right sub-tree
	key    ordered.Item // key part for ordering
	value  interface{}  // value part for data storage
	height int          // height of sub-tree rooted here, >= 1
}

// Tree - type to hold the root node of a tree
type Tree struct {
	root  *Node
	count int
}

// compile time check
var _ ordered.Map = (*Tree)(nil)

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		root:  nil,
		count: 0,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Height - height of the whole tree, zero when empty
func (tree *Tree) Height() int {
	return tree.root.getHeight()
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// Clear - drop every node
func (tree *Tree) Clear() {
	tree.root = nil
	tree.count = 0
}

// Key - read the key from a node item
func (p *Node) Key() ordered.Item {
	return p.key
}

// Value - read the value from a node item
func (p *Node) Value() interface{} {
	return p.value
}

// Height - cached height of the sub-tree rooted at this node
func (p *Node) Height() int {
	return p.height
}

// Left - left child or nil
func (p *Node) Left() *Node {
	return p.left
}

// Right - right child or nil
func (p *Node) Right() *Node {
	return p.right
}
