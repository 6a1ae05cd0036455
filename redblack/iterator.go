// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package redblack

import (
	"github.com/bitmark-inc/ordmap/fault"
	"github.com/bitmark-inc/ordmap/ordered"
)

// Node - handle to a node in a tree
//
// only valid until the next Insert, Remove or Clear on the tree
type Node struct {
	tree *Tree
	i    index
}

func (tree *Tree) handle(i index) Node {
	return Node{tree: tree, i: i}
}

// IsNil - true if the handle refers to the sentinel
func (n Node) IsNil() bool {
	return nil == n.tree || sentinel == n.i
}

// Key - read the key from a node item
func (n Node) Key() ordered.Item {
	if n.IsNil() {
		return nil
	}
	return n.tree.nodes[n.i].key
}

// Value - read the value from a node item
func (n Node) Value() interface{} {
	if n.IsNil() {
		return nil
	}
	return n.tree.nodes[n.i].value
}

// IsRed - colour of the node, the sentinel is black
func (n Node) IsRed() bool {
	if n.IsNil() {
		return false
	}
	return n.tree.isRed(n.i)
}

// Left - left child
func (n Node) Left() Node {
	if n.IsNil() {
		return n
	}
	return n.tree.handle(n.tree.nodes[n.i].left)
}

// Right - right child
func (n Node) Right() Node {
	if n.IsNil() {
		return n
	}
	return n.tree.handle(n.tree.nodes[n.i].right)
}

// Parent - parent node, IsNil for the root
func (n Node) Parent() Node {
	if n.IsNil() {
		return n
	}
	return n.tree.handle(n.tree.nodes[n.i].up)
}

// Root - return the root node of the tree
func (tree *Tree) Root() Node {
	return tree.handle(tree.root)
}

// First - return the node with the lowest key value
func (tree *Tree) First() Node {
	return tree.handle(tree.minimum(tree.root))
}

// Last - return the node with the highest key value
func (tree *Tree) Last() Node {
	return tree.handle(tree.maximum(tree.root))
}

// internal: lowest node in a sub-tree
func (tree *Tree) minimum(i index) index {
	if sentinel == i {
		return sentinel
	}
	for sentinel != tree.nodes[i].left {
		i = tree.nodes[i].left
	}
	return i
}

// internal: highest node in a sub-tree
func (tree *Tree) maximum(i index) index {
	if sentinel == i {
		return sentinel
	}
	for sentinel != tree.nodes[i].right {
		i = tree.nodes[i].right
	}
	return i
}

// in-order successor by parent links
func (tree *Tree) next(i index) index {
	if r := tree.nodes[i].right; sentinel != r {
		return tree.minimum(r)
	}
	p := tree.nodes[i].up
	for sentinel != p && i == tree.nodes[p].right {
		i = p
		p = tree.nodes[p].up
	}
	return p
}

// in-order predecessor by parent links
func (tree *Tree) prev(i index) index {
	if l := tree.nodes[i].left; sentinel != l {
		return tree.maximum(l)
	}
	p := tree.nodes[i].up
	for sentinel != p && i == tree.nodes[p].left {
		i = p
		p = tree.nodes[p].up
	}
	return p
}

// Next - given a node, return the node with the next highest key
// value, IsNil if no more nodes
func (n Node) Next() Node {
	if n.IsNil() {
		return n
	}
	return n.tree.handle(n.tree.next(n.i))
}

// Prev - given a node, return the node with the next lowest key
// value, IsNil if no more nodes
func (n Node) Prev() Node {
	if n.IsNil() {
		return n
	}
	return n.tree.handle(n.tree.prev(n.i))
}

// Min - entry with the lowest key
func (tree *Tree) Min() (ordered.Entry, error) {
	i := tree.minimum(tree.root)
	if sentinel == i {
		return ordered.Entry{}, fault.ErrEmptyTree
	}
	return tree.entry(i), nil
}

// Max - entry with the highest key
func (tree *Tree) Max() (ordered.Entry, error) {
	i := tree.maximum(tree.root)
	if sentinel == i {
		return ordered.Entry{}, fault.ErrEmptyTree
	}
	return tree.entry(i), nil
}

func (tree *Tree) entry(i index) ordered.Entry {
	return ordered.Entry{
		Key:   tree.nodes[i].key,
		Value: tree.nodes[i].value,
	}
}

// Walk - call visit for each entry in ascending key order until it
// returns false
func (tree *Tree) Walk(visit func(ordered.Entry) bool) error {
	if sentinel == tree.root {
		return fault.ErrEmptyTree
	}
	tree.walk(visit)
	return nil
}

func (tree *Tree) walk(visit func(ordered.Entry) bool) {
	for i := tree.minimum(tree.root); sentinel != i; i = tree.next(i) {
		if !visit(tree.entry(i)) {
			return
		}
	}
}

// Entries - all entries in ascending key order
func (tree *Tree) Entries() []ordered.Entry {
	entries := make([]ordered.Entry, 0, tree.count)
	tree.walk(func(e ordered.Entry) bool {
		entries = append(entries, e)
		return true
	})
	return entries
}

// CopyTo - fill buffer from offset with all entries in ascending key
// order, nothing is written if they do not fit
func (tree *Tree) CopyTo(buffer []ordered.Entry, offset int) error {
	if err := ordered.CheckCopy(buffer, offset, tree.count); nil != err {
		return err
	}
	for i := tree.minimum(tree.root); sentinel != i; i = tree.next(i) {
		buffer[offset] = tree.entry(i)
		offset += 1
	}
	return nil
}

// Keys - all keys in ascending order
func (tree *Tree) Keys() []ordered.Item {
	keys := make([]ordered.Item, 0, tree.count)
	for i := tree.minimum(tree.root); sentinel != i; i = tree.next(i) {
		keys = append(keys, tree.nodes[i].key)
	}
	return keys
}

// Values - all values in ascending key order
func (tree *Tree) Values() []interface{} {
	values := make([]interface{}, 0, tree.count)
	for i := tree.minimum(tree.root); sentinel != i; i = tree.next(i) {
		values = append(values, tree.nodes[i].value)
	}
	return values
}
