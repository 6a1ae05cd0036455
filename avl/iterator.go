// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/ordmap/fault"
	"github.com/bitmark-inc/ordmap/ordered"
)

// First - return the node with the lowest key value
func (tree *Tree) First() *Node {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (tree *Node) first() *Node {
	if tree == nil {
		return nil
	}
	for tree.left != nil {
		tree = tree.left
	}
	return tree
}

// Last - return the node with the highest key value
func (tree *Tree) Last() *Node {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (tree *Node) last() *Node {
	if tree == nil {
		return nil
	}
	for tree.right != nil {
		tree = tree.right
	}
	return tree
}

// Min - entry with the lowest key
func (tree *Tree) Min() (ordered.Entry, error) {
	p := tree.First()
	if nil == p {
		return ordered.Entry{}, fault.ErrEmptyTree
	}
	return ordered.Entry{Key: p.key, Value: p.value}, nil
}

// Max - entry with the highest key
func (tree *Tree) Max() (ordered.Entry, error) {
	p := tree.Last()
	if nil == p {
		return ordered.Entry{}, fault.ErrEmptyTree
	}
	return ordered.Entry{Key: p.key, Value: p.value}, nil
}

// Walk - call visit for each entry in ascending key order until it
// returns false
func (tree *Tree) Walk(visit func(ordered.Entry) bool) error {
	if nil == tree.root {
		return fault.ErrEmptyTree
	}
	walk(tree.root, visit)
	return nil
}

// in-order traversal, false once the visitor asks to stop
func walk(p *Node, visit func(ordered.Entry) bool) bool {
	if nil == p {
		return true
	}
	return walk(p.left, visit) &&
		visit(ordered.Entry{Key: p.key, Value: p.value}) &&
		walk(p.right, visit)
}

// Entries - all entries in ascending key order
func (tree *Tree) Entries() []ordered.Entry {
	entries := make([]ordered.Entry, 0, tree.count)
	walk(tree.root, func(e ordered.Entry) bool {
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
	i := offset
	walk(tree.root, func(e ordered.Entry) bool {
		buffer[i] = e
		i += 1
		return true
	})
	return nil
}

// Keys - all keys in ascending order
func (tree *Tree) Keys() []ordered.Item {
	keys := make([]ordered.Item, 0, tree.count)
	walk(tree.root, func(e ordered.Entry) bool {
		keys = append(keys, e.Key)
		return true
	})
	return keys
}

// Values - all values in ascending key order
func (tree *Tree) Values() []interface{} {
	values := make([]interface{}, 0, tree.count)
	walk(tree.root, func(e ordered.Entry) bool {
		values = append(values, e.Value)
		return true
	})
	return values
}
