// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/ordmap/fault"
	"github.com/bitmark-inc/ordmap/ordered"
)

// Remove - removes a specific item from the tree
//
// returns the value that was stored with the key, or
// fault.ErrKeyNotFound, leaving the tree untouched, if it is absent
func (tree *Tree) Remove(key ordered.Item) (interface{}, error) {
	p := search(key, tree.root)
	if nil == p {
		return nil, fault.ErrKeyNotFound
	}
	value := p.value // preserve the value part before any successor copy

	tree.root, _ = remove(key, tree.root)
	tree.count -= 1
	return value, nil
}

// internal delete routine, the key is known to be present
// returns the possibly updated sub-tree root and whether its height shrank
func remove(key ordered.Item, p *Node) (*Node, bool) {
	h := false
	switch c := key.Compare(p.key); {
	case c < 0:
		p.left, h = remove(key, p.left)
	case c > 0:
		p.right, h = remove(key, p.right)
	default: // found: delete p
		if nil == p.left {
			return p.right, true
		}
		if nil == p.right {
			return p.left, true
		}

		// two children: take over the in-order successor's data and
		// delete the successor node from the right sub-tree instead
		var successor *Node
		p.right, successor, h = removeFirst(p.right)
		p.key = successor.key
		p.value = successor.value
	}
	if !h {
		return p, false
	}
	return rebalance(p)
}

// detach the lowest node of a sub-tree
// returns the new sub-tree root, the detached node and whether the
// height shrank
func removeFirst(p *Node) (*Node, *Node, bool) {
	if nil == p.left {
		return p.right, p, true
	}
	var first *Node
	h := false
	p.left, first, h = removeFirst(p.left)
	if !h {
		return p, first, false
	}
	p, h = rebalance(p)
	return p, first, h
}

// delete: tree balancer
//
// called after one sub-tree of p has shrunk by one level.  The
// rotation case follows the balance of the taller child since the
// deleted key can no longer be used to choose it.
func rebalance(p *Node) (*Node, bool) {
	before := p.height
	p.updateHeight()

	switch b := p.balanceFactor(); {
	case b > 1: // right branch has shrunk
		if p.left.balanceFactor() >= 0 {
			// single LL rotation
			p = rotateRight(p)
		} else {
			// double LR rotation
			p.left = rotateLeft(p.left)
			p = rotateRight(p)
		}

	case b < -1: // left branch has shrunk
		if p.right.balanceFactor() <= 0 {
			// single RR rotation
			p = rotateLeft(p)
		} else {
			// double RL rotation
			p.right = rotateRight(p.right)
			p = rotateLeft(p)
		}
	}

	return p, p.height != before
}
