// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/ordmap/fault"
	"github.com/bitmark-inc/ordmap/ordered"
)

// Insert - insert a new node into the tree
//
// returns fault.ErrDuplicateKey, leaving the tree untouched, if the
// key is already present
func (tree *Tree) Insert(key ordered.Item, value interface{}) error {
	if nil != search(key, tree.root) {
		return fault.ErrDuplicateKey
	}
	tree.root, _ = insert(key, value, tree.root)
	tree.count += 1
	return nil
}

// internal routine for insert
// returns the possibly updated sub-tree root and whether its height grew
func insert(key ordered.Item, value interface{}, p *Node) (*Node, bool) {
	if nil == p { // insert new node
		return &Node{
			key:    key,
			value:  value,
			height: 1,
		}, true
	}

	h := false
	if key.Compare(p.key) < 0 {
		p.left, h = insert(key, value, p.left)
	} else {
		p.right, h = insert(key, value, p.right)
	}
	if !h {
		// sub-tree height unchanged so nothing above can be affected
		return p, false
	}

	before := p.height
	p.updateHeight()

	switch b := p.balanceFactor(); {
	case b > 1: // left branch has grown too far
		if key.Compare(p.left.key) < 0 {
			// single LL rotation
			p = rotateRight(p)
		} else {
			// double LR rotation
			p.left = rotateLeft(p.left)
			p = rotateRight(p)
		}
		// rotation restores the height from before the insert
		return p, false

	case b < -1: // right branch has grown too far
		if key.Compare(p.right.key) > 0 {
			// single RR rotation
			p = rotateLeft(p)
		} else {
			// double RL rotation
			p.right = rotateRight(p.right)
			p = rotateLeft(p)
		}
		return p, false
	}

	return p, p.height != before
}
