// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package redblack

import (
	"github.com/bitmark-inc/ordmap/fault"
	"github.com/bitmark-inc/ordmap/ordered"
)

// Insert - insert a new node into the tree
//
// returns fault.ErrDuplicateKey, leaving the tree untouched, if the
// key is already present
func (tree *Tree) Insert(key ordered.Item, value interface{}) error {

	parent := sentinel
	less := false
	for i := tree.root; sentinel != i; {
		parent = i
		switch c := key.Compare(tree.nodes[i].key); {
		case c < 0:
			less = true
			i = tree.nodes[i].left
		case c > 0:
			less = false
			i = tree.nodes[i].right
		default:
			return fault.ErrDuplicateKey
		}
	}

	z := tree.newNode(key, value)
	tree.nodes[z].up = parent
	switch {
	case sentinel == parent:
		tree.root = z
	case less:
		tree.nodes[parent].left = z
	default:
		tree.nodes[parent].right = z
	}

	tree.insertFixup(z)
	tree.count += 1
	return nil
}

// restore colours after attaching red node z
//
// the root is black so a red parent always has a grandparent
func (tree *Tree) insertFixup(z index) {
	for tree.isRed(tree.nodes[z].up) {
		p := tree.nodes[z].up
		g := tree.nodes[p].up

		if p == tree.nodes[g].left {
			u := tree.nodes[g].right
			if tree.isRed(u) {
				tree.setColour(p, black)
				tree.setColour(u, black)
				tree.setColour(g, red)
				z = g
				continue
			}
			if z == tree.nodes[p].right {
				// inner grandchild: turn into the outer case
				z = p
				tree.rotateLeft(z)
				p = tree.nodes[z].up
			}
			tree.setColour(p, black)
			tree.setColour(g, red)
			tree.rotateRight(g)

		} else {
			u := tree.nodes[g].left
			if tree.isRed(u) {
				tree.setColour(p, black)
				tree.setColour(u, black)
				tree.setColour(g, red)
				z = g
				continue
			}
			if z == tree.nodes[p].left {
				z = p
				tree.rotateRight(z)
				p = tree.nodes[z].up
			}
			tree.setColour(p, black)
			tree.setColour(g, red)
			tree.rotateLeft(g)
		}
	}
	tree.setColour(tree.root, black)
}
