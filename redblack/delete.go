// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package redblack

import (
	"github.com/bitmark-inc/ordmap/fault"
	"github.com/bitmark-inc/ordmap/ordered"
)

// Remove - removes a specific item from the tree
//
// returns the value that was stored with the key, or
// fault.ErrKeyNotFound, leaving the tree untouched, if it is absent
func (tree *Tree) Remove(key ordered.Item) (interface{}, error) {
	z := tree.search(key)
	if sentinel == z {
		return nil, fault.ErrKeyNotFound
	}
	value := tree.nodes[z].value

	// x takes the place of the node actually spliced out, xParent is
	// kept alongside since the sentinel cannot record it
	var x, xParent index
	removed := tree.nodes[z].colour

	switch {
	case sentinel == tree.nodes[z].left:
		x = tree.nodes[z].right
		xParent = tree.nodes[z].up
		tree.transplant(z, x)

	case sentinel == tree.nodes[z].right:
		x = tree.nodes[z].left
		xParent = tree.nodes[z].up
		tree.transplant(z, x)

	default:
		y := tree.minimum(tree.nodes[z].right)
		removed = tree.nodes[y].colour
		x = tree.nodes[y].right

		if z == tree.nodes[y].up {
			xParent = y
		} else {
			xParent = tree.nodes[y].up
			tree.transplant(y, x)
			r := tree.nodes[z].right
			tree.nodes[y].right = r
			tree.nodes[r].up = y
		}

		tree.transplant(z, y)
		l := tree.nodes[z].left
		tree.nodes[y].left = l
		tree.nodes[l].up = y
		tree.nodes[y].colour = tree.nodes[z].colour
	}

	if black == removed {
		tree.deleteFixup(x, xParent)
	}

	tree.freeNode(z)
	tree.count -= 1
	return value, nil
}

// put v in the place of u, v may be the sentinel
func (tree *Tree) transplant(u index, v index) {
	parent := tree.nodes[u].up
	tree.replaceChild(u, parent, v)
	if sentinel != v {
		tree.nodes[v].up = parent
	}
}

// restore black heights after a black node was spliced out from
// above x
func (tree *Tree) deleteFixup(x index, xParent index) {
	for x != tree.root && tree.isBlack(x) {

		if x == tree.nodes[xParent].left {
			w := tree.nodes[xParent].right
			if tree.isRed(w) {
				tree.setColour(w, black)
				tree.setColour(xParent, red)
				tree.rotateLeft(xParent)
				w = tree.nodes[xParent].right
			}
			if tree.isBlack(tree.nodes[w].left) && tree.isBlack(tree.nodes[w].right) {
				tree.setColour(w, red)
				x = xParent
				xParent = tree.nodes[x].up
				continue
			}
			if tree.isBlack(tree.nodes[w].right) {
				// far child black: rotate the near child out first
				tree.setColour(tree.nodes[w].left, black)
				tree.setColour(w, red)
				tree.rotateRight(w)
				w = tree.nodes[xParent].right
			}
			tree.setColour(w, tree.nodes[xParent].colour)
			tree.setColour(xParent, black)
			tree.setColour(tree.nodes[w].right, black)
			tree.rotateLeft(xParent)
			x = tree.root

		} else {
			w := tree.nodes[xParent].left
			if tree.isRed(w) {
				tree.setColour(w, black)
				tree.setColour(xParent, red)
				tree.rotateRight(xParent)
				w = tree.nodes[xParent].left
			}
			if tree.isBlack(tree.nodes[w].right) && tree.isBlack(tree.nodes[w].left) {
				tree.setColour(w, red)
				x = xParent
				xParent = tree.nodes[x].up
				continue
			}
			if tree.isBlack(tree.nodes[w].left) {
				tree.setColour(tree.nodes[w].right, black)
				tree.setColour(w, red)
				tree.rotateLeft(w)
				w = tree.nodes[xParent].left
			}
			tree.setColour(w, tree.nodes[xParent].colour)
			tree.setColour(xParent, black)
			tree.setColour(tree.nodes[w].left, black)
			tree.rotateRight(xParent)
			x = tree.root
		}
	}
	tree.setColour(x, black)
}
