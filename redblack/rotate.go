// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package redblack

// replace the link from the parent of x to x with one to y
func (tree *Tree) replaceChild(x index, parent index, y index) {
	switch {
	case sentinel == parent:
		tree.root = y
	case x == tree.nodes[parent].left:
		tree.nodes[parent].left = y
	default:
		tree.nodes[parent].right = y
	}
}

//      x              y
//     / \            / \
//    a   y    =>    x   c
//       / \        / \
//      b   c      a   b
func (tree *Tree) rotateLeft(x index) {
	y := tree.nodes[x].right
	b := tree.nodes[y].left

	tree.nodes[x].right = b
	if sentinel != b {
		tree.nodes[b].up = x
	}

	parent := tree.nodes[x].up
	tree.nodes[y].up = parent
	tree.replaceChild(x, parent, y)

	tree.nodes[y].left = x
	tree.nodes[x].up = y
}

//        x          y
//       / \        / \
//      y   c  =>  a   x
//     / \            / \
//    a   b          b   c
func (tree *Tree) rotateRight(x index) {
	y := tree.nodes[x].left
	b := tree.nodes[y].right

	tree.nodes[x].left = b
	if sentinel != b {
		tree.nodes[b].up = x
	}

	parent := tree.nodes[x].up
	tree.nodes[y].up = parent
	tree.replaceChild(x, parent, y)

	tree.nodes[y].right = x
	tree.nodes[x].up = y
}
