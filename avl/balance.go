// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// nil sub-trees have height zero
func (p *Node) getHeight() int {
	if nil == p {
		return 0
	}
	return p.height
}

// recompute from the children's cached heights
func (p *Node) updateHeight() {
	l := p.left.getHeight()
	r := p.right.getHeight()
	if l > r {
		p.height = l + 1
	} else {
		p.height = r + 1
	}
}

// height(left) - height(right)
func (p *Node) balanceFactor() int {
	if nil == p {
		return 0
	}
	return p.left.getHeight() - p.right.getHeight()
}

// single left rotation, returns the new sub-tree root
//
//      p                r
//     / \              / \
//    a   r    =>      p   c
//       / \          / \
//      b   c        a   b
func rotateLeft(p *Node) *Node {
	r := p.right
	p.right = r.left
	r.left = p

	p.updateHeight()
	r.updateHeight()
	return r
}

// single right rotation, returns the new sub-tree root
//
//        p            l
//       / \          / \
//      l   c   =>   a   p
//     / \              / \
//    a   b            b   c
func rotateRight(p *Node) *Node {
	l := p.left
	p.left = l.right
	l.right = p

	p.updateHeight()
	l.updateHeight()
	return l
}
