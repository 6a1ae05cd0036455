// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/ordmap/fault"
	"github.com/bitmark-inc/ordmap/ordered"
)

// Check - verify ordering, cached heights, balance and count
func (tree *Tree) Check() error {
	n, err := check(tree.root, nil, nil)
	if nil != err {
		return err
	}
	if n != tree.count {
		return fault.ErrCountMismatch
	}
	return nil
}

// internal: consistency checker, every key in p must lie strictly
// between low and high (nil means unbounded)
// returns the number of nodes in the sub-tree
func check(p *Node, low ordered.Item, high ordered.Item) (int, error) {
	if nil == p {
		return 0, nil
	}
	if nil != low && p.key.Compare(low) <= 0 {
		return 0, fault.ErrOrderViolation
	}
	if nil != high && p.key.Compare(high) >= 0 {
		return 0, fault.ErrOrderViolation
	}

	nl, err := check(p.left, low, p.key)
	if nil != err {
		return 0, err
	}
	nr, err := check(p.right, p.key, high)
	if nil != err {
		return 0, err
	}

	l := p.left.getHeight()
	r := p.right.getHeight()
	expected := l + 1
	if r > l {
		expected = r + 1
	}
	if p.height != expected {
		return 0, fault.ErrHeightMismatch
	}
	if l-r > 1 || r-l > 1 {
		return 0, fault.ErrUnbalanced
	}
	return nl + nr + 1, nil
}
