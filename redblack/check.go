// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package redblack

import (
	"github.com/bitmark-inc/ordmap/fault"
	"github.com/bitmark-inc/ordmap/ordered"
)

// Check - verify sentinel, colours, black heights, parent links,
// ordering and count
func (tree *Tree) Check() error {
	s := tree.nodes[sentinel]
	if sentinel != s.left || sentinel != s.right || sentinel != s.up ||
		nil != s.key || nil != s.value || black != s.colour {
		return fault.ErrSentinelModified
	}

	if sentinel == tree.root {
		if 0 != tree.count {
			return fault.ErrCountMismatch
		}
		return nil
	}
	if tree.isRed(tree.root) {
		return fault.ErrRedRoot
	}
	if sentinel != tree.nodes[tree.root].up {
		return fault.ErrParentMismatch
	}

	n, _, err := tree.check(tree.root, nil, nil)
	if nil != err {
		return err
	}
	if n != tree.count {
		return fault.ErrCountMismatch
	}
	return nil
}

// internal: consistency checker, every key below i must lie strictly
// between low and high (nil means unbounded)
// returns the number of nodes and the black height of the sub-tree
func (tree *Tree) check(i index, low ordered.Item, high ordered.Item) (int, int, error) {
	if sentinel == i {
		return 0, 1, nil
	}
	p := &tree.nodes[i]

	if nil != low && p.key.Compare(low) <= 0 {
		return 0, 0, fault.ErrOrderViolation
	}
	if nil != high && p.key.Compare(high) >= 0 {
		return 0, 0, fault.ErrOrderViolation
	}

	if red == p.colour && (tree.isRed(p.left) || tree.isRed(p.right)) {
		return 0, 0, fault.ErrRedChildOfRed
	}
	if sentinel != p.left && i != tree.nodes[p.left].up {
		return 0, 0, fault.ErrParentMismatch
	}
	if sentinel != p.right && i != tree.nodes[p.right].up {
		return 0, 0, fault.ErrParentMismatch
	}

	nl, bl, err := tree.check(p.left, low, p.key)
	if nil != err {
		return 0, 0, err
	}
	nr, br, err := tree.check(p.right, p.key, high)
	if nil != err {
		return 0, 0, err
	}
	if bl != br {
		return 0, 0, fault.ErrBlackHeightMismatch
	}
	if black == p.colour {
		bl += 1
	}
	return nl + nr + 1, bl, nil
}
