// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/ordmap/fault"
	"github.com/bitmark-inc/ordmap/ordered"
)

// Search - find a specific item, nil if not present
func (tree *Tree) Search(key ordered.Item) *Node {
	return search(key, tree.root)
}

func search(key ordered.Item, tree *Node) *Node {
	for nil != tree {
		switch c := key.Compare(tree.key); {
		case c < 0:
			tree = tree.left
		case c > 0:
			tree = tree.right
		default:
			return tree
		}
	}
	return nil
}

// Get - value stored with key or fault.ErrKeyNotFound
func (tree *Tree) Get(key ordered.Item) (interface{}, error) {
	p := search(key, tree.root)
	if nil == p {
		return nil, fault.ErrKeyNotFound
	}
	return p.value, nil
}

// TryGet - value stored with key and true, or nil and false
func (tree *Tree) TryGet(key ordered.Item) (interface{}, bool) {
	p := search(key, tree.root)
	if nil == p {
		return nil, false
	}
	return p.value, true
}

// ContainsKey - true if key is present
func (tree *Tree) ContainsKey(key ordered.Item) bool {
	return nil != search(key, tree.root)
}
