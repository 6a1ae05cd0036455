// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package redblack

import (
	"github.com/bitmark-inc/ordmap/fault"
	"github.com/bitmark-inc/ordmap/ordered"
)

// Search - find a specific item, the returned node IsNil if not present
func (tree *Tree) Search(key ordered.Item) Node {
	return Node{tree: tree, i: tree.search(key)}
}

func (tree *Tree) search(key ordered.Item) index {
	i := tree.root
	for sentinel != i {
		switch c := key.Compare(tree.nodes[i].key); {
		case c < 0:
			i = tree.nodes[i].left
		case c > 0:
			i = tree.nodes[i].right
		default:
			return i
		}
	}
	return sentinel
}

// Get - value stored with key or fault.ErrKeyNotFound
func (tree *Tree) Get(key ordered.Item) (interface{}, error) {
	i := tree.search(key)
	if sentinel == i {
		return nil, fault.ErrKeyNotFound
	}
	return tree.nodes[i].value, nil
}

// TryGet - value stored with key and true, or nil and false
func (tree *Tree) TryGet(key ordered.Item) (interface{}, bool) {
	i := tree.search(key)
	if sentinel == i {
		return nil, false
	}
	return tree.nodes[i].value, true
}

// ContainsKey - true if key is present
func (tree *Tree) ContainsKey(key ordered.Item) bool {
	return sentinel != tree.search(key)
}
