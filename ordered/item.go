// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ordered

import (
	"strconv"
	"strings"
)

// Item - a key item must implement the Compare function
//
// Compare returns <0, 0 or >0 when the receiver sorts before, equal
// to or after the argument.  Both sides are expected to be of the
// same concrete type.
type Item interface {
	Compare(interface{}) int // for left/right ordering of items
}

// IntKey - integer key
type IntKey int

// Compare - integer comparison for the Item interface
func (k IntKey) Compare(x interface{}) int {
	y := x.(IntKey)
	switch {
	case k < y:
		return -1
	case k > y:
		return +1
	default:
		return 0
	}
}

func (k IntKey) String() string {
	return strconv.Itoa(int(k))
}

// StringKey - string key
type StringKey string

// Compare - lexical comparison for the Item interface
func (k StringKey) Compare(x interface{}) int {
	return strings.Compare(string(k), string(x.(StringKey)))
}

func (k StringKey) String() string {
	return string(k)
}
