// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package replay

import (
	"strconv"
	"strings"

	"github.com/bitmark-inc/ordmap/avl"
	"github.com/bitmark-inc/ordmap/fault"
	"github.com/bitmark-inc/ordmap/ordered"
	"github.com/bitmark-inc/ordmap/redblack"
)

// balancer names
const (
	VariantAVL      = "avl"
	VariantRedBlack = "redblack"
)

// key types
const (
	KeyInteger = "integer"
	KeyString  = "string"
)

// MakeMap - empty map for a balancer name
func MakeMap(variant string) (ordered.Map, error) {
	switch strings.ToLower(variant) {
	case VariantAVL:
		return avl.New(), nil
	case VariantRedBlack, "red-black":
		return redblack.New(), nil
	default:
		return nil, fault.ErrInvalidVariant
	}
}

// ValidKeyType - true for a supported key type name
func ValidKeyType(keyType string) bool {
	switch keyType {
	case KeyInteger, KeyString:
		return true
	}
	return false
}

// ParseKey - convert script text to a key of the given type
func ParseKey(keyType string, s string) (ordered.Item, error) {
	switch keyType {
	case KeyInteger:
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if nil != err {
			return nil, fault.ErrInvalidKey
		}
		return ordered.IntKey(n), nil
	case KeyString:
		return ordered.StringKey(s), nil
	default:
		return nil, fault.ErrInvalidKeyType
	}
}
