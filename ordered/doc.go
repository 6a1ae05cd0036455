// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ordered - the contract shared by the balanced tree maps
//
// A Map holds unique keys under a total order, each with one value,
// and enumerates them in ascending key order.  The avl and redblack
// packages provide the two implementations; callers should depend
// only on this interface so either balancer can be selected.
//
// Note: a Map is not thread safe, wrap it with Synchronise when it
//       must be shared between go routines.
package ordered
