// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// ordmap-script - generate replay scripts for ordmap-replay
//
// random scripts mix inserts, removes and lookups over a bounded key
// range; each expectation is computed from an independent btree model
// so a replay reports any disagreement between the model and a tree.
package main
