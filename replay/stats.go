// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package replay

import (
	"github.com/bitmark-inc/ordmap/counter"
)

// Stats - totals that may be shared between engines running in
// parallel
type Stats struct {
	Steps      counter.Counter
	Inserts    counter.Counter // successful inserts
	Removes    counter.Counter // successful removes
	Lookups    counter.Counter // get and contains
	Checks     counter.Counter
	Mismatches counter.Counter
}
