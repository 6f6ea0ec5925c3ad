// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package gadgets

import (
	"fmt"

	"github.com/consensys/go-gadgets/pkg/air"
	"github.com/consensys/go-gadgets/pkg/trace"
	"github.com/consensys/go-gadgets/pkg/util/field"
)

// MaxTableBitwidth caps the width of a range lookup table.  Beyond this the
// table column (2^bitwidth rows) stops being practical, and a decomposition
// into narrower chunks should be used instead.
const MaxTableBitwidth = 16

// RangeTable is an opaque handle on a lookup table enumerating the integers
// 0..2^bitwidth-1.  The table is built exactly once per schema and shared
// read-only by every constraint targeting it.
type RangeTable struct {
	// Column holding the table values.
	column uint
	// Number of bits enumerated by the table.
	bitwidth uint
}

// NewRangeTable declares (or retrieves) the lookup table for a given bitwidth
// within a given schema.  The bitwidth is a setup-time parameter, so anything
// out of bounds is fatal.
func NewRangeTable[F field.Element[F]](bitwidth uint, schema air.Builder[F]) *RangeTable {
	if bitwidth == 0 || bitwidth > MaxTableBitwidth {
		panic(fmt.Sprintf("table bitwidth %d outside [1..%d]", bitwidth, MaxTableBitwidth))
	} else if bitwidth >= field.BitWidth[F]() {
		// Entries would wrap around the modulus, breaking membership.
		panic(fmt.Sprintf("table bitwidth %d exceeds field capacity", bitwidth))
	}
	//
	name := fmt.Sprintf("u%d", bitwidth)
	// Reuse existing table (if any), so all gadgets share one instance.
	if index, ok := schema.IndexOf(name); ok {
		return &RangeTable{index, bitwidth}
	}
	//
	index := schema.AddColumn(name, true)
	schema.AddAssignment(&tableAssignment[F]{index, bitwidth})
	//
	return &RangeTable{index, bitwidth}
}

// Column returns the handle of the column holding the table values.
func (p *RangeTable) Column() uint {
	return p.column
}

// Bitwidth returns the number of bits enumerated by this table.
func (p *RangeTable) Bitwidth() uint {
	return p.bitwidth
}

// tableAssignment fills a range table column with the integers 0..2^bitwidth-1
// in order.
type tableAssignment[F field.Element[F]] struct {
	column   uint
	bitwidth uint
}

// Columns identifies the columns computed by this assignment.
func (p *tableAssignment[F]) Columns() []uint {
	return []uint{p.column}
}

// ExpandTrace fills the table column.
func (p *tableAssignment[F]) ExpandTrace(tr *trace.ArrayTrace[F]) error {
	data := make([]F, 1<<p.bitwidth)
	//
	for i := range data {
		data[i] = field.Uint64[F](uint64(i))
	}
	//
	return tr.FillColumn(p.column, data)
}
