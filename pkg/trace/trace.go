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
package trace

import (
	"github.com/consensys/go-gadgets/pkg/util/field"
)

// Trace describes a set of named columns.  Columns are not required to have
// the same height: for example, a lookup table column is typically taller (or
// shorter) than the witness columns probing it.
type Trace[F field.Element[F]] interface {
	// Column returns the ith column in this trace.
	Column(index uint) Column[F]
	// Width returns the number of columns in this trace.
	Width() uint
}

// Column describes an individual column of data within a trace.
type Column[F field.Element[F]] interface {
	// Name returns the name of this column.
	Name() string
	// Get the value at a given row in this column.
	Get(row int) F
	// Height determines the number of rows in this column.
	Height() uint
	// Data provides read access to the underlying values of this column.
	Data() []F
}

// CellRef identifies a unique cell within a given trace.
type CellRef struct {
	// Column index of the cell.
	Column uint
	// Row of the cell.
	Row int
}

// NewCellRef constructs a new cell reference.
func NewCellRef(column uint, row int) CellRef {
	return CellRef{column, row}
}

// RawColumn represents a column of data for a given named column, as provided
// by the caller (i.e. before trace expansion).
type RawColumn[F field.Element[F]] struct {
	// Name of the column.
	Name string
	// Data held in the column.
	Data []F
}
