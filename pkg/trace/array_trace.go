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
	"fmt"

	"github.com/consensys/go-gadgets/pkg/util/field"
)

// ArrayTrace provides an implementation of Trace backed by arrays of field
// elements, one per column.  Columns may start out unassigned (e.g. synthetic
// columns awaiting trace expansion) and are filled exactly once.
type ArrayTrace[F field.Element[F]] struct {
	columns []*FieldColumn[F]
}

// NewArrayTrace constructs a new array trace from a given set of columns.
func NewArrayTrace[F field.Element[F]](columns []*FieldColumn[F]) *ArrayTrace[F] {
	return &ArrayTrace[F]{columns}
}

// Width returns the number of columns in this trace.
func (p *ArrayTrace[F]) Width() uint {
	return uint(len(p.columns))
}

// Column returns the ith column in this trace.
func (p *ArrayTrace[F]) Column(index uint) Column[F] {
	return p.columns[index]
}

// FillColumn assigns the data for a given column.  This fails with an error if
// the column was already assigned, since conflicting writes indicate a broken
// assignment schedule rather than an invalid witness.
func (p *ArrayTrace[F]) FillColumn(index uint, data []F) error {
	column := p.columns[index]
	//
	if column.filled {
		return fmt.Errorf("column \"%s\" already assigned", column.name)
	}
	//
	column.data = data
	column.filled = true
	//
	return nil
}

// FieldColumn provides an implementation of Column backed by an array of
// field elements.
type FieldColumn[F field.Element[F]] struct {
	// Name of this column.
	name string
	// Data held in this column.
	data []F
	// Indicates whether data has been assigned yet.
	filled bool
}

// NewFieldColumn constructs a column which is assigned from the outset.
func NewFieldColumn[F field.Element[F]](name string, data []F) *FieldColumn[F] {
	return &FieldColumn[F]{name, data, true}
}

// NewEmptyColumn constructs a column awaiting assignment (e.g. during trace
// expansion).
func NewEmptyColumn[F field.Element[F]](name string) *FieldColumn[F] {
	return &FieldColumn[F]{name, nil, false}
}

// Name returns the name of this column.
func (p *FieldColumn[F]) Name() string {
	return p.name
}

// Height determines the number of rows in this column.
func (p *FieldColumn[F]) Height() uint {
	return uint(len(p.data))
}

// Get the value at a given row in this column.  Reading an unassigned column,
// or reading out-of-bounds, indicates an internal failure and panics.
func (p *FieldColumn[F]) Get(row int) F {
	if !p.filled {
		panic(fmt.Sprintf("column \"%s\" read before assignment", p.name))
	} else if row < 0 || row >= len(p.data) {
		panic(fmt.Sprintf("column \"%s\" row %d out-of-bounds", p.name, row))
	}
	//
	return p.data[row]
}

// Data provides read access to the underlying values of this column.
func (p *FieldColumn[F]) Data() []F {
	return p.data
}
