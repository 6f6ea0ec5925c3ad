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
package air

import (
	"cmp"
	"slices"

	"github.com/consensys/go-gadgets/pkg/trace"
	"github.com/consensys/go-gadgets/pkg/util/field"
)

// EvalAt evaluates the sum of zero or more expressions on a given row.
func (p *Add[F]) EvalAt(row int, tr trace.Trace[F]) F {
	val := p.Args[0].EvalAt(row, tr)
	// Continue evaluating the rest
	for i := 1; i < len(p.Args); i++ {
		val = val.Add(p.Args[i].EvalAt(row, tr))
	}
	// Done
	return val
}

// EvalAt evaluates the subtraction of zero or more expressions on a given row.
func (p *Sub[F]) EvalAt(row int, tr trace.Trace[F]) F {
	val := p.Args[0].EvalAt(row, tr)
	// Continue evaluating the rest
	for i := 1; i < len(p.Args); i++ {
		val = val.Sub(p.Args[i].EvalAt(row, tr))
	}
	// Done
	return val
}

// EvalAt evaluates the product of zero or more expressions on a given row.
func (p *Mul[F]) EvalAt(row int, tr trace.Trace[F]) F {
	val := p.Args[0].EvalAt(row, tr)
	// Continue evaluating the rest
	for i := 1; i < len(p.Args); i++ {
		// Can short-circuit evaluation?
		if val.IsZero() {
			break
		}
		//
		val = val.Mul(p.Args[i].EvalAt(row, tr))
	}
	// Done
	return val
}

// EvalAt returns the constant, regardless of the given row.
func (p *Constant[F]) EvalAt(row int, tr trace.Trace[F]) F {
	return p.Value
}

// EvalAt reads the value of the accessed column on the (shifted) row.
func (p *ColumnAccess[F]) EvalAt(row int, tr trace.Trace[F]) F {
	return tr.Column(p.Column).Get(row + p.Shift)
}

// unionColumns determines the set of columns required by an array of
// expressions, in ascending order and without duplicates.
func unionColumns[F field.Element[F]](args []Expr[F]) []uint {
	var columns []uint
	//
	for _, e := range args {
		columns = append(columns, e.RequiredColumns()...)
	}
	//
	slices.Sort(columns)
	//
	return slices.Compact(columns)
}

// unionCells determines the set of cells read by an array of expressions on a
// given row, without duplicates.
func unionCells[F field.Element[F]](args []Expr[F], row int) []trace.CellRef {
	var cells []trace.CellRef
	//
	for _, e := range args {
		cells = append(cells, e.RequiredCells(row)...)
	}
	//
	slices.SortFunc(cells, func(l trace.CellRef, r trace.CellRef) int {
		if c := cmp.Compare(l.Column, r.Column); c != 0 {
			return c
		}
		//
		return cmp.Compare(l.Row, r.Row)
	})
	//
	return slices.Compact(cells)
}
