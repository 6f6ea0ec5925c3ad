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
	"github.com/consensys/go-gadgets/pkg/trace"
	"github.com/consensys/go-gadgets/pkg/util/field"
)

// Assignment computes the values of one or more synthetic columns during trace
// expansion.  Such computations cannot be expressed within the constraint
// system itself and, hence, are used to pre-process traces prior to checking.
// Assignments run in registration order, so an assignment may read columns
// filled by earlier assignments.
type Assignment[F field.Element[F]] interface {
	// Columns identifies the columns computed by this assignment.
	Columns() []uint
	// ExpandTrace computes the values of the assigned columns and writes them
	// into the given trace.  Errors arising here (e.g. conflicting writes) are
	// engine-level errors, not witness failures.
	ExpandTrace(tr *trace.ArrayTrace[F]) error
}

// HeightOf determines the height over which a given expression is evaluated,
// namely the (common) height of the columns it reads.
func HeightOf[F field.Element[F]](tr trace.Trace[F], expr Expr[F]) uint {
	columns := expr.RequiredColumns()
	//
	if len(columns) == 0 {
		return 0
	}
	//
	return columnsHeight(tr, columns)
}

// ComputedColumn is an assignment which fills a column by evaluating an
// expression on every row.  Typical examples include carrying a value between
// columns, or materialising a derived quantity the constraints refer to.
type ComputedColumn[F field.Element[F]] struct {
	// Column being computed.
	Column uint
	// Expression whose row-wise value fills the column.
	Expr Expr[F]
}

// NewComputedColumn constructs an assignment for a column computed from a
// given expression.
func NewComputedColumn[F field.Element[F]](column uint, expr Expr[F]) *ComputedColumn[F] {
	return &ComputedColumn[F]{column, expr}
}

// Columns identifies the columns computed by this assignment.
func (p *ComputedColumn[F]) Columns() []uint {
	return []uint{p.Column}
}

// ExpandTrace computes the values of the assigned column and writes them into
// the given trace.
func (p *ComputedColumn[F]) ExpandTrace(tr *trace.ArrayTrace[F]) error {
	var (
		height = HeightOf(tr, p.Expr)
		data   = make([]F, height)
	)
	//
	for k := uint(0); k < height; k++ {
		data[k] = p.Expr.EvalAt(int(k), tr)
	}
	//
	return tr.FillColumn(p.Column, data)
}
