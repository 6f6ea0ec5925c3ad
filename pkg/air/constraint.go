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
	"fmt"

	"github.com/consensys/go-gadgets/pkg/trace"
	"github.com/consensys/go-gadgets/pkg/util/field"
)

// ===================================================================
// Vanishing Constraint
// ===================================================================

// VanishingConstraint states that a given expression must evaluate to zero on
// every row of the table.  The only exceptions are rows where the expression
// is undefined (e.g. because a shifted column access falls outside the trace).
// A non-nil domain restricts the constraint to one specific row, where a
// negative domain is counted from the end of the trace (-1 being the last
// row).
type VanishingConstraint[F field.Element[F]] struct {
	// A unique identifier for this constraint.  This is primarily
	// useful for debugging.
	Handle string
	// Indicates (when nil) a global constraint that applies to all rows.
	// Otherwise, indicates a local constraint which applies to the specific row
	// given here.
	Domain *int
	// The actual constraint itself, namely an expression which
	// should evaluate to zero.
	Expr Expr[F]
}

// Accepts checks whether a vanishing constraint evaluates to zero on every row
// of a table.  If so, return nil; otherwise return a structured failure.
func (p VanishingConstraint[F]) Accepts(tr trace.Trace[F]) Failure {
	var (
		columns = p.Expr.RequiredColumns()
		bounds  = p.Expr.Bounds()
	)
	// A constraint over no columns has no rows to check.
	if len(columns) == 0 {
		return nil
	}
	//
	height := columnsHeight(tr, columns)
	//
	if p.Domain == nil {
		// Global constraint, check all well-defined rows.
		if bounds.End < height {
			for k := bounds.Start; k < height-bounds.End; k++ {
				if f := p.holdsAt(int(k), tr); f != nil {
					return f
				}
			}
		}
		//
		return nil
	}
	// Local constraint, check the specific row.
	domain := *p.Domain
	// Negative rows are calculated from the end of the trace.
	if domain < 0 {
		domain += int(height)
	}
	//
	return p.holdsAt(domain, tr)
}

func (p VanishingConstraint[F]) holdsAt(row int, tr trace.Trace[F]) Failure {
	if !p.Expr.EvalAt(row, tr).IsZero() {
		return &VanishingFailure{p.Handle, uint(row), p.Expr.RequiredCells(row)}
	}
	//
	return nil
}

// ===================================================================
// Lookup Constraint
// ===================================================================

// LookupConstraint (sometimes also called an inclusion constraint) states that
// the value of a given source expression, on every row, must occur somewhere
// in a given target (table) column.  The table column is typically taller than
// the columns the source expression reads.
type LookupConstraint[F field.Element[F]] struct {
	// A unique identifier for this constraint.  This is primarily
	// useful for debugging.
	Handle string
	// Source expression whose values must be members of the table.
	Source Expr[F]
	// Column index of the lookup table.
	Table uint
}

// Accepts checks whether every source value is a member of the table column.
// If so, return nil; otherwise return a structured failure.
func (p LookupConstraint[F]) Accepts(tr trace.Trace[F]) Failure {
	var (
		columns = p.Source.RequiredColumns()
		bounds  = p.Source.Bounds()
		table   = tr.Column(p.Table)
	)
	//
	if len(columns) == 0 {
		return nil
	}
	// Build membership set for the table column.
	rows := make(map[string]bool, table.Height())
	//
	for _, val := range table.Data() {
		rows[string(val.Bytes())] = true
	}
	//
	height := columnsHeight(tr, columns)
	// Probe every well-defined source row.
	if bounds.End < height {
		for k := bounds.Start; k < height-bounds.End; k++ {
			val := p.Source.EvalAt(int(k), tr)
			//
			if !rows[string(val.Bytes())] {
				return &LookupFailure[F]{p.Handle, k, val, p.Source.RequiredCells(int(k))}
			}
		}
	}
	//
	return nil
}

// ===================================================================
// Copy Constraint
// ===================================================================

// CopyConstraint states that two columns hold identical values, row for row.
// This is used to carry a value between columns without re-deriving it (e.g.
// anchoring a running sum at its input value).
type CopyConstraint[F field.Element[F]] struct {
	// A unique identifier for this constraint.  This is primarily
	// useful for debugging.
	Handle string
	// Column the value is carried from.
	Source uint
	// Column the value is carried to.
	Target uint
}

// Accepts checks whether the source and target columns agree on every row.
// If so, return nil; otherwise return a structured failure.
func (p CopyConstraint[F]) Accepts(tr trace.Trace[F]) Failure {
	var (
		src = tr.Column(p.Source)
		dst = tr.Column(p.Target)
		n   = min(src.Height(), dst.Height())
	)
	//
	for k := uint(0); k < n; k++ {
		if src.Get(int(k)).Cmp(dst.Get(int(k))) != 0 {
			return p.failureAt(k)
		}
	}
	// Differing heights cannot be a faithful copy.
	if src.Height() != dst.Height() {
		return p.failureAt(n)
	}
	//
	return nil
}

func (p CopyConstraint[F]) failureAt(row uint) Failure {
	cells := []trace.CellRef{
		trace.NewCellRef(p.Source, int(row)),
		trace.NewCellRef(p.Target, int(row)),
	}
	//
	return &CopyFailure{p.Handle, row, cells}
}

// ===================================================================
// Constant Assertion
// ===================================================================

// Assertion pins every value of a given column to a known constant.  This is
// how terminal conditions (e.g. a running sum ending at zero) are enforced.
type Assertion[F field.Element[F]] struct {
	// A unique identifier for this assertion.  This is primarily
	// useful for debugging.
	Handle string
	// Column being pinned.
	Column uint
	// Value the column is pinned to.
	Value F
}

// Accepts checks whether every row of the pinned column holds the asserted
// constant.  If so, return nil; otherwise return a structured failure.
func (p Assertion[F]) Accepts(tr trace.Trace[F]) Failure {
	column := tr.Column(p.Column)
	//
	for k := 0; k < int(column.Height()); k++ {
		if kth := column.Get(k); kth.Cmp(p.Value) != 0 {
			return &AssertionFailure[F]{
				Handle:        p.Handle,
				Column:        column.Name(),
				Row:           uint(k),
				Expected:      p.Value,
				Actual:        kth,
				RequiredCells: []trace.CellRef{trace.NewCellRef(p.Column, k)},
			}
		}
	}
	//
	return nil
}

// columnsHeight determines the common height of a set of columns.  Columns
// constrained together must have identical heights; anything else indicates a
// misconfigured schema and is fatal.
func columnsHeight[F field.Element[F]](tr trace.Trace[F], columns []uint) uint {
	height := tr.Column(columns[0]).Height()
	//
	for _, c := range columns[1:] {
		if ith := tr.Column(c).Height(); ith != height {
			panic(fmt.Sprintf("inconsistent column heights (%d vs %d for column \"%s\")",
				height, ith, tr.Column(c).Name()))
		}
	}
	//
	return height
}
