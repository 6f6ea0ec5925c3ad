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
	"github.com/consensys/go-gadgets/pkg/util"
	"github.com/consensys/go-gadgets/pkg/util/field"
)

// Expr represents an expression over trace columns in the Arithmetic
// Intermediate Representation (AIR).  Any expression in this form can be
// lowered into a polynomial, and evaluated directly against a trace.
type Expr[F field.Element[F]] interface {
	util.Boundable
	fmt.Stringer

	// Add two expressions together, producing a third.
	Add(Expr[F]) Expr[F]

	// Subtract one expression from another
	Sub(Expr[F]) Expr[F]

	// Multiply two expressions together, producing a third.
	Mul(Expr[F]) Expr[F]

	// Equate one expression with another
	Equate(Expr[F]) Expr[F]

	// EvalAt evaluates this expression on a given row of a given trace.
	EvalAt(row int, tr trace.Trace[F]) F

	// RequiredColumns returns the set of columns on which this expression
	// depends, in ascending order.
	RequiredColumns() []uint

	// RequiredCells returns the set of trace cells read when evaluating this
	// expression on the given row.
	RequiredCells(row int) []trace.CellRef

	// AsConstant determines whether or not this is a constant expression.  If
	// so, the constant is returned; otherwise, nil is returned.  NOTE: this
	// does not perform any form of simplification to determine this.
	AsConstant() *F
}

// ============================================================================
// Addition
// ============================================================================

// Add represents the sum over zero or more expressions.
type Add[F field.Element[F]] struct{ Args []Expr[F] }

// Add two expressions together, producing a third.
func (p *Add[F]) Add(other Expr[F]) Expr[F] { return &Add[F]{Args: []Expr[F]{p, other}} }

// Sub (subtract) one expression from another.
func (p *Add[F]) Sub(other Expr[F]) Expr[F] { return &Sub[F]{Args: []Expr[F]{p, other}} }

// Mul (multiply) two expressions together, producing a third.
func (p *Add[F]) Mul(other Expr[F]) Expr[F] { return &Mul[F]{Args: []Expr[F]{p, other}} }

// Equate one expression with another (equivalent to subtraction).
func (p *Add[F]) Equate(other Expr[F]) Expr[F] { return &Sub[F]{Args: []Expr[F]{p, other}} }

// RequiredColumns returns the set of columns on which this expression depends.
func (p *Add[F]) RequiredColumns() []uint { return unionColumns(p.Args) }

// RequiredCells returns the set of trace cells read when evaluating this
// expression on the given row.
func (p *Add[F]) RequiredCells(row int) []trace.CellRef { return unionCells(p.Args, row) }

// Bounds returns max shift in either the negative (left) or positive
// direction (right).
func (p *Add[F]) Bounds() util.Bounds { return util.BoundsForArray(p.Args) }

// AsConstant determines whether or not this is a constant expression.
func (p *Add[F]) AsConstant() *F { return nil }

// ============================================================================
// Subtraction
// ============================================================================

// Sub represents the subtraction over zero or more expressions.
type Sub[F field.Element[F]] struct{ Args []Expr[F] }

// Add two expressions together, producing a third.
func (p *Sub[F]) Add(other Expr[F]) Expr[F] { return &Add[F]{Args: []Expr[F]{p, other}} }

// Sub (subtract) one expression from another.
func (p *Sub[F]) Sub(other Expr[F]) Expr[F] { return &Sub[F]{Args: []Expr[F]{p, other}} }

// Mul (multiply) two expressions together, producing a third.
func (p *Sub[F]) Mul(other Expr[F]) Expr[F] { return &Mul[F]{Args: []Expr[F]{p, other}} }

// Equate one expression with another (equivalent to subtraction).
func (p *Sub[F]) Equate(other Expr[F]) Expr[F] { return &Sub[F]{Args: []Expr[F]{p, other}} }

// RequiredColumns returns the set of columns on which this expression depends.
func (p *Sub[F]) RequiredColumns() []uint { return unionColumns(p.Args) }

// RequiredCells returns the set of trace cells read when evaluating this
// expression on the given row.
func (p *Sub[F]) RequiredCells(row int) []trace.CellRef { return unionCells(p.Args, row) }

// Bounds returns max shift in either the negative (left) or positive
// direction (right).
func (p *Sub[F]) Bounds() util.Bounds { return util.BoundsForArray(p.Args) }

// AsConstant determines whether or not this is a constant expression.
func (p *Sub[F]) AsConstant() *F { return nil }

// ============================================================================
// Multiplication
// ============================================================================

// Mul represents the product over zero or more expressions.
type Mul[F field.Element[F]] struct{ Args []Expr[F] }

// Add two expressions together, producing a third.
func (p *Mul[F]) Add(other Expr[F]) Expr[F] { return &Add[F]{Args: []Expr[F]{p, other}} }

// Sub (subtract) one expression from another.
func (p *Mul[F]) Sub(other Expr[F]) Expr[F] { return &Sub[F]{Args: []Expr[F]{p, other}} }

// Mul (multiply) two expressions together, producing a third.
func (p *Mul[F]) Mul(other Expr[F]) Expr[F] { return &Mul[F]{Args: []Expr[F]{p, other}} }

// Equate one expression with another (equivalent to subtraction).
func (p *Mul[F]) Equate(other Expr[F]) Expr[F] { return &Sub[F]{Args: []Expr[F]{p, other}} }

// RequiredColumns returns the set of columns on which this expression depends.
func (p *Mul[F]) RequiredColumns() []uint { return unionColumns(p.Args) }

// RequiredCells returns the set of trace cells read when evaluating this
// expression on the given row.
func (p *Mul[F]) RequiredCells(row int) []trace.CellRef { return unionCells(p.Args, row) }

// Bounds returns max shift in either the negative (left) or positive
// direction (right).
func (p *Mul[F]) Bounds() util.Bounds { return util.BoundsForArray(p.Args) }

// AsConstant determines whether or not this is a constant expression.
func (p *Mul[F]) AsConstant() *F { return nil }

// ============================================================================
// Constant
// ============================================================================

// Constant represents a constant value within an expression.
type Constant[F field.Element[F]] struct{ Value F }

// NewConst construct an AIR expression representing a given constant.
func NewConst[F field.Element[F]](val F) Expr[F] {
	return &Constant[F]{val}
}

// NewConst64 construct an AIR expression representing a given constant from a
// uint64.
func NewConst64[F field.Element[F]](val uint64) Expr[F] {
	return &Constant[F]{field.Uint64[F](val)}
}

// Add two expressions together, producing a third.
func (p *Constant[F]) Add(other Expr[F]) Expr[F] { return &Add[F]{Args: []Expr[F]{p, other}} }

// Sub (subtract) one expression from another.
func (p *Constant[F]) Sub(other Expr[F]) Expr[F] { return &Sub[F]{Args: []Expr[F]{p, other}} }

// Mul (multiply) two expressions together, producing a third.
func (p *Constant[F]) Mul(other Expr[F]) Expr[F] { return &Mul[F]{Args: []Expr[F]{p, other}} }

// Equate one expression with another (equivalent to subtraction).
func (p *Constant[F]) Equate(other Expr[F]) Expr[F] { return &Sub[F]{Args: []Expr[F]{p, other}} }

// RequiredColumns returns the set of columns on which this expression depends.
func (p *Constant[F]) RequiredColumns() []uint { return nil }

// RequiredCells returns the set of trace cells read when evaluating this
// expression on the given row.  In this case, that is the empty set.
func (p *Constant[F]) RequiredCells(row int) []trace.CellRef { return nil }

// Bounds returns max shift in either the negative (left) or positive
// direction (right).  A constant has zero shift.
func (p *Constant[F]) Bounds() util.Bounds { return util.EMPTY_BOUND }

// AsConstant determines whether or not this is a constant expression.
func (p *Constant[F]) AsConstant() *F { return &p.Value }

// ============================================================================
// ColumnAccess
// ============================================================================

// ColumnAccess represents reading the value held at a given column in the
// tabular context.  Furthermore, the current row maybe shifted up (or down) by
// a given amount.  Suppose we are evaluating a constraint on row k=5 which
// contains the column accesses "STAMP(0)" and "CT(-1)".  Then, STAMP(0)
// accesses the STAMP column at row 5, whilst CT(-1) accesses the CT column at
// row 4.
type ColumnAccess[F field.Element[F]] struct {
	Column uint
	Shift  int
}

// NewColumnAccess constructs an AIR expression representing the value of a
// given column on the current row (or a row shifted relative to it).
func NewColumnAccess[F field.Element[F]](column uint, shift int) Expr[F] {
	return &ColumnAccess[F]{column, shift}
}

// Add two expressions together, producing a third.
func (p *ColumnAccess[F]) Add(other Expr[F]) Expr[F] { return &Add[F]{Args: []Expr[F]{p, other}} }

// Sub (subtract) one expression from another.
func (p *ColumnAccess[F]) Sub(other Expr[F]) Expr[F] { return &Sub[F]{Args: []Expr[F]{p, other}} }

// Mul (multiply) two expressions together, producing a third.
func (p *ColumnAccess[F]) Mul(other Expr[F]) Expr[F] { return &Mul[F]{Args: []Expr[F]{p, other}} }

// Equate one expression with another (equivalent to subtraction).
func (p *ColumnAccess[F]) Equate(other Expr[F]) Expr[F] { return &Sub[F]{Args: []Expr[F]{p, other}} }

// RequiredColumns returns the set of columns on which this expression depends.
func (p *ColumnAccess[F]) RequiredColumns() []uint { return []uint{p.Column} }

// RequiredCells returns the set of trace cells read when evaluating this
// expression on the given row.
func (p *ColumnAccess[F]) RequiredCells(row int) []trace.CellRef {
	return []trace.CellRef{trace.NewCellRef(p.Column, row+p.Shift)}
}

// Bounds returns max shift in either the negative (left) or positive
// direction (right).
func (p *ColumnAccess[F]) Bounds() util.Bounds {
	if p.Shift >= 0 {
		// Positive shift
		return util.NewBounds(0, uint(p.Shift))
	}
	// Negative shift
	return util.NewBounds(uint(-p.Shift), 0)
}

// AsConstant determines whether or not this is a constant expression.
func (p *ColumnAccess[F]) AsConstant() *F { return nil }
