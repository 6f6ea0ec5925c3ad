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
	"testing"

	"github.com/consensys/go-gadgets/pkg/trace"
	"github.com/consensys/go-gadgets/pkg/util"
	"github.com/consensys/go-gadgets/pkg/util/field/gf251"
	"github.com/stretchr/testify/assert"
)

// Construct a two column trace for expression testing, where X = [1,2,3] and
// Y = [4,5,6].
func exprTestTrace() *trace.ArrayTrace[gf251.Element] {
	return trace.NewArrayTrace([]*trace.FieldColumn[gf251.Element]{
		trace.NewFieldColumn("X", []gf251.Element{gf251.New(1), gf251.New(2), gf251.New(3)}),
		trace.NewFieldColumn("Y", []gf251.Element{gf251.New(4), gf251.New(5), gf251.New(6)}),
	})
}

func Test_Expr_Add(t *testing.T) {
	var (
		tr = exprTestTrace()
		e  = NewColumnAccess[gf251.Element](0, 0).Add(NewColumnAccess[gf251.Element](1, 0))
	)
	//
	assert.Equal(t, gf251.New(5), e.EvalAt(0, tr))
	assert.Equal(t, gf251.New(7), e.EvalAt(1, tr))
	assert.Equal(t, gf251.New(9), e.EvalAt(2, tr))
}

func Test_Expr_Sub(t *testing.T) {
	var (
		tr = exprTestTrace()
		e  = NewColumnAccess[gf251.Element](0, 0).Sub(NewColumnAccess[gf251.Element](1, 0))
	)
	// 1 - 4 == -3 == 248 (mod 251)
	assert.Equal(t, gf251.New(248), e.EvalAt(0, tr))
}

func Test_Expr_Mul(t *testing.T) {
	var (
		tr = exprTestTrace()
		e  = NewColumnAccess[gf251.Element](0, 0).Mul(NewColumnAccess[gf251.Element](1, 0))
	)
	//
	assert.Equal(t, gf251.New(4), e.EvalAt(0, tr))
	assert.Equal(t, gf251.New(10), e.EvalAt(1, tr))
	assert.Equal(t, gf251.New(18), e.EvalAt(2, tr))
}

func Test_Expr_Const(t *testing.T) {
	var (
		tr = exprTestTrace()
		e  = NewConst64[gf251.Element](7)
	)
	//
	assert.Equal(t, gf251.New(7), e.EvalAt(0, tr))
	assert.NotNil(t, e.AsConstant())
	assert.Nil(t, e.RequiredColumns())
}

func Test_Expr_Shift(t *testing.T) {
	var (
		tr = exprTestTrace()
		e  = NewColumnAccess[gf251.Element](0, 1)
	)
	// X(1) on row 0 reads row 1
	assert.Equal(t, gf251.New(2), e.EvalAt(0, tr))
	assert.Equal(t, util.NewBounds(0, 1), e.Bounds())
	// Negative shift bounds
	assert.Equal(t, util.NewBounds(2, 0), NewColumnAccess[gf251.Element](0, -2).Bounds())
}

func Test_Expr_RequiredColumns(t *testing.T) {
	var (
		X = NewColumnAccess[gf251.Element](0, 0)
		Y = NewColumnAccess[gf251.Element](1, 0)
		// (X * Y) + X reads each column once
		e = X.Mul(Y).Add(X)
	)
	//
	assert.Equal(t, []uint{0, 1}, e.RequiredColumns())
}

func Test_Expr_RequiredCells(t *testing.T) {
	var (
		X = NewColumnAccess[gf251.Element](0, 0)
		Y = NewColumnAccess[gf251.Element](1, 0)
		e = X.Mul(Y).Add(X)
	)
	//
	assert.Equal(t, []trace.CellRef{
		trace.NewCellRef(0, 2),
		trace.NewCellRef(1, 2),
	}, e.RequiredCells(2))
}

func Test_Expr_String(t *testing.T) {
	var (
		X = NewColumnAccess[gf251.Element](0, 0)
		Y = NewColumnAccess[gf251.Element](1, 0)
	)
	//
	assert.Equal(t, "(+ #0 #1)", X.Add(Y).String())
	assert.Equal(t, "(- #0 #1)", X.Sub(Y).String())
	assert.Equal(t, "(* #0 2)", X.Mul(NewConst64[gf251.Element](2)).String())
	assert.Equal(t, "(shift #0 -1)", NewColumnAccess[gf251.Element](0, -1).String())
}
