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
	"testing"

	"github.com/consensys/go-gadgets/pkg/air"
	"github.com/consensys/go-gadgets/pkg/trace"
	"github.com/consensys/go-gadgets/pkg/util/field/gf251"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_IsZero_Indicator(t *testing.T) {
	schema := air.EmptySchema[gf251.Element]()
	x := schema.AddColumn("X", false)
	//
	indicator := IsZero(air.NewColumnAccess[gf251.Element](x, 0), schema)
	//
	tr, err := schema.NewTrace(trace.RawColumn[gf251.Element]{
		Name: "X", Data: []gf251.Element{gf251.New(0), gf251.New(5), gf251.New(250)},
	})
	require.NoError(t, err)
	require.NoError(t, schema.ExpandTrace(tr))
	// Indicator is 1 exactly on the zero rows.
	assert.True(t, indicator.EvalAt(0, tr).IsOne())
	assert.True(t, indicator.EvalAt(1, tr).IsZero())
	assert.True(t, indicator.EvalAt(2, tr).IsZero())
	// Honest inverses satisfy the guard.
	assert.Empty(t, schema.Accepts(tr))
}

func Test_IsZero_Shared(t *testing.T) {
	schema := air.EmptySchema[gf251.Element]()
	x := schema.AddColumn("X", false)
	e := air.NewColumnAccess[gf251.Element](x, 0)
	//
	IsZero(e, schema)
	width := schema.Width()
	// Asking again for the same expression reuses the inverse column.
	IsZero(e, schema)
	assert.Equal(t, width, schema.Width())
	assert.True(t, schema.HasColumn("(inv #0)"))
}

func Test_IsZero_DishonestInverse(t *testing.T) {
	schema := air.EmptySchema[gf251.Element]()
	x := schema.AddColumn("X", false)
	//
	IsZero(air.NewColumnAccess[gf251.Element](x, 0), schema)
	//
	tr, err := schema.NewTrace(trace.RawColumn[gf251.Element]{
		Name: "X", Data: []gf251.Element{gf251.New(5)},
	})
	require.NoError(t, err)
	require.NoError(t, schema.ExpandTrace(tr))
	// Overwrite the inverse witness with garbage.
	index, ok := schema.IndexOf("(inv #0)")
	require.True(t, ok)
	tr.Column(index).Data()[0] = gf251.New(7)
	// The guard constraint catches the lie.
	failures := schema.Accepts(tr)
	require.Len(t, failures, 1)
	assert.Equal(t, "constraint \"[iszero #0]\" does not hold (row 0)", failures[0].Message())
}

func Test_Normalise(t *testing.T) {
	schema := air.EmptySchema[gf251.Element]()
	x := schema.AddColumn("X", false)
	//
	norm := Normalise(air.NewColumnAccess[gf251.Element](x, 0), schema)
	//
	tr, err := schema.NewTrace(trace.RawColumn[gf251.Element]{
		Name: "X", Data: []gf251.Element{gf251.New(0), gf251.New(100)},
	})
	require.NoError(t, err)
	require.NoError(t, schema.ExpandTrace(tr))
	//
	assert.True(t, norm.EvalAt(0, tr).IsZero())
	assert.True(t, norm.EvalAt(1, tr).IsOne())
}
