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

func equalityTestSchema() (*air.Schema[gf251.Element], air.Expr[gf251.Element], air.Expr[gf251.Element]) {
	schema := air.EmptySchema[gf251.Element]()
	x := schema.AddColumn("X", false)
	y := schema.AddColumn("Y", false)
	//
	return schema, air.NewColumnAccess[gf251.Element](x, 0), air.NewColumnAccess[gf251.Element](y, 0)
}

func Test_IsEqual(t *testing.T) {
	schema, X, Y := equalityTestSchema()
	//
	indicator := IsEqual(X, Y, schema)
	//
	tr, err := schema.NewTrace(
		trace.RawColumn[gf251.Element]{Name: "X", Data: []gf251.Element{gf251.New(3), gf251.New(3)}},
		trace.RawColumn[gf251.Element]{Name: "Y", Data: []gf251.Element{gf251.New(3), gf251.New(4)}})
	require.NoError(t, err)
	require.NoError(t, schema.ExpandTrace(tr))
	// Indicator observes equality without enforcing it.
	assert.True(t, indicator.EvalAt(0, tr).IsOne())
	assert.True(t, indicator.EvalAt(1, tr).IsZero())
	assert.Empty(t, schema.Accepts(tr))
}

func Test_AssertEqual(t *testing.T) {
	schema, X, Y := equalityTestSchema()
	//
	AssertEqual("X=Y", X, Y, schema)
	//
	tr, err := schema.NewTrace(
		trace.RawColumn[gf251.Element]{Name: "X", Data: []gf251.Element{gf251.New(3), gf251.New(3)}},
		trace.RawColumn[gf251.Element]{Name: "Y", Data: []gf251.Element{gf251.New(3), gf251.New(4)}})
	require.NoError(t, err)
	//
	failures := schema.Accepts(tr)
	require.Len(t, failures, 1)
	assert.Equal(t, "constraint \"X=Y\" does not hold (row 1)", failures[0].Message())
	assert.IsType(t, &air.VanishingFailure{}, failures[0])
}
