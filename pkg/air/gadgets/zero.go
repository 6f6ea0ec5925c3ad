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

// IsZero constructs an expression which evaluates to 1 when e evaluates to
// zero, and to 0 otherwise.  Since this cannot be computed directly using
// arithmetic constraints, it is done by adding a synthetic column holding the
// (pseudo) multiplicative inverse of e — that is e⁻¹ when e is invertible,
// and the zero sentinel otherwise.  The returned indicator is
//
//	1 - e * e⁻¹
//
// guarded by the vanishing constraint e * (1 - e * e⁻¹) == 0.  The guard is
// what rules out a dishonest inverse: for nonzero e it forces e * e⁻¹ == 1
// (hence indicator 0), whilst for zero e the indicator is 1 whatever the
// inverse column holds.
func IsZero[F field.Element[F]](e air.Expr[F], schema air.Builder[F]) air.Expr[F] {
	// Determine inverse column name
	name := fmt.Sprintf("(inv %s)", e)
	// Add new column (if it does not already exist)
	index, ok := schema.IndexOf(name)
	//
	if !ok {
		index = schema.AddColumn(name, true)
		schema.AddAssignment(&inverseAssignment[F]{index, e})
	}
	// Construct 1/e
	inv := air.NewColumnAccess[F](index, 0)
	// Construct 1 - e/e
	indicator := air.NewConst64[F](1).Sub(e.Mul(inv))
	// Guard against dishonest inverses (once per distinct expression).
	if !ok {
		schema.AddVanishingConstraint(fmt.Sprintf("[iszero %s]", e), nil, e.Mul(indicator))
	}
	// Done
	return indicator
}

// Normalise constructs an expression representing the normalised value of e.
// That is, an expression which is 0 when e is 0, and 1 when e is non-zero.
func Normalise[F field.Element[F]](e air.Expr[F], schema air.Builder[F]) air.Expr[F] {
	return air.NewConst64[F](1).Sub(IsZero(e, schema))
}

// inverseAssignment fills a synthetic column with the pseudo multiplicative
// inverse of an expression, evaluated row by row.  The whole column is
// inverted in one batch, with zero entries passing through as zero.
type inverseAssignment[F field.Element[F]] struct {
	// Column holding the inverses.
	target uint
	// Expression being inverted.
	expr air.Expr[F]
}

// Columns identifies the columns computed by this assignment.
func (p *inverseAssignment[F]) Columns() []uint {
	return []uint{p.target}
}

// ExpandTrace fills the inverse column.
func (p *inverseAssignment[F]) ExpandTrace(tr *trace.ArrayTrace[F]) error {
	var (
		height = air.HeightOf(tr, p.expr)
		data   = make([]F, height)
	)
	//
	for k := uint(0); k < height; k++ {
		data[k] = p.expr.EvalAt(int(k), tr)
	}
	//
	field.BatchInvert(data)
	//
	return tr.FillColumn(p.target, data)
}
