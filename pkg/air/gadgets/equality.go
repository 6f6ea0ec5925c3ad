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
	"github.com/consensys/go-gadgets/pkg/air"
	"github.com/consensys/go-gadgets/pkg/util/field"
)

// IsEqual constructs an expression which evaluates to 1 when a and b agree,
// and to 0 otherwise.  This is the zero test applied to their difference, and
// yields a genuine boolean signal usable elsewhere in the circuit.  Callers
// wanting equality enforced outright (rather than observed) should use
// AssertEqual.
func IsEqual[F field.Element[F]](a air.Expr[F], b air.Expr[F], schema air.Builder[F]) air.Expr[F] {
	return IsZero(a.Sub(b), schema)
}

// AssertEqual enforces a == b unconditionally via the vanishing constraint
// a - b == 0.  Unlike IsEqual, this produces no signal: traces where the two
// expressions ever disagree are simply rejected.
func AssertEqual[F field.Element[F]](handle string, a air.Expr[F], b air.Expr[F], schema air.Builder[F]) {
	schema.AddVanishingConstraint(handle, nil, a.Equate(b))
}
