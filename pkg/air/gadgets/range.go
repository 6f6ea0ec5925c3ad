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
	"github.com/consensys/go-gadgets/pkg/util/field"
)

// ApplySmallRangeGadget constrains all values in a given column to lie in
// {0,...,bound-1} using the inline polynomial predicate
//
//	X * (1 - X) * (2 - X) * ... * (bound-1 - X) == 0
//
// which vanishes exactly on that set.  The constraint degree grows linearly
// with the bound, so this is only economical for small bounds; larger ranges
// should use ApplyDecompositionGadget with a lookup table instead.
func ApplySmallRangeGadget[F field.Element[F]](column uint, bound uint, schema air.Builder[F]) {
	if bound == 0 {
		panic("non-positive range bound")
	}
	//
	var (
		name = schema.Column(column).Name
		// Construct X
		X = air.NewColumnAccess[F](column, 0)
		// Construct X * (1-X) * (2-X) * ...
		product = X
	)
	//
	for j := uint(1); j < bound; j++ {
		product = product.Mul(air.NewConst64[F](uint64(j)).Sub(X))
	}
	// Done!
	schema.AddVanishingConstraint(fmt.Sprintf("%s:r%d", name, bound), nil, product)
}
