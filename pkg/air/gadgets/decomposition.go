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

// ApplyDecompositionGadget ensures all values in a given column fit within a
// given number of bits, using a running-sum decomposition into chunks checked
// against a shared lookup table.  For a column X and chunks of K bits, this
// adds running-sum columns X:z0 .. X:zC (C = nbits/K) where X:z0 carries the
// value of X and
//
//	X:z{i+1} = (X:zi - ci) * 2⁻ᴷ
//
// for the ith K-bit limb ci of X.  Each limb is recomputed from adjacent
// running sums as "X:zi - X:z{i+1} * 2ᴷ" and constrained to be a table member,
// whilst the final running sum X:zC is pinned to zero.  Crucially, the limbs
// are taken from the value truncated to its lowest nbits bits whilst the sum
// is anchored at the untruncated value: any bits at or above position nbits
// leave a nonzero terminal sum, so the terminal assertion rejects exactly the
// values outside [0, 2^nbits).
func ApplyDecompositionGadget[F field.Element[F]](column uint, nbits uint,
	table *RangeTable, schema air.Builder[F]) {
	//
	var (
		name  = schema.Column(column).Name
		chunk = table.Bitwidth()
	)
	// Chunking and field capacity are setup-time parameters; violations are
	// configuration errors, fatal before any witnessing work begins.
	if nbits%chunk != 0 {
		panic(fmt.Sprintf("bitwidth %d is not a multiple of chunk width %d", nbits, chunk))
	} else if nbits >= field.BitWidth[F]() {
		panic(fmt.Sprintf("bitwidth %d exceeds field capacity", nbits))
	}
	//
	var (
		n  = nbits / chunk
		zs = make([]uint, n+1)
	)
	// Declare running sum columns
	for i := range zs {
		zs[i] = schema.AddColumn(fmt.Sprintf("%s:z%d", name, i), true)
	}
	// Carry the (untruncated) input into the head of the running sum.
	schema.AddCopyConstraint(fmt.Sprintf("%s:z0", name), column, zs[0])
	//
	schema.AddAssignment(&runningSumAssignment[F]{column, zs, nbits, chunk})
	// Constrain each recomputed limb to be a table member.
	twoK := air.NewConst[F](field.TwoPowN[F](chunk))
	//
	for i := uint(0); i < n; i++ {
		limb := air.NewColumnAccess[F](zs[i], 0).
			Sub(air.NewColumnAccess[F](zs[i+1], 0).Mul(twoK))
		//
		schema.AddLookupConstraint(fmt.Sprintf("%s:z%d:u%d", name, i, chunk), limb, table.Column())
	}
	// Pin the terminal running sum to zero.
	schema.AddAssertion(fmt.Sprintf("%s:u%d", name, nbits), zs[n], field.Zero[F]())
}

// runningSumAssignment computes the running sum columns for a decomposition.
// For each row of the source column, the value is truncated to its lowest
// nbits bits, split into chunk-bit limbs and folded into the telescoping sum
// anchored at the untruncated value.
type runningSumAssignment[F field.Element[F]] struct {
	// Column being decomposed.
	source uint
	// Running sum columns z0 .. zC.
	targets []uint
	// Number of bits being decomposed.
	bitwidth uint
	// Number of bits per limb.
	chunk uint
}

// Columns identifies the columns computed by this assignment.
func (p *runningSumAssignment[F]) Columns() []uint {
	return p.targets
}

// ExpandTrace fills the running sum columns.
func (p *runningSumAssignment[F]) ExpandTrace(tr *trace.ArrayTrace[F]) error {
	var (
		src    = tr.Column(p.source)
		height = src.Height()
		// One data array per running sum column.
		sums = make([][]F, len(p.targets))
		// 2⁻ᴷ
		invK = field.TwoPowN[F](p.chunk).Inverse()
	)
	//
	for i := range sums {
		sums[i] = make([]F, height)
	}
	//
	for row := 0; row < int(height); row++ {
		var (
			value = src.Get(row)
			limbs = Limbs(value, p.bitwidth, p.chunk)
			// Anchor at the untruncated value.
			z = value
		)
		//
		sums[0][row] = z
		//
		for i, limb := range limbs {
			z = z.Sub(field.Uint64[F](limb)).Mul(invK)
			sums[i+1][row] = z
		}
	}
	//
	for i, target := range p.targets {
		if err := tr.FillColumn(target, sums[i]); err != nil {
			return err
		}
	}
	//
	return nil
}
