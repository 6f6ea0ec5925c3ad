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
	"math/big"

	"github.com/consensys/go-gadgets/pkg/util/field"
)

// Limbs splits the lowest nbits bits of a value into limbs of chunk bits
// each, least-significant limb first.  Bits at or above position nbits are
// discarded; the decomposition gadget relies on exactly this truncation to
// catch over-width values.
func Limbs[F field.Element[F]](value F, nbits uint, chunk uint) []uint64 {
	var (
		n    = nbits / chunk
		val  = field.ToBigInt(value)
		mask = new(big.Int).Lsh(big.NewInt(1), chunk)
		//
		limbs = make([]uint64, n)
	)
	//
	mask.Sub(mask, big.NewInt(1))
	//
	for i := range limbs {
		ith := new(big.Int).Rsh(val, uint(i)*chunk)
		limbs[i] = ith.And(ith, mask).Uint64()
	}
	//
	return limbs
}

// Recompose folds a least-significant-first sequence of limbs in base 2^chunk
// back into a field element.
func Recompose[F field.Element[F]](limbs []uint64, chunk uint) F {
	var (
		acc         = field.Zero[F]()
		base        = field.TwoPowN[F](chunk)
		coefficient = field.One[F]()
	)
	//
	for _, limb := range limbs {
		acc = acc.Add(field.Uint64[F](limb).Mul(coefficient))
		coefficient = coefficient.Mul(base)
	}
	//
	return acc
}
