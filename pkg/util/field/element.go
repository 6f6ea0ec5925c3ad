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
package field

import (
	"fmt"
	"math/big"
)

// An Element of a prime-order field.  Implementations are value types: every
// operation returns a fresh element and leaves its receiver untouched.
type Element[F any] interface {
	fmt.Stringer
	// Add x+y
	Add(y F) F
	// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
	Cmp(y F) int
	// Check whether this value is zero (or not).
	IsZero() bool
	// Check whether this value is one (or not).
	IsOne() bool
	// Return the modulus for the field in question.
	Modulus() *big.Int
	// Compute x * y
	Mul(y F) F
	// Compute x⁻¹, or 0 if x = 0.
	Inverse() F
	// Compute x - y
	Sub(y F) F
	// SetUint64 constructs the element representing a given uint64.
	SetUint64(val uint64) F
	// SetBytes constructs an element from bytes given in big endian order.
	SetBytes(bytes []byte) F
	// Bytes returns the big endian encoding of this element.
	Bytes() []byte
	// Text returns the numerical value of x in the given base.
	Text(base int) string
}

// Zero constructs a field element representing 0
func Zero[F Element[F]]() F {
	var element F
	//
	return element
}

// One constructs a field element representing 1
func One[F Element[F]]() F {
	var element F
	//
	return element.SetUint64(1)
}

// Uint64 construct a field element from a given uint64
func Uint64[F Element[F]](val uint64) F {
	var element F
	//
	return element.SetUint64(val)
}

// BigInt construct a field element from a given big.Int
func BigInt[F Element[F]](val big.Int) F {
	var element F
	// Handle negative values
	if val.Sign() < 0 {
		panic("negative value encountered")
	}
	//
	return element.SetBytes(val.Bytes())
}

// FromBigEndianBytes constructs an element from an array of bytes given in big
// endian order.
func FromBigEndianBytes[F Element[F]](bytes []byte) F {
	var element F
	//
	return element.SetBytes(bytes)
}

// TwoPowN constructs a field element representing 2^n
func TwoPowN[F Element[F]](n uint) F {
	var two F
	//
	return Pow(two.SetUint64(2), uint64(n))
}

// BitWidth returns the number of bits needed to represent any element of the
// field F.  Observe this is one more than the number of bits usable for range
// reasoning (e.g. a 255 bit modulus leaves 254 usable bits).
func BitWidth[F Element[F]]() uint {
	var element F
	//
	return uint(element.Modulus().BitLen())
}
