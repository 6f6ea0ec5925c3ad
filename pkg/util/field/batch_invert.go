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

// BatchInvert efficiently inverts the list of elements s, in place, using a
// single field inversion (Montgomery's trick).  Zero entries are left as zero,
// matching the inverse-of-zero sentinel of Element.Inverse.
func BatchInvert[F Element[F]](s []F) {
	if len(s) == 0 {
		return
	}
	//
	var (
		zero = Zero[F]()
		one  = One[F]()
		n    = len(s)
		// identifies entries which are zero
		isZero = make([]bool, n)
		// m[i] = s[i] * s[i+1] * ...
		m = make([]F, n)
	)
	//
	isZero[n-1] = s[n-1].IsZero()

	if isZero[n-1] {
		s[n-1] = one
	}

	m[n-1] = s[n-1]

	for i := n - 2; i >= 0; i-- {
		isZero[i] = s[i].IsZero()

		if isZero[i] {
			s[i] = one
		}

		m[i] = m[i+1].Mul(s[i])
	}
	// inv = s[0]⁻¹ * s[1]⁻¹ * ...
	inv := m[0].Inverse()

	for i := 0; i < n-1; i++ {
		// inv = s[i]⁻¹ * s[i+1]⁻¹ * ...
		newInv := inv.Mul(s[i])
		s[i] = inv.Mul(m[i+1])
		inv = newInv
		// inv = s[i+1]⁻¹ * s[i+2]⁻¹ * ...
		if isZero[i] {
			s[i] = zero
		}
	}

	s[n-1] = inv

	if isZero[n-1] {
		s[n-1] = zero
	}
}
