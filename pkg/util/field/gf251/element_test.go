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
package gf251

import (
	"testing"
)

// The field is small enough to check every operation on every pair of
// elements against plain integer arithmetic.

func Test_GF251_New(t *testing.T) {
	for i := uint16(0); i < N; i++ {
		if val := New(uint8(i)).ToByte(); uint16(val) != i {
			t.Fatalf("New(%d) decoded as %d", i, val)
		}
	}
}

func Test_GF251_New_Invalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-range element")
		}
	}()
	//
	New(N)
}

func Test_GF251_Add(t *testing.T) {
	for l := uint16(0); l < N; l++ {
		for r := uint16(0); r < N; r++ {
			var (
				expected = uint8((l + r) % N)
				actual   = New(uint8(l)).Add(New(uint8(r))).ToByte()
			)
			//
			if actual != expected {
				t.Fatalf("%d + %d gave %d (expected %d)", l, r, actual, expected)
			}
		}
	}
}

func Test_GF251_Sub(t *testing.T) {
	for l := uint16(0); l < N; l++ {
		for r := uint16(0); r < N; r++ {
			var (
				expected = uint8((l + N - r) % N)
				actual   = New(uint8(l)).Sub(New(uint8(r))).ToByte()
			)
			//
			if actual != expected {
				t.Fatalf("%d - %d gave %d (expected %d)", l, r, actual, expected)
			}
		}
	}
}

func Test_GF251_Mul(t *testing.T) {
	for l := uint16(0); l < N; l++ {
		for r := uint16(0); r < N; r++ {
			var (
				expected = uint8((uint32(l) * uint32(r)) % N)
				actual   = New(uint8(l)).Mul(New(uint8(r))).ToByte()
			)
			//
			if actual != expected {
				t.Fatalf("%d * %d gave %d (expected %d)", l, r, actual, expected)
			}
		}
	}
}

func Test_GF251_Inverse(t *testing.T) {
	// Zero has no inverse, and passes through as zero.
	if !New(0).Inverse().IsZero() {
		t.Fatal("inverse of zero should be zero")
	}
	//
	for i := uint8(1); i < N; i++ {
		var (
			elem = New(i)
			inv  = elem.Inverse()
		)
		//
		if !elem.Mul(inv).IsOne() {
			t.Fatalf("%d * %d⁻¹ != 1 (got %s)", i, i, elem.Mul(inv))
		}
	}
}

func Test_GF251_Cmp(t *testing.T) {
	for l := uint8(0); l < N; l++ {
		for r := uint8(0); r < N; r++ {
			var (
				expected = 0
				actual   = New(l).Cmp(New(r))
			)
			//
			if l < r {
				expected = -1
			} else if l > r {
				expected = 1
			}
			//
			if actual != expected {
				t.Fatalf("Cmp(%d, %d) gave %d (expected %d)", l, r, actual, expected)
			}
		}
	}
}

func Test_GF251_SetUint64(t *testing.T) {
	var elem Element
	//
	for _, val := range []uint64{0, 1, 250, 251, 502, 1000000007} {
		var (
			expected = uint8(val % N)
			actual   = elem.SetUint64(val).ToByte()
		)
		//
		if actual != expected {
			t.Fatalf("SetUint64(%d) decoded as %d (expected %d)", val, actual, expected)
		}
	}
}

func Test_GF251_Bytes(t *testing.T) {
	var elem Element
	//
	for i := uint8(0); i < N; i++ {
		var (
			bytes = New(i).Bytes()
			back  = elem.SetBytes(bytes)
		)
		//
		if len(bytes) != 1 || back.ToByte() != i {
			t.Fatalf("byte roundtrip of %d gave %v", i, bytes)
		}
	}
}

func Test_GF251_Text(t *testing.T) {
	if str := New(42).String(); str != "42" {
		t.Fatalf("String() gave %s", str)
	}
	//
	if str := New(250).Text(16); str != "fa" {
		t.Fatalf("Text(16) gave %s", str)
	}
}
