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
package air

import (
	"fmt"

	"github.com/consensys/go-gadgets/pkg/trace"
	"github.com/consensys/go-gadgets/pkg/util/field"
)

// Failure provides structural information about a failing constraint: which
// constraint failed, on which row, and which cells were involved.  Failures
// are the expected mechanism by which invalid witnesses are rejected; they are
// not errors.
type Failure interface {
	fmt.Stringer
	// Message provides a suitable error message.
	Message() string
	// Cells identifies the trace cells involved in the failure.
	Cells() []trace.CellRef
}

// VanishingFailure provides structural information about a failing vanishing
// constraint.
type VanishingFailure struct {
	// Handle of the failing constraint
	Handle string
	// Row on which the constraint failed
	Row uint
	// Cells read by the constraint on the failing row
	RequiredCells []trace.CellRef
}

// Message provides a suitable error message
func (p *VanishingFailure) Message() string {
	return fmt.Sprintf("constraint \"%s\" does not hold (row %d)", p.Handle, p.Row)
}

// Cells identifies the trace cells involved in the failure.
func (p *VanishingFailure) Cells() []trace.CellRef {
	return p.RequiredCells
}

func (p *VanishingFailure) String() string {
	return p.Message()
}

// LookupFailure provides structural information about a failing lookup
// constraint, including the offending (non-member) value.
type LookupFailure[F field.Element[F]] struct {
	// Handle of the failing constraint
	Handle string
	// Row on which the lookup failed
	Row uint
	// Value which was not found in the lookup table
	Value F
	// Cells read by the source expression on the failing row
	RequiredCells []trace.CellRef
}

// Message provides a suitable error message
func (p *LookupFailure[F]) Message() string {
	return fmt.Sprintf("lookup \"%s\" failed (row %d, value %s)", p.Handle, p.Row, p.Value)
}

// Cells identifies the trace cells involved in the failure.
func (p *LookupFailure[F]) Cells() []trace.CellRef {
	return p.RequiredCells
}

func (p *LookupFailure[F]) String() string {
	return p.Message()
}

// CopyFailure provides structural information about a failing copy constraint.
type CopyFailure struct {
	// Handle of the failing constraint
	Handle string
	// Row on which the copy failed
	Row uint
	// Source / destination cells on the failing row
	RequiredCells []trace.CellRef
}

// Message provides a suitable error message
func (p *CopyFailure) Message() string {
	return fmt.Sprintf("copy \"%s\" does not hold (row %d)", p.Handle, p.Row)
}

// Cells identifies the trace cells involved in the failure.
func (p *CopyFailure) Cells() []trace.CellRef {
	return p.RequiredCells
}

func (p *CopyFailure) String() string {
	return p.Message()
}

// AssertionFailure provides structural information about a column which failed
// to match its asserted constant.
type AssertionFailure[F field.Element[F]] struct {
	// Handle of the failing assertion
	Handle string
	// Name of the pinned column
	Column string
	// Row on which the assertion failed
	Row uint
	// Value expected in the pinned column
	Expected F
	// Value actually found
	Actual F
	// Cell which failed the assertion
	RequiredCells []trace.CellRef
}

// Message provides a suitable error message
func (p *AssertionFailure[F]) Message() string {
	return fmt.Sprintf("assertion \"%s\" does not hold (column %s, row %d, expected %s, got %s)",
		p.Handle, p.Column, p.Row, p.Expected, p.Actual)
}

// Cells identifies the trace cells involved in the failure.
func (p *AssertionFailure[F]) Cells() []trace.CellRef {
	return p.RequiredCells
}

func (p *AssertionFailure[F]) String() string {
	return p.Message()
}
