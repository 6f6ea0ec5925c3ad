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

// Column describes a column declared within a schema.  A synthetic column is
// one introduced by a gadget (e.g. a running sum, an inverse witness, or a
// lookup table) rather than being supplied by the caller.
type Column struct {
	// Name of this column.
	Name string
	// Indicates whether this column is synthetic.
	Synthetic bool
}

// Builder is the narrow interface gadgets require from a constraint system.
// It carries column layout as opaque handles (column indices), keeping gadget
// code independent of any specific engine embedding.  *Schema is the concrete
// implementation used throughout this library.
type Builder[F field.Element[F]] interface {
	// AddColumn declares a new column, returning its handle.  Lookup tables
	// are just columns used as lookup targets.
	AddColumn(name string, synthetic bool) uint
	// Column returns information about a declared column.
	Column(index uint) Column
	// HasColumn checks whether a column of the given name was declared.
	HasColumn(name string) bool
	// IndexOf determines the handle for a given named column, or returns
	// false indicating it was never declared.
	IndexOf(name string) (uint, bool)
	// AddVanishingConstraint registers an algebraic identity which must
	// vanish on every row (nil domain), or on one specific row.
	AddVanishingConstraint(handle string, domain *int, expr Expr[F])
	// AddLookupConstraint registers a membership constraint of a source
	// expression against a table column.
	AddLookupConstraint(handle string, source Expr[F], table uint)
	// AddCopyConstraint registers a row-wise equality between two columns.
	AddCopyConstraint(handle string, source uint, target uint)
	// AddAssertion pins every value of a column to a known constant.
	AddAssertion(handle string, column uint, value F)
	// AddAssignment registers a witness computation to be run during trace
	// expansion.
	AddAssignment(assignment Assignment[F])
}

// Schema describes a set of columns together with the constraints which must
// hold over them, and the assignments used to construct conforming traces.
type Schema[F field.Element[F]] struct {
	// The columns of this schema.
	columns []Column
	// The vanishing constraints of this schema.
	vanishing []VanishingConstraint[F]
	// The lookup constraints of this schema.
	lookups []LookupConstraint[F]
	// The copy constraints of this schema.
	copies []CopyConstraint[F]
	// The constant assertions of this schema.
	assertions []Assertion[F]
	// The computations used to construct traces which adhere to this schema.
	assignments []Assignment[F]
}

// EmptySchema is used to construct a fresh schema onto which new columns and
// constraints will be added.
func EmptySchema[F field.Element[F]]() *Schema[F] {
	return &Schema[F]{}
}

// Width returns the number of columns in this schema.
func (p *Schema[F]) Width() uint {
	return uint(len(p.columns))
}

// Column returns information about the ith column in this schema.
func (p *Schema[F]) Column(index uint) Column {
	return p.columns[index]
}

// Columns returns the set of declared columns.
func (p *Schema[F]) Columns() []Column {
	return p.columns
}

// HasColumn checks whether a given schema has a given column.
func (p *Schema[F]) HasColumn(name string) bool {
	_, ok := p.IndexOf(name)
	//
	return ok
}

// IndexOf determines the column index for a given column in this schema, or
// returns false indicating an error.
func (p *Schema[F]) IndexOf(name string) (uint, bool) {
	for i, c := range p.columns {
		if c.Name == name {
			return uint(i), true
		}
	}
	//
	return 0, false
}

// AddColumn appends a new column which is either synthetic or not.  Observe
// that duplicate column names indicate a misconfigured circuit and are fatal.
func (p *Schema[F]) AddColumn(name string, synthetic bool) uint {
	if p.HasColumn(name) {
		panic(fmt.Sprintf("column \"%s\" already declared", name))
	}
	//
	p.columns = append(p.columns, Column{name, synthetic})
	// Calculate column index
	return uint(len(p.columns) - 1)
}

// AddVanishingConstraint appends a new vanishing constraint.
func (p *Schema[F]) AddVanishingConstraint(handle string, domain *int, expr Expr[F]) {
	p.vanishing = append(p.vanishing, VanishingConstraint[F]{handle, domain, expr})
}

// AddLookupConstraint appends a new lookup constraint.
func (p *Schema[F]) AddLookupConstraint(handle string, source Expr[F], table uint) {
	p.lookups = append(p.lookups, LookupConstraint[F]{handle, source, table})
}

// AddCopyConstraint appends a new copy constraint.
func (p *Schema[F]) AddCopyConstraint(handle string, source uint, target uint) {
	p.copies = append(p.copies, CopyConstraint[F]{handle, source, target})
}

// AddAssertion appends a new constant assertion.
func (p *Schema[F]) AddAssertion(handle string, column uint, value F) {
	p.assertions = append(p.assertions, Assertion[F]{handle, column, value})
}

// AddAssignment appends a new assignment to be used during trace expansion
// for this schema.
func (p *Schema[F]) AddAssignment(assignment Assignment[F]) {
	p.assignments = append(p.assignments, assignment)
}

// NewTrace constructs a fresh trace for this schema from the given input
// columns.  Every non-synthetic column must be assigned exactly once, whilst
// synthetic columns are left for trace expansion to fill.
func (p *Schema[F]) NewTrace(inputs ...trace.RawColumn[F]) (*trace.ArrayTrace[F], error) {
	var (
		columns  = make([]*trace.FieldColumn[F], len(p.columns))
		assigned = make([]bool, len(p.columns))
	)
	//
	for i, c := range p.columns {
		columns[i] = trace.NewEmptyColumn[F](c.Name)
	}
	//
	tr := trace.NewArrayTrace(columns)
	//
	for _, input := range inputs {
		index, ok := p.IndexOf(input.Name)
		//
		if !ok {
			return nil, fmt.Errorf("unknown column \"%s\"", input.Name)
		} else if p.columns[index].Synthetic {
			return nil, fmt.Errorf("cannot assign synthetic column \"%s\"", input.Name)
		} else if err := tr.FillColumn(index, input.Data); err != nil {
			return nil, err
		}
		//
		assigned[index] = true
	}
	// Sanity check all inputs provided.
	for i, c := range p.columns {
		if !c.Synthetic && !assigned[i] {
			return nil, fmt.Errorf("missing assignment for column \"%s\"", c.Name)
		}
	}
	//
	return tr, nil
}

// ExpandTrace expands a given trace according to this schema.  More
// specifically, that means computing the actual values for any synthetic
// columns.  Observe that assignments run in registration order, which (by
// construction) respects their dependencies.
func (p *Schema[F]) ExpandTrace(tr *trace.ArrayTrace[F]) error {
	for _, a := range p.assignments {
		if err := a.ExpandTrace(tr); err != nil {
			return err
		}
	}
	// Done
	return nil
}

// Accepts determines whether this schema will accept a given trace.  That is,
// whether or not the given trace adheres to the schema.  Rather than stopping
// at the first problem, this collects one failure per violated constraint so
// callers can report everything at once.
func (p *Schema[F]) Accepts(tr trace.Trace[F]) []Failure {
	var failures []Failure
	// Check vanishing constraints
	for _, c := range p.vanishing {
		if f := c.Accepts(tr); f != nil {
			failures = append(failures, f)
		}
	}
	// Check lookup constraints
	for _, c := range p.lookups {
		if f := c.Accepts(tr); f != nil {
			failures = append(failures, f)
		}
	}
	// Check copy constraints
	for _, c := range p.copies {
		if f := c.Accepts(tr); f != nil {
			failures = append(failures, f)
		}
	}
	// Check assertions
	for _, c := range p.assertions {
		if f := c.Accepts(tr); f != nil {
			failures = append(failures, f)
		}
	}
	//
	return failures
}
