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
package json

import (
	"encoding/json"
	"fmt"
	"math/big"
	"slices"
)

// Column represents one column of trace data, as parsed from a JSON trace
// file.  Values are kept as big integers here, so the caller decides which
// field to map them into.
type Column struct {
	// Name of the column.
	Name string
	// Data held in the column.
	Data []big.Int
}

// FromBytes parses a trace expressed in JSON notation.  For example, {"X":
// [0], "Y": [1]} is a trace containing one row of data each for two columns
// "X" and "Y".  Columns are returned in name order, since JSON objects carry
// no ordering of their own.
func FromBytes(data []byte) ([]Column, error) {
	var (
		rawData map[string][]big.Int
		columns []Column
	)
	// Attempt to unmarshal
	if err := json.Unmarshal(data, &rawData); err != nil {
		return nil, fmt.Errorf("malformed trace file: %w", err)
	}
	//
	for name, rawInts := range rawData {
		// Negative values have no field encoding at this level.
		for row, val := range rawInts {
			if val.Sign() < 0 {
				return nil, fmt.Errorf("column %s contains negative value (row %d, value %s)",
					name, row, val.String())
			}
		}
		//
		columns = append(columns, Column{Name: name, Data: rawInts})
	}
	//
	slices.SortFunc(columns, func(l Column, r Column) int {
		switch {
		case l.Name < r.Name:
			return -1
		case l.Name > r.Name:
			return 1
		default:
			return 0
		}
	})
	//
	return columns, nil
}
