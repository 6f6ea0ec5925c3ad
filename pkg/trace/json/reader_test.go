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
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Json_FromBytes(t *testing.T) {
	columns, err := FromBytes([]byte(`{"Y": [4,5], "X": [1,2,3]}`))
	require.NoError(t, err)
	require.Len(t, columns, 2)
	// Columns come back in name order.
	assert.Equal(t, "X", columns[0].Name)
	assert.Equal(t, "Y", columns[1].Name)
	require.Len(t, columns[0].Data, 3)
	assert.Equal(t, 0, columns[0].Data[2].Cmp(big.NewInt(3)))
}

func Test_Json_Empty(t *testing.T) {
	columns, err := FromBytes([]byte(`{}`))
	require.NoError(t, err)
	assert.Empty(t, columns)
}

func Test_Json_LargeValue(t *testing.T) {
	columns, err := FromBytes([]byte(`{"X": [340282366920938463463374607431768211456]}`))
	require.NoError(t, err)
	// 2^128 survives parsing intact.
	expected := new(big.Int).Lsh(big.NewInt(1), 128)
	assert.Equal(t, 0, columns[0].Data[0].Cmp(expected))
}

func Test_Json_Negative(t *testing.T) {
	_, err := FromBytes([]byte(`{"X": [1,-2]}`))
	assert.EqualError(t, err, "column X contains negative value (row 1, value -2)")
}

func Test_Json_Malformed(t *testing.T) {
	_, err := FromBytes([]byte(`{"X": [1,2`))
	assert.Error(t, err)
}
