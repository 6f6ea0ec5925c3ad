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
package cmd

import (
	"fmt"
	"os"

	"github.com/consensys/go-gadgets/pkg/air"
	"github.com/consensys/go-gadgets/pkg/air/gadgets"
	"github.com/consensys/go-gadgets/pkg/trace"
	"github.com/consensys/go-gadgets/pkg/trace/json"
	"github.com/consensys/go-gadgets/pkg/util/field"
	"github.com/consensys/go-gadgets/pkg/util/field/bls12_377"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [flags] trace_file",
	Short: "Range check all columns of a given trace.",
	Long: `Range check all columns of a given trace (expressed in JSON notation,
e.g. {"X": [0,1,2]}).  By default each column is decomposed against a lookup
table; alternatively, a small inline range check can be requested.`,
	Run: func(cmd *cobra.Command, args []string) {
		var cfg checkConfig

		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		cfg.bitwidth = GetUint(cmd, "bits")
		cfg.chunk = GetUint(cmd, "chunk")
		cfg.bound = GetUint(cmd, "range")
		// Parse trace
		columns := readTraceFile(args[0])
		// Go!
		if !checkTrace(columns, cfg) {
			os.Exit(1)
		}
	},
}

// checkConfig encapsulates the range parameters applied to every column of
// the trace being checked.
type checkConfig struct {
	// Number of bits each column must fit within.
	bitwidth uint
	// Number of bits per lookup chunk.
	chunk uint
	// When nonzero, apply the inline range check for {0..bound-1} instead of
	// the lookup decomposition.
	bound uint
}

// Check every column of a given trace against the configured range, reporting
// any constraint failures.
func checkTrace(columns []json.Column, cfg checkConfig) bool {
	var (
		schema = air.EmptySchema[bls12_377.Element]()
		inputs []trace.RawColumn[bls12_377.Element]
		table  *gadgets.RangeTable
	)
	//
	if cfg.bound == 0 {
		table = gadgets.NewRangeTable[bls12_377.Element](cfg.chunk, schema)
	}
	// Declare one input column per trace column, each range checked.
	for _, column := range columns {
		index := schema.AddColumn(column.Name, false)
		//
		if cfg.bound != 0 {
			gadgets.ApplySmallRangeGadget[bls12_377.Element](index, cfg.bound, schema)
		} else {
			gadgets.ApplyDecompositionGadget(index, cfg.bitwidth, table, schema)
		}
		//
		data := make([]bls12_377.Element, len(column.Data))
		for i, val := range column.Data {
			data[i] = field.BigInt[bls12_377.Element](val)
		}
		//
		inputs = append(inputs, trace.RawColumn[bls12_377.Element]{Name: column.Name, Data: data})
	}
	//
	tr, err := schema.NewTrace(inputs...)
	if err == nil {
		err = schema.ExpandTrace(tr)
	}
	//
	if err != nil {
		log.Errorf("trace expansion failed: %s", err)
		return false
	}
	//
	if failures := schema.Accepts(tr); len(failures) > 0 {
		printFailures(failures)
		log.Errorf("trace rejected (%d constraint failures)", len(failures))
		//
		return false
	}
	//
	log.Infof("trace accepted (%d columns)", len(columns))
	//
	return true
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().Uint("bits", 16, "number of bits each column must fit within")
	checkCmd.Flags().Uint("chunk", 8, "number of bits per lookup chunk")
	checkCmd.Flags().Uint("range", 0, "use inline range check for {0..range-1} instead of lookups")
}
