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
	"golang.org/x/term"
)

// Print a summary of each constraint failure, one per line.  When writing to a
// terminal, lines are truncated to the terminal width so that large failure
// sets remain readable.
func printFailures(failures []air.Failure) {
	width := 0
	//
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width = w
		}
	}
	//
	for _, failure := range failures {
		line := failure.Message()
		//
		if width > 3 && len(line) > width {
			line = fmt.Sprintf("%s...", line[0:width-3])
		}
		//
		fmt.Println(line)
	}
}
