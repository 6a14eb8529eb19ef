// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"github.com/chyp-core/chyp/cmd/chyp/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
