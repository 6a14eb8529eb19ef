// SPDX-License-Identifier: MIT
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <rule.chyprule>",
	Short: "Validate a rule file: boundary agreement, left-linearity, monogamous-acyclic shape",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	r, err := openRule(args[0])
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), "invalid:", err)
		return err
	}

	lhsIn, lhsOut := r.LHS.Type()
	fmt.Fprintf(cmd.OutOrStdout(), "valid rule: arity %d->%d, lhs %d vertices/%d edges, rhs %d vertices/%d edges\n",
		lhsIn, lhsOut, r.LHS.VertexCount(), r.LHS.EdgeCount(), r.RHS.VertexCount(), r.RHS.EdgeCount())
	return nil
}
