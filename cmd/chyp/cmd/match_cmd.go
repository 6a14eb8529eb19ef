// SPDX-License-Identifier: MIT
package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/chyp-core/chyp/match"
)

var matchCmd = &cobra.Command{
	Use:   "match <rule.chyprule> <target.chyp>",
	Short: "Enumerate occurrences of a rule's LHS in a target diagram",
	Args:  cobra.ExactArgs(2),
	RunE:  runMatch,
}

func runMatch(cmd *cobra.Command, args []string) error {
	r, err := openRule(args[0])
	if err != nil {
		return err
	}
	target, err := openGraph(args[1])
	if err != nil {
		return err
	}

	limit := viper.GetInt("limit")
	matches := match.Collect(context.Background(), match.New(r, target), limit)

	fmt.Fprintf(cmd.OutOrStdout(), "%d match(es)\n", len(matches))
	for i, m := range matches {
		fmt.Fprintf(cmd.OutOrStdout(), "  [%d] vertices: %d, edges: %d\n", i, len(m.VertexMap), len(m.EdgeMap))
	}
	return nil
}
