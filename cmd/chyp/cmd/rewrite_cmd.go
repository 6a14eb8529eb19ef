// SPDX-License-Identifier: MIT
package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chyp-core/chyp/chypio"
	"github.com/chyp-core/chyp/match"
	"github.com/chyp-core/chyp/rewrite"
)

var rewriteIndex int

var rewriteCmd = &cobra.Command{
	Use:   "rewrite <rule.chyprule> <target.chyp>",
	Short: "Apply one occurrence of a rule to a target diagram and print the result",
	Args:  cobra.ExactArgs(2),
	RunE:  runRewrite,
}

func init() {
	rewriteCmd.Flags().IntVar(&rewriteIndex, "index", 0, "which match to rewrite, in deterministic enumeration order")
}

func runRewrite(cmd *cobra.Command, args []string) error {
	r, err := openRule(args[0])
	if err != nil {
		return err
	}
	target, err := openGraph(args[1])
	if err != nil {
		return err
	}

	it := match.New(r, target)
	ctx := context.Background()
	var m *match.Match
	for i := 0; i <= rewriteIndex; i++ {
		var ok bool
		m, ok = it.Next(ctx)
		if !ok {
			return fmt.Errorf("chyp: rewrite: no match at index %d", rewriteIndex)
		}
	}

	res, err := rewrite.Apply(r, m)
	if err != nil {
		return fmt.Errorf("chyp: rewrite: %w", err)
	}

	return chypio.EncodeGraph(cmd.OutOrStdout(), res.Graph)
}
