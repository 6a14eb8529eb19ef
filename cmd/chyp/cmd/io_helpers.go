// SPDX-License-Identifier: MIT
package cmd

import (
	"fmt"
	"os"

	"github.com/chyp-core/chyp/chypio"
	"github.com/chyp-core/chyp/hypergraph"
	"github.com/chyp-core/chyp/rule"
)

func openGraph(path string) (*hypergraph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := chypio.DecodeGraph(f)
	if err != nil {
		return nil, fmt.Errorf("chyp: %s: %w", path, err)
	}
	return g, nil
}

func openRule(path string) (*rule.Rule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := chypio.DecodeRule(f)
	if err != nil {
		return nil, fmt.Errorf("chyp: %s: %w", path, err)
	}
	return r, nil
}
