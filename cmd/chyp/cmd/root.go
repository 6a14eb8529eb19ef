// SPDX-License-Identifier: MIT
//
// Package cmd wires the chyp command-line interface: a thin layer over
// packages hypergraph/rule/match/rewrite/chypio, following the
// standard cobra + viper + godotenv layering (flags bind into viper,
// viper falls back to a config file and the environment, .env is
// loaded once before any command runs).
package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "chyp",
	Short: "Interactive rewriting for symmetric monoidal category diagrams",
	Long: `chyp matches and rewrites string diagrams represented as labeled,
monogamous acyclic hypergraphs, and checks chains of rewrite steps against
named rules.`,
	SilenceUsage: true,
}

// Execute runs the root command; main translates a non-nil error into a
// nonzero exit status.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default .chyp.yaml in the current directory, then $HOME)")
	rootCmd.PersistentFlags().Int("limit", 0, "maximum matches to report (0 = unbounded)")
	if err := viper.BindPFlag("limit", rootCmd.PersistentFlags().Lookup("limit")); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(matchCmd, rewriteCmd, checkCmd)
}

func initConfig() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintln(os.Stderr, "chyp: .env:", err)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".chyp")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
	}

	viper.SetEnvPrefix("CHYP")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			fmt.Fprintln(os.Stderr, "chyp: config:", err)
		}
	}
}
