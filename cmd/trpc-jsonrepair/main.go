//
// Tencent is pleased to support the open source community by making trpc-jsonrepair available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-jsonrepair is licensed under the Apache License Version 2.0.
//
//

// Command trpc-jsonrepair repairs malformed JSON documents from files or
// standard input.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"trpc.group/trpc-go/trpc-jsonrepair/jsonrepair"
	"trpc.group/trpc-go/trpc-jsonrepair/log"
)

var rootCmd = &cobra.Command{
	Use:   "trpc-jsonrepair",
	Short: "Repair malformed JSON",
	Long:  `trpc-jsonrepair rewrites malformed JSON-like text into valid JSON using a bounded sequence of repair passes.`,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		level, _ := cmd.Flags().GetString("log-level")
		if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
			level = log.LevelError
		}
		log.SetLevel(level)
	},
}

func main() {
	rootCmd.AddCommand(repairCmd)
	rootCmd.AddCommand(batchCmd)

	rootCmd.PersistentFlags().String("log-level", log.LevelInfo, "log level (debug|info|warn|error|fatal)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-passes", jsonrepair.DefaultMaxPasses, "maximum number of repair passes per document")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// maxPassesOption reads the persistent max-passes flag as a repair option.
func maxPassesOption(cmd *cobra.Command) jsonrepair.Option {
	n, err := cmd.Root().PersistentFlags().GetInt("max-passes")
	if err != nil {
		return jsonrepair.WithMaxPasses(jsonrepair.DefaultMaxPasses)
	}
	return jsonrepair.WithMaxPasses(n)
}
