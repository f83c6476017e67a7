//
// Tencent is pleased to support the open source community by making trpc-jsonrepair available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-jsonrepair is licensed under the Apache License Version 2.0.
//
//

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"trpc.group/trpc-go/trpc-jsonrepair/jsonrepair"
)

var repairCmd = &cobra.Command{
	Use:   "repair [flags] [file]",
	Short: "Repair a single JSON document",
	Long:  `Repair reads one JSON document from a file, or from standard input when no file is given, and prints the repaired text.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRepair,
}

func init() {
	repairCmd.Flags().Bool("pretty", false, "pretty-print the repaired document")
	repairCmd.Flags().Bool("diagnostics", false, "print repair diagnostics to stderr")
}

func runRepair(cmd *cobra.Command, args []string) error {
	input, err := readInput(args)
	if err != nil {
		return err
	}

	res := jsonrepair.Repair(input, maxPassesOption(cmd))

	if show, _ := cmd.Flags().GetBool("diagnostics"); show {
		for _, d := range res.Diagnostics {
			fmt.Fprintln(os.Stderr, d)
		}
	}
	if !res.Success {
		return fmt.Errorf("repair failed: %w", res.Outcome.Err())
	}

	out := res.Repaired
	if pretty, _ := cmd.Flags().GetBool("pretty"); pretty {
		out = res.Outcome.Pretty
	}
	fmt.Fprintln(os.Stdout, out)
	return nil
}

// readInput returns the document text from the file argument, or from
// standard input when no argument is given.
func readInput(args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read %s: %w", args[0], err)
	}
	return string(data), nil
}
