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
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"trpc.group/trpc-go/trpc-jsonrepair/batch"
)

var batchCmd = &cobra.Command{
	Use:   "batch [flags] file...",
	Short: "Repair many JSON documents",
	Long:  `Batch repairs one document per file and prints a per-file outcome with an aggregate summary.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runBatch,
}

func init() {
	batchCmd.Flags().Int("parallelism", batch.DefaultParallelism, "number of concurrent repair workers")
	batchCmd.Flags().Bool("json", false, "print the report as JSON")
}

// batchFileReport is the JSON shape of one file's outcome.
type batchFileReport struct {
	File     string `json:"file"`
	Success  bool   `json:"success"`
	Repaired string `json:"repaired,omitempty"`
	Error    string `json:"error,omitempty"`
}

func runBatch(cmd *cobra.Command, args []string) error {
	parallelism, err := cmd.Flags().GetInt("parallelism")
	if err != nil {
		return fmt.Errorf("get parallelism flag: %w", err)
	}

	inputs := make([]string, 0, len(args))
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		inputs = append(inputs, string(data))
	}

	svc, err := batch.New(
		batch.WithParallelism(parallelism),
		batch.WithMaxPasses(maxPassesFlag(cmd)),
	)
	if err != nil {
		return err
	}
	defer svc.Close()

	report, err := svc.RepairAll(cmd.Context(), inputs)
	if err != nil {
		return err
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return printJSONReport(args, report)
	}
	printTextReport(args, report)
	if report.Summary.Failed > 0 {
		return fmt.Errorf("%d of %d document(s) could not be repaired", report.Summary.Failed, report.Summary.Total)
	}
	return nil
}

func printTextReport(files []string, report *batch.Report) {
	for _, item := range report.Items {
		if item.Result.Success {
			fmt.Fprintf(os.Stdout, "%s: ok\n", files[item.Index])
		} else {
			fmt.Fprintf(os.Stdout, "%s: failed: %v\n", files[item.Index], item.Result.Outcome.Err())
		}
	}
	fmt.Fprintf(os.Stdout, "repaired %d/%d (%.0f%%)\n",
		report.Summary.Succeeded, report.Summary.Total, report.Summary.SuccessRate*100)
}

func printJSONReport(files []string, report *batch.Report) error {
	out := struct {
		Files   []batchFileReport `json:"files"`
		Summary batch.Summary     `json:"summary"`
	}{Summary: report.Summary}
	for _, item := range report.Items {
		fr := batchFileReport{File: files[item.Index], Success: item.Result.Success}
		if item.Result.Success {
			fr.Repaired = item.Result.Repaired
		} else if err := item.Result.Outcome.Err(); err != nil {
			fr.Error = err.Error()
		}
		out.Files = append(out.Files, fr)
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// maxPassesFlag reads the persistent max-passes flag value.
func maxPassesFlag(cmd *cobra.Command) int {
	n, err := cmd.Root().PersistentFlags().GetInt("max-passes")
	if err != nil {
		return 0
	}
	return n
}
