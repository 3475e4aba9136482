// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/fakenews-lab/internal/results"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "List saved evaluation runs",
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().String("db", "fakenews-lab.db", "sqlite file holding saved runs")
	reportCmd.Flags().Int("limit", 10, "number of runs to show, 0 for all")
	reportCmd.Flags().Bool("yaml", false, "emit runs as YAML instead of text")

	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	dbPath, _ := cmd.Flags().GetString("db")
	limit, _ := cmd.Flags().GetInt("limit")
	asYAML, _ := cmd.Flags().GetBool("yaml")

	store, err := results.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.ListRuns(limit)
	if err != nil {
		return err
	}

	if asYAML {
		return results.WriteYAML(os.Stdout, runs)
	}

	if len(runs) == 0 {
		fmt.Println("no saved runs")
		return nil
	}

	for _, run := range runs {
		fmt.Printf("run %d  %s  %s\n", run.ID, run.StartedAt.Format("2006-01-02 15:04:05"), run.Dataset)
		for _, score := range run.Scores {
			fmt.Printf("  %-5s accuracy %.2f%% (std %.2f%%)\n",
				score.Model, score.MeanAccuracy*100, score.StdAccuracy*100)
		}
		if run.NetworkAccuracy != nil {
			fmt.Printf("  network test accuracy %.2f%%\n", *run.NetworkAccuracy*100)
		}
	}
	return nil
}
