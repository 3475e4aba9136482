// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/fakenews-lab/internal/pipeline"
	"github.com/pdiddy/fakenews-lab/internal/results"
	"github.com/pdiddy/fakenews-lab/pkg/types"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Execute the full pipeline: load, refine, evaluate, train",
	Long: `Run loads the training and testing splits, refines both into numeric
feature tables, cross-validates the classical model panel on the training set,
then trains the feed-forward network and reports its held-out test accuracy.`,
	RunE: runRun,
}

func init() {
	addDatasetFlags(runCmd)
	addRefineFlags(runCmd)
	runCmd.Flags().Int("folds", 0, "cross-validation folds (default 10)")
	runCmd.Flags().StringSlice("models", nil, "restrict the classical panel (e.g. LR,RF)")
	runCmd.Flags().Int64("seed", 0, "seed for ensemble bootstraps and network init")
	runCmd.Flags().Int("epochs", 0, "network training epochs (default 400)")
	runCmd.Flags().String("db", "", "sqlite file to append the evaluation report to")

	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	refine, err := refineConfig(cmd)
	if err != nil {
		return err
	}

	folds, _ := cmd.Flags().GetInt("folds")
	models, _ := cmd.Flags().GetStringSlice("models")
	seed, _ := cmd.Flags().GetInt64("seed")
	epochs, _ := cmd.Flags().GetInt("epochs")

	cfg := types.PipelineConfig{
		Dataset: datasetConfig(cmd),
		Refine:  refine,
		Evaluation: types.EvaluationConfig{
			Folds:  folds,
			Models: models,
			Seed:   seed,
		},
		Network: types.NetworkConfig{
			Epochs: epochs,
			Seed:   seed,
		},
	}

	report, err := pipeline.Run(cmd.Context(), newClient(cfg.Dataset), cfg, os.Stdout)
	if err != nil {
		return err
	}

	return saveReport(cmd, report)
}

// saveReport appends the report to the sqlite store named by --db, if any.
func saveReport(cmd *cobra.Command, report types.Report) error {
	dbPath, _ := cmd.Flags().GetString("db")
	if dbPath == "" {
		return nil
	}
	store, err := results.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := store.SaveReport(report)
	if err != nil {
		return err
	}
	fmt.Printf("saved run %d to %s\n", id, dbPath)
	return nil
}
