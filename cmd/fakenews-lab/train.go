// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/fakenews-lab/internal/dataset"
	"github.com/pdiddy/fakenews-lab/internal/features"
	"github.com/pdiddy/fakenews-lab/internal/pipeline"
	"github.com/pdiddy/fakenews-lab/pkg/types"
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train the feed-forward network and report held-out test accuracy",
	RunE:  runTrain,
}

func init() {
	addDatasetFlags(trainCmd)
	addRefineFlags(trainCmd)
	trainCmd.Flags().Int("hidden-units", 0, "hidden layer width (default 1024)")
	trainCmd.Flags().Float64("dropout", 0, "dropout rate after the hidden layer (default 0.2)")
	trainCmd.Flags().Int("epochs", 0, "training epochs (default 400)")
	trainCmd.Flags().Float64("learning-rate", 0, "Adam learning rate (default 0.001)")
	trainCmd.Flags().Int64("seed", 0, "weight initialization seed")

	rootCmd.AddCommand(trainCmd)
}

func runTrain(cmd *cobra.Command, args []string) error {
	refine, err := refineConfig(cmd)
	if err != nil {
		return err
	}

	cfg := datasetConfig(cmd)
	client := newClient(cfg)

	trainFrame, trainLabels, err := dataset.LoadTraining(cmd.Context(), client, cfg)
	if err != nil {
		return err
	}
	testFrame, testLabels, err := dataset.LoadTesting(cmd.Context(), client, cfg)
	if err != nil {
		return err
	}

	if err := features.Refine(trainFrame, refine); err != nil {
		return err
	}
	if err := features.Refine(testFrame, refine); err != nil {
		return err
	}

	hidden, _ := cmd.Flags().GetInt("hidden-units")
	dropout, _ := cmd.Flags().GetFloat64("dropout")
	epochs, _ := cmd.Flags().GetInt("epochs")
	rate, _ := cmd.Flags().GetFloat64("learning-rate")
	seed, _ := cmd.Flags().GetInt64("seed")

	_, err = pipeline.TrainNetwork(trainFrame, trainLabels, testFrame, testLabels, types.NetworkConfig{
		HiddenUnits:  hidden,
		DropoutRate:  dropout,
		Epochs:       epochs,
		LearningRate: rate,
		Seed:         seed,
	}, os.Stdout)
	return err
}
