// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline sequences the full run: load both splits, refine
// them, evaluate the classical panel on the training set, then train the
// network and score it on the held-out test set. Execution is strictly
// sequential and the first error aborts the run.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/pdiddy/fakenews-lab/internal/dataset"
	"github.com/pdiddy/fakenews-lab/internal/eval"
	"github.com/pdiddy/fakenews-lab/internal/features"
	"github.com/pdiddy/fakenews-lab/internal/neural"
	"github.com/pdiddy/fakenews-lab/pkg/types"
)

// Run executes the whole pipeline, writing progress and the evaluation
// report to w, and returns the report for optional persistence.
func Run(ctx context.Context, client *http.Client, cfg types.PipelineConfig, w io.Writer) (types.Report, error) {
	trainName := cfg.Dataset.TrainResource
	if trainName == "" {
		trainName = dataset.TrainResource
	}

	fmt.Fprintf(w, "loading %s\n", trainName)
	trainFrame, trainLabels, err := dataset.LoadTraining(ctx, client, cfg.Dataset)
	if err != nil {
		return types.Report{}, err
	}

	fmt.Fprintf(w, "loading test split\n")
	testFrame, testLabels, err := dataset.LoadTesting(ctx, client, cfg.Dataset)
	if err != nil {
		return types.Report{}, err
	}

	realCount, fakeCount := trainLabels.Counts()
	fmt.Fprintf(w, "train: %d rows (%d real, %d fake), test: %d rows\n",
		trainFrame.Rows(), realCount, fakeCount, testFrame.Rows())

	if err := features.Refine(trainFrame, cfg.Refine); err != nil {
		return types.Report{}, fmt.Errorf("refining training set: %w", err)
	}
	if err := features.Refine(testFrame, cfg.Refine); err != nil {
		return types.Report{}, fmt.Errorf("refining test set: %w", err)
	}

	report, err := eval.Evaluate(trainFrame, trainLabels, cfg.Evaluation, w)
	if err != nil {
		return types.Report{}, err
	}
	report.Dataset = trainName

	accuracy, err := TrainNetwork(trainFrame, trainLabels, testFrame, testLabels, cfg.Network, w)
	if err != nil {
		return types.Report{}, err
	}
	report.NetworkAccuracy = &accuracy

	return report, nil
}

// TrainNetwork fits the feed-forward network on the refined training set
// and returns its accuracy on the refined test set.
func TrainNetwork(trainFrame *types.Frame, trainLabels types.Labels, testFrame *types.Frame, testLabels types.Labels, cfg types.NetworkConfig, w io.Writer) (float64, error) {
	trainX, err := trainFrame.Matrix()
	if err != nil {
		return 0, fmt.Errorf("exporting training matrix: %w", err)
	}
	testX, err := testFrame.Matrix()
	if err != nil {
		return 0, fmt.Errorf("exporting test matrix: %w", err)
	}

	net := neural.New(cfg)
	fmt.Fprintf(w, "training network\n")
	if err := net.Train(trainX, trainLabels); err != nil {
		return 0, fmt.Errorf("training network: %w", err)
	}

	accuracy := net.Evaluate(testX, testLabels)
	fmt.Fprintf(w, "Neural network test accuracy: %.2f%%\n", accuracy*100)
	return accuracy, nil
}
