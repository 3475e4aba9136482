// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/fakenews-lab/internal/dataset"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [train|test]",
	Short: "Fetch a dataset split and print its shape",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runFetch,
}

func init() {
	addDatasetFlags(fetchCmd)
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	split := "train"
	if len(args) == 1 {
		split = args[0]
	}

	cfg := datasetConfig(cmd)
	client := newClient(cfg)

	var load func() (frameRows int, names []string, realCount, fakeCount int, err error)
	switch split {
	case "train":
		load = func() (int, []string, int, int, error) {
			f, labels, err := dataset.LoadTraining(cmd.Context(), client, cfg)
			if err != nil {
				return 0, nil, 0, 0, err
			}
			r, k := labels.Counts()
			return f.Rows(), f.Names(), r, k, nil
		}
	case "test":
		load = func() (int, []string, int, int, error) {
			f, labels, err := dataset.LoadTesting(cmd.Context(), client, cfg)
			if err != nil {
				return 0, nil, 0, 0, err
			}
			r, k := labels.Counts()
			return f.Rows(), f.Names(), r, k, nil
		}
	default:
		return fmt.Errorf("unknown split %q (want train or test)", split)
	}

	rows, names, realCount, fakeCount, err := load()
	if err != nil {
		return err
	}

	fmt.Printf("%s split: %d rows (%d real, %d fake)\n", split, rows, realCount, fakeCount)
	fmt.Printf("columns: %s\n", strings.Join(names, ", "))
	return nil
}
