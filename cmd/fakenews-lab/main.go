// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the fakenews-lab CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the fakenews-lab CLI.
var rootCmd = &cobra.Command{
	Use:   "fakenews-lab",
	Short: "Teaching pipeline for a fake/real news classifier",
	Long: `fakenews-lab walks through building a binary fake/real news classifier
from a small labeled dataset. It fetches the pre-cleaned JSON splits over HTTP,
engineers a handful of scalar features (registrant-country suspicion,
readability, difficult-word ratio, sentiment, scaled creation date),
cross-validates a panel of classical models, and trains a small feed-forward
network for comparison.

Each stage is a subcommand: fetch, evaluate, and train; run executes the whole
pipeline, and report lists previously saved evaluation runs.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./fakenews-lab.yaml or ~/.config/fakenews-lab/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("fakenews-lab")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "fakenews-lab"))
		}
	}

	viper.SetEnvPrefix("FAKENEWS_LAB")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
