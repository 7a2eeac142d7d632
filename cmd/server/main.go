// Package main is the entry point for the translation server and tools
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rpg-babele",
	Short: "Translation overlay server for game-content documents",
	Long: `rpg-babele overlays localized text onto game-content documents
(items, actors, journal entries) without touching their mechanical data.
It serves the merge converters over gRPC and imports translation modules
into Redis.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return setupLogging(cfg.LogLevel)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(mergeCmd)
	rootCmd.AddCommand(importCmd)
}
