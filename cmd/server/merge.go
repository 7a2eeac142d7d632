package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-babele/internal/converters"
	"github.com/KirkDiggler/rpg-babele/internal/merge"
)

var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Apply a converter to local JSON files",
	Long: `Apply a merge converter to a source document and a translation read
from JSON files, printing the merged result. No server or store is needed.`,
	Example: `  rpg-babele merge --source longsword.json --translation longsword.es.json
  rpg-babele merge --converter safeMergeEffects --source effects.json --translation effects.es.json`,
	RunE: runMerge,
}

func init() {
	mergeCmd.Flags().String("source", "", "source document JSON file (required)")
	mergeCmd.Flags().String("translation", "", "translation JSON file; omitted means no translation")
	mergeCmd.Flags().String("converter", converters.NameMergeEntity, "converter to apply")
	mergeCmd.Flags().String("namespace", "", "flag namespace for translated descriptions (env BABELE_FLAG_NAMESPACE)")
	_ = mergeCmd.MarkFlagRequired("source")
}

func runMerge(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	overrideString(cmd.Flags(), "namespace", &cfg.FlagNamespace)

	sourcePath, _ := cmd.Flags().GetString("source")
	translationPath, _ := cmd.Flags().GetString("translation")
	name, _ := cmd.Flags().GetString("converter")

	merger, err := merge.New(&merge.Config{Namespace: cfg.FlagNamespace})
	if err != nil {
		return err
	}
	registry := converters.NewRegistry()
	if err := converters.Register(registry, merger); err != nil {
		return err
	}
	convert, err := registry.Lookup(name)
	if err != nil {
		return fmt.Errorf("%w (available: %v)", err, registry.Names())
	}

	source, err := readJSON(sourcePath)
	if err != nil {
		return err
	}
	var tr any
	if translationPath != "" {
		if tr, err = readJSON(translationPath); err != nil {
			return err
		}
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(convert(source, tr))
}

func readJSON(path string) (any, error) {
	data, err := os.ReadFile(path) // #nosec G304
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return v, nil
}
