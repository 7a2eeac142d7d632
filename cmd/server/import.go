package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-babele/internal/orchestrators/translation"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a translation module into Redis",
	Long: `Read every compendium translation file of a module directory and
store it in Redis, replacing earlier imports of the same collections.`,
	Example: `  rpg-babele import --module dnd5e-es --lang es --dir compendium`,
	RunE:    runImport,
}

func init() {
	importCmd.Flags().String("module", "", "module name (env BABELE_MODULE_NAME)")
	importCmd.Flags().String("lang", "", "BCP 47 language tag (env BABELE_MODULE_LANG)")
	importCmd.Flags().String("dir", "", "translation directory (env BABELE_MODULE_DIR)")
	importCmd.Flags().StringSlice("redis", nil, "Redis endpoints (env BABELE_REDIS_ADDRS)")
}

func runImport(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	overrideString(cmd.Flags(), "module", &cfg.ModuleName)
	overrideString(cmd.Flags(), "lang", &cfg.ModuleLang)
	overrideString(cmd.Flags(), "dir", &cfg.ModuleDir)
	overrideStrings(cmd.Flags(), "redis", &cfg.RedisAddrs)

	ctx := cmd.Context()

	svc, cleanup, err := buildService(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	out, err := svc.ImportModule(ctx, &translation.ImportModuleInput{Module: cfg.Module()})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "Imported %d collection(s) for %s\n", len(out.Collections), out.Language)
	for _, c := range out.Collections {
		_, _ = fmt.Fprintf(w, "  %-40s %5d  %s\n", c.Name, c.EntryCount, c.Label)
	}
	return nil
}
