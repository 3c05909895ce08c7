package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/a3tools/modsweep/internal/config"
	"github.com/a3tools/modsweep/internal/export"
	"github.com/a3tools/modsweep/internal/inventory"
	"github.com/a3tools/modsweep/internal/model"
	"github.com/a3tools/modsweep/internal/workshop"
)

// NewUnusedCmd creates the unused command.
func NewUnusedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unused",
		Short: "Report downloaded mods that no active modpack references",
		Long: `Unused cross-references one or more active modpack exports against an
export listing every downloaded mod, and reports only the mods absent
from all active modpacks - the ones that can be deleted to reclaim disk
space.

The all-mods export comes from exporting the launcher's full mod list;
the active exports are the modpacks you actually play with. A mod counts
as used when any active export references it.

Examples:
  # One active modpack
  modsweep unused -f active.html -a allmods.html

  # Several active modpacks, largest unused mod first
  modsweep unused -f tuesday.html -f weekend.html -a allmods.html --sort size

  # Markdown listing for sharing
  modsweep unused -f active.html -a allmods.html --markdown`,
		RunE: runUnusedCmd,
	}

	cmd.Flags().StringSliceP("html-files", "f", nil,
		"Path(s) to active modpack export HTML files (repeatable)")
	_ = cmd.MarkFlagRequired("html-files") //nolint:errcheck // Flag is registered above

	cmd.Flags().StringP("all-mods-file", "a", "",
		"Path to the export listing all downloaded mods")
	_ = cmd.MarkFlagRequired("all-mods-file") //nolint:errcheck // Flag is registered above

	addCommonFlags(cmd)

	return cmd
}

// runUnusedCmd executes the unused command.
func runUnusedCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildCommonConfig(cmd)
	if err != nil {
		return err
	}

	cfg.ExportFiles, err = cmd.Flags().GetStringSlice("html-files")
	if err != nil {
		return err
	}

	cfg.AllModsFile, err = cmd.Flags().GetString("all-mods-file")
	if err != nil {
		return err
	}
	if cfg.AllModsFile == "" {
		return config.ErrNoAllModsFile
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cfg.Verbose)
	slog.SetDefault(logger)

	return runUnused(cfg, logger)
}

// runUnused computes the unused-mod set, measures it, and writes the report.
func runUnused(cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting unused-mod report",
		"activeExports", cfg.ExportFiles,
		"allModsExport", cfg.AllModsFile,
		"root", cfg.ArmaRoot,
	)

	// Union every active export into one deduplicated membership set.
	activeLists := make([][]string, 0, len(cfg.ExportFiles))
	for _, path := range cfg.ExportFiles {
		doc, err := export.ParseFile(path)
		if err != nil {
			return err
		}
		names := doc.ModNames()
		logger.Debug("extracted active mod names", "export", path, "count", len(names))
		activeLists = append(activeLists, names)
	}
	active := inventory.NameSet(activeLists...)

	allDoc, err := export.ParseFile(cfg.AllModsFile)
	if err != nil {
		return err
	}
	all := allDoc.ModNames()

	unusedNames := inventory.Unused(all, active)
	logger.Debug("computed unused mods",
		"downloaded", len(all),
		"active", len(active),
		"unused", len(unusedNames),
	)

	resolver := workshop.NewResolver(cfg.ArmaRoot)

	var progress workshop.ProgressFunc
	if len(unusedNames) > 0 {
		bar := newProgressBar(len(unusedNames))
		progress = func(_, _ int) {
			_ = bar.Add(1) //nolint:errcheck // Progress display is best effort
		}
	}

	sizes, err := resolver.ResolveAll(unusedNames, progress)
	if err != nil {
		return err
	}

	rep := model.NewReport(unusedNames, sizes)
	if err := writeReport(cfg, rep); err != nil {
		return err
	}

	// The summary line accompanies the console table only; structured
	// formats carry the totals already.
	if !cfg.JSONReport && !cfg.MarkdownReport && cfg.ReportFile == "" && len(rep.Rows) > 0 {
		fmt.Fprintf(os.Stdout, "\nDeleting all %d unused mods would free approximately %s.\n",
			len(rep.Rows), humanize.IBytes(rep.TotalBytes()))
	}

	return nil
}
