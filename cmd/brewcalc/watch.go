package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/aretw0/lifecycle"
	"github.com/bmatcuk/doublestar/v4"

	catalogevents "github.com/aretw0/brewcalc/pkg/adapters/lifecycle"
	"github.com/aretw0/brewcalc/pkg/core"
	"github.com/spf13/cobra"
)

var (
	watchPattern string
	watchOutDir  string
	watchFormat  string
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-export catalogues whenever they change",
	Long: `Export every catalogue matching --pattern into --out-dir, then keep watching
and re-export a catalogue each time it is saved. Exports are written atomically.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		format, err := core.ParseFormat(watchFormat)
		if err != nil {
			fatal("Invalid format", err)
		}
		svc, err := newService("")
		if err != nil {
			fatal("Failed to initialize brewcalc", err)
		}
		if err := os.MkdirAll(watchOutDir, 0o755); err != nil {
			fatal("Failed to create output directory", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		done, err := startWatch(ctx, svc, watchPattern, watchOutDir, format)
		if err != nil {
			fatal("Failed to start watcher", err)
		}
		<-done
		slog.Info("watcher stopped")
	},
}

// exportCatalog exports one catalogue file into outDir, replacing the previous export.
func exportCatalog(ctx context.Context, svc *core.Service, path, outDir string, format core.Format) error {
	return runExport(ctx, svc, nil, exportRequest{
		input:  path,
		output: outputPath(outDir, path, format),
		format: format,
		atomic: true,
	})
}

// startWatch exports every current match of pattern, then re-exports each
// catalogue the source reports. A failing catalogue is logged and does not stop
// the others. The returned channel is closed when the loop ends.
func startWatch(ctx context.Context, svc *core.Service, pattern, outDir string, format core.Format) (<-chan struct{}, error) {
	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	slices.Sort(matches)
	for _, path := range matches {
		if err := exportCatalog(ctx, svc, path, outDir, format); err != nil {
			slog.Error("export failed", "path", path, "error", err)
		}
	}

	src, err := catalogevents.NewSource(catalogevents.SourceConfig{
		Pattern: pattern,
		Logger:  slog.Default(),
	})
	if err != nil {
		return nil, err
	}
	if err := src.Start(ctx); err != nil {
		return nil, err
	}
	slog.Info("watching catalogues", "pattern", pattern, "out", outDir, "catalogues", len(matches))

	done := make(chan struct{})
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(done)
		for ev := range src.Events() {
			changed, ok := ev.(catalogevents.CatalogChanged)
			if !ok {
				continue
			}
			if err := exportCatalog(ctx, svc, changed.Path, outDir, format); err != nil {
				slog.Error("export failed", "path", changed.Path, "error", err)
				continue
			}
			slog.Info("catalogue exported", "path", changed.Path)
		}
		return nil
	})
	return done, nil
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVarP(&watchPattern, "pattern", "p", "", "Catalogue glob, e.g. 'catalog/**/*.yaml'")
	watchCmd.Flags().StringVarP(&watchOutDir, "out-dir", "o", ".", "Directory receiving the exports")
	watchCmd.Flags().StringVarP(&watchFormat, "format", "f", "xml", "Output format: xml or yaml")
	watchCmd.MarkFlagRequired("pattern")
}
