package main

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/aretw0/brewcalc"
	"github.com/aretw0/brewcalc/pkg/adapters/fs"
	"github.com/aretw0/brewcalc/pkg/core"
	"github.com/spf13/cobra"
)

var (
	exportInput     string
	exportOutput    string
	exportFormat    string
	exportAtomic    bool
	exportGenerator string
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a catalogue file",
	Long: `Load a YAML catalogue and write it as BeerXML (default) or YAML.
Without --output the document is written to stdout.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		format, err := core.ParseFormat(exportFormat)
		if err != nil {
			fatal("Invalid format", err)
		}

		svc, err := newService(exportGenerator)
		if err != nil {
			fatal("Failed to initialize brewcalc", err)
		}

		err = runExport(cmd.Context(), svc, cmd.OutOrStdout(), exportRequest{
			input:  exportInput,
			output: exportOutput,
			format: format,
			atomic: exportAtomic,
		})
		if err != nil {
			fatal("Export failed", err)
		}
	},
}

type exportRequest struct {
	input  string
	output string
	format core.Format
	atomic bool
}

func newService(generator string) (*core.Service, error) {
	opts := []brewcalc.Option{brewcalc.WithLogger(slog.Default())}
	if generator != "" {
		opts = append(opts, brewcalc.WithGenerator(generator))
	}
	return brewcalc.New(opts...)
}

// runExport loads req.input and writes it to req.output, or to stdout when
// no output path is given.
func runExport(ctx context.Context, svc *core.Service, stdout io.Writer, req exportRequest) error {
	set, err := fs.LoadCatalog(req.input)
	if err != nil {
		return err
	}
	warnInapplicable(set)

	switch {
	case req.output == "":
		return svc.Write(ctx, req.format, stdout, set)
	case req.atomic:
		return svc.WriteFileAtomic(ctx, req.format, req.output, set)
	default:
		return svc.WriteFile(ctx, req.format, req.output, set)
	}
}

// warnInapplicable logs fermentable fields that do not apply to the record's
// type. They are still exported.
func warnInapplicable(set core.RecordSet) {
	c, ok := set.(*core.Collection[core.Fermentable])
	if !ok {
		return
	}
	for f := range c.All() {
		if fields := f.Inapplicable(); len(fields) > 0 {
			slog.Warn("fields do not apply to fermentable type",
				"name", f.Name, "type", f.Type, "fields", strings.Join(fields, ","))
		}
	}
}

// outputPath maps a catalogue file to its export in dir: hops.yaml -> dir/hops.xml.
func outputPath(dir, input string, format core.Format) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(dir, base+"."+string(format))
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportInput, "input", "i", "", "Catalogue file (YAML)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default stdout)")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "xml", "Output format: xml or yaml")
	exportCmd.Flags().BoolVar(&exportAtomic, "atomic", false, "Replace the output file atomically")
	exportCmd.Flags().StringVar(&exportGenerator, "generator", "", "Version stamped in the BeerXML comment")
	exportCmd.MarkFlagRequired("input")
}
