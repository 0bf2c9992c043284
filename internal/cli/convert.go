package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mdpdf/pkg/assemble"
	"github.com/matzehuels/mdpdf/pkg/config"
	"github.com/matzehuels/mdpdf/pkg/discover"
	"github.com/matzehuels/mdpdf/pkg/errors"
	"github.com/matzehuels/mdpdf/pkg/observability"
	"github.com/matzehuels/mdpdf/pkg/pipeline"
)

// convertOpts holds the command-line flags for the conversion.
type convertOpts struct {
	output     string // output file; the format's extension is appended if missing
	title      string // title page heading
	pageSize   string // "letter" or "a4"
	format     string // "pdf" or "json"
	configPath string // explicit config file; otherwise mdpdf.toml in the folder
}

// convertCommand creates the root conversion command.
func (c *CLI) convertCommand() *cobra.Command {
	var opts convertOpts

	cmd := &cobra.Command{
		Use:   appName + " <folder>",
		Short: "Convert a folder of Markdown files into one paginated PDF",
		Long: `mdpdf collects every .md file under a folder, orders them by their numeric
filename prefixes (1-intro.md before 2-setup.md before 10-faq.md, files in a
folder before files in its subfolders), and renders them into a single PDF with
a title page, a table of contents and "Page X of N" footers.

Files that cannot be read or parsed are skipped with a warning.`,
		Example: `  mdpdf docs
  mdpdf docs -o handbook --title "Operations Handbook" --page-size a4
  mdpdf docs --format json -o layout`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, args[0], opts)
			if err != nil {
				return err
			}
			return c.runConvert(cmd.Context(), args[0], cfg)
		},
	}

	bindConvertFlags(cmd, &opts)

	return cmd
}

func bindConvertFlags(cmd *cobra.Command, opts *convertOpts) {
	cmd.Flags().StringVarP(&opts.output, "output", "o", config.DefaultOutput+".pdf", "output file")
	cmd.Flags().StringVar(&opts.title, "title", assemble.DefaultTitle, "title page heading")
	cmd.Flags().StringVar(&opts.pageSize, "page-size", "letter", "page size: letter, a4")
	cmd.Flags().StringVarP(&opts.format, "format", "f", config.FormatPDF, "output format: pdf, json (page layout dump)")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file (default: <folder>/"+config.FileName+")")
}

// resolveConfig layers defaults, the config file and explicitly set flags.
func resolveConfig(cmd *cobra.Command, folder string, opts convertOpts) (config.Config, error) {
	cfg := config.Default()

	path := opts.configPath
	if path == "" {
		path, _ = config.Find(folder)
	}
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	var o config.Overrides
	flags := cmd.Flags()
	if flags.Changed("output") {
		o.Output = &opts.output
	}
	if flags.Changed("title") {
		o.Title = &opts.title
	}
	if flags.Changed("page-size") {
		o.PageSize = &opts.pageSize
	}
	if flags.Changed("format") {
		o.Format = &opts.format
	}
	cfg = cfg.Apply(o)

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// runConvert executes the pipeline and reports the outcome.
func (c *CLI) runConvert(ctx context.Context, folder string, cfg config.Config) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	popts := pipeline.FromConfig(folder, cfg)
	popts.Logger = logger

	spinner := newSpinnerWithContext(ctx, "Converting "+folder)
	popts.Progress = func(i, n int, f discover.File) {
		spinner.SetMessage(fmt.Sprintf("[%d/%d] %s", i, n, f.RelPath))
	}
	spinner.Start()

	result, err := c.newRunner().Execute(ctx, popts)
	if err != nil {
		if ctx.Err() != nil {
			spinner.Stop()
			return ctx.Err()
		}
		spinner.StopWithError(errorHeadline(err))
		return err
	}
	spinner.Stop()

	for _, w := range result.Warnings {
		printWarning("skipped %s", w.String())
	}
	printSuccess("Converted %d of %d files", result.Stats.Processed, result.Stats.Files)
	printStats(result.Stats.Pages, len(result.Warnings))
	printFile(result.Output)
	prog.done(fmt.Sprintf("Wrote %s", result.Output))
	return nil
}

// errorHeadline names the failed stage in a few words.
func errorHeadline(err error) string {
	switch errors.GetCode(err) {
	case errors.ErrCodeNoDocuments:
		return "No Markdown files found"
	case errors.ErrCodeInvalidPath, errors.ErrCodeInvalidConfig, errors.ErrCodeInvalidFormat:
		return "Invalid input"
	case errors.ErrCodeRender:
		return "Rendering failed"
	default:
		return "Conversion failed"
	}
}

// enableEventLogging routes pipeline events to the logger at debug level.
func (c *CLI) enableEventLogging() {
	observability.SetPipelineHooks(&logHooks{logger: c.Logger})
}
