// Package cli implements the mdpdf command-line interface.
//
// The root command converts a folder of Markdown files into one PDF:
//
//	mdpdf docs -o handbook.pdf --title "Operations Handbook"
//
// Settings are layered: built-in defaults, then mdpdf.toml in the source
// folder (or the file named by --config), then flags. The CLI is built using
// cobra and supports verbose logging via the charmbracelet/log library.
//
// # Logging
//
// The --verbose (-v) flag switches to debug-level logging and also logs every
// pipeline event (discovery, each file, rendering). Loggers are passed through
// context.Context.
package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mdpdf/pkg/buildinfo"
	"github.com/matzehuels/mdpdf/pkg/errors"
	"github.com/matzehuels/mdpdf/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "mdpdf"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level. At debug level every pipeline
// event is logged as well.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
	if level <= log.DebugLevel {
		c.enableEventLogging()
	}
}

// RootCommand creates the root cobra command. The root command itself runs
// the conversion; completion is the only subcommand.
func (c *CLI) RootCommand() *cobra.Command {
	root := c.convertCommand()
	root.Version = buildinfo.Version
	root.SilenceUsage = true
	root.SilenceErrors = true
	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		return nil
	}

	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}

// =============================================================================
// Error Reporting
// =============================================================================

// ReportError prints a fatal error without its code prefix.
func ReportError(w io.Writer, err error) {
	fmt.Fprintln(w, styleIconError.Render(iconError)+" "+errors.UserMessage(err))
}
