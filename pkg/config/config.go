// Package config loads mdpdf settings.
//
// Settings come from three layers, later layers winning: built-in defaults,
// an optional TOML file (mdpdf.toml in the source folder, or a path given
// with --config), and command-line flags.
//
//	title     = "Operations Handbook"
//	output    = "handbook.pdf"
//	page_size = "a4"
//	margin    = 54.0
//	author    = "Platform Team"
//	format    = "pdf"
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/mdpdf/pkg/errors"
	"github.com/matzehuels/mdpdf/pkg/render/pdf"
)

// FileName is the config file looked up in the source folder.
const FileName = "mdpdf.toml"

// Output formats.
const (
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// DefaultOutput is the output file used when none is configured. The format's
// extension is appended by OutputPath.
const DefaultOutput = "documentation"

// Config holds the settings of one run.
type Config struct {
	Title    string  `toml:"title"`
	Output   string  `toml:"output"`
	PageSize string  `toml:"page_size"`
	Margin   float64 `toml:"margin"` // Points on every side
	Author   string  `toml:"author"`
	Format   string  `toml:"format"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Output:   DefaultOutput,
		PageSize: pdf.SizeLetter,
		Margin:   pdf.DefaultMargin,
		Format:   FormatPDF,
	}
}

// Find returns the path of the config file in dir, if there is one.
func Find(dir string) (string, bool) {
	path := filepath.Join(dir, FileName)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", false
	}
	return path, true
}

// Load reads path on top of the defaults. Unknown keys are rejected so typos
// do not silently fall back to defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// Overrides are flag values. A nil field leaves the setting untouched.
type Overrides struct {
	Title    *string
	Output   *string
	PageSize *string
	Format   *string
}

// Apply returns c with every set override applied.
func (c Config) Apply(o Overrides) Config {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&c.Title, o.Title)
	set(&c.Output, o.Output)
	set(&c.PageSize, o.PageSize)
	set(&c.Format, o.Format)
	return c
}

// Validate checks the settings and normalizes the page size and format case.
func (c *Config) Validate() error {
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	if c.Format != FormatPDF && c.Format != FormatJSON {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format %q (must be 'pdf' or 'json')", c.Format)
	}
	g, err := pdf.GeometryFor(c.PageSize, c.Margin)
	if err != nil {
		return err
	}
	c.PageSize = g.PageSize
	if strings.TrimSpace(c.Output) == "" {
		return errors.New(errors.ErrCodeInvalidPath, "output path cannot be empty")
	}
	return nil
}

// Geometry returns the page setup of a validated config.
func (c Config) Geometry() (pdf.Geometry, error) {
	return pdf.GeometryFor(c.PageSize, c.Margin)
}

// OutputPath returns the output file with the format's extension appended
// when it is missing.
func (c Config) OutputPath() string {
	ext := "." + c.Format
	if strings.HasSuffix(strings.ToLower(c.Output), ext) {
		return c.Output
	}
	return c.Output + ext
}
