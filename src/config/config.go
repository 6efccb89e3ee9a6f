// Package config holds the renderer settings: built-in defaults, optionally overridden by a YAML file.
package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/Rayan2bdu/Network-5G-slicing-performance-in-NS3/src/render"
)

type Config struct {
	InputDir    string `yaml:"input_dir"`
	OutputDir   string `yaml:"output_dir"`
	ReportFile  string `yaml:"report_file"`
	DPI         int    `yaml:"dpi"`
	LogLevel    string `yaml:"log_level"`
	SummaryXLSX string `yaml:"summary_xlsx"`
}

const DefaultReportFile = "slice_performance.png"

// Default returns the settings used by a plain invocation: every table and image in the working directory.
func Default() Config {
	return Config{
		InputDir:   ".",
		OutputDir:  ".",
		ReportFile: DefaultReportFile,
		DPI:        render.DefaultDPI,
		LogLevel:   "info",
	}
}

// Load reads path over the defaults. An empty path yields the defaults; a named file must exist
// and may only contain known keys.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return cfg, errors.Wrap(err, "open config")
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch {
	case c.DPI <= 0:
		return errors.Errorf("dpi must be positive, got %d", c.DPI)
	case c.ReportFile == "":
		return errors.New("report_file must not be empty")
	case c.InputDir == "":
		return errors.New("input_dir must not be empty")
	case c.OutputDir == "":
		return errors.New("output_dir must not be empty")
	}
	return nil
}

// ReportPath is where the comparative figure is written.
func (c Config) ReportPath() string {
	if filepath.IsAbs(c.ReportFile) {
		return c.ReportFile
	}
	return filepath.Join(c.OutputDir, c.ReportFile)
}

func (c Config) RenderOptions() render.Options { return render.Options{DPI: float64(c.DPI)} }
