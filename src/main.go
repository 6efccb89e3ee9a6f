// slicereport renders the network slicing result figures from the simulator's CSV tables.
//
// Commands:
//  1. report: comparative Static vs Dynamic QoS figure from all six tables (slice_performance.png),
//     optionally followed by an XLSX export of the unified rows and aggregates.
//  2. panels: one per-device figure per slice type from its Static table (<slice>_performance_clean.png).
//  3. summary: per-group means as a text table on stdout.
//
// Without a command, report runs first and panels second. The two never share a failure: a missing
// table aborts the report as a whole but only skips the affected slice's panels.
package main

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Rayan2bdu/Network-5G-slicing-performance-in-NS3/src/config"
	"github.com/Rayan2bdu/Network-5G-slicing-performance-in-NS3/src/dataset"
	"github.com/Rayan2bdu/Network-5G-slicing-performance-in-NS3/src/export"
	"github.com/Rayan2bdu/Network-5G-slicing-performance-in-NS3/src/logging"
	"github.com/Rayan2bdu/Network-5G-slicing-performance-in-NS3/src/report"
)

// logged marks an error whose diagnostic was already emitted by the job that failed.
type logged struct{ error }

func (l logged) Unwrap() error { return l.error }

type flags struct {
	configPath string
	inputDir   string
	outputDir  string
	dpi        int
	logLevel   string
	xlsx       string
}

// resolve loads the config file and applies the flags the user actually set.
func (f *flags) resolve(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return cfg, err
	}
	fs := cmd.Flags()
	if fs.Changed("input-dir") {
		cfg.InputDir = f.inputDir
	}
	if fs.Changed("output-dir") {
		cfg.OutputDir = f.outputDir
	}
	if fs.Changed("dpi") {
		cfg.DPI = f.dpi
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if fs.Changed("xlsx") {
		cfg.SummaryXLSX = f.xlsx
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	logging.SetLogLevel(cfg.LogLevel)
	return cfg, nil
}

func runReport(cfg config.Config) error {
	defer logging.TimeTrack(time.Now(), "report")
	job := report.ReportJob{
		InputDir:   cfg.InputDir,
		OutputPath: cfg.ReportPath(),
		Options:    cfg.RenderOptions(),
	}
	if cfg.SummaryXLSX != "" {
		job.OnDataset = func(ds *dataset.Unified) error {
			if err := export.WriteWorkbook(cfg.SummaryXLSX, ds); err != nil {
				logging.Errorf("export: %v", err)
				return err
			}
			logging.Infof("Summary workbook saved to %s", cfg.SummaryXLSX)
			return nil
		}
	}
	if err := job.Run(); err != nil {
		return logged{err}
	}
	return nil
}

func runPanels(cfg config.Config) error {
	defer logging.TimeTrack(time.Now(), "panels")
	results := report.PanelBatch{
		Jobs:    report.DefaultPanelJobs(cfg.InputDir, cfg.OutputDir),
		Options: cfg.RenderOptions(),
	}.Run()
	logging.Infof("Generated %d clean performance images (no numbers on bars)", report.Produced(results))
	if err := report.FailedError(results); err != nil {
		return logged{err}
	}
	return nil
}

func runSummary(cmd *cobra.Command, cfg config.Config) error {
	ds, err := dataset.Unify(cfg.InputDir)
	if err != nil {
		if errors.Is(err, dataset.ErrMissingInput) {
			logging.Errorf("CSV files not found (%v). Run the simulation first.", err)
			return logged{err}
		}
		return err
	}
	return report.WriteSummary(cmd.OutOrStdout(), ds)
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	root := &cobra.Command{
		Use:           "slicereport",
		Short:         "Render 5G network slicing performance figures from simulation CSV tables",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := f.resolve(cmd)
			if err != nil {
				return err
			}
			reportErr := runReport(cfg)
			panelsErr := runPanels(cfg)
			if reportErr != nil {
				return reportErr
			}
			return panelsErr
		},
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&f.configPath, "config", "c", "", "YAML config file (default: built-in settings)")
	pf.StringVarP(&f.inputDir, "input-dir", "i", ".", "Directory holding the six result tables")
	pf.StringVarP(&f.outputDir, "output-dir", "o", ".", "Directory receiving the images")
	pf.IntVar(&f.dpi, "dpi", 300, "Raster resolution of the images")
	pf.StringVar(&f.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&f.xlsx, "xlsx", "", "Also export rows and aggregates to this XLSX file (report only)")

	root.AddCommand(
		&cobra.Command{
			Use:   "report",
			Short: "Render the comparative Static vs Dynamic QoS figure",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				cfg, err := f.resolve(cmd)
				if err != nil {
					return err
				}
				return runReport(cfg)
			},
		},
		&cobra.Command{
			Use:   "panels",
			Short: "Render one per-device figure per slice type",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				cfg, err := f.resolve(cmd)
				if err != nil {
					return err
				}
				return runPanels(cfg)
			},
		},
		&cobra.Command{
			Use:   "summary",
			Short: "Print per-group means of the six tables",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				cfg, err := f.resolve(cmd)
				if err != nil {
					return err
				}
				return runSummary(cmd, cfg)
			},
		},
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		var l logged
		if !errors.As(err, &l) {
			logging.Errorf("%v", err)
		}
		os.Exit(1)
	}
}
