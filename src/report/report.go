// Package report runs the render jobs of one invocation.
//
// Two batch contracts live here:
//   - ReportJob renders the comparative report from all six tables. Any missing table aborts
//     the whole job before anything is written; one diagnostic is logged.
//   - PanelBatch renders one single-slice figure per slice. Each slice is its own unit of
//     failure; a missing table only skips that slice's artifact.
package report

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/Rayan2bdu/Network-5G-slicing-performance-in-NS3/src/dataset"
	"github.com/Rayan2bdu/Network-5G-slicing-performance-in-NS3/src/logging"
	"github.com/Rayan2bdu/Network-5G-slicing-performance-in-NS3/src/render"
)

// writeArtifact writes a fully encoded artifact, creating the parent directory.
func writeArtifact(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "create output dir")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return nil
}

// ReportJob renders the comparative Static vs Dynamic QoS report.
type ReportJob struct {
	InputDir   string
	OutputPath string
	Options    render.Options
	// OnDataset, when set, receives the unified dataset after a successful load (exports, summaries).
	OnDataset func(*dataset.Unified) error
}

// Run loads and unifies the six tables, renders the figure and writes it. On MissingInput it
// logs one diagnostic and returns the error without producing an artifact.
func (j ReportJob) Run() error {
	ds, err := dataset.Unify(j.InputDir)
	if err != nil {
		if errors.Is(err, dataset.ErrMissingInput) {
			logging.Errorf("CSV files not found (%v). Run the simulation first.", err)
		} else {
			logging.Errorf("load report inputs: %v", err)
		}
		return err
	}
	logging.Debugf("unified %d rows from %s", ds.Len(), j.InputDir)

	var buf bytes.Buffer
	if err := render.RenderComparison(&buf, ds, j.Options); err != nil {
		logging.Errorf("render report: %v", err)
		return err
	}
	if err := writeArtifact(j.OutputPath, buf.Bytes()); err != nil {
		logging.Errorf("%v", err)
		return err
	}
	logging.Infof("Performance visualization saved to %s", j.OutputPath)
	if j.OnDataset != nil {
		return j.OnDataset(ds)
	}
	return nil
}
