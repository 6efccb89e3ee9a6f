package report

import (
	"bytes"
	"image/color"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/Rayan2bdu/Network-5G-slicing-performance-in-NS3/src/dataset"
	"github.com/Rayan2bdu/Network-5G-slicing-performance-in-NS3/src/logging"
	"github.com/Rayan2bdu/Network-5G-slicing-performance-in-NS3/src/render"
	"github.com/Rayan2bdu/Network-5G-slicing-performance-in-NS3/src/style"
	"github.com/Rayan2bdu/Network-5G-slicing-performance-in-NS3/src/types"
)

// PanelJob renders one slice type's per-device figure from its Static table.
type PanelJob struct {
	Slice      types.SliceType
	Color      color.RGBA
	InputPath  string
	OutputPath string
}

// PanelFileName is the conventional artifact name, e.g. urllc_performance_clean.png.
func PanelFileName(s types.SliceType) string {
	return s.FilePrefix() + "_performance_clean.png"
}

// DefaultPanelJobs returns the URLLC/firebrick, eMBB/royalblue, mMTC/forestgreen jobs.
func DefaultPanelJobs(inputDir, outputDir string) []PanelJob {
	jobs := make([]PanelJob, 0, len(types.SliceTypes))
	for _, s := range types.SliceTypes {
		jobs = append(jobs, PanelJob{
			Slice:      s,
			Color:      style.PanelColor(s),
			InputPath:  filepath.Join(inputDir, dataset.FileName(s, types.Static)),
			OutputPath: filepath.Join(outputDir, PanelFileName(s)),
		})
	}
	return jobs
}

// Run renders and writes this job's artifact.
func (j PanelJob) Run(opts render.Options) error {
	t, err := dataset.LoadTable(j.InputPath)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := render.RenderSlicePanels(&buf, j.Slice, t.Rows, j.Color, opts); err != nil {
		return err
	}
	return writeArtifact(j.OutputPath, buf.Bytes())
}

// PanelResult is the outcome of one PanelJob.
type PanelResult struct {
	Slice types.SliceType
	Path  string
	Err   error
}

// PanelBatch runs independent panel jobs. A failing job never affects its siblings.
type PanelBatch struct {
	Jobs    []PanelJob
	Options render.Options
}

// Run executes every job in order and reports each outcome.
func (b PanelBatch) Run() []PanelResult {
	results := make([]PanelResult, 0, len(b.Jobs))
	for _, j := range b.Jobs {
		err := j.Run(b.Options)
		if err != nil {
			logging.Errorf("%s panels skipped: %v", j.Slice, err)
		} else {
			logging.Debugf("%s panels saved to %s", j.Slice, j.OutputPath)
		}
		results = append(results, PanelResult{Slice: j.Slice, Path: j.OutputPath, Err: err})
	}
	return results
}

// Produced counts successful results.
func Produced(results []PanelResult) int {
	n := 0
	for _, r := range results {
		if r.Err == nil {
			n++
		}
	}
	return n
}

// FailedError folds the failed results into one error, or nil when all succeeded.
func FailedError(results []PanelResult) error {
	var failed []string
	for _, r := range results {
		if r.Err != nil {
			failed = append(failed, r.Slice.String())
		}
	}
	if len(failed) == 0 {
		return nil
	}
	return errors.Errorf("panels failed for %s", strings.Join(failed, ", "))
}
