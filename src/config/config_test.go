package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "slicereport.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 300, cfg.DPI)
	assert.Equal(t, "slice_performance.png", cfg.ReportPath())
}

func TestLoadOverridesDefaults(t *testing.T) {
	p := writeConfig(t, "input_dir: results\ndpi: 150\nsummary_xlsx: out/summary.xlsx\n")
	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "results", cfg.InputDir)
	assert.Equal(t, 150, cfg.DPI)
	assert.Equal(t, "out/summary.xlsx", cfg.SummaryXLSX)
	// untouched keys keep their defaults
	assert.Equal(t, ".", cfg.OutputDir)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(errors.Cause(err)))
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	_, err := Load(writeConfig(t, "dpii: 300\n"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		mod  func(*Config)
	}{
		{"zero dpi", func(c *Config) { c.DPI = 0 }},
		{"negative dpi", func(c *Config) { c.DPI = -1 }},
		{"empty report file", func(c *Config) { c.ReportFile = "" }},
		{"empty input dir", func(c *Config) { c.InputDir = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := Default()
			tc.mod(&c)
			assert.Error(t, c.Validate())
		})
	}
	assert.NoError(t, Default().Validate())
}

func TestReportPath(t *testing.T) {
	c := Default()
	c.OutputDir = "out"
	assert.Equal(t, filepath.Join("out", "slice_performance.png"), c.ReportPath())
	c.ReportFile = "/tmp/r.png"
	assert.Equal(t, "/tmp/r.png", c.ReportPath())
}
