package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.sr.ht/~whereswaldon/ratecurve/chart"
)

func TestLoadStyle(t *testing.T) {
	cfg, err := loadStyle("")
	require.NoError(t, err)
	assert.Nil(t, cfg.ChartPosition)

	path := filepath.Join(t.TempDir(), "style.yaml")
	require.NoError(t, os.WriteFile(path, []byte("xLegend: Utilization\nyLabelFormat: number\n"), 0o644))
	cfg, err = loadStyle(path)
	require.NoError(t, err)
	assert.Equal(t, "Utilization", cfg.XLegendText)
	assert.Equal(t, "1.5k", cfg.YLabelFormatter(1500))

	require.NoError(t, os.WriteFile(path, []byte("yLabelFormat: roman\n"), 0o644))
	_, err = loadStyle(path)
	assert.True(t, errors.Is(err, chart.ErrConfig), "got %v", err)

	_, err = loadStyle(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.True(t, errors.Is(err, os.ErrNotExist), "got %v", err)
}

func TestRootFlags(t *testing.T) {
	cmd := newRootCmd()
	follow, err := cmd.Flags().GetBool("follow")
	require.NoError(t, err)
	assert.True(t, follow)

	require.NoError(t, cmd.Flags().Parse([]string{"--current", "0.62", "--follow=false"}))
	current, err := cmd.Flags().GetFloat64("current")
	require.NoError(t, err)
	assert.Equal(t, 0.62, current)
	assert.True(t, cmd.Flags().Changed("current"))
	follow, err = cmd.Flags().GetBool("follow")
	require.NoError(t, err)
	assert.False(t, follow)

	assert.Error(t, cmd.Args(cmd, []string{"a.csv", "b.csv"}))
}
