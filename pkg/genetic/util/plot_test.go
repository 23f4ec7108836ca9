package util

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mihai-snyk/genetic/pkg/genetic/stats"
)

func TestPlotHistory(t *testing.T) {
	summaries := []stats.Summary{
		{Generation: 0, Size: 4, Best: 1, Worst: 9, Mean: 5},
		{Generation: 1, Size: 4, Best: 0, Worst: 4, Mean: 2},
	}
	var buf bytes.Buffer
	require.NoError(t, PlotHistory(&buf, summaries, "Countdown"))
	html := buf.String()
	assert.Contains(t, html, "Fitness per generation for Countdown")
	assert.Contains(t, html, "Best")
	assert.Contains(t, html, "Worst")
}

func TestPlotHistoryEmpty(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, PlotHistory(&buf, nil, "Countdown"))
	assert.Zero(t, buf.Len())
}

func TestWritePlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.html")
	require.NoError(t, WritePlot(path, []stats.Summary{{Size: 1, Best: 3, Worst: 3, Mean: 3}}, "Parabola"))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Parabola")
}
