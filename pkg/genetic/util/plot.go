package util

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/mihai-snyk/genetic/pkg/genetic/stats"
)

// PlotHistory renders a line chart of the best, mean and worst fitness of
// every recorded generation as an HTML page.
func PlotHistory(w io.Writer, summaries []stats.Summary, problemName string) error {
	if len(summaries) == 0 {
		return fmt.Errorf("history is empty for %s", problemName)
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("Fitness per generation for %s", problemName),
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: problemName,
			Theme:     types.ThemeWesteros,
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "generation",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "fitness",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}))

	generations := make([]uint64, len(summaries))
	best := make([]opts.LineData, len(summaries))
	mean := make([]opts.LineData, len(summaries))
	worst := make([]opts.LineData, len(summaries))
	for i, s := range summaries {
		generations[i] = s.Generation
		best[i] = opts.LineData{Value: s.Best}
		mean[i] = opts.LineData{Value: s.Mean}
		worst[i] = opts.LineData{Value: s.Worst}
	}

	line.SetXAxis(generations).
		AddSeries("Best", best).
		AddSeries("Mean", mean).
		AddSeries("Worst", worst)

	return line.Render(w)
}

// WritePlot renders PlotHistory into the file at path.
func WritePlot(path string, summaries []stats.Summary, problemName string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := PlotHistory(f, summaries, problemName); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
