package plot

import (
	"fmt"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/mbarria/gmxlab/internal/analysis"
	"github.com/mbarria/gmxlab/internal/xvg"
)

// Line plots one ensemble measurement as a black line, optionally
// overlaying a red moving average, and writes the image next to the data
// file. It returns the image path.
//
// The moving average uses only fully-overlapped windows, so its curve
// starts MovAvg-1 rows into the time axis. A window longer than the data
// drops the overlay instead of failing.
func Line(dir, ensemble string, opts Options) (string, error) {
	tbl, err := xvg.Read(xvg.File(dir, ensemble, opts.Suffix))
	if err != nil {
		return "", err
	}

	series := []chart.Series{chart.ContinuousSeries{
		Name:    opts.Label,
		XValues: tbl.X,
		YValues: tbl.Y,
		Style:   chart.Style{StrokeColor: chart.ColorBlack, StrokeWidth: 2},
	}}
	if opts.MovAvg > 0 {
		if smooth := analysis.MovingAverage(tbl.Y, opts.MovAvg); smooth != nil {
			series = append(series, chart.ContinuousSeries{
				Name:    fmt.Sprintf("%d ps moving average", opts.MovAvg),
				XValues: tbl.X[opts.MovAvg-1:],
				YValues: smooth,
				Style:   chart.Style{StrokeColor: chart.ColorRed, StrokeWidth: 2},
			})
		}
	}

	out := OutFile(dir, ensemble, opts.Suffix)
	ch := newChart(composeTitle(opts.Title, opts.Subtitle), opts.XLabel, opts.YLabel, series)
	if err := renderChart(out, ch); err != nil {
		return "", err
	}
	return out, nil
}
