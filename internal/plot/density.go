package plot

import (
	"fmt"
	"path/filepath"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/mbarria/gmxlab/internal/analysis"
	"github.com/mbarria/gmxlab/internal/xvg"
)

// DensityOptions configure a distribution overlay.
type DensityOptions struct {
	Title     string
	XLabel    string
	YLabel    string
	Label     string  // legend prefix, replica number appended
	Suffix    string  // file suffix selecting the measurement
	Bandwidth float64 // kernel bandwidth scale, 0 keeps Scott's rule as is
}

// MultiDensity estimates each replica's value distribution with a Gaussian
// kernel and overlays the curves, one viridis color per replica. The image
// is written to <dir>/<ensemble><suffix>_density.png.
func MultiDensity(dir, ensemble string, replicas int, opts DensityOptions) (string, error) {
	if replicas < 1 {
		return "", fmt.Errorf("plot: replicas must be positive, got %d", replicas)
	}

	colors := ReplicaColors(replicas)
	var series []chart.Series
	for i := 1; i <= replicas; i++ {
		tbl, err := xvg.Read(xvg.ReplicaFile(dir, i, opts.Suffix))
		if err != nil {
			return "", err
		}
		xs, ys := analysis.KDE(tbl.Y, opts.Bandwidth, 0)
		if xs == nil {
			return "", fmt.Errorf("plot: replica %d has too few samples for a density estimate", i)
		}
		series = append(series, chart.ContinuousSeries{
			Name:    fmt.Sprintf("%s %d", opts.Label, i),
			XValues: xs,
			YValues: ys,
			Style:   chart.Style{StrokeColor: colors[i-1], StrokeWidth: 2},
		})
	}

	out := filepath.Join(dir, ensemble+opts.Suffix+"_density.png")
	ch := newChart(opts.Title, opts.XLabel, opts.YLabel, series)
	if err := renderChart(out, ch); err != nil {
		return "", err
	}
	return out, nil
}
