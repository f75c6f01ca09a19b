package plot

import (
	"fmt"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/mbarria/gmxlab/internal/analysis"
	"github.com/mbarria/gmxlab/internal/xvg"
)

// Mode selects which curves a replica overlay draws.
type Mode string

const (
	ModeValues        Mode = "values"
	ModeMovingAverage Mode = "moving_average"
	ModeBoth          Mode = "both"
)

// ParseMode validates a mode name from the command line.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeValues, ModeMovingAverage, ModeBoth:
		return m, nil
	}
	return "", fmt.Errorf("plot: unknown mode %q, want values, moving_average or both", s)
}

func (m Mode) wantValues() bool   { return m == ModeValues || m == ModeBoth }
func (m Mode) wantAverages() bool { return m == ModeMovingAverage || m == ModeBoth }

// MultiLine overlays one measurement across all replicas of an ensemble,
// one viridis color per replica. Raw series draw solid, moving averages
// dashed. Replica data is read from replicaNN-prefixed files in dir and
// the image lands at the ensemble's usual location.
func MultiLine(dir, ensemble string, replicas int, mode Mode, opts Options) (string, error) {
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
		label := fmt.Sprintf("%s %d", opts.Label, i)
		if mode.wantValues() {
			series = append(series, chart.ContinuousSeries{
				Name:    label,
				XValues: tbl.X,
				YValues: tbl.Y,
				Style:   chart.Style{StrokeColor: colors[i-1], StrokeWidth: 2},
			})
		}
		if opts.MovAvg > 0 && mode.wantAverages() {
			if smooth := analysis.MovingAverage(tbl.Y, opts.MovAvg); smooth != nil {
				series = append(series, chart.ContinuousSeries{
					Name:    label + " MA",
					XValues: tbl.X[opts.MovAvg-1:],
					YValues: smooth,
					Style: chart.Style{
						StrokeColor:     colors[i-1],
						StrokeWidth:     2,
						StrokeDashArray: []float64{5, 5},
					},
				})
			}
		}
	}

	out := OutFile(dir, ensemble, opts.Suffix)
	ch := newChart(composeTitle(opts.Title, opts.Subtitle), opts.XLabel, opts.YLabel, series)
	if err := renderChart(out, ch); err != nil {
		return "", err
	}
	return out, nil
}
