// Package plot renders simulation time series and distributions to PNG
// images sized for print.
//
// All renderers share the xvg file conventions: a run's measurement lives
// at <dir>/<ensemble><suffix>.xvg and its plot is written next to it with
// the extension swapped. Replica overlays read replicaNN-prefixed files
// from the same directory.
package plot

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
)

// Images render in a 10x6 landscape at print resolution.
const (
	Width  = 3000
	Height = 1800
	DPI    = 300
)

// Options configure the line renderers. The zero value plots an unlabeled
// raw series.
type Options struct {
	Title    string // headline above the plot
	Subtitle string // appended to the title in parentheses when set
	XLabel   string // x axis name
	YLabel   string // y axis name, math markup switches ticks to scientific notation
	Label    string // legend name of the raw series
	Suffix   string // file suffix selecting the measurement, e.g. "_temp"
	MovAvg   int    // moving-average window in rows, 0 disables the overlay
}

// OutFile returns the image path for a measurement, mirroring
// xvg.File with the image extension.
func OutFile(dir, ensemble, suffix string) string {
	return filepath.Join(dir, ensemble+suffix+".png")
}

func composeTitle(title, subtitle string) string {
	if subtitle == "" {
		return title
	}
	if title == "" {
		return subtitle
	}
	return fmt.Sprintf("%s (%s)", title, subtitle)
}

// sciFormatter renders tick values in scientific notation, used for
// quantities whose axis labels carry math markup and span magnitudes.
func sciFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%.2e", f)
	}
	return ""
}

func yAxis(label string) chart.YAxis {
	ax := chart.YAxis{Name: label}
	if strings.Contains(label, "$") {
		ax.ValueFormatter = sciFormatter
	}
	return ax
}

func newChart(title, xlabel, ylabel string, series []chart.Series) chart.Chart {
	return chart.Chart{
		Title:      title,
		Width:      Width,
		Height:     Height,
		DPI:        DPI,
		Background: chart.Style{Padding: chart.Box{Top: 60, Left: 60, Right: 60, Bottom: 60}},
		XAxis:      chart.XAxis{Name: xlabel},
		YAxis:      yAxis(ylabel),
		Series:     series,
	}
}

func renderChart(path string, ch chart.Chart) error {
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return fmt.Errorf("plot: render %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("plot: %w", err)
	}
	return nil
}
