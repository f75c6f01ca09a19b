// Package report drives the plotting layer over whole simulation runs and
// collects the resulting images into an HTML gallery fragment.
package report

import (
	"fmt"

	"github.com/mbarria/gmxlab/internal/gallery"
	"github.com/mbarria/gmxlab/internal/plot"
	"github.com/mbarria/gmxlab/internal/xvg"
)

// Params describe one report: which measurement to plot, for how many
// replicas, and how to label the results.
type Params struct {
	Title    string
	Path     string
	Ensemble string
	XLabel   string
	YLabel   string
	Label    string
	Suffix   string
	MovAvg   int

	// Replicas > 0 plots each replica's copy of the measurement from its
	// replicaNN subdirectory. Overlay collapses them into one combined
	// image instead.
	Replicas int
	Overlay  bool
	Mode     plot.Mode

	// Measure, Units and Values annotate per-replica subtitles with the
	// condition that distinguishes the replicas, one value per replica.
	Measure string
	Units   string
	Values  []float64
}

func (p Params) options(subtitle string) plot.Options {
	return plot.Options{
		Title:    p.Title,
		Subtitle: subtitle,
		XLabel:   p.XLabel,
		YLabel:   p.YLabel,
		Label:    p.Label,
		Suffix:   p.Suffix,
		MovAvg:   p.MovAvg,
	}
}

func (p Params) subtitle(replica int) string {
	s := fmt.Sprintf("Replica #%02d", replica)
	if p.Measure != "" && replica <= len(p.Values) {
		s = fmt.Sprintf("%s (%s = %.2f%s)", s, p.Measure, p.Values[replica-1], p.Units)
	}
	return s
}

// Render produces the plots for one measurement and returns the gallery
// fragment referencing them. Every image that was rendered successfully is
// on disk even when a later replica fails.
func Render(p Params) (string, error) {
	g := gallery.New()

	switch {
	case p.Replicas <= 0:
		out, err := plot.Line(p.Path, p.Ensemble, p.options(""))
		if err != nil {
			return "", err
		}
		g.Add(out)

	case p.Overlay:
		mode := p.Mode
		if mode == "" {
			mode = plot.ModeBoth
		}
		out, err := plot.MultiLine(p.Path, p.Ensemble, p.Replicas, mode, p.options(""))
		if err != nil {
			return "", err
		}
		g.Add(out)

	default:
		for i := 1; i <= p.Replicas; i++ {
			out, err := plot.Line(xvg.ReplicaDir(p.Path, i), p.Ensemble, p.options(p.subtitle(i)))
			if err != nil {
				return "", fmt.Errorf("report: replica %d: %w", i, err)
			}
			g.Add(out)
		}
	}
	return g.HTML(), nil
}
