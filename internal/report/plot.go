package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/impactke/internal/impact"
)

type PlotOptions struct {
	Width  int
	Height int
	Points int
}

// Plot draws kinetic energy against diameter, from 0 to the scenario
// diameter, with one series per composition. Values are scaled by a power of
// ten so the axis labels stay readable.
func Plot(w io.Writer, s impact.Scenario, opts PlotOptions) error {
	if len(s.Compositions) == 0 {
		return ErrNoSeries
	}

	series := make([][]float64, len(s.Compositions))
	peak := 0.0
	for i, c := range s.Compositions {
		series[i] = impact.EnergyVsDiameter(s, c, opts.Points)
		for _, v := range series[i] {
			peak = math.Max(peak, v)
		}
	}

	exp := energyExponent(peak)
	scale := math.Pow(10, float64(exp))
	for _, data := range series {
		for j := range data {
			data[j] /= scale
		}
	}

	graph := asciigraph.PlotMany(series,
		asciigraph.Height(opts.Height),
		asciigraph.Width(opts.Width),
		asciigraph.Precision(2),
		asciigraph.Caption(fmt.Sprintf("KE (1e%d erg) vs diameter 0..%g km", exp, s.DiameterKm)),
	)

	labels := make([]string, len(s.Compositions))
	for i, c := range s.Compositions {
		labels[i] = fmt.Sprintf("%s (%.2f g/cm³)", c.Label, c.Density)
	}

	_, err := fmt.Fprintf(w, "%s\n\nseries: %s\n", graph, strings.Join(labels, ", "))
	return err
}

// energyExponent is the decimal exponent of v, or 0 when v is not a
// positive finite number.
func energyExponent(v float64) int {
	if v <= 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0
	}
	return int(math.Floor(math.Log10(v)))
}
