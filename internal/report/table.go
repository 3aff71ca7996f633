package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/san-kum/impactke/internal/impact"
	"github.com/san-kum/impactke/internal/units"
)

// Row is one labelled energy in a tabular view.
type Row struct {
	Label     string
	EnergyErg float64
}

// Rows lists every energy of r in report order.
func Rows(r impact.Result) []Row {
	rows := []Row{{Label: impact.ReferenceYieldLabel, EnergyErg: r.BombEnergyErg}}
	for _, e := range r.Estimates {
		rows = append(rows, Row{
			Label:     fmt.Sprintf("%s %s asteroid", sizeLabel(r.DiameterKm), e.Composition.Label),
			EnergyErg: e.EnergyErg,
		})
	}
	rows = append(rows,
		Row{Label: sizeLabel(r.DiameterKm) + " mean asteroid", EnergyErg: r.MeanEnergyErg},
		Row{Label: impact.ReferenceBodyName + " asteroid", EnergyErg: r.CeresEnergyErg},
	)
	return rows
}

// Table writes each energy in erg and in tons of TNT.
func Table(w io.Writer, r impact.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "BODY\tKE (erg)\tKE (ton TNT)\tx BOMB")

	for _, row := range Rows(r) {
		fmt.Fprintf(tw, "%s\t%.2E\t%.2e\t%.2e\n",
			row.Label,
			row.EnergyErg,
			units.ErgToTon(row.EnergyErg),
			row.EnergyErg/r.BombEnergyErg,
		)
	}

	return tw.Flush()
}
