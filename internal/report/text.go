// Package report renders an [impact.Result] for humans and machines.
//
// [Text] is the canonical fixed-layout report. [Table], [Styled], [Plot] and
// [Export] are alternative views of the same result.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/impactke/internal/impact"
)

const (
	rule       = " ---------------------------------------------------------------"
	labelWidth = 32
)

// Text writes the fixed-layout report: energies as %.2E, the difference
// factor once as %.1f and once as %.2E. Output depends only on r.
func Text(w io.Writer, r impact.Result) error {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(rule + "\n")
	b.WriteString(" Results:\n")
	b.WriteString(rule + "\n")
	line(&b, impact.ReferenceYieldLabel+" KE (erg):", "%.2E", r.BombEnergyErg)
	b.WriteString("\n")
	for _, e := range r.Estimates {
		line(&b, fmt.Sprintf("%s %s asteroid KE (erg):", sizeLabel(r.DiameterKm), e.Composition.Label), "%.2E", e.EnergyErg)
	}
	b.WriteString("\n")
	line(&b, sizeLabel(r.DiameterKm)+" mean asteroid KE (erg):", "%.2E", r.MeanEnergyErg)
	b.WriteString("\n")
	line(&b, impact.ReferenceBodyName+" asteroid KE (erg):", "%.2E", r.CeresEnergyErg)
	line(&b, "Difference factor (x):", "%.1f", r.DifferenceFactor)
	line(&b, "Difference factor (x):", "%.2E", r.DifferenceFactor)
	b.WriteString(rule + "\n")
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func line(b *strings.Builder, label, verb string, v float64) {
	fmt.Fprintf(b, " %-*s"+verb+"\n", labelWidth, label, v)
}

// sizeLabel renders a diameter as "1-km".
func sizeLabel(diameterKm float64) string {
	return fmt.Sprintf("%g-km", diameterKm)
}
