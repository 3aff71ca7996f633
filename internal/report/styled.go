package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/impactke/internal/impact"
	"github.com/san-kum/impactke/internal/units"
)

type styles struct {
	panel   lipgloss.Style
	title   lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	muted   lipgloss.Style
	warning lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(1, 2),
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Title).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(t.Border),
		label:   lipgloss.NewStyle().Foreground(t.Label).Width(labelWidth),
		value:   lipgloss.NewStyle().Foreground(t.Value).Bold(true),
		muted:   lipgloss.NewStyle().Foreground(t.Muted),
		warning: lipgloss.NewStyle().Foreground(t.Warning).Bold(true),
	}
}

// Styled renders the report inside a bordered lipgloss panel. Each energy is
// followed by its TNT tonnage in the muted color.
func Styled(w io.Writer, r impact.Result, t Theme) error {
	s := newStyles(t)

	var b strings.Builder
	b.WriteString(s.title.Render("Impact kinetic energy"))
	b.WriteString("\n\n")

	for _, row := range Rows(r) {
		b.WriteString(s.label.Render(row.Label))
		b.WriteString(s.value.Render(fmt.Sprintf("%.2E erg", row.EnergyErg)))
		b.WriteString("  ")
		b.WriteString(s.muted.Render(fmt.Sprintf("(%.2e t)", units.ErgToTon(row.EnergyErg))))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(s.label.Render("Difference factor"))
	b.WriteString(s.warning.Render(fmt.Sprintf("%.2E x", r.DifferenceFactor)))
	b.WriteString("\n")
	b.WriteString(separator(s, labelWidth+24))

	_, err := io.WriteString(w, s.panel.Render(b.String())+"\n")
	return err
}

func separator(s styles, width int) string {
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return s.muted.Render(left + " ◆ " + right)
}
