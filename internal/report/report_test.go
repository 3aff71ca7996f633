package report_test

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/impactke/internal/impact"
	"github.com/san-kum/impactke/internal/report"
)

var _ = Describe("Text", func() {
	var result impact.Result

	BeforeEach(func() {
		result = impact.Compute(impact.Default(), zerolog.Nop())
	})

	render := func(r impact.Result) string {
		var buf bytes.Buffer
		Expect(report.Text(&buf, r)).To(Succeed())
		return buf.String()
	}

	It("lays out every labelled value", func() {
		c, _ := result.Estimate("c-type")
		s, _ := result.Estimate("s-type")
		m, _ := result.Estimate("m-type")

		expected := strings.Join([]string{
			"",
			" ---------------------------------------------------------------",
			" Results:",
			" ---------------------------------------------------------------",
			" 10-megaton bomb KE (erg):       4.20E+23",
			"",
			fmt.Sprintf(" 1-km C-type asteroid KE (erg):  %.2E", c.EnergyErg),
			fmt.Sprintf(" 1-km S-type asteroid KE (erg):  %.2E", s.EnergyErg),
			fmt.Sprintf(" 1-km M-type asteroid KE (erg):  %.2E", m.EnergyErg),
			"",
			fmt.Sprintf(" 1-km mean asteroid KE (erg):    %.2E", result.MeanEnergyErg),
			"",
			fmt.Sprintf(" Ceres asteroid KE (erg):        %.2E", result.CeresEnergyErg),
			fmt.Sprintf(" Difference factor (x):          %.1f", result.DifferenceFactor),
			fmt.Sprintf(" Difference factor (x):          %.2E", result.DifferenceFactor),
			" ---------------------------------------------------------------",
			"",
			"",
		}, "\n")

		Expect(render(result)).To(Equal(expected))
	})

	It("prints three significant figures for energies", func() {
		out := render(result)
		Expect(out).To(ContainSubstring("1-km C-type asteroid KE (erg):  4.53E+26"))
		Expect(out).To(ContainSubstring("Ceres asteroid KE (erg):        5.89E+35"))
		Expect(out).To(ContainSubstring("Difference factor (x):          1.40E+12"))
	})

	It("prints the difference factor that the energies imply", func() {
		factor := result.CeresEnergyErg / 4.2e23
		Expect(render(result)).To(ContainSubstring(fmt.Sprintf("%.1f\n", factor)))
	})

	It("is byte-identical across runs", func() {
		again := impact.Compute(impact.Default(), zerolog.Nop())
		Expect(render(again)).To(Equal(render(result)))
	})

	It("renders a zero-diameter body without error", func() {
		s := impact.Default()
		s.DiameterKm = 0
		out := render(impact.Compute(s, zerolog.Nop()))

		Expect(out).To(ContainSubstring(" 0-km C-type asteroid KE (erg):  0.00E+00"))
		Expect(out).To(ContainSubstring(" 0-km mean asteroid KE (erg):    0.00E+00"))
	})

	It("passes overflow through as infinity", func() {
		s := impact.Default()
		s.VelocityCmS = 1e300
		out := render(impact.Compute(s, zerolog.Nop()))

		Expect(out).To(ContainSubstring("+INF"))
	})

	It("returns writer errors", func() {
		Expect(report.Text(failingWriter{}, result)).To(MatchError("write failed"))
	})
})

var _ = Describe("Table", func() {
	It("adds TNT tonnage and bomb multiples", func() {
		result := impact.Compute(impact.Default(), zerolog.Nop())

		var buf bytes.Buffer
		Expect(report.Table(&buf, result)).To(Succeed())

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		Expect(lines).To(HaveLen(7))
		Expect(lines[0]).To(HavePrefix("BODY"))
		Expect(lines[1]).To(ContainSubstring("1.17e+07"))
		Expect(lines[1]).To(HaveSuffix("1.00e+00"))
		Expect(lines[6]).To(HavePrefix("Ceres asteroid"))
	})
})

var _ = Describe("Rows", func() {
	It("follows report order", func() {
		rows := report.Rows(impact.Compute(impact.Default(), zerolog.Nop()))

		labels := make([]string, len(rows))
		for i, r := range rows {
			labels[i] = r.Label
		}
		Expect(labels).To(Equal([]string{
			"10-megaton bomb",
			"1-km C-type asteroid",
			"1-km S-type asteroid",
			"1-km M-type asteroid",
			"1-km mean asteroid",
			"Ceres asteroid",
		}))
	})
})

var _ = Describe("Styled", func() {
	It("renders every theme", func() {
		result := impact.Compute(impact.Default(), zerolog.Nop())

		for _, name := range report.ThemeNames() {
			theme, err := report.GetTheme(name)
			Expect(err).NotTo(HaveOccurred())

			var buf bytes.Buffer
			Expect(report.Styled(&buf, result, theme)).To(Succeed())
			Expect(buf.String()).To(ContainSubstring("Impact kinetic energy"))
			Expect(buf.String()).To(ContainSubstring("4.20E+23 erg"))
			Expect(buf.String()).To(ContainSubstring("1.40E+12 x"))
		}
	})

	It("rejects unknown themes", func() {
		_, err := report.GetTheme("neon")
		Expect(err).To(MatchError(report.ErrUnknownTheme))
	})
})

var _ = Describe("Plot", func() {
	It("draws one caption and a legend of compositions", func() {
		var buf bytes.Buffer
		opts := report.PlotOptions{Width: 40, Height: 8, Points: 20}
		Expect(report.Plot(&buf, impact.Default(), opts)).To(Succeed())

		out := buf.String()
		Expect(out).To(ContainSubstring("KE (1e27 erg) vs diameter 0..1 km"))
		Expect(out).To(ContainSubstring("series: C-type (1.38 g/cm³), S-type (2.71 g/cm³), M-type (5.32 g/cm³)"))
	})

	It("fails without compositions", func() {
		s := impact.Default()
		s.Compositions = nil
		Expect(report.Plot(&bytes.Buffer{}, s, report.PlotOptions{Points: 10})).To(MatchError(report.ErrNoSeries))
	})
})

var _ = Describe("Export", func() {
	var result impact.Result

	BeforeEach(func() {
		result = impact.Compute(impact.Default(), zerolog.Nop())
	})

	It("writes flat JSON", func() {
		var buf bytes.Buffer
		Expect(report.Export(&buf, result, "json")).To(Succeed())

		var doc map[string]any
		Expect(json.Unmarshal(buf.Bytes(), &doc)).To(Succeed())
		Expect(doc).To(HaveKeyWithValue("diameter_km", 1.0))
		Expect(doc).To(HaveKeyWithValue("diameter_cm", 1e5))
		Expect(doc).To(HaveKeyWithValue("bomb_energy_erg", 4.2e23))
		Expect(doc).To(HaveKeyWithValue("reference_body", "Ceres"))
		Expect(doc["estimates"]).To(HaveLen(3))
		Expect(doc["difference_factor"]).To(BeNumerically("~", result.DifferenceFactor, result.DifferenceFactor*1e-12))
	})

	It("writes YAML with the result inlined", func() {
		var buf bytes.Buffer
		Expect(report.Export(&buf, result, "yaml")).To(Succeed())

		var doc map[string]any
		Expect(yaml.Unmarshal(buf.Bytes(), &doc)).To(Succeed())
		Expect(doc).To(HaveKey("volume_cm3"))
		Expect(doc).To(HaveKey("bomb_energy_ton"))
		Expect(doc["estimates"]).To(HaveLen(3))
	})

	It("writes one CSV record per quantity", func() {
		var buf bytes.Buffer
		Expect(report.Export(&buf, result, "csv")).To(Succeed())

		records, err := csv.NewReader(&buf).ReadAll()
		Expect(err).NotTo(HaveOccurred())
		Expect(records[0]).To(Equal([]string{"quantity", "value", "unit"}))
		// header, 5 geometry rows, 4 per composition, 8 summary rows
		Expect(records).To(HaveLen(1 + 5 + 3*4 + 8))
		Expect(records[len(records)-1][0]).To(Equal("difference_factor"))
	})

	It("writes non-finite values as JSON strings", func() {
		s := impact.Default()
		s.VelocityCmS = 1e300
		overflow := impact.Compute(s, zerolog.Nop())

		var buf bytes.Buffer
		Expect(report.Export(&buf, overflow, "json")).To(Succeed())

		var doc map[string]any
		Expect(json.Unmarshal(buf.Bytes(), &doc)).To(Succeed())
		Expect(doc).To(HaveKeyWithValue("ceres_energy_erg", "+Inf"))
		Expect(doc).To(HaveKeyWithValue("difference_factor", "+Inf"))
		Expect(doc).To(HaveKeyWithValue("bomb_energy_erg", 4.2e23))
		Expect(doc).To(HaveKeyWithValue("reference_body", "Ceres"))
		Expect(doc["estimates"]).To(HaveLen(3))

		estimate := doc["estimates"].([]any)[0].(map[string]any)
		Expect(estimate).To(HaveKeyWithValue("energy_erg", "+Inf"))
		Expect(estimate["composition"]).To(HaveKeyWithValue("name", "c-type"))
	})

	It("rejects unknown formats", func() {
		err := report.Export(&bytes.Buffer{}, result, "xml")
		Expect(err).To(MatchError(report.ErrUnknownFormat))
	})

	It("keeps ton values consistent with erg values", func() {
		doc := report.NewDocument(result)
		Expect(doc.BombEnergyTon * 3.6e16).To(BeNumerically("~", 4.2e23, 1e10))
		Expect(math.IsInf(doc.CeresEnergyTon, 0)).To(BeFalse())
	})
})

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, fmt.Errorf("write failed") }
