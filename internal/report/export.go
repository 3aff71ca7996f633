package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"reflect"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/impactke/internal/impact"
	"github.com/san-kum/impactke/internal/units"
)

// Formats lists the names accepted by Export.
var Formats = []string{"json", "yaml", "csv"}

// Document is the machine-readable form of a result. It carries the CGS
// values of the result plus TNT-equivalent companions.
type Document struct {
	impact.Result `yaml:",inline"`

	DiameterCm     float64 `json:"diameter_cm" yaml:"diameter_cm"`
	MeanEnergyTon  float64 `json:"mean_energy_ton" yaml:"mean_energy_ton"`
	CeresEnergyTon float64 `json:"ceres_energy_ton" yaml:"ceres_energy_ton"`
	BombEnergyTon  float64 `json:"bomb_energy_ton" yaml:"bomb_energy_ton"`
	ErgPerTonTNT   float64 `json:"erg_per_ton_tnt" yaml:"erg_per_ton_tnt"`
	ReferenceBody  string  `json:"reference_body" yaml:"reference_body"`
	ReferenceYield string  `json:"reference_yield" yaml:"reference_yield"`
}

func NewDocument(r impact.Result) Document {
	return Document{
		Result:         r,
		DiameterCm:     units.KmToCm(r.DiameterKm),
		MeanEnergyTon:  units.ErgToTon(r.MeanEnergyErg),
		CeresEnergyTon: units.ErgToTon(r.CeresEnergyErg),
		BombEnergyTon:  units.ErgToTon(r.BombEnergyErg),
		ErgPerTonTNT:   units.ErgPerTonTNT,
		ReferenceBody:  impact.ReferenceBodyName,
		ReferenceYield: impact.ReferenceYieldLabel,
	}
}

// Export writes r in the named format.
func Export(w io.Writer, r impact.Result, format string) error {
	doc := NewDocument(r)

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(jsonSafe(doc))
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	case "csv":
		return exportCSV(w, doc)
	default:
		return fmt.Errorf("%w: %s (available: %v)", ErrUnknownFormat, format, Formats)
	}
}

func exportCSV(w io.Writer, doc Document) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"quantity", "value", "unit"}); err != nil {
		return err
	}

	rows := [][]string{
		{"diameter", formatFloat(doc.DiameterKm), "km"},
		{"diameter", formatFloat(doc.DiameterCm), "cm"},
		{"velocity", formatFloat(doc.VelocityCmS), "cm/s"},
		{"volume", formatFloat(doc.VolumeKm3), "km3"},
		{"volume", formatFloat(doc.VolumeCm3), "cm3"},
	}
	for _, e := range doc.Estimates {
		rows = append(rows,
			[]string{e.Composition.Name + "_density", formatFloat(e.Composition.Density), "g/cm3"},
			[]string{e.Composition.Name + "_mass", formatFloat(e.MassG), "g"},
			[]string{e.Composition.Name + "_energy", formatFloat(e.EnergyErg), "erg"},
			[]string{e.Composition.Name + "_energy", formatFloat(units.ErgToTon(e.EnergyErg)), "ton"},
		)
	}
	rows = append(rows,
		[]string{"mean_energy", formatFloat(doc.MeanEnergyErg), "erg"},
		[]string{"mean_energy", formatFloat(doc.MeanEnergyTon), "ton"},
		[]string{"ceres_mass", formatFloat(doc.CeresMassG), "g"},
		[]string{"ceres_energy", formatFloat(doc.CeresEnergyErg), "erg"},
		[]string{"ceres_energy", formatFloat(doc.CeresEnergyTon), "ton"},
		[]string{"bomb_energy", formatFloat(doc.BombEnergyErg), "erg"},
		[]string{"bomb_energy", formatFloat(doc.BombEnergyTon), "ton"},
		[]string{"difference_factor", formatFloat(doc.DifferenceFactor), "x"},
	)

	return cw.WriteAll(rows)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'e', 6, 64)
}

// jsonSafe returns doc unchanged when every float in it is finite. Otherwise
// it returns an equivalent tree of maps and slices in which +Inf, -Inf and
// NaN are strings, since JSON has no literal for them.
func jsonSafe(doc Document) any {
	v, changed := jsonValue(reflect.ValueOf(doc))
	if !changed {
		return doc
	}
	return v
}

func jsonValue(v reflect.Value) (any, bool) {
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return strconv.FormatFloat(f, 'g', -1, 64), true
		}
		return f, false
	case reflect.Slice:
		out := make([]any, v.Len())
		changed := false
		for i := range out {
			var c bool
			out[i], c = jsonValue(v.Index(i))
			changed = changed || c
		}
		return out, changed
	case reflect.Struct:
		out := make(map[string]any)
		changed := jsonFields(v, out)
		return out, changed
	default:
		return v.Interface(), false
	}
}

// jsonFields copies the exported fields of struct v into out under their
// json names. Untagged embedded structs are flattened, as encoding/json does.
func jsonFields(v reflect.Value, out map[string]any) bool {
	changed := false
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		tag := f.Tag.Get("json")
		if f.Anonymous && tag == "" && f.Type.Kind() == reflect.Struct {
			changed = jsonFields(v.Field(i), out) || changed
			continue
		}
		name, _, _ := strings.Cut(tag, ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = f.Name
		}
		val, c := jsonValue(v.Field(i))
		out[name] = val
		changed = changed || c
	}
	return changed
}
