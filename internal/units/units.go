// Package units converts between the SI and CGS quantities used by the
// impact calculator. Energies are CGS (erg, 1 erg = 1e-7 J) with TNT-equivalent
// tonnage as the human-scale companion.
package units

const (
	Km3ToCm3Factor = 1e15
	KgToGFactor    = 1e3
	KmToCmFactor   = 1e5

	// ErgPerTonTNT is the TNT equivalence used throughout the reports.
	ErgPerTonTNT = 3.6e16
)

func Km3ToCm3(km3 float64) float64 { return km3 * Km3ToCm3Factor }

func KgToG(kg float64) float64 { return kg * KgToGFactor }

func KmToCm(km float64) float64 { return km * KmToCmFactor }

// TonToErg converts tons of TNT equivalent to erg.
func TonToErg(ton float64) float64 { return ton * ErgPerTonTNT }

// ErgToTon is the inverse of TonToErg.
func ErgToTon(erg float64) float64 { return erg / ErgPerTonTNT }
