// Package impact computes the kinetic energy of hypothetical asteroid impacts
// and compares it with a 10-megaton TNT-equivalent explosion.
//
// The pipeline is linear:
//
//	volume (km³) -> volume (cm³) -> mass per composition -> kinetic energy
//	-> mean energy, Ceres energy -> difference factor
//
// All units are CGS. Every value in a [Result] is computed once and never
// modified afterwards.
package impact

import (
	"github.com/rs/zerolog"

	"github.com/san-kum/impactke/internal/physics"
	"github.com/san-kum/impactke/internal/units"
)

const (
	DiameterKm          = 1.0      // km
	EscapeVelocityCmS   = 1.12e6   // cm/s
	CeresMassG          = 9.393e23 // g
	Bomb10MegatonErg    = 4.2e23   // erg
	ReferenceBodyName   = "Ceres"
	ReferenceYieldLabel = "10-megaton bomb"
)

// Scenario holds the inputs of one calculation.
type Scenario struct {
	DiameterKm         float64
	VelocityCmS        float64
	ReferenceMassG     float64
	ReferenceEnergyErg float64
	Compositions       []Composition
}

// Default returns the fixed scenario: a 1 km body at Earth escape velocity,
// Ceres as the named reference body and a 10-megaton bomb as the yardstick.
func Default() Scenario {
	return Scenario{
		DiameterKm:         DiameterKm,
		VelocityCmS:        EscapeVelocityCmS,
		ReferenceMassG:     CeresMassG,
		ReferenceEnergyErg: Bomb10MegatonErg,
		Compositions:       NewRegistry().All(),
	}
}

// Estimate is the mass and impact energy of the sized body for one composition.
type Estimate struct {
	Composition Composition `json:"composition" yaml:"composition"`
	MassG       float64     `json:"mass_g" yaml:"mass_g"`
	EnergyErg   float64     `json:"energy_erg" yaml:"energy_erg"`
}

type Result struct {
	DiameterKm       float64    `json:"diameter_km" yaml:"diameter_km"`
	VelocityCmS      float64    `json:"velocity_cm_s" yaml:"velocity_cm_s"`
	VolumeKm3        float64    `json:"volume_km3" yaml:"volume_km3"`
	VolumeCm3        float64    `json:"volume_cm3" yaml:"volume_cm3"`
	Estimates        []Estimate `json:"estimates" yaml:"estimates"`
	MeanEnergyErg    float64    `json:"mean_energy_erg" yaml:"mean_energy_erg"`
	CeresMassG       float64    `json:"ceres_mass_g" yaml:"ceres_mass_g"`
	CeresEnergyErg   float64    `json:"ceres_energy_erg" yaml:"ceres_energy_erg"`
	BombEnergyErg    float64    `json:"bomb_energy_erg" yaml:"bomb_energy_erg"`
	DifferenceFactor float64    `json:"difference_factor" yaml:"difference_factor"`
}

// Estimate returns the estimate for the named composition.
func (r Result) Estimate(name string) (Estimate, bool) {
	for _, e := range r.Estimates {
		if e.Composition.Name == name {
			return e, true
		}
	}
	return Estimate{}, false
}

// Compute runs the pipeline for s. It never fails: degenerate inputs yield
// zeros, overflow yields +Inf, and a scenario without compositions has a
// NaN mean.
func Compute(s Scenario, log zerolog.Logger) Result {
	volumeKm3 := physics.SphereVolume(s.DiameterKm)
	volumeCm3 := units.Km3ToCm3(volumeKm3)

	log.Debug().
		Float64("diameter_km", s.DiameterKm).
		Float64("volume_km3", volumeKm3).
		Float64("volume_cm3", volumeCm3).
		Msg("sphere volume")

	estimates := make([]Estimate, 0, len(s.Compositions))
	var total float64
	for _, c := range s.Compositions {
		mass := physics.MassFromVolumeDensity(volumeCm3, c.Density)
		energy := physics.KineticEnergy(mass, s.VelocityCmS)
		estimates = append(estimates, Estimate{Composition: c, MassG: mass, EnergyErg: energy})
		total += energy

		log.Debug().
			Str("composition", c.Name).
			Float64("density", c.Density).
			Float64("mass_g", mass).
			Float64("energy_erg", energy).
			Msg("composition estimate")
	}

	ceresEnergy := physics.KineticEnergy(s.ReferenceMassG, s.VelocityCmS)
	factor := ceresEnergy / s.ReferenceEnergyErg

	log.Debug().
		Float64("ceres_energy_erg", ceresEnergy).
		Float64("difference_factor", factor).
		Msg("reference comparison")

	return Result{
		DiameterKm:       s.DiameterKm,
		VelocityCmS:      s.VelocityCmS,
		VolumeKm3:        volumeKm3,
		VolumeCm3:        volumeCm3,
		Estimates:        estimates,
		MeanEnergyErg:    total / float64(len(estimates)),
		CeresMassG:       s.ReferenceMassG,
		CeresEnergyErg:   ceresEnergy,
		BombEnergyErg:    s.ReferenceEnergyErg,
		DifferenceFactor: factor,
	}
}

// EnergyVsDiameter samples the kinetic energy of composition c for n
// diameters evenly spaced over [0, s.DiameterKm].
func EnergyVsDiameter(s Scenario, c Composition, n int) []float64 {
	if n < 2 {
		n = 2
	}
	out := make([]float64, n)
	for i := range out {
		d := s.DiameterKm * float64(i) / float64(n-1)
		mass := physics.MassFromVolumeDensity(units.Km3ToCm3(physics.SphereVolume(d)), c.Density)
		out[i] = physics.KineticEnergy(mass, s.VelocityCmS)
	}
	return out
}
