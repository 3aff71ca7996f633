// Package physics provides the closed-form formulas behind the impact
// calculation:
//
//   - [SphereVolume]: (4/3)·π·r³ from a diameter
//   - [MassFromVolumeDensity]: m = V·ρ
//   - [KineticEnergy]: ½·m·v²
//
// The functions are unit-agnostic; callers pass consistent units (the impact
// package uses CGS). No inputs are rejected: negative diameters keep their
// sign through the odd power and overflow yields +Inf.
package physics
