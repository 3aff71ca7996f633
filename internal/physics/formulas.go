package physics

import "math"

// SphereVolume returns the volume of a sphere of the given diameter, in the
// cube of the diameter's unit.
func SphereVolume(diameter float64) float64 {
	radius := diameter / 2
	return (4.0 / 3.0) * math.Pi * radius * radius * radius
}

func MassFromVolumeDensity(volume, density float64) float64 {
	return volume * density
}

// KineticEnergy is ½·m·v². In CGS (g, cm/s) the result is in erg.
func KineticEnergy(mass, velocity float64) float64 {
	return 0.5 * mass * velocity * velocity
}
