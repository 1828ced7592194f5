// Package wind evaluates the wind mass-loss rate and kinetic luminosity
// on a uniform time grid. Inputs are accepted in astronomer-friendly
// units (years, solar masses, km/s) and converted to CGS before
// evaluation; all table values are CGS.
package wind

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Unit conversion factors to CGS.
const (
	SecondsPerYear = 365.25 * 24 * 3600 // Julian year
	SolarMassGrams = 1.98847e33
	KmToCm         = 1.0e5
)

// Params holds the physical inputs in the units the CLI accepts.
type Params struct {
	FinalTime    float64 // t_f, final time in years
	EjectionTime float64 // t_ej, ejection time scale in years
	EjectedMass  float64 // M_ej, ejected mass in solar masses
	Velocity     float64 // v_ej, ejection velocity in km/s
	Steps        int     // number of time samples between 0 and t_f, inclusive
}

// Table is a computed wind table in CGS units. Times and Luminosity
// have one entry per grid sample; Velocity is constant over the table.
type Table struct {
	Times      []float64 // seconds
	Luminosity []float64 // Lw, erg/s
	Velocity   float64   // v_ej, cm/s
}

// Compute evaluates the wind table for p. The grid spans [0, t_f] with
// p.Steps uniformly spaced samples including both endpoints, so p.Steps
// must be at least 2.
//
// The mass-loss rate at grid time t is
//
//	Mdot(t) = M_ej * (1 - exp(x^2)) / (x^2 * sqrt(pi) * t_ej)
//
// with x = t/t_ej, and the luminosity is Lw = Mdot * v_ej^2. Samples
// where x == 0 carry Mdot = 0; this covers the t = 0 sample and, when
// t_ej == 0, the entire table.
func Compute(p Params) Table {
	tF := p.FinalTime * SecondsPerYear
	tEj := p.EjectionTime * SecondsPerYear
	mEj := p.EjectedMass * SolarMassGrams
	vEj := p.Velocity * KmToCm

	times := make([]float64, p.Steps)
	floats.Span(times, 0, tF)

	lw := make([]float64, p.Steps)
	for i, t := range times {
		var x float64
		if tEj != 0 {
			x = t / tEj
		}
		if x == 0 {
			continue
		}
		mdot := mEj * (1 - math.Exp(x*x)) / (x * x * math.SqrtPi * tEj)
		lw[i] = mdot * vEj * vEj
	}

	return Table{Times: times, Luminosity: lw, Velocity: vEj}
}
