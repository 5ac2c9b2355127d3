// Package kinematics implements the closed-form swimming laws from
// Gupta et al. (2022) for anguilliform and carangiform foils. All
// positions are chord-normalized, X in [0,1] from nose to tail.
package kinematics

import (
	"fmt"
	"math"

	"github.com/vinodthale/Effect-of-shape-and-adaptive-kinematics/utils"
)

type Mode uint8

const (
	Anguilliform Mode = iota
	Carangiform
)

func (m Mode) String() string {
	if m == Anguilliform {
		return "anguilliform"
	}
	return "carangiform"
}

// Paper constants for the Gupta et al. (2022) cases.
const (
	DefaultStrouhal     = 0.6
	DefaultMaxAmplitude = 0.1

	anguilliformWavelength = 0.65
	carangiformWavelength  = 1.0
)

type Params struct {
	Mode         Mode
	Strouhal     float64
	Wavelength   float64
	MaxAmplitude float64
}

// NewParams returns the paper's parameters for a swimming mode.
func NewParams(mode Mode) Params {
	p := Params{
		Mode:         mode,
		Strouhal:     DefaultStrouhal,
		Wavelength:   carangiformWavelength,
		MaxAmplitude: DefaultMaxAmplitude,
	}
	if mode == Anguilliform {
		p.Wavelength = anguilliformWavelength
	}
	return p
}

// AmplitudeEnvelope is the mode's lateral amplitude law:
// anguilliform A(X) = 0.1 exp[2.18(X-1)], growing toward the tail;
// carangiform A(X) = 0.02 - 0.08 X + 0.16 X², stiff forebody.
func (p Params) AmplitudeEnvelope(x float64) float64 {
	if p.Mode == Anguilliform {
		return 0.1 * math.Exp(2.18*(x-1.))
	}
	return 0.02 - 0.08*x + 0.16*utils.POW(x, 2)
}

func (p Params) phase(x, time float64) float64 {
	return 2. * math.Pi * (x/p.Wavelength - p.Strouhal*time)
}

// LateralDisplacement is the traveling-wave centerline deflection
// Y(X,t) = A(X) sin(2Pi(X/lambda - St t)).
func (p Params) LateralDisplacement(x, time float64) float64 {
	return p.AmplitudeEnvelope(x) * math.Sin(p.phase(x, time))
}

// BodyVelocity is the lateral body velocity
// V(X,t) = Pi St (A(X)/A_max) cos(2Pi(X/lambda - St t)).
func (p Params) BodyVelocity(x, time float64) float64 {
	return math.Pi * p.Strouhal * (p.AmplitudeEnvelope(x) / p.MaxAmplitude) *
		math.Cos(p.phase(x, time))
}

// Centerline samples the lateral displacement over the chordwise
// stations in x at one instant.
func (p Params) Centerline(x utils.Vector, time float64) utils.Vector {
	return x.Copy().Apply(func(xc float64) float64 {
		return p.LateralDisplacement(xc, time)
	})
}

func (p Params) Print() {
	fmt.Printf("[%s]\t= Swimming mode\n", p.Mode)
	fmt.Printf("%8.5f\t= Strouhal number\n", p.Strouhal)
	fmt.Printf("%8.5f\t= Wavelength\n", p.Wavelength)
	fmt.Printf("%8.5f\t= Max amplitude\n", p.MaxAmplitude)
}
