package naca

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/vinodthale/Effect-of-shape-and-adaptive-kinematics/utils"
)

var (
	ErrInvalidCode      = errors.New("invalid NACA code")
	ErrInvalidParameter = errors.New("invalid profile parameter")
)

// Profile is a closed boundary loop around a symmetric 4-digit
// airfoil, ordered from the trailing edge lower point through the
// leading edge to the trailing edge upper point.
type Profile struct {
	Code           string
	Chord          float64
	ThicknessRatio float64
	X, Y           utils.Vector
}

func (p Profile) Len() int { return p.X.Len() }

// MaxThickness is the largest |y| over the generated loop.
func (p Profile) MaxThickness() float64 {
	return math.Max(p.Y.Max(), -p.Y.Min())
}

// Span is the measured chordwise extent of the loop.
func (p Profile) Span() float64 { return p.X.Max() - p.X.Min() }

// ParseCode validates a 4-digit code and returns the thickness to
// chord ratio encoded in its last two digits.
func ParseCode(code string) (thicknessRatio float64, err error) {
	if len(code) != 4 {
		err = fmt.Errorf("%w: %q must be 4 digits", ErrInvalidCode, code)
		return
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			err = fmt.Errorf("%w: %q must be 4 digits", ErrInvalidCode, code)
			return
		}
	}
	pct, _ := strconv.Atoi(code[2:])
	if pct == 0 {
		err = fmt.Errorf("%w: %q encodes zero thickness", ErrInvalidCode, code)
		return
	}
	thicknessRatio = float64(pct) / 100.
	return
}

// Thickness evaluates the 4-digit symmetric NACA half-thickness at
// normalized chordwise position x in [0,1] for thickness ratio t:
//
//	y = 5t (0.2969 √x − 0.1260 x − 0.3516 x² + 0.2843 x³ − 0.1015 x⁴)
//
// The leading 5.0 is the canonical 1/0.20 scaling. Thickness(0, t) is
// exactly zero; Thickness(1, t) is small but nonzero, so the trailing
// edge stays open as the 4-digit formula defines it.
func Thickness(x, t float64) float64 {
	return 5. * t * (0.2969*math.Sqrt(x) -
		0.1260*x -
		0.3516*utils.POW(x, 2) +
		0.2843*utils.POW(x, 3) -
		0.1015*utils.POW(x, 4))
}

// GenerateProfile builds the boundary loop for a NACA 00XX code with
// nPoints cosine-spaced chordwise samples. The result has
// 2*nPoints - 1 vertices: the lower surface trailing-to-leading with
// its duplicate leading edge point dropped, then the upper surface
// leading-to-trailing.
func GenerateProfile(code string, nPoints int, chord float64) (p Profile, err error) {
	var t float64
	if t, err = ParseCode(code); err != nil {
		return
	}
	if nPoints < 2 {
		err = fmt.Errorf("%w: nPoints = %d, need at least 2", ErrInvalidParameter, nPoints)
		return
	}
	if chord <= 0 {
		err = fmt.Errorf("%w: chord = %g, must be positive", ErrInvalidParameter, chord)
		return
	}

	// Cosine spacing concentrates samples at the leading and trailing
	// edges where the surface curvature is highest.
	x := utils.NewVector(nPoints).Linspace(0, math.Pi).Apply(func(beta float64) float64 {
		return chord * 0.5 * (1. - math.Cos(beta))
	})
	yt := x.Copy().Apply(func(xc float64) float64 {
		return Thickness(xc/chord, t) * chord
	})

	xLower, yLower := x.Reversed(), yt.Reversed().Scale(-1)
	p = Profile{
		Code:           code,
		Chord:          chord,
		ThicknessRatio: t,
		X:              xLower.DropLast().Concat(x),
		Y:              yLower.DropLast().Concat(yt),
	}
	return
}
