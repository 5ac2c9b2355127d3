package analysis

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/vinodthale/Effect-of-shape-and-adaptive-kinematics/kinematics"
	"github.com/vinodthale/Effect-of-shape-and-adaptive-kinematics/naca"
)

// Performance log names follow a fixed grammar, one pattern per study:
//
//	Zhang_performance_Re<int>_h<int>.dat      h in thousandths of chord
//	Gupta_performance_<Ang|Car>_NACA<code>_St<int>.dat   St in hundredths
//
// Anything else is rejected rather than guessed at.
var (
	zhangNameRE = regexp.MustCompile(`^Zhang_performance_Re(\d+)_h(\d+)\.dat$`)
	guptaNameRE = regexp.MustCompile(`^Gupta_performance_(Ang|Car)_NACA(\d{4})_St(\d+)\.dat$`)
)

type ZhangCase struct {
	Reynolds  float64
	Thickness float64 // h/L
}

func (zc ZhangCase) Label() string {
	return fmt.Sprintf("Re=%.0f, h/L=%.2f", zc.Reynolds, zc.Thickness)
}

type GuptaCase struct {
	Mode      kinematics.Mode
	Code      string
	Strouhal  float64
	Thickness float64 // h/c from the NACA code
}

func (gc GuptaCase) Label() string {
	return fmt.Sprintf("%s: NACA%s, St=%.1f", gc.Mode, gc.Code, gc.Strouhal)
}

// ParseZhangFilename decodes a Zhang (2018) performance log name.
func ParseZhangFilename(name string) (zc ZhangCase, err error) {
	m := zhangNameRE.FindStringSubmatch(filepath.Base(name))
	if m == nil {
		err = fmt.Errorf("not a Zhang performance filename: %s", name)
		return
	}
	re, _ := strconv.Atoi(m[1])
	h, _ := strconv.Atoi(m[2])
	zc = ZhangCase{Reynolds: float64(re), Thickness: float64(h) / 1000.}
	return
}

// ParseGuptaFilename decodes a Gupta (2022) performance log name. The
// embedded NACA code must be a valid symmetric profile code.
func ParseGuptaFilename(name string) (gc GuptaCase, err error) {
	m := guptaNameRE.FindStringSubmatch(filepath.Base(name))
	if m == nil {
		err = fmt.Errorf("not a Gupta performance filename: %s", name)
		return
	}
	tr, err := naca.ParseCode(m[2])
	if err != nil {
		return
	}
	st, _ := strconv.Atoi(m[3])
	gc = GuptaCase{
		Mode:      kinematics.Carangiform,
		Code:      m[2],
		Strouhal:  float64(st) / 100.,
		Thickness: tr,
	}
	if m[1] == "Ang" {
		gc.Mode = kinematics.Anguilliform
	}
	return
}
