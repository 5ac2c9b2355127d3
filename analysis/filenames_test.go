package analysis

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinodthale/Effect-of-shape-and-adaptive-kinematics/kinematics"
)

func TestParseZhangFilename(t *testing.T) {
	zc, err := ParseZhangFilename("Zhang_performance_Re1000_h004.dat")
	require.NoError(t, err)
	assert.Equal(t, 1000., zc.Reynolds)
	assert.InDelta(t, 0.004, zc.Thickness, 1.e-12)
	assert.Equal(t, "Re=1000, h/L=0.00", zc.Label())

	// Full paths are accepted
	zc, err = ParseZhangFilename("results/Zhang_2018/Zhang_performance_Re500_h120.dat")
	require.NoError(t, err)
	assert.Equal(t, 500., zc.Reynolds)
	assert.InDelta(t, 0.12, zc.Thickness, 1.e-12)

	for _, name := range []string{
		"Zhang_performance_Re1000.dat",
		"Zhang_performance_Re_h004.dat",
		"Gupta_performance_Ang_NACA0006_St04.dat",
		"Zhang_performance_Re1000_h004.txt",
	} {
		_, err = ParseZhangFilename(name)
		assert.Error(t, err, name)
	}
}

func TestParseGuptaFilename(t *testing.T) {
	gc, err := ParseGuptaFilename("Gupta_performance_Ang_NACA0006_St04.dat")
	require.NoError(t, err)
	assert.Equal(t, kinematics.Anguilliform, gc.Mode)
	assert.Equal(t, "0006", gc.Code)
	assert.InDelta(t, 0.04, gc.Strouhal, 1.e-12)
	assert.InDelta(t, 0.06, gc.Thickness, 1.e-12)

	gc, err = ParseGuptaFilename("Gupta_performance_Car_NACA0012_St60.dat")
	require.NoError(t, err)
	assert.Equal(t, kinematics.Carangiform, gc.Mode)
	assert.InDelta(t, 0.6, gc.Strouhal, 1.e-12)
	assert.Equal(t, "carangiform: NACA0012, St=0.6", gc.Label())

	for _, name := range []string{
		"Gupta_performance_Eel_NACA0006_St04.dat",
		"Gupta_performance_Ang_NACA006_St04.dat",
		"Gupta_performance_Ang_NACA0000_St04.dat", // zero thickness code
		"Zhang_performance_Re1000_h004.dat",
	} {
		_, err = ParseGuptaFilename(name)
		assert.Error(t, err, name)
	}
}

func TestAnalyzeDirs(t *testing.T) {
	dir := t.TempDir()
	perf := `0.0 0.1 3.0 0.0 0.0 0.0 0.0
6.0 0.1 3.0 0.4 1.0 2.0 0.5
8.0 0.1 3.0 0.6 1.0 2.0 0.7
`
	writeFile(t, dir, "Zhang_performance_Re1000_h040.dat", perf)
	writeFile(t, dir, "Zhang_performance_Re200_h040.dat", perf)
	writeFile(t, dir, "Gupta_performance_Ang_NACA0006_St60.dat", perf)
	writeFile(t, dir, "Gupta_performance_Car_NACA0024_St40.dat", perf)
	writeFile(t, dir, "notes.txt", "ignored")

	zr, err := AnalyzeZhangDir(dir, DefaultTransient)
	require.NoError(t, err)
	require.Equal(t, 2, len(zr))
	// Sorted by Reynolds number
	assert.Equal(t, 200., zr[0].Case.Reynolds)
	assert.Equal(t, 1000., zr[1].Case.Reynolds)
	assert.InDelta(t, 0.5, zr[0].SwimSpeed, 1.e-12)
	assert.InDelta(t, 0.6, zr[0].Efficiency, 1.e-12)

	gr, err := AnalyzeGuptaDir(dir, DefaultTransient)
	require.NoError(t, err)
	require.Equal(t, 2, len(gr))
	// Sorted by thickness
	assert.Equal(t, "0006", gr[0].Case.Code)
	assert.Equal(t, "0024", gr[1].Case.Code)

	var buf bytes.Buffer
	WriteZhangSummary(&buf, zr)
	assert.Contains(t, buf.String(), "Re")
	assert.Contains(t, buf.String(), "200")
	buf.Reset()
	WriteGuptaSummary(&buf, gr)
	assert.Contains(t, buf.String(), "anguilliform")
	assert.Contains(t, buf.String(), "0024")
}

func TestAnalyzeDirEmpty(t *testing.T) {
	zr, err := AnalyzeZhangDir(t.TempDir(), DefaultTransient)
	require.NoError(t, err)
	assert.Empty(t, zr)
}
