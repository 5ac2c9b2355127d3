package naca

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThickness(t *testing.T) {
	// The leading edge is a point for every thickness ratio
	for _, tr := range []float64{0.06, 0.08, 0.12, 0.18, 0.24} {
		assert.Equal(t, 0., Thickness(0, tr))
	}
	// Maximum thickness of the 4-digit family sits near x = 0.3 and
	// equals half the thickness ratio to within the polynomial fit
	assert.InDelta(t, 0.06, Thickness(0.3, 0.12), 0.001)
	// Open trailing edge: small but nonzero thickness at x = 1
	te := Thickness(1, 0.12)
	assert.Greater(t, te, 0.)
	assert.Less(t, te, 0.002)
}

func TestParseCode(t *testing.T) {
	tr, err := ParseCode("0012")
	require.NoError(t, err)
	assert.Equal(t, 0.12, tr)

	for _, code := range []string{"12", "00124", "", "00ab", "0x12"} {
		_, err = ParseCode(code)
		assert.ErrorIs(t, err, ErrInvalidCode, code)
	}
	// Zero thickness encodes a degenerate foil
	_, err = ParseCode("0000")
	assert.ErrorIs(t, err, ErrInvalidCode)
}

func TestGenerateProfile(t *testing.T) {
	p, err := GenerateProfile("0012", 4, 1.0)
	require.NoError(t, err)
	require.Equal(t, 7, p.Len())
	assert.Equal(t, 0.12, p.ThicknessRatio)

	// Cosine spacing over 4 samples: beta = {0, pi/3, 2pi/3, pi}
	// giving x = {0, 0.25, 0.75, 1.0}
	assert.Equal(t, 1.0, p.X.AtVec(0))
	assert.InDelta(t, 0.75, p.X.AtVec(1), 1.e-14)
	assert.InDelta(t, 0.25, p.X.AtVec(2), 1.e-14)
	assert.Equal(t, 0.0, p.X.AtVec(3))
	assert.Equal(t, 1.0, p.X.AtVec(6))

	// Trailing edge points carry opposite-sign thickness
	assert.Less(t, p.Y.AtVec(0), 0.)
	assert.Greater(t, p.Y.AtVec(6), 0.)
	assert.Equal(t, -p.Y.AtVec(6), p.Y.AtVec(0))
	// Single leading edge point with zero thickness
	assert.Equal(t, 0.0, p.Y.AtVec(3))
}

func TestGenerateProfilePointCount(t *testing.T) {
	for _, n := range []int{2, 3, 16, 256} {
		p, err := GenerateProfile("0018", n, 1.0)
		require.NoError(t, err)
		assert.Equal(t, 2*n-1, p.Len())
	}
}

func TestGenerateProfileSymmetry(t *testing.T) {
	p, err := GenerateProfile("0024", 33, 2.0)
	require.NoError(t, err)
	N := p.Len()
	for i := 0; i < N/2; i++ {
		j := N - 1 - i
		assert.Equal(t, p.X.AtVec(i), p.X.AtVec(j))
		assert.Equal(t, -p.Y.AtVec(i), p.Y.AtVec(j))
	}
}

func TestGenerateProfileIdempotent(t *testing.T) {
	p1, err := GenerateProfile("0008", 64, 1.0)
	require.NoError(t, err)
	p2, err := GenerateProfile("0008", 64, 1.0)
	require.NoError(t, err)
	require.Equal(t, p1.X.DataP(), p2.X.DataP())
	require.Equal(t, p1.Y.DataP(), p2.Y.DataP())
}

func TestGenerateProfileBadParameters(t *testing.T) {
	_, err := GenerateProfile("0012", 1, 1.0)
	assert.ErrorIs(t, err, ErrInvalidParameter)
	_, err = GenerateProfile("0012", 256, 0.)
	assert.ErrorIs(t, err, ErrInvalidParameter)
	_, err = GenerateProfile("0012", 256, -1.)
	assert.ErrorIs(t, err, ErrInvalidParameter)
	_, err = GenerateProfile("12", 256, 1.0)
	assert.ErrorIs(t, err, ErrInvalidCode)
}

func TestProfileMeasures(t *testing.T) {
	p, err := GenerateProfile("0012", 256, 1.0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, p.Span(), 1.e-12)
	assert.InDelta(t, 0.06, p.MaxThickness(), 0.001)
}
