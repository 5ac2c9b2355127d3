package studies

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinodthale/Effect-of-shape-and-adaptive-kinematics/meshfiles"
)

func TestGenerateGupta2022Set(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, GenerateGupta2022Set(root, false))

	expected := map[string][]string{
		"anguilliform": {"naca0006.vertex", "naca0008.vertex"},
		"carangiform":  {"naca0012.vertex", "naca0018.vertex", "naca0024.vertex"},
	}
	total := 0
	for label, files := range expected {
		for _, name := range files {
			path := filepath.Join(root, label, name)
			X, Y, err := meshfiles.ReadVertexFile(path)
			require.NoError(t, err, path)
			assert.Equal(t, 511, X.Len(), path)
			assert.Equal(t, 511, Y.Len(), path)
			// Leading edge re-centered at x = 0.5
			assert.InDelta(t, 0.5, X.Min(), 1.e-10)
			assert.InDelta(t, 1.5, X.Max(), 1.e-10)
			total++
		}
	}
	assert.Equal(t, 5, total)

	// Idempotent re-run over existing directories
	require.NoError(t, GenerateGupta2022Set(root, false))
}

func TestGenerateGupta2022SetBadRoot(t *testing.T) {
	file := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))
	// A plain file where the root directory should go
	assert.Error(t, GenerateGupta2022Set(filepath.Join(file, "meshes"), false))
}
