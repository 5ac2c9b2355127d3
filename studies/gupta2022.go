// Package studies collects the fixed simulation cases from the
// published fish-swimming studies this toolkit post-processes.
package studies

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vinodthale/Effect-of-shape-and-adaptive-kinematics/meshfiles"
	"github.com/vinodthale/Effect-of-shape-and-adaptive-kinematics/naca"
)

// ProfileCase ties a NACA thickness class to the swimming mode it
// represents in Gupta et al. (2022).
type ProfileCase struct {
	Code  string
	Label string
}

// Gupta2022Profiles is the five-foil matrix from Gupta et al. (2022):
// thin foils swim anguilliform, thick foils carangiform.
var Gupta2022Profiles = []ProfileCase{
	{"0006", "anguilliform"},
	{"0008", "anguilliform"},
	{"0012", "carangiform"},
	{"0018", "carangiform"},
	{"0024", "carangiform"},
}

const (
	gupta2022Resolution = 256
	gupta2022Chord      = 1.0
	// Leading edge re-centered at x = 0.5 in the solver domain
	gupta2022OffsetX = 0.5
	gupta2022OffsetY = 0.0
)

// GenerateGupta2022Set writes all five Gupta et al. (2022) vertex
// files under rootDir, one subdirectory per swimming mode. Directories
// are created as needed; existing files are overwritten.
func GenerateGupta2022Set(rootDir string, verbose bool) error {
	for _, pc := range Gupta2022Profiles {
		dir := filepath.Join(rootDir, pc.Label)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("unable to create output directory %s: %w", dir, err)
		}
		p, err := naca.GenerateProfile(pc.Code, gupta2022Resolution, gupta2022Chord)
		if err != nil {
			return err
		}
		path := filepath.Join(dir, "naca"+pc.Code+".vertex")
		if err = meshfiles.WriteVertexFile(p, path, gupta2022OffsetX, gupta2022OffsetY); err != nil {
			return err
		}
		if verbose {
			fmt.Printf("[%s] NACA%s: wrote %d vertices to %s\n", pc.Label, pc.Code, p.Len(), path)
		}
	}
	return nil
}
