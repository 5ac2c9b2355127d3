package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// ProfileSpec names one foil to generate and the swimming-mode label
// that keys its output directory.
type ProfileSpec struct {
	Code  string `yaml:"Code"`
	Label string `yaml:"Label"`
}

// Parameters obtained from the YAML input file
type MeshParameters struct {
	Title      string        `yaml:"Title"`
	Resolution int           `yaml:"Resolution"`
	Chord      float64       `yaml:"Chord"`
	OffsetX    float64       `yaml:"OffsetX"`
	OffsetY    float64       `yaml:"OffsetY"`
	OutputDir  string        `yaml:"OutputDir"`
	Profiles   []ProfileSpec `yaml:"Profiles"`
}

func (mp *MeshParameters) Parse(data []byte) error {
	if err := yaml.Unmarshal(data, mp); err != nil {
		return err
	}
	if mp.Resolution == 0 {
		mp.Resolution = 256
	}
	if mp.Chord == 0 {
		mp.Chord = 1.0
	}
	return nil
}

func (mp *MeshParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", mp.Title)
	fmt.Printf("[%d]\t\t\t= Resolution\n", mp.Resolution)
	fmt.Printf("%8.5f\t\t= Chord\n", mp.Chord)
	fmt.Printf("(%g, %g)\t\t= Offset\n", mp.OffsetX, mp.OffsetY)
	fmt.Printf("[%s]\t= OutputDir\n", mp.OutputDir)
	for _, p := range mp.Profiles {
		fmt.Printf("Profile[%s] = %s\n", p.Code, p.Label)
	}
}
