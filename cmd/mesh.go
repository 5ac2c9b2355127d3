/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vinodthale/Effect-of-shape-and-adaptive-kinematics/InputParameters"
	"github.com/vinodthale/Effect-of-shape-and-adaptive-kinematics/meshfiles"
	"github.com/vinodthale/Effect-of-shape-and-adaptive-kinematics/naca"
	"github.com/vinodthale/Effect-of-shape-and-adaptive-kinematics/studies"
)

func init() {
	rootCmd.Flags().String("naca", "", "NACA 4-digit code (e.g. 0012); omit to generate the full Gupta (2022) set")
	rootCmd.Flags().Int("resolution", 256, "number of points along the semi-perimeter")
	rootCmd.Flags().Float64("chord", 1.0, "chord length")
	rootCmd.Flags().Float64("offset_x", 0.0, "X offset to position the foil in the domain")
	rootCmd.Flags().Float64("offset_y", 0.0, "Y offset to position the foil in the domain")
	rootCmd.Flags().String("output", "", "output filename (default naca<code>.vertex)")
	rootCmd.Flags().StringP("inputFile", "I", "", "YAML batch parameters file")
}

func runMesh(cmd *cobra.Command) error {
	inputFile, _ := cmd.Flags().GetString("inputFile")
	if inputFile != "" {
		return runBatchFile(inputFile)
	}

	code, _ := cmd.Flags().GetString("naca")
	if code == "" {
		fmt.Println("No profile requested - generating all Gupta et al. (2022) profiles...")
		return studies.GenerateGupta2022Set(filepath.Join("..", "generated_meshes"), true)
	}

	resolution, _ := cmd.Flags().GetInt("resolution")
	chord, _ := cmd.Flags().GetFloat64("chord")
	offsetX, _ := cmd.Flags().GetFloat64("offset_x")
	offsetY, _ := cmd.Flags().GetFloat64("offset_y")
	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = "naca" + code + ".vertex"
	}

	fmt.Printf("Generating NACA%s profile...\n", code)
	fmt.Printf("  Chord length: %g\n", chord)
	fmt.Printf("  Resolution: %d points\n", resolution)
	fmt.Printf("  Offset: (%g, %g)\n", offsetX, offsetY)

	p, err := naca.GenerateProfile(code, resolution, chord)
	if err != nil {
		return err
	}
	if err = meshfiles.WriteVertexFile(p, output, offsetX, offsetY); err != nil {
		return err
	}
	fmt.Printf("Wrote %d vertices to %s\n", p.Len(), output)

	fmt.Printf("\nProfile statistics:\n")
	fmt.Printf("  Theoretical thickness ratio: %.3f\n", p.ThicknessRatio)
	fmt.Printf("  Actual max thickness: %.6f\n", p.MaxThickness())
	fmt.Printf("  Chord length: %.6f\n", p.Span())
	fmt.Printf("  Total vertices: %d\n", p.Len())
	return nil
}

func runBatchFile(inputFile string) error {
	data, err := os.ReadFile(inputFile)
	if err != nil {
		fmt.Print(exampleInputFile)
		return fmt.Errorf("unable to read input parameters file %s: %w", inputFile, err)
	}
	mp := &InputParameters.MeshParameters{}
	if err = mp.Parse(data); err != nil {
		fmt.Print(exampleInputFile)
		return fmt.Errorf("unable to parse input parameters file %s: %w", inputFile, err)
	}
	mp.Print()
	return GenerateFromParameters(mp)
}

// GenerateFromParameters writes one vertex file per configured
// profile, grouped into label subdirectories under OutputDir.
func GenerateFromParameters(mp *InputParameters.MeshParameters) error {
	for _, ps := range mp.Profiles {
		dir := filepath.Join(mp.OutputDir, ps.Label)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("unable to create output directory %s: %w", dir, err)
		}
		p, err := naca.GenerateProfile(ps.Code, mp.Resolution, mp.Chord)
		if err != nil {
			return err
		}
		path := filepath.Join(dir, "naca"+ps.Code+".vertex")
		if err = meshfiles.WriteVertexFile(p, path, mp.OffsetX, mp.OffsetY); err != nil {
			return err
		}
		fmt.Printf("[%s] NACA%s: wrote %d vertices to %s\n", ps.Label, ps.Code, p.Len(), path)
	}
	return nil
}

var exampleInputFile = `
########################################
Title: "Gupta 2022 meshes"
Resolution: 256
Chord: 1.
OffsetX: 0.5
OffsetY: 0.
OutputDir: generated_meshes
Profiles:
  - Code: "0006"
    Label: anguilliform
  - Code: "0012"
    Label: carangiform
########################################
`
