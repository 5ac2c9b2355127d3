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

	"github.com/spf13/cobra"

	"github.com/vinodthale/Effect-of-shape-and-adaptive-kinematics/analysis"
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Summarize time-averaged swimming performance from simulation logs",
	Long: `
Scans a results directory for Zhang (2018) and Gupta (2022) performance
logs, discards the startup transient, and prints time-averaged swimming
speed and efficiency per case,

swimfoil analyze --dir results --startTime 5`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("dir")
		startTime, _ := cmd.Flags().GetFloat64("startTime")
		zhangOnly, _ := cmd.Flags().GetBool("zhang")
		guptaOnly, _ := cmd.Flags().GetBool("gupta")
		all := !zhangOnly && !guptaOnly

		if all || zhangOnly {
			results, err := analysis.AnalyzeZhangDir(dir, startTime)
			if err != nil {
				return err
			}
			fmt.Printf("\nZhang (2018) results: %d cases\n", len(results))
			analysis.WriteZhangSummary(os.Stdout, results)
		}
		if all || guptaOnly {
			results, err := analysis.AnalyzeGuptaDir(dir, startTime)
			if err != nil {
				return err
			}
			fmt.Printf("\nGupta (2022) results: %d cases\n", len(results))
			analysis.WriteGuptaSummary(os.Stdout, results)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringP("dir", "d", ".", "directory holding performance .dat files")
	analyzeCmd.Flags().Float64("startTime", analysis.DefaultTransient, "discard samples before this time")
	analyzeCmd.Flags().Bool("zhang", false, "only Zhang (2018) cases")
	analyzeCmd.Flags().Bool("gupta", false, "only Gupta (2022) cases")
}
