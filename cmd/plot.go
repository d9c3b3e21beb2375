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
	"strings"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/notargets/femplot/InputParameters"
	"github.com/notargets/femplot/readfiles"
	"github.com/notargets/femplot/render"
)

type ModelPlot struct {
	NodesFile    string
	ElementsFile string
	Output       string
	SettingsFile string
	Verbose      bool
	Profile      bool
}

func modelPlotFromFlags(cmd *cobra.Command, args []string) (mp *ModelPlot) {
	mp = &ModelPlot{NodesFile: args[0], ElementsFile: args[1]}
	mp.Output, _ = cmd.Flags().GetString("output")
	mp.SettingsFile, _ = cmd.Flags().GetString("settings")
	mp.Verbose, _ = cmd.Flags().GetBool("verbose")
	mp.Profile, _ = cmd.Flags().GetBool("profile")
	return
}

func init() {
	rootCmd.Flags().StringP("output", "o", "",
		"render to a PNG file instead of opening the viewer window")
	rootCmd.Flags().StringP("settings", "s", "",
		"YAML file with plot settings (titles, fill colors, sizes)")
	rootCmd.Flags().BoolP("verbose", "v", false,
		"print progress while reading and assembling the mesh")
	rootCmd.Flags().Bool("profile", false,
		"write a CPU profile of the run to the current directory")
}

// validateInput checks both file paths before any parsing happens, so a
// mistyped argument fails with a message naming the file rather than a parse
// error. Every missing file is named.
func validateInput(mp *ModelPlot) error {
	var missing []string
	if _, err := os.Stat(mp.NodesFile); err != nil {
		missing = append(missing, fmt.Sprintf("Nodes file %s does not exist", mp.NodesFile))
	}
	if _, err := os.Stat(mp.ElementsFile); err != nil {
		missing = append(missing, fmt.Sprintf("Elements file %s does not exist", mp.ElementsFile))
	}
	if len(missing) != 0 {
		return fmt.Errorf("%s", strings.Join(missing, "\n"))
	}
	return nil
}

func RunPlot(mp *ModelPlot) {
	if mp.Profile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}
	pp := readSettings(mp)
	nodes := readfiles.ReadNodes(mp.NodesFile, mp.Verbose)
	elements := readfiles.ReadElements(mp.ElementsFile, mp.Verbose)
	sc := render.NewScene(nodes, elements, pp)
	if mp.Verbose {
		sc.PrintSummary()
	}
	if len(mp.Output) != 0 {
		if err := render.Snapshot(sc, mp.Output); err != nil {
			panic(err)
		}
		if mp.Verbose {
			fmt.Printf("Wrote %s\n", mp.Output)
		}
		return
	}
	render.Show(sc)
}

func readSettings(mp *ModelPlot) (pp *InputParameters.PlotParameters) {
	var (
		data []byte
		err  error
	)
	pp = InputParameters.NewPlotParameters()
	if len(mp.SettingsFile) != 0 {
		if data, err = os.ReadFile(mp.SettingsFile); err != nil {
			panic(err)
		}
		if err = pp.Parse(data); err != nil {
			panic(err)
		}
		if mp.Verbose {
			pp.Print()
		}
	}
	return
}
