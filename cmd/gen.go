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
	"bufio"
	"fmt"
	"math/rand"
	"os"

	"github.com/pradeep-pyro/triangle"
	"github.com/spf13/cobra"
)

// GenCmd writes a sample result set so the plotter can be exercised without
// a solver run: a cantilever plate under an end load, with an analytic
// bending displacement and stress field.
var GenCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate a sample cantilever plate result set",
	Long: `
Writes a nodes and elements CSV pair describing a rectangular cantilever
plate, Delaunay triangulated, displaced by an analytic bending field and
carrying the matching bending stress per element.

femplot gen --nodes nodes.csv --elements elements.csv`,
	Run: func(cmd *cobra.Command, args []string) {
		nodesFile, _ := cmd.Flags().GetString("nodes")
		elementsFile, _ := cmd.Flags().GetString("elements")
		nx, _ := cmd.Flags().GetInt("nx")
		ny, _ := cmd.Flags().GetInt("ny")
		if nx < 2 || ny < 2 {
			fmt.Println("error: nx and ny must both be at least 2")
			os.Exit(1)
		}
		writeSampleModel(nodesFile, elementsFile, nx, ny)
		fmt.Printf("Wrote %s and %s\n", nodesFile, elementsFile)
	},
}

func init() {
	rootCmd.AddCommand(GenCmd)
	GenCmd.Flags().String("nodes", "nodes.csv", "output path for the nodes table")
	GenCmd.Flags().String("elements", "elements.csv", "output path for the elements table")
	GenCmd.Flags().Int("nx", 25, "grid points along the plate length")
	GenCmd.Flags().Int("ny", 7, "grid points across the plate depth")
}

// Plate dimensions and load scale for the sample model
const (
	plateLength = 4.0
	plateDepth  = 1.0
	tipDeflect  = 0.1 * plateLength
	stressScale = 100.0
	gridJitter  = 0.25
	sampleSeed  = 1
)

// writeSampleModel triangulates a jittered grid over the plate and writes
// the two tables in the plotter's input format.
func writeSampleModel(nodesFile, elementsFile string, nx, ny int) {
	pts := platePoints(nx, ny)
	faces := triangle.Delaunay(pts)

	writeTable(nodesFile, "x,y,ux,uy", func(w *bufio.Writer) {
		for _, pt := range pts {
			ux, uy := bendingDisplacement(pt[0], pt[1])
			fmt.Fprintf(w, "%g,%g,%g,%g\n", pt[0], pt[1], ux, uy)
		}
	})
	writeTable(elementsFile, "n0,n1,n2,stress", func(w *bufio.Writer) {
		for _, face := range faces {
			var cx, cy float64
			for _, n := range face {
				cx += pts[n][0] / 3
				cy += pts[n][1] / 3
			}
			fmt.Fprintf(w, "%d,%d,%d,%g\n",
				face[0], face[1], face[2], bendingStress(cx, cy))
		}
	})
}

// writeTable writes one CSV table through a buffered writer. The writer
// latches the first write error, so checking Flush and Close is enough to
// refuse to report a truncated file as written.
func writeTable(path, header string, writeRows func(w *bufio.Writer)) {
	file, err := os.Create(path)
	if err != nil {
		panic(fmt.Errorf("unable to create file %s\n %s", path, err))
	}
	w := bufio.NewWriter(file)
	fmt.Fprintf(w, "%s\n", header)
	writeRows(w)
	if err = w.Flush(); err == nil {
		err = file.Close()
	} else {
		file.Close()
	}
	if err != nil {
		panic(fmt.Errorf("unable to write file %s\n %s", path, err))
	}
}

// platePoints lays a regular grid over [0,L] x [-D/2,D/2] with the interior
// points jittered, which keeps the Delaunay triangulation well conditioned.
// The seed is fixed so the sample is reproducible.
func platePoints(nx, ny int) (pts [][2]float64) {
	rnd := rand.New(rand.NewSource(sampleSeed))
	dx := plateLength / float64(nx-1)
	dy := plateDepth / float64(ny-1)
	pts = make([][2]float64, 0, nx*ny)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			x := float64(i) * dx
			y := float64(j)*dy - 0.5*plateDepth
			if i > 0 && i < nx-1 && j > 0 && j < ny-1 {
				x += gridJitter * dx * (rnd.Float64() - 0.5)
				y += gridJitter * dy * (rnd.Float64() - 0.5)
			}
			pts = append(pts, [2]float64{x, y})
		}
	}
	return
}

// bendingDisplacement is the Euler-Bernoulli deflection of a cantilever with
// a tip load, clamped at x=0, scaled for a visible deformed view.
func bendingDisplacement(x, y float64) (ux, uy float64) {
	amp := tipDeflect / (2 * plateLength * plateLength * plateLength)
	uy = -amp * x * x * (3*plateLength - x)
	slope := -amp * (6*plateLength*x - 3*x*x)
	ux = -y * slope
	return
}

// bendingStress is the matching fiber stress: proportional to the bending
// moment, which decays toward the tip, and to the distance from the neutral
// axis. It changes sign across the plate, exercising the full color range.
func bendingStress(x, y float64) float64 {
	return stressScale * (plateLength - x) / plateLength * y / (0.5 * plateDepth)
}
