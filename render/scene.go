package render

import (
	"fmt"

	"github.com/notargets/femplot/InputParameters"
	"github.com/notargets/femplot/geometry2D"
	"github.com/notargets/femplot/readfiles"
)

// Scene is everything the renderers need: both triangle sets in element
// order, the per-element fill colors, and the shared axis extent.
type Scene struct {
	Initial, Deformed    []geometry2D.Triangle
	Relative             []float64
	Colors               []string
	MinStress, MaxStress float64
	Extent               geometry2D.Extent
	Params               *InputParameters.PlotParameters
}

// NewScene assembles the geometry and colors for one result set. The extent
// is the union of the two views' auto-fit extents so both plot areas share
// identical x and y ranges.
func NewScene(nodes []readfiles.Node, elements []readfiles.Element,
	pp *InputParameters.PlotParameters) (sc *Scene) {
	sc = &Scene{
		Initial:  geometry2D.InitialTriangles(nodes, elements),
		Deformed: geometry2D.DeformedTriangles(nodes, elements),
		Params:   pp,
	}
	sc.MinStress, sc.MaxStress = StressRange(elements)
	sc.Relative = make([]float64, len(elements))
	sc.Colors = make([]string, len(elements))
	for i, el := range elements {
		sc.Relative[i] = RelativeStress(el.Stress, sc.MinStress, sc.MaxStress)
		sc.Colors[i] = StressColor(sc.Relative[i])
	}
	sc.Extent = geometry2D.ExtentOf(sc.Initial).Union(geometry2D.ExtentOf(sc.Deformed))
	return
}

func (sc *Scene) PrintSummary() {
	fmt.Printf("K = %d\n", len(sc.Deformed))
	fmt.Printf("Stress Min/Max = %5.3f, %5.3f\n", sc.MinStress, sc.MaxStress)
	fmt.Printf("Bounding Box:\nXMin/XMax = %5.3f, %5.3f\nYMin/YMax = %5.3f, %5.3f\n",
		sc.Extent.XMin, sc.Extent.XMax, sc.Extent.YMin, sc.Extent.YMax)
}
