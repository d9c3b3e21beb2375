package render

import (
	"image/color"

	"github.com/notargets/avs/assets"
	"github.com/notargets/avs/chart2d"
	graphics2D "github.com/notargets/avs/geometry"
	utils2 "github.com/notargets/avs/utils"

	"github.com/notargets/femplot/geometry2D"
)

// Show opens the interactive chart window with both views stacked in one
// coordinate space: the solved model on top, flat shaded by relative stress,
// and the initial model translated below it. Both views live on the shared
// extent, so they render at identical scale. Show does not return; closing
// the window terminates the process.
func Show(sc *Scene) {
	var (
		pp       = sc.Params
		ext      = sc.Extent.Pad(pp.PadFraction)
		gap      = 0.1 * ext.Height()
		headroom = 0.15 * ext.Height()
		yShift   = ext.Height() + gap
	)
	ch := chart2d.NewChart2D(
		float32(ext.XMin), float32(ext.XMax),
		float32(ext.YMin-yShift), float32(ext.YMax+headroom),
		pp.Width, pp.Height, utils2.WHITE, utils2.BLACK)

	dMesh := geometry2D.ToAVSMesh(sc.Deformed)
	field := make([]float32, 3*len(sc.Deformed))
	for k, relative := range sc.Relative {
		// Unshared vertices all carry the element value, which flat shades
		// the triangle with its element's relative stress
		r := float32(relative)
		field[3*k], field[3*k+1], field[3*k+2] = r, r, r
	}
	vs := graphics2D.VertexScalar{
		TMesh:       &dMesh,
		FieldValues: field,
	}
	ch.AddShadedVertexScalar(&vs, 0, 1)
	ch.AddTriMesh(dMesh)

	iMesh := geometry2D.ToAVSMesh(geometry2D.Translate(sc.Initial, 0, -yShift))
	ch.AddTriMesh(iMesh)

	black := color.RGBA{R: 0, G: 0, B: 0, A: 255}
	tf := assets.NewTextFormatter("NotoSans", "Regular", 36, black, true, false)
	xCenter := float32(ext.XMin + 0.5*ext.Width())
	ch.Printf(tf, xCenter, float32(ext.YMax+0.6*headroom), "%s", pp.Title)
	ch.Printf(tf, xCenter, float32(ext.YMax+0.1*headroom), "%s", pp.SolvedTitle)
	ch.Printf(tf, xCenter, float32(ext.YMin-0.6*gap), "%s", pp.InitialTitle)

	for {
	}
}
