package render

import (
	"os"

	"github.com/gogpu/gg"

	"github.com/notargets/femplot/geometry2D"
)

// Fonts tried for panel titles when the settings file names none. Titles are
// skipped when no face can be loaded, the mesh panels never are.
var fontCandidates = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/usr/share/fonts/liberation/LiberationSans-Regular.ttf",
	"/System/Library/Fonts/Supplemental/Arial.ttf",
	"C:\\Windows\\Fonts\\arial.ttf",
}

// Snapshot renders the scene into a PNG file using the software rasterizer,
// for headless use. The layout matches the interactive view: solved model on
// top, initial model below, both panels set to the shared extent.
func Snapshot(sc *Scene, path string) error {
	dc, err := renderScene(sc)
	if err != nil {
		return err
	}
	return dc.SavePNG(path)
}

func renderScene(sc *Scene) (dc *gg.Context, err error) {
	var (
		pp     = sc.Params
		w      = float64(pp.Width)
		h      = float64(pp.Height)
		margin = 0.04 * h
		header = 0.04 * h
		ext    = sc.Extent.Pad(pp.PadFraction)
	)
	dc = gg.NewContext(pp.Width, pp.Height)
	dc.ClearWithColor(gg.White)
	haveFont := loadTitleFont(dc, pp.FontFile, 0.022*h)

	panelW := w - 2*margin
	panelH := (h - header - 3*margin) / 2
	top := panel{x: margin, y: header + margin, w: panelW, h: panelH}
	bottom := panel{x: margin, y: header + 2*margin + panelH, w: panelW, h: panelH}

	if err = drawTriangles(dc, top, ext, sc.Deformed, sc.Colors, pp.FillAlpha, pp.LineWidth); err != nil {
		return
	}
	initialColors := uniformColors(len(sc.Initial), pp.InitialFill)
	if err = drawTriangles(dc, bottom, ext, sc.Initial, initialColors, pp.FillAlpha, pp.LineWidth); err != nil {
		return
	}

	if haveFont {
		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(pp.Title, w/2, header/2, 0.5, 0.5)
		dc.DrawStringAnchored(pp.SolvedTitle, w/2, top.y-0.35*margin, 0.5, 1)
		dc.DrawStringAnchored(pp.InitialTitle, w/2, bottom.y-0.35*margin, 0.5, 1)
	}
	return
}

type panel struct {
	x, y, w, h float64
}

// toPixels maps model coordinates into the panel, y up in model space and
// down in pixel space. Each axis scales independently, as the reference
// plotter's axes do.
func (p panel) toPixels(ext geometry2D.Extent) func(x, y float64) (px, py float64) {
	sx := p.w / ext.Width()
	sy := p.h / ext.Height()
	return func(x, y float64) (px, py float64) {
		px = p.x + (x-ext.XMin)*sx
		py = p.y + p.h - (y-ext.YMin)*sy
		return
	}
}

func drawTriangles(dc *gg.Context, p panel, ext geometry2D.Extent,
	tris []geometry2D.Triangle, colors []string, alpha, lineWidth float64) (err error) {
	pix := p.toPixels(ext)
	dc.SetLineWidth(lineWidth)
	for k, tri := range tris {
		x0, y0 := pix(tri[0][0], tri[0][1])
		x1, y1 := pix(tri[1][0], tri[1][1])
		x2, y2 := pix(tri[2][0], tri[2][1])
		dc.MoveTo(x0, y0)
		dc.LineTo(x1, y1)
		dc.LineTo(x2, y2)
		dc.ClosePath()
		fill := gg.Hex(colors[k])
		dc.SetRGBA(fill.R, fill.G, fill.B, alpha)
		if err = dc.FillPreserve(); err != nil {
			return
		}
		dc.SetRGBA(0, 0, 0, alpha)
		if err = dc.Stroke(); err != nil {
			return
		}
	}
	return
}

func uniformColors(n int, hex string) (colors []string) {
	colors = make([]string, n)
	for i := range colors {
		colors[i] = hex
	}
	return
}

func loadTitleFont(dc *gg.Context, fontFile string, points float64) bool {
	if fontFile != "" {
		return dc.LoadFontFace(fontFile, points) == nil
	}
	for _, candidate := range fontCandidates {
		if _, err := os.Stat(candidate); err != nil {
			continue
		}
		if dc.LoadFontFace(candidate, points) == nil {
			return true
		}
	}
	return false
}
