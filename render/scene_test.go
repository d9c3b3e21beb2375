package render

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/femplot/InputParameters"
	"github.com/notargets/femplot/geometry2D"
	"github.com/notargets/femplot/readfiles"
)

var (
	sceneNodes = []readfiles.Node{
		{X: 0, Y: 0},
		{X: 1, Y: 0, Uy: 0.5},
		{X: 0, Y: 1, Ux: 0.2},
		{X: 1, Y: 1, Ux: 0.2, Uy: 0.5},
	}
	sceneElements = []readfiles.Element{
		{N0: 0, N1: 1, N2: 2, Stress: 10},
		{N0: 1, N1: 3, N2: 2, Stress: 5},
	}
)

func testScene() *Scene {
	return NewScene(sceneNodes, sceneElements, InputParameters.NewPlotParameters())
}

func TestNewScene(t *testing.T) {
	sc := testScene()
	// One triangle per element in each view, in element order
	require.Len(t, sc.Initial, 2)
	require.Len(t, sc.Deformed, 2)
	require.Len(t, sc.Colors, 2)
	assert.Equal(t, geometry2D.Triangle{{0, 0}, {1, 0}, {0, 1}}, sc.Initial[0])
	assert.Equal(t, geometry2D.Triangle{{0, 0}, {1, 0.5}, {0.2, 1}}, sc.Deformed[0])
	assert.Equal(t, "#ff0000", sc.Colors[0])
	assert.Equal(t, "#7f0000", sc.Colors[1])
	assert.Equal(t, 0.0, sc.MinStress)
	assert.Equal(t, 10.0, sc.MaxStress)
}

func TestSceneExtentCoversBothViews(t *testing.T) {
	sc := testScene()
	// Deformed view reaches x=1.2 and y=1.5, initial starts at (0,0)
	assert.Equal(t, geometry2D.Extent{XMin: 0, XMax: 1.2, YMin: 0, YMax: 1.5}, sc.Extent)
}

func TestSceneDanglingReferenceIsFatal(t *testing.T) {
	bad := []readfiles.Element{{N0: 0, N1: 1, N2: 5, Stress: 1}}
	assert.Panics(t, func() {
		NewScene(sceneNodes, bad, InputParameters.NewPlotParameters())
	})
}

func TestSnapshotWritesPNG(t *testing.T) {
	sc := testScene()
	sc.Params.Width, sc.Params.Height = 320, 320
	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, Snapshot(sc, path))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()
	img, err := png.Decode(file)
	require.NoError(t, err)
	assert.Equal(t, 320, img.Bounds().Dx())
	assert.Equal(t, 320, img.Bounds().Dy())
}

func TestSnapshotPixels(t *testing.T) {
	sc := testScene()
	sc.Params.Width, sc.Params.Height = 320, 320
	dc, err := renderScene(sc)
	require.NoError(t, err)
	img := dc.Image()

	// The solved model's max stress element fills red, so the upper half
	// must contain pixels where red dominates green
	var redSeen bool
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y/2; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, _, _ := img.At(x, y).RGBA()
			if r > 2*(g+1) && r > 0x4000 {
				redSeen = true
			}
		}
	}
	assert.True(t, redSeen, "expected red shaded elements in the solved panel")

	// The initial model fills a neutral gray, never red dominant. Start
	// below the panel gap so antialiased edges of the top panel are skipped.
	var graySeen bool
	for y := 3 * bounds.Max.Y / 5; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			if r > 2*(g+1) {
				t.Fatalf("red dominant pixel in the initial panel at (%d,%d)", x, y)
			}
			if r < 0xe000 && r == g && g == b {
				graySeen = true
			}
		}
	}
	assert.True(t, graySeen, "expected gray filled elements in the initial panel")
}
