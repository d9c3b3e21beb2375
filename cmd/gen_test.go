package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/femplot/InputParameters"
	"github.com/notargets/femplot/readfiles"
	"github.com/notargets/femplot/render"
)

func TestWriteSampleModel(t *testing.T) {
	dir := t.TempDir()
	nodesFile := filepath.Join(dir, "nodes.csv")
	elementsFile := filepath.Join(dir, "elements.csv")
	writeSampleModel(nodesFile, elementsFile, 9, 5)

	nodes := readfiles.ReadNodes(nodesFile, false)
	elements := readfiles.ReadElements(elementsFile, false)
	assert.Equal(t, 9*5, len(nodes))
	assert.NotEmpty(t, elements)

	// Every element resolves against the node table, so assembling the
	// scene must not hit a dangling reference
	sc := render.NewScene(nodes, elements, InputParameters.NewPlotParameters())
	assert.Equal(t, len(elements), len(sc.Initial))
	assert.Equal(t, len(elements), len(sc.Deformed))

	// The bending field spans both signs, so the seeded range is exercised
	assert.Less(t, sc.MinStress, 0.0)
	assert.Greater(t, sc.MaxStress, 0.0)

	// Clamped edge stays put, tip deflects downward
	assert.Equal(t, 0.0, nodes[0].Ux)
	assert.Equal(t, 0.0, nodes[0].Uy)
	var tipDrop bool
	for _, node := range nodes {
		if node.X == plateLength && node.Uy < -0.01 {
			tipDrop = true
		}
	}
	assert.True(t, tipDrop, "expected the free end to deflect")
}

func TestWriteSampleModelUnwritablePathIsFatal(t *testing.T) {
	dir := t.TempDir()
	// The nodes path is a directory, so the create fails and no success is
	// reported over a missing table
	assert.Panics(t, func() {
		writeSampleModel(dir, filepath.Join(dir, "elements.csv"), 5, 3)
	})
}

func TestSampleModelSnapshotPipeline(t *testing.T) {
	dir := t.TempDir()
	mp := &ModelPlot{
		NodesFile:    filepath.Join(dir, "nodes.csv"),
		ElementsFile: filepath.Join(dir, "elements.csv"),
		Output:       filepath.Join(dir, "out.png"),
	}
	writeSampleModel(mp.NodesFile, mp.ElementsFile, 9, 5)
	RunPlot(mp)

	info, err := os.Stat(mp.Output)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
