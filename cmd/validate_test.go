package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateInputMissingElementsFile(t *testing.T) {
	dir := t.TempDir()
	mp := &ModelPlot{
		NodesFile:    filepath.Join(dir, "nodes.csv"),
		ElementsFile: filepath.Join(dir, "elements.csv"),
	}
	// The nodes file exists but holds garbage: validation only checks for
	// existence, so the content must never be parsed here
	require.NoError(t, os.WriteFile(mp.NodesFile, []byte("not,a,header\n?,?,?\n"), 0644))

	err := validateInput(mp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Elements file "+mp.ElementsFile+" does not exist")
	assert.NotContains(t, err.Error(), "Nodes file")
}

func TestValidateInputMissingNodesFile(t *testing.T) {
	dir := t.TempDir()
	mp := &ModelPlot{
		NodesFile:    filepath.Join(dir, "nodes.csv"),
		ElementsFile: filepath.Join(dir, "elements.csv"),
	}
	require.NoError(t, os.WriteFile(mp.ElementsFile, []byte("n0,n1,n2,stress\n"), 0644))

	err := validateInput(mp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Nodes file "+mp.NodesFile+" does not exist")
}

func TestValidateInputNamesEveryMissingFile(t *testing.T) {
	dir := t.TempDir()
	mp := &ModelPlot{
		NodesFile:    filepath.Join(dir, "nodes.csv"),
		ElementsFile: filepath.Join(dir, "elements.csv"),
	}
	err := validateInput(mp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Nodes file "+mp.NodesFile+" does not exist")
	assert.Contains(t, err.Error(), "Elements file "+mp.ElementsFile+" does not exist")
}

func TestValidateInputBothPresent(t *testing.T) {
	dir := t.TempDir()
	mp := &ModelPlot{
		NodesFile:    filepath.Join(dir, "nodes.csv"),
		ElementsFile: filepath.Join(dir, "elements.csv"),
	}
	require.NoError(t, os.WriteFile(mp.NodesFile, []byte("x,y,ux,uy\n"), 0644))
	require.NoError(t, os.WriteFile(mp.ElementsFile, []byte("n0,n1,n2,stress\n"), 0644))
	assert.NoError(t, validateInput(mp))
}
