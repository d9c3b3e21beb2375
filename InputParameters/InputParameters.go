package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters controlling the figure, obtained from the optional YAML
// settings file. Defaults reproduce the reference visualization.
type PlotParameters struct {
	Title        string  `yaml:"Title"`
	SolvedTitle  string  `yaml:"SolvedTitle"`
	InitialTitle string  `yaml:"InitialTitle"`
	Width        int     `yaml:"Width"`
	Height       int     `yaml:"Height"`
	LineWidth    float64 `yaml:"LineWidth"`
	FillAlpha    float64 `yaml:"FillAlpha"`
	InitialFill  string  `yaml:"InitialFill"`
	PadFraction  float64 `yaml:"PadFraction"`
	FontFile     string  `yaml:"FontFile"`
}

func NewPlotParameters() *PlotParameters {
	return &PlotParameters{
		Title:        "Simulation Results",
		SolvedTitle:  "Solved Model",
		InitialTitle: "Initial Model",
		Width:        1280,
		Height:       1280,
		LineWidth:    0.2,
		FillAlpha:    0.7,
		InitialFill:  "#4C4C4C",
		PadFraction:  0.1,
	}
}

func (pp *PlotParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, pp)
}

func (pp *PlotParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", pp.Title)
	fmt.Printf("\"%s\"\t\t= SolvedTitle\n", pp.SolvedTitle)
	fmt.Printf("\"%s\"\t\t= InitialTitle\n", pp.InitialTitle)
	fmt.Printf("[%d x %d]\t= Width x Height\n", pp.Width, pp.Height)
	fmt.Printf("%8.5f\t\t= LineWidth\n", pp.LineWidth)
	fmt.Printf("%8.5f\t\t= FillAlpha\n", pp.FillAlpha)
	fmt.Printf("[%s]\t\t= InitialFill\n", pp.InitialFill)
	fmt.Printf("%8.5f\t\t= PadFraction\n", pp.PadFraction)
}
