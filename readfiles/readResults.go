package readfiles

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Node is one mesh vertex: the reference position and the solved displacement.
// Nodes are identified by their row position in the nodes table.
type Node struct {
	X, Y   float64
	Ux, Uy float64
}

// Element is one triangular cell: three zero-based node indices into the
// nodes table's row order, plus the solved scalar stress.
type Element struct {
	N0, N1, N2 int
	Stress     float64
}

var (
	nodeColumns    = []string{"x", "y", "ux", "uy"}
	elementColumns = []string{"n0", "n1", "n2", "stress"}
)

// ReadNodes reads a nodes CSV file. The first line is a header naming the
// columns; the required columns may appear in any order and extra columns are
// ignored.
func ReadNodes(filename string, verbose bool) (nodes []Node) {
	var (
		file *os.File
		err  error
	)
	if verbose {
		fmt.Printf("Reading nodes file named: %s\n", filename)
	}
	if file, err = os.Open(filename); err != nil {
		panic(fmt.Errorf("unable to open file %s\n %s", filename, err))
	}
	defer file.Close()
	nodes = readNodeTable(bufio.NewScanner(file), filename)
	if verbose {
		fmt.Printf("Nnodes = %d\n", len(nodes))
	}
	return
}

// ReadElements reads an elements CSV file, same header conventions as
// ReadNodes.
func ReadElements(filename string, verbose bool) (elements []Element) {
	var (
		file *os.File
		err  error
	)
	if verbose {
		fmt.Printf("Reading elements file named: %s\n", filename)
	}
	if file, err = os.Open(filename); err != nil {
		panic(fmt.Errorf("unable to open file %s\n %s", filename, err))
	}
	defer file.Close()
	elements = readElementTable(bufio.NewScanner(file), filename)
	if verbose {
		fmt.Printf("K = %d\n", len(elements))
	}
	return
}

func readNodeTable(scanner *bufio.Scanner, filename string) (nodes []Node) {
	index, lineNo := readHeader(scanner, nodeColumns, filename)
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if len(strings.TrimSpace(line)) == 0 {
			continue
		}
		fields := strings.Split(line, ",")
		nodes = append(nodes, Node{
			X:  parseFloat(fields, index["x"], filename, lineNo),
			Y:  parseFloat(fields, index["y"], filename, lineNo),
			Ux: parseFloat(fields, index["ux"], filename, lineNo),
			Uy: parseFloat(fields, index["uy"], filename, lineNo),
		})
	}
	if err := scanner.Err(); err != nil {
		panic(fmt.Errorf("error reading file %s\n %s", filename, err))
	}
	return
}

func readElementTable(scanner *bufio.Scanner, filename string) (elements []Element) {
	index, lineNo := readHeader(scanner, elementColumns, filename)
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if len(strings.TrimSpace(line)) == 0 {
			continue
		}
		fields := strings.Split(line, ",")
		elements = append(elements, Element{
			N0:     parseInt(fields, index["n0"], filename, lineNo),
			N1:     parseInt(fields, index["n1"], filename, lineNo),
			N2:     parseInt(fields, index["n2"], filename, lineNo),
			Stress: parseFloat(fields, index["stress"], filename, lineNo),
		})
	}
	if err := scanner.Err(); err != nil {
		panic(fmt.Errorf("error reading file %s\n %s", filename, err))
	}
	return
}

// readHeader consumes the header row and builds the column name to position
// map used to place each row's fields, so the tables tolerate column
// reordering. A required column absent from the header is fatal.
func readHeader(scanner *bufio.Scanner, required []string, filename string) (index map[string]int, lineNo int) {
	if !scanner.Scan() {
		panic(fmt.Errorf("file %s is empty, expected a header row", filename))
	}
	lineNo = 1
	fields := strings.Split(scanner.Text(), ",")
	index = make(map[string]int, len(fields))
	for i, field := range fields {
		index[strings.TrimSpace(field)] = i
	}
	for _, name := range required {
		if _, ok := index[name]; !ok {
			panic(fmt.Errorf("file %s: header is missing required column [%s]", filename, name))
		}
	}
	return
}

func fieldAt(fields []string, col int, filename string, lineNo int) string {
	if col >= len(fields) {
		panic(fmt.Errorf("file %s line %d: expected at least %d fields, got %d",
			filename, lineNo, col+1, len(fields)))
	}
	return strings.TrimSpace(fields[col])
}

func parseFloat(fields []string, col int, filename string, lineNo int) (val float64) {
	var err error
	field := fieldAt(fields, col, filename, lineNo)
	if val, err = strconv.ParseFloat(field, 64); err != nil {
		panic(fmt.Errorf("file %s line %d: unable to parse [%s] as a number",
			filename, lineNo, field))
	}
	return
}

func parseInt(fields []string, col int, filename string, lineNo int) (val int) {
	var err error
	field := fieldAt(fields, col, filename, lineNo)
	if val, err = strconv.Atoi(field); err != nil {
		panic(fmt.Errorf("file %s line %d: unable to parse [%s] as an integer",
			filename, lineNo, field))
	}
	return
}
