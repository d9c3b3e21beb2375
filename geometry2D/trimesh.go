package geometry2D

import (
	"fmt"

	graphics2D "github.com/notargets/avs/geometry"
	"gonum.org/v1/gonum/floats"

	"github.com/notargets/femplot/readfiles"
)

// Triangle is one element's geometry: three (x,y) vertices in the element's
// node order.
type Triangle [3][2]float64

// InitialTriangles builds the undeformed geometry, one triangle per element
// in element order, from the reference node positions.
func InitialTriangles(nodes []readfiles.Node, elements []readfiles.Element) (tris []Triangle) {
	return assemble(nodes, elements, false)
}

// DeformedTriangles builds the deformed geometry by adding each node's
// displacement to its reference position.
func DeformedTriangles(nodes []readfiles.Node, elements []readfiles.Element) (tris []Triangle) {
	return assemble(nodes, elements, true)
}

func assemble(nodes []readfiles.Node, elements []readfiles.Element, deformed bool) (tris []Triangle) {
	tris = make([]Triangle, len(elements))
	for k, el := range elements {
		for n, index := range [3]int{el.N0, el.N1, el.N2} {
			node := nodeAt(nodes, index, k)
			if deformed {
				tris[k][n] = [2]float64{node.X + node.Ux, node.Y + node.Uy}
			} else {
				tris[k][n] = [2]float64{node.X, node.Y}
			}
		}
	}
	return
}

func nodeAt(nodes []readfiles.Node, index, k int) readfiles.Node {
	if index < 0 || index >= len(nodes) {
		panic(fmt.Errorf("element %d references node %d, outside the %d nodes read",
			k, index, len(nodes)))
	}
	return nodes[index]
}

// Extent is an axis aligned bounding box in model coordinates.
type Extent struct {
	XMin, XMax float64
	YMin, YMax float64
}

// ExtentOf computes the auto-fit extent of a triangle set.
func ExtentOf(tris []Triangle) (e Extent) {
	if len(tris) == 0 {
		return
	}
	xs := make([]float64, 0, 3*len(tris))
	ys := make([]float64, 0, 3*len(tris))
	for _, tri := range tris {
		for n := 0; n < 3; n++ {
			xs = append(xs, tri[n][0])
			ys = append(ys, tri[n][1])
		}
	}
	e.XMin, e.XMax = floats.Min(xs), floats.Max(xs)
	e.YMin, e.YMax = floats.Min(ys), floats.Max(ys)
	return
}

// Union returns the smallest extent covering both e and o. Setting two plot
// areas to the union guarantees they share identical x and y ranges.
func (e Extent) Union(o Extent) Extent {
	return Extent{
		XMin: min(e.XMin, o.XMin),
		XMax: max(e.XMax, o.XMax),
		YMin: min(e.YMin, o.YMin),
		YMax: max(e.YMax, o.YMax),
	}
}

// Pad grows the extent about its center by frac of each dimension.
func (e Extent) Pad(frac float64) Extent {
	dx, dy := 0.5*frac*e.Width(), 0.5*frac*e.Height()
	return Extent{
		XMin: e.XMin - dx,
		XMax: e.XMax + dx,
		YMin: e.YMin - dy,
		YMax: e.YMax + dy,
	}
}

func (e Extent) Width() float64  { return e.XMax - e.XMin }
func (e Extent) Height() float64 { return e.YMax - e.YMin }

// Translate shifts a triangle set by (dx, dy), used to stack the two views
// inside a single chart coordinate space.
func Translate(tris []Triangle, dx, dy float64) (out []Triangle) {
	out = make([]Triangle, len(tris))
	for k, tri := range tris {
		for n := 0; n < 3; n++ {
			out[k][n] = [2]float64{tri[n][0] + dx, tri[n][1] + dy}
		}
	}
	return
}

// ToAVSMesh converts a triangle set to an avs TriMesh. Vertices are not
// shared between triangles so a per-element scalar can be flat shaded by
// assigning the same value to all three of a triangle's vertices.
func ToAVSMesh(tris []Triangle) (gm graphics2D.TriMesh) {
	gm = graphics2D.TriMesh{
		XY:       make([]float32, 6*len(tris)),
		TriVerts: make([][3]int64, len(tris)),
	}
	for k, tri := range tris {
		for n := 0; n < 3; n++ {
			iv := 3*k + n
			gm.XY[2*iv] = float32(tri[n][0])
			gm.XY[2*iv+1] = float32(tri[n][1])
			gm.TriVerts[k][n] = int64(iv)
		}
	}
	return
}
