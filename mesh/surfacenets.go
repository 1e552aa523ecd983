package mesh

import (
	"github.com/voxform/isosurface"
	"gonum.org/v1/gonum/spatial/r3"
)

// Edges run from a voxel towards +X, +Y and +Z.
var snEdgeEnds = [3]isosurface.V3i{
	{X: 1, Y: 0, Z: 0},
	{X: 0, Y: 1, Z: 0},
	{X: 0, Y: 0, Z: 1},
}

// snEdgeCells lists, per axis, the four cells sharing an edge, as offsets
// from the edge's start voxel. The order walks the quad around the edge so
// consecutive cells share a face.
var snEdgeCells = [3][4]isosurface.V3i{
	{{X: 0, Y: -1, Z: -1}, {X: 0, Y: 0, Z: -1}, {X: 0, Y: 0, Z: 0}, {X: 0, Y: -1, Z: 0}},
	{{X: -1, Y: 0, Z: -1}, {X: -1, Y: 0, Z: 0}, {X: 0, Y: 0, Z: 0}, {X: 0, Y: 0, Z: -1}},
	{{X: -1, Y: -1, Z: 0}, {X: 0, Y: -1, Z: 0}, {X: 0, Y: 0, Z: 0}, {X: -1, Y: 0, Z: 0}},
}

type snCell struct {
	sum r3.Vec
	n   int
}

type snEdge struct {
	start       isosurface.V3i
	axis        int
	startInside bool
}

// buildSurfaceNets extracts a dual surface: every cell touched by a crossed
// lattice edge receives one vertex at the mean of the crossing points, and
// each crossed edge becomes a quad over its four surrounding cells.
func buildSurfaceNets(m *Mesh, g *isosurface.VoxelGrid, isoLevel float64, smooth bool) {
	width, height, depth := g.Dims()
	cells := make(map[isosurface.V3i]snCell)
	var edges []snEdge

	for z := -1; z < depth; z++ {
		for y := -1; y < height; y++ {
			for x := -1; x < width; x++ {
				start := isosurface.V3i{X: x, Y: y, Z: z}
				dStart := g.Voxel(x, y, z)
				for axis := 0; axis < 3; axis++ {
					end := start.Add(snEdgeEnds[axis])
					dEnd := g.Voxel(end.X, end.Y, end.Z)
					if (dStart < isoLevel) == (dEnd < isoLevel) {
						continue
					}
					p := interpVertex(isoLevel,
						g.VoxelCenterPos(start.X, start.Y, start.Z),
						g.VoxelCenterPos(end.X, end.Y, end.Z),
						dStart, dEnd)
					for _, off := range snEdgeCells[axis] {
						c := start.Add(off)
						acc := cells[c]
						acc.sum = r3.Add(acc.sum, p)
						acc.n++
						cells[c] = acc
					}
					edges = append(edges, snEdge{start: start, axis: axis, startInside: dStart < isoLevel})
				}
			}
		}
	}

	vertex := func(c isosurface.V3i) r3.Vec {
		acc := cells[c]
		return r3.Scale(1/float64(acc.n), acc.sum)
	}
	for _, e := range edges {
		v0 := vertex(e.start.Add(snEdgeCells[e.axis][0]))
		v1 := vertex(e.start.Add(snEdgeCells[e.axis][1]))
		v2 := vertex(e.start.Add(snEdgeCells[e.axis][2]))
		v3 := vertex(e.start.Add(snEdgeCells[e.axis][3]))
		if e.startInside {
			m.AddQuadFace(v0, v1, v2, v3, smooth)
		} else {
			m.AddQuadFace(v0, v3, v2, v1, smooth)
		}
	}
}
