package mesh

import (
	"github.com/voxform/isosurface"
	"gonum.org/v1/gonum/spatial/r3"
)

var mcCornerOffsets = [8]isosurface.V3i{
	{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 1}, {X: 0, Y: 0, Z: 1},
	{X: 0, Y: 1, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 1, Y: 1, Z: 1}, {X: 0, Y: 1, Z: 1},
}

// buildMarchingCubes triangulates every cell of the lattice spanned by voxel
// centers. Cells start one step before the grid so the sentinel closes
// surfaces touching the border.
func buildMarchingCubes(m *Mesh, g *isosurface.VoxelGrid, isoLevel float64, smooth bool) {
	width, height, depth := g.Dims()
	var (
		pos  [8]r3.Vec
		dist [8]float64
		ev   [12]r3.Vec
	)
	for z := -1; z < depth; z++ {
		for y := -1; y < height; y++ {
			for x := -1; x < width; x++ {
				index := 0
				for i, off := range mcCornerOffsets {
					cx, cy, cz := x+off.X, y+off.Y, z+off.Z
					pos[i] = g.VoxelCenterPos(cx, cy, cz)
					dist[i] = g.Voxel(cx, cy, cz)
					if dist[i] < isoLevel {
						index |= 1 << i
					}
				}
				edges := mcEdgeTable[index]
				if edges == 0 {
					continue
				}
				for e := 0; e < 12; e++ {
					if edges&(1<<e) == 0 {
						continue
					}
					c0, c1 := mcEdgeCorners[e][0], mcEdgeCorners[e][1]
					ev[e] = interpVertex(isoLevel, pos[c0], pos[c1], dist[c0], dist[c1])
				}
				tri := mcTriangleTable[index]
				for i := 0; i < len(tri); i += 3 {
					m.AddTriangleFace(ev[tri[i]], ev[tri[i+1]], ev[tri[i+2]], smooth)
				}
			}
		}
	}
}

// interpVertex places a vertex on the edge p0-p1 where the field linearly
// crosses the isolevel.
func interpVertex(isoLevel float64, p0, p1 r3.Vec, d0, d1 float64) r3.Vec {
	t := (isoLevel - d0) / (d1 - d0)
	return r3.Add(p0, r3.Scale(t, r3.Sub(p1, p0)))
}
