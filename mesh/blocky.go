package mesh

import (
	"github.com/voxform/isosurface"
	"gonum.org/v1/gonum/spatial/r3"
)

// buildBlocky emits a unit quad on every voxel face separating an inside
// voxel (value <= isoLevel) from an outside neighbour (value >= isoLevel).
// Neighbour lookups past the grid border read the outside sentinel, so
// boundary voxels close correctly.
func buildBlocky(m *Mesh, g *isosurface.VoxelGrid, isoLevel float64, smooth bool) {
	width, height, depth := g.Dims()
	for z := 0; z < depth; z++ {
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				if g.Voxel(x, y, z) > isoLevel {
					continue
				}
				// Voxel corners, p0 the min corner and p7 the max,
				// x varying fastest.
				min := g.VoxelCornerPos(x, y, z)
				max := g.VoxelCornerPos(x+1, y+1, z+1)
				p0 := min
				p1 := r3.Vec{X: max.X, Y: min.Y, Z: min.Z}
				p2 := r3.Vec{X: min.X, Y: max.Y, Z: min.Z}
				p3 := r3.Vec{X: max.X, Y: max.Y, Z: min.Z}
				p4 := r3.Vec{X: min.X, Y: min.Y, Z: max.Z}
				p5 := r3.Vec{X: max.X, Y: min.Y, Z: max.Z}
				p6 := r3.Vec{X: min.X, Y: max.Y, Z: max.Z}
				p7 := max

				if g.Voxel(x+1, y, z) >= isoLevel {
					m.AddQuadFace(p5, p1, p3, p7, smooth)
				}
				if g.Voxel(x-1, y, z) >= isoLevel {
					m.AddQuadFace(p4, p6, p2, p0, smooth)
				}
				if g.Voxel(x, y+1, z) >= isoLevel {
					m.AddQuadFace(p2, p6, p7, p3, smooth)
				}
				if g.Voxel(x, y-1, z) >= isoLevel {
					m.AddQuadFace(p0, p1, p5, p4, smooth)
				}
				if g.Voxel(x, y, z+1) >= isoLevel {
					m.AddQuadFace(p5, p7, p6, p4, smooth)
				}
				if g.Voxel(x, y, z-1) >= isoLevel {
					m.AddQuadFace(p0, p2, p3, p1, smooth)
				}
			}
		}
	}
}
