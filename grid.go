package isosurface

import (
	"math"
	"math/bits"

	"github.com/voxform/isosurface/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// OutsideValue is the distance returned for voxel lookups outside the grid.
// It is treated as "far outside" by every mesh builder so surfaces close
// cleanly at grid borders.
const OutsideValue = 10000.0

// DefaultVoxelSize is the cell edge length used when none is configured.
const DefaultVoxelSize = 0.1

// VoxelGrid is a dense axis-aligned scalar field sampled at voxel centers.
// Values are signed distances, negative inside the sampled shape. Storage is
// reused across refits and only ever grows.
type VoxelGrid struct {
	origin    r3.Vec
	width     int
	height    int
	depth     int
	voxelSize float64
	voxels    []float64
}

// NewVoxelGrid returns an empty grid with the argument voxel edge length.
func NewVoxelGrid(voxelSize float64) *VoxelGrid {
	return &VoxelGrid{voxelSize: voxelSize}
}

// Dims returns the grid dimensions in voxels along x, y and z.
func (g *VoxelGrid) Dims() (width, height, depth int) {
	return g.width, g.height, g.depth
}

// Origin returns the world position of the (0,0,0) voxel corner.
func (g *VoxelGrid) Origin() r3.Vec { return g.origin }

// VoxelSize returns the voxel edge length.
func (g *VoxelGrid) VoxelSize() float64 { return g.voxelSize }

// SetVoxelSize sets the voxel edge length used by the next FitToShape.
func (g *VoxelGrid) SetVoxelSize(size float64) { g.voxelSize = size }

// Len returns the number of voxels addressed by the current dimensions.
func (g *VoxelGrid) Len() int { return g.width * g.height * g.depth }

// Bounds returns the world-space box covered by the grid.
func (g *VoxelGrid) Bounds() d3.Box {
	size := r3.Scale(g.voxelSize, r3.Vec{X: float64(g.width), Y: float64(g.height), Z: float64(g.depth)})
	return d3.Box{Min: g.origin, Max: r3.Add(g.origin, size)}
}

// FitToShape resizes the grid to enclose the shape's world bounds with one
// voxel of padding on every side. The origin snaps to integer multiples of
// the voxel size so refitting a moving shape does not jitter sample
// positions. Voxel values are left stale; call Voxelize to refresh them.
func (g *VoxelGrid) FitToShape(s *Shape) {
	bb := s.WorldBounds()
	g.origin = r3.Vec{
		X: (math.Floor(bb.Min.X/g.voxelSize) - 1) * g.voxelSize,
		Y: (math.Floor(bb.Min.Y/g.voxelSize) - 1) * g.voxelSize,
		Z: (math.Floor(bb.Min.Z/g.voxelSize) - 1) * g.voxelSize,
	}
	size := bb.Size()
	g.width = int(math.Ceil(size.X/g.voxelSize)) + 2
	g.height = int(math.Ceil(size.Y/g.voxelSize)) + 2
	g.depth = int(math.Ceil(size.Z/g.voxelSize)) + 2

	if n := g.Len(); n > len(g.voxels) {
		g.voxels = make([]float64, nextPow2(n))
	}
}

// Voxelize samples the shape's signed distance at every voxel center.
func (g *VoxelGrid) Voxelize(s *Shape) {
	i := 0
	for z := 0; z < g.depth; z++ {
		for y := 0; y < g.height; y++ {
			for x := 0; x < g.width; x++ {
				g.voxels[i] = s.WorldDistance(g.VoxelCenterPos(x, y, z))
				i++
			}
		}
	}
}

// Voxel returns the sampled distance at integer coordinates, or OutsideValue
// when the coordinates fall outside the grid.
func (g *VoxelGrid) Voxel(x, y, z int) float64 {
	if x < 0 || x >= g.width || y < 0 || y >= g.height || z < 0 || z >= g.depth {
		return OutsideValue
	}
	return g.voxels[z*g.width*g.height+y*g.width+x]
}

// VoxelCornerPos returns the world position of the minimum corner of voxel
// (x,y,z). Coordinates outside the grid are valid and extrapolate the
// lattice.
func (g *VoxelGrid) VoxelCornerPos(x, y, z int) r3.Vec {
	return r3.Add(g.origin, r3.Scale(g.voxelSize, r3.Vec{X: float64(x), Y: float64(y), Z: float64(z)}))
}

// VoxelCenterPos returns the world position of the center of voxel (x,y,z).
func (g *VoxelGrid) VoxelCenterPos(x, y, z int) r3.Vec {
	return r3.Add(g.VoxelCornerPos(x, y, z), d3.Elem(0.5*g.voxelSize))
}

func nextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}
