package mesh

import (
	"fmt"

	"github.com/voxform/isosurface"
)

// Algorithm selects the surface extraction strategy used by BuildMesh.
type Algorithm uint8

const (
	// Blocky emits an axis-aligned quad for every voxel face between an
	// inside voxel and an outside one.
	Blocky Algorithm = iota
	// MarchingCubes triangulates each cell from the classic 256-case
	// tables with vertices interpolated along crossed edges.
	MarchingCubes
	// SurfaceNets places one dual vertex per surface cell and connects
	// them with quads across crossed edges.
	SurfaceNets

	numAlgorithms
)

// String returns the display name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case Blocky:
		return "Blocky"
	case MarchingCubes:
		return "Marching Cubes"
	case SurfaceNets:
		return "Surface Nets"
	}
	return "unknown"
}

// ParseAlgorithm resolves a name as accepted on command lines. It matches
// the String values and the short forms "blocky", "mc" and "nets".
func ParseAlgorithm(name string) (Algorithm, error) {
	switch name {
	case "Blocky", "blocky":
		return Blocky, nil
	case "Marching Cubes", "marching-cubes", "mc":
		return MarchingCubes, nil
	case "Surface Nets", "surface-nets", "nets":
		return SurfaceNets, nil
	}
	return 0, fmt.Errorf("mesh: unknown algorithm %q", name)
}

var builders = [numAlgorithms]func(*Mesh, *isosurface.VoxelGrid, float64, bool){
	Blocky:        buildBlocky,
	MarchingCubes: buildMarchingCubes,
	SurfaceNets:   buildSurfaceNets,
}

// BuildMesh clears dst and fills it with the surface extracted from the grid
// at the argument isolevel. Every face receives the argument shading flag.
func BuildMesh(dst *Mesh, a Algorithm, g *isosurface.VoxelGrid, isoLevel float64, smooth bool) {
	dst.Clear()
	builders[a](dst, g, isoLevel, smooth)
}
