// Package pipeline chains shape voxelization and mesh extraction behind a
// single Update call and reports timing and quality statistics for each run.
package pipeline

import (
	"fmt"
	"time"

	"github.com/voxform/isosurface"
	"github.com/voxform/isosurface/mesh"
)

// DefaultIsoLevel is the isolevel used when none is configured. Zero is the
// exact surface of a signed distance field.
const DefaultIsoLevel = 0.0

// degenerateEdgeFraction scales the voxel size into the shortest edge length
// below which a triangle counts as degenerate.
const degenerateEdgeFraction = 0.01

// Stats describes one Update run.
type Stats struct {
	VoxelizeDuration time.Duration
	BuildDuration    time.Duration
	Voxels           int
	Vertices         int
	Triangles        int
	Degenerate       int
}

func (s Stats) String() string {
	return fmt.Sprintf("voxelize %v (%d voxels), build %v (%d vertices, %d triangles, %d degenerate)",
		s.VoxelizeDuration, s.Voxels, s.BuildDuration, s.Vertices, s.Triangles, s.Degenerate)
}

// Pipeline owns a shape, the grid it is sampled into and the extracted mesh.
// Grid and mesh storage is reused across updates.
type Pipeline struct {
	Shape     *isosurface.Shape
	Grid      *isosurface.VoxelGrid
	Mesh      *mesh.Mesh
	Algorithm mesh.Algorithm
	IsoLevel  float64
	Smooth    bool
}

// New returns a pipeline around the argument shape with default voxel size,
// isolevel and algorithm.
func New(s *isosurface.Shape) *Pipeline {
	return &Pipeline{
		Shape:    s,
		Grid:     isosurface.NewVoxelGrid(isosurface.DefaultVoxelSize),
		Mesh:     new(mesh.Mesh),
		IsoLevel: DefaultIsoLevel,
	}
}

// Update refits the grid to the shape, resamples the field and rebuilds the
// mesh. Configuration faults that surface as panics, like a zero scale
// component, are returned as errors.
func (p *Pipeline) Update() (stats Stats, err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok {
				panic(r)
			}
			err = e
		}
	}()

	start := time.Now()
	p.Grid.FitToShape(p.Shape)
	p.Grid.Voxelize(p.Shape)
	stats.VoxelizeDuration = time.Since(start)
	stats.Voxels = p.Grid.Len()

	start = time.Now()
	mesh.BuildMesh(p.Mesh, p.Algorithm, p.Grid, p.IsoLevel, p.Smooth)
	stats.BuildDuration = time.Since(start)
	stats.Vertices = p.Mesh.NumVertices()
	stats.Triangles = p.Mesh.NumFaces()
	stats.Degenerate = p.Mesh.CountDegenerate(p.Grid.VoxelSize() * degenerateEdgeFraction)
	return stats, nil
}

// SetSmooth rewrites the shading flag of the current mesh in place and
// records the value for future updates. Unlike Update it does not rebuild
// anything.
func (p *Pipeline) SetSmooth(smooth bool) {
	p.Smooth = smooth
	p.Mesh.SetSmoothShading(smooth)
}
