package isosurface

import "gonum.org/v1/gonum/spatial/r3"

// V3i is a 3D vector of integer voxel coordinates. It is comparable and
// used as a map key by mesh builders that accumulate per-cell data.
type V3i struct {
	X, Y, Z int
}

// Add returns the elementwise sum of p and q.
func (p V3i) Add(q V3i) V3i {
	return V3i{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z}
}

// AddScalar adds f to all of p's components and returns the result.
func (p V3i) AddScalar(f int) V3i {
	return V3i{X: p.X + f, Y: p.Y + f, Z: p.Z + f}
}

// ToV3 converts the integer vector to a float vector.
func (p V3i) ToV3() r3.Vec {
	return r3.Vec{X: float64(p.X), Y: float64(p.Y), Z: float64(p.Z)}
}
