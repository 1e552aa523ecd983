// Package mesh builds triangle meshes from voxelized signed distance grids.
// Three extraction algorithms are provided: a blocky face extractor,
// marching cubes and surface nets.
package mesh

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Mesh is an indexed triangle mesh with per-face smooth shading flags.
// Vertices are deduplicated by exact position so faces emitted at the same
// lattice point share an index. The zero value is an empty mesh ready to use.
type Mesh struct {
	vertices []r3.Vec
	faces    [][3]int
	smooth   []int32 // one flag per face, 0 flat, 1 smooth

	lookup map[r3.Vec]int
}

// NumVertices returns the number of unique vertices.
func (m *Mesh) NumVertices() int { return len(m.vertices) }

// NumFaces returns the number of triangle faces.
func (m *Mesh) NumFaces() int { return len(m.faces) }

// Vertex returns the position of vertex i.
func (m *Mesh) Vertex(i int) r3.Vec { return m.vertices[i] }

// Face returns the vertex indices of triangle i.
func (m *Mesh) Face(i int) [3]int { return m.faces[i] }

// Smooth reports whether triangle i is flagged for smooth shading.
func (m *Mesh) Smooth(i int) bool { return m.smooth[i] != 0 }

// Triangle returns triangle i with positions resolved.
func (m *Mesh) Triangle(i int) r3.Triangle {
	f := m.faces[i]
	return r3.Triangle{m.vertices[f[0]], m.vertices[f[1]], m.vertices[f[2]]}
}

// Clear empties the mesh keeping allocated storage for reuse.
func (m *Mesh) Clear() {
	m.vertices = m.vertices[:0]
	m.faces = m.faces[:0]
	m.smooth = m.smooth[:0]
	clear(m.lookup)
}

// AddTriangleFace appends a triangle with the argument corner positions and
// shading flag, reusing existing vertices whose position matches exactly.
func (m *Mesh) AddTriangleFace(p0, p1, p2 r3.Vec, smooth bool) {
	var flag int32
	if smooth {
		flag = 1
	}
	m.faces = append(m.faces, [3]int{m.vertex(p0), m.vertex(p1), m.vertex(p2)})
	m.smooth = append(m.smooth, flag)
}

// AddQuadFace appends the quad p0 p1 p2 p3 as the two triangles
// (p0,p1,p2) and (p0,p2,p3) sharing one shading flag.
func (m *Mesh) AddQuadFace(p0, p1, p2, p3 r3.Vec, smooth bool) {
	m.AddTriangleFace(p0, p1, p2, smooth)
	m.AddTriangleFace(p0, p2, p3, smooth)
}

// SetSmoothShading rewrites the shading flag of every face in place.
func (m *Mesh) SetSmoothShading(smooth bool) {
	var flag int32
	if smooth {
		flag = 1
	}
	for i := range m.smooth {
		m.smooth[i] = flag
	}
}

// CountDegenerate returns the number of triangles whose shortest edge is not
// longer than minEdge.
func (m *Mesh) CountDegenerate(minEdge float64) int {
	n := 0
	min2 := minEdge * minEdge
	for _, f := range m.faces {
		a, b, c := m.vertices[f[0]], m.vertices[f[1]], m.vertices[f[2]]
		e := norm2(r3.Sub(b, a))
		if d := norm2(r3.Sub(c, b)); d < e {
			e = d
		}
		if d := norm2(r3.Sub(a, c)); d < e {
			e = d
		}
		if e <= min2 {
			n++
		}
	}
	return n
}

func (m *Mesh) vertex(p r3.Vec) int {
	if i, ok := m.lookup[p]; ok {
		return i
	}
	if m.lookup == nil {
		m.lookup = make(map[r3.Vec]int)
	}
	i := len(m.vertices)
	m.vertices = append(m.vertices, p)
	m.lookup[p] = i
	return i
}

func norm2(v r3.Vec) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}
