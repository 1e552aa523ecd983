// Package render exports extracted meshes to interchange formats. Triangles
// stream through the Renderer interface so exporters never need the whole
// model in memory at once.
package render

import (
	"io"

	"github.com/voxform/isosurface/mesh"
	"gonum.org/v1/gonum/spatial/r3"
)

// Triangle3 is a triangle in 3D space.
type Triangle3 struct {
	V [3]r3.Vec
}

// Normal returns the triangle's unit normal using the right hand rule on the
// vertex winding.
func (t Triangle3) Normal() r3.Vec {
	e1 := r3.Sub(t.V[1], t.V[0])
	e2 := r3.Sub(t.V[2], t.V[0])
	return r3.Unit(r3.Cross(e1, e2))
}

// Centroid returns the mean of the triangle's vertices.
func (t Triangle3) Centroid() r3.Vec {
	return r3.Scale(1.0/3.0, r3.Add(t.V[0], r3.Add(t.V[1], t.V[2])))
}

// Renderer is a stream of triangles. ReadTriangles follows io.Reader
// semantics, returning io.EOF once the stream is exhausted.
type Renderer interface {
	ReadTriangles(t []Triangle3) (int, error)
}

// RenderAll reads the full contents of a Renderer and returns the slice
// read. It does not return error on io.EOF, like io.ReadAll.
func RenderAll(r Renderer) ([]Triangle3, error) {
	var err error
	var nt int
	result := make([]Triangle3, 0, 1<<12)
	buf := make([]Triangle3, 1024)
	for {
		nt, err = r.ReadTriangles(buf)
		if err != nil {
			break
		}
		result = append(result, buf[:nt]...)
	}
	if err == io.EOF {
		return result, nil
	}
	return result, err
}

// NewMeshRenderer returns a Renderer that streams the mesh's faces in order.
func NewMeshRenderer(m *mesh.Mesh) Renderer {
	return &meshRenderer{m: m}
}

type meshRenderer struct {
	m    *mesh.Mesh
	next int
}

func (r *meshRenderer) ReadTriangles(t []Triangle3) (int, error) {
	if r.next >= r.m.NumFaces() {
		return 0, io.EOF
	}
	n := 0
	for n < len(t) && r.next < r.m.NumFaces() {
		tri := r.m.Triangle(r.next)
		t[n] = Triangle3{V: [3]r3.Vec{tri[0], tri[1], tri[2]}}
		n++
		r.next++
	}
	return n, nil
}

// Triangles resolves every face of the mesh into a flat slice.
func Triangles(m *mesh.Mesh) []Triangle3 {
	t := make([]Triangle3, m.NumFaces())
	for i := range t {
		tri := m.Triangle(i)
		t[i] = Triangle3{V: [3]r3.Vec{tri[0], tri[1], tri[2]}}
	}
	return t
}
