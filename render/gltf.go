package render

import (
	"errors"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/voxform/isosurface/mesh"
	"gonum.org/v1/gonum/spatial/r3"
)

// CreateGLTF writes the mesh to path as a glTF 2.0 asset. The extension
// selects the encoding: .glb writes the binary container, anything else the
// JSON form. Vertex normals are the area weighted average of the incident
// face normals, so smooth shaded meshes light correctly in viewers.
func CreateGLTF(path string, m *mesh.Mesh, name string) error {
	if m.NumFaces() == 0 {
		return errors.New("empty mesh")
	}
	positions := make([][3]float32, m.NumVertices())
	for i := range positions {
		positions[i] = to3F32(m.Vertex(i))
	}
	indices := make([]uint32, 0, 3*m.NumFaces())
	for i := 0; i < m.NumFaces(); i++ {
		f := m.Face(i)
		indices = append(indices, uint32(f[0]), uint32(f[1]), uint32(f[2]))
	}
	normals := vertexNormals(m)

	doc := gltf.NewDocument()
	posIdx := modeler.WritePosition(doc, positions)
	normIdx := modeler.WriteNormal(doc, normals)
	idxIdx := modeler.WriteIndices(doc, indices)
	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name: name,
		Primitives: []*gltf.Primitive{{
			Indices: gltf.Index(idxIdx),
			Attributes: map[string]int{
				gltf.POSITION: posIdx,
				gltf.NORMAL:   normIdx,
			},
		}},
	})
	doc.Nodes = append(doc.Nodes, &gltf.Node{
		Name: name,
		Mesh: gltf.Index(len(doc.Meshes) - 1),
	})
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, len(doc.Nodes)-1)

	if isGLB(path) {
		return gltf.SaveBinary(doc, path)
	}
	// JSON documents carry the buffer inline as a data URI.
	doc.Buffers[0].EmbeddedResource()
	return gltf.Save(doc, path)
}

func isGLB(path string) bool {
	return len(path) >= 4 && path[len(path)-4:] == ".glb"
}

// vertexNormals accumulates unnormalized face cross products per vertex.
// The cross product magnitude is twice the face area, giving the area
// weighting.
func vertexNormals(m *mesh.Mesh) [][3]float32 {
	acc := make([]r3.Vec, m.NumVertices())
	for i := 0; i < m.NumFaces(); i++ {
		f := m.Face(i)
		a, b, c := m.Vertex(f[0]), m.Vertex(f[1]), m.Vertex(f[2])
		n := r3.Cross(r3.Sub(b, a), r3.Sub(c, a))
		acc[f[0]] = r3.Add(acc[f[0]], n)
		acc[f[1]] = r3.Add(acc[f[1]], n)
		acc[f[2]] = r3.Add(acc[f[2]], n)
	}
	normals := make([][3]float32, len(acc))
	for i, n := range acc {
		if norm := r3.Norm(n); norm > 0 {
			n = r3.Scale(1/norm, n)
		}
		normals[i] = to3F32(n)
	}
	return normals
}
