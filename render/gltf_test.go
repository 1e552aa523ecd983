package render_test

import (
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/voxform/isosurface/mesh"
	"github.com/voxform/isosurface/render"
)

func TestGLTFRoundTrip(t *testing.T) {
	p := spherePipeline(t, 0.1)
	for _, ext := range []string{".gltf", ".glb"} {
		path := filepath.Join(t.TempDir(), "sphere"+ext)
		if err := render.CreateGLTF(path, p.Mesh, "sphere"); err != nil {
			t.Fatalf("%s: %v", ext, err)
		}
		doc, err := gltf.Open(path)
		if err != nil {
			t.Fatalf("%s: %v", ext, err)
		}
		if len(doc.Meshes) != 1 || len(doc.Meshes[0].Primitives) != 1 {
			t.Fatalf("%s: unexpected document structure", ext)
		}
		prim := doc.Meshes[0].Primitives[0]
		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			t.Fatalf("%s: no position attribute", ext)
		}
		if got := int(doc.Accessors[posIdx].Count); got != p.Mesh.NumVertices() {
			t.Errorf("%s: position count %d. want %d", ext, got, p.Mesh.NumVertices())
		}
		normIdx, ok := prim.Attributes[gltf.NORMAL]
		if !ok {
			t.Fatalf("%s: no normal attribute", ext)
		}
		if got := int(doc.Accessors[normIdx].Count); got != p.Mesh.NumVertices() {
			t.Errorf("%s: normal count %d. want %d", ext, got, p.Mesh.NumVertices())
		}
		if prim.Indices == nil {
			t.Fatalf("%s: no indices", ext)
		}
		if got := int(doc.Accessors[*prim.Indices].Count); got != 3*p.Mesh.NumFaces() {
			t.Errorf("%s: index count %d. want %d", ext, got, 3*p.Mesh.NumFaces())
		}
	}
}

func TestGLTFEmptyMesh(t *testing.T) {
	var m mesh.Mesh
	err := render.CreateGLTF(filepath.Join(t.TempDir(), "empty.gltf"), &m, "empty")
	if err == nil {
		t.Error("expected error for empty mesh")
	}
}
