package render

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/voxform/isosurface"
	"github.com/voxform/isosurface/mesh"
	"github.com/voxform/isosurface/pipeline"
	"gonum.org/v1/gonum/spatial/r3"
)

func sphereMesh(t testing.TB, voxelSize float64) *mesh.Mesh {
	t.Helper()
	p := pipeline.New(isosurface.NewSphere(1))
	p.Grid.SetVoxelSize(voxelSize)
	p.Algorithm = mesh.MarchingCubes
	if _, err := p.Update(); err != nil {
		t.Fatal(err)
	}
	return p.Mesh
}

func TestSTLWriteReadback(t *testing.T) {
	const tol = 1e-6
	m := sphereMesh(t, 0.1)
	input := Triangles(m)
	var b bytes.Buffer
	if err := WriteSTL(&b, input); err != nil {
		t.Fatal(err)
	}
	output, err := ReadSTL(&b)
	if err != nil && !errors.Is(err, errCalculatedNormalMismatch) {
		t.Fatal(err)
	}
	if len(output) != len(input) {
		t.Fatal("length of triangles written/read not equal")
	}
	mismatches := 0
	for iface, expect := range input {
		got := output[iface]
		for i := range expect.V {
			d := r3.Sub(got.V[i], expect.V[i])
			if r3.Norm(d) > tol {
				mismatches++
				t.Errorf("%dth triangle equality out of tolerance. got vertex %0.5g, want %0.5g", iface, got.V[i], expect.V[i])
			}
		}
		if mismatches > 10 {
			t.Fatal("too many mismatches")
		}
	}
}

func TestMeshRendererStreams(t *testing.T) {
	m := sphereMesh(t, 0.2)
	r := NewMeshRenderer(m)
	buf := make([]Triangle3, 7)
	total := 0
	for {
		n, err := r.ReadTriangles(buf)
		total += n
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
	}
	if total != m.NumFaces() {
		t.Errorf("streamed %d triangles. mesh has %d", total, m.NumFaces())
	}
	// A drained renderer keeps returning EOF.
	if _, err := r.ReadTriangles(buf); err != io.EOF {
		t.Errorf("got %v. want io.EOF", err)
	}
}

func TestWriteSTLEmpty(t *testing.T) {
	var b bytes.Buffer
	if err := WriteSTL(&b, nil); err == nil {
		t.Error("expected error for empty model")
	}
}
