package mesh

import "testing"

func TestMarchingCubesTables(t *testing.T) {
	max := 0
	for i, tri := range mcTriangleTable {
		if len(tri)%3 != 0 {
			t.Errorf("case %d: triangle list length %d not a multiple of 3", i, len(tri))
		}
		if len(tri) > max {
			max = len(tri)
		}
		// Every referenced edge must be flagged as crossed.
		for _, e := range tri {
			if mcEdgeTable[i]&(1<<e) == 0 {
				t.Errorf("case %d: triangle edge %d not present in edge table", i, e)
			}
		}
	}
	if got := max / 3; got != marchingCubesMaxTriangles {
		t.Errorf("mismatch marching cubes max triangles. got %d. want %d", got, marchingCubesMaxTriangles)
	}
}

func TestMarchingCubesTableSymmetry(t *testing.T) {
	// Complementing the inside corners leaves the crossed edge set
	// unchanged.
	for i := 0; i < 256; i++ {
		if mcEdgeTable[i] != mcEdgeTable[255-i] {
			t.Errorf("edge table asymmetry at case %d", i)
		}
	}
	if mcEdgeTable[0] != 0 || mcEdgeTable[255] != 0 {
		t.Error("uniform cells must cross no edges")
	}
	if len(mcTriangleTable[0]) != 0 || len(mcTriangleTable[255]) != 0 {
		t.Error("uniform cells must emit no triangles")
	}
}

func TestEdgeCorners(t *testing.T) {
	// Each edge must connect corners whose offsets differ in exactly one
	// axis.
	for e, c := range mcEdgeCorners {
		a, b := mcCornerOffsets[c[0]], mcCornerOffsets[c[1]]
		diff := 0
		if a.X != b.X {
			diff++
		}
		if a.Y != b.Y {
			diff++
		}
		if a.Z != b.Z {
			diff++
		}
		if diff != 1 {
			t.Errorf("edge %d connects corners %d and %d which differ in %d axes", e, c[0], c[1], diff)
		}
	}
}
