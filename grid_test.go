package isosurface

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestGridFitBox(t *testing.T) {
	g := NewVoxelGrid(0.5)
	g.FitToShape(NewBox(2, 2, 2))
	w, h, d := g.Dims()
	if w != 6 || h != 6 || d != 6 {
		t.Fatalf("dims: got %dx%dx%d. want 6x6x6", w, h, d)
	}
	want := r3.Vec{X: -1.5, Y: -1.5, Z: -1.5}
	if !vecApproxEqual(g.Origin(), want, 1e-12) {
		t.Errorf("origin: got %v. want %v", g.Origin(), want)
	}
}

func TestGridFitContainsShape(t *testing.T) {
	for _, shape := range []*Shape{
		NewSphere(1),
		NewBox(2, 3, 0.5),
		NewTorus(0.7, 0.3),
		NewCone(1, 2),
	} {
		g := NewVoxelGrid(0.1)
		g.FitToShape(shape)
		if !g.Bounds().ContainsBox(shape.WorldBounds()) {
			t.Errorf("%v: grid %+v does not contain shape bounds %+v", shape, g.Bounds(), shape.WorldBounds())
		}
	}
}

func TestGridFitSnapsOrigin(t *testing.T) {
	// Nudging the shape less than a voxel must not move sample positions
	// off the lattice.
	s := NewSphere(1)
	g := NewVoxelGrid(0.25)
	g.FitToShape(s)
	o1 := g.Origin()
	s.SetTranslation(0.01, 0.01, 0.01)
	g.FitToShape(s)
	if o2 := g.Origin(); !vecApproxEqual(o1, o2, 1e-12) {
		t.Errorf("origin moved from %v to %v for sub-voxel translation", o1, o2)
	}
}

func TestVoxelOutsideSentinel(t *testing.T) {
	g := NewVoxelGrid(0.5)
	g.FitToShape(NewBox(2, 2, 2))
	g.Voxelize(NewBox(2, 2, 2))
	w, h, d := g.Dims()
	for _, c := range []V3i{
		{X: -1}, {Y: -1}, {Z: -1},
		{X: w}, {X: 0, Y: h}, {Z: d},
		{X: -10, Y: -10, Z: -10},
	} {
		if got := g.Voxel(c.X, c.Y, c.Z); got != OutsideValue {
			t.Errorf("voxel at %v: got %g. want %g", c, got, OutsideValue)
		}
	}
}

func TestVoxelizeBoxField(t *testing.T) {
	box := NewBox(2, 2, 2)
	g := NewVoxelGrid(0.5)
	g.FitToShape(box)
	g.Voxelize(box)
	w, h, d := g.Dims()
	inside := 0
	for z := 0; z < d; z++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				v := g.Voxel(x, y, z)
				want := box.WorldDistance(g.VoxelCenterPos(x, y, z))
				if v != want {
					t.Fatalf("voxel (%d,%d,%d): got %g. want %g", x, y, z, v, want)
				}
				if v <= 0 {
					inside++
				}
			}
		}
	}
	// Box centers at +-1.25, +-0.75, +-0.25 per axis: the inner 4 of 6 land
	// inside the box.
	if want := 4 * 4 * 4; inside != want {
		t.Errorf("inside voxels: got %d. want %d", inside, want)
	}
}

func TestGridStorageGrowth(t *testing.T) {
	g := NewVoxelGrid(0.5)
	g.FitToShape(NewBox(2, 2, 2))
	if got := len(g.voxels); got != 256 {
		t.Errorf("storage after first fit: got %d. want 256 (next power of two above 216)", got)
	}
	// Shrinking the shape must not shrink storage.
	g.FitToShape(NewBox(0.5, 0.5, 0.5))
	if got := len(g.voxels); got != 256 {
		t.Errorf("storage after shrink: got %d. want 256", got)
	}
	// Growing past capacity reallocates to the next power of two.
	g.SetVoxelSize(0.1)
	g.FitToShape(NewBox(2, 2, 2))
	n := g.Len()
	if got := len(g.voxels); got != nextPow2(n) || got < n {
		t.Errorf("storage after growth: got %d for %d voxels. want %d", got, n, nextPow2(n))
	}
}

func TestVoxelPositions(t *testing.T) {
	g := NewVoxelGrid(0.5)
	g.FitToShape(NewBox(2, 2, 2))
	if got, want := g.VoxelCornerPos(0, 0, 0), g.Origin(); !vecApproxEqual(got, want, 1e-12) {
		t.Errorf("corner (0,0,0): got %v. want %v", got, want)
	}
	if got, want := g.VoxelCenterPos(0, 0, 0), (r3.Vec{X: -1.25, Y: -1.25, Z: -1.25}); !vecApproxEqual(got, want, 1e-12) {
		t.Errorf("center (0,0,0): got %v. want %v", got, want)
	}
	// Positions extrapolate outside the grid.
	if got, want := g.VoxelCornerPos(-1, 0, 7), (r3.Vec{X: -2, Y: -1.5, Z: 2}); !vecApproxEqual(got, want, 1e-12) {
		t.Errorf("corner (-1,0,7): got %v. want %v", got, want)
	}
}

func TestNextPow2(t *testing.T) {
	for _, test := range []struct{ n, want int }{
		{0, 1}, {1, 1}, {2, 2}, {3, 4}, {216, 256}, {256, 256}, {257, 512},
	} {
		if got := nextPow2(test.n); got != test.want {
			t.Errorf("nextPow2(%d): got %d. want %d", test.n, got, test.want)
		}
	}
}
