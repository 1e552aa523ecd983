package isosurface

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestSphereDistance(t *testing.T) {
	s := NewSphere(1)
	for _, test := range []struct {
		p    r3.Vec
		want float64
	}{
		{r3.Vec{}, -1},
		{r3.Vec{X: 1}, 0},
		{r3.Vec{Y: 2}, 1},
		{r3.Vec{X: 3, Y: 4}, 4},
	} {
		if got := s.LocalDistance(test.p); !approxEqual(got, test.want, 1e-12) {
			t.Errorf("sphere distance at %v: got %g. want %g", test.p, got, test.want)
		}
	}
}

func TestBoxDistance(t *testing.T) {
	s := NewBox(2, 2, 2)
	for _, test := range []struct {
		p    r3.Vec
		want float64
	}{
		{r3.Vec{}, -1},
		{r3.Vec{X: 1}, 0},
		{r3.Vec{X: 2}, 1},
		{r3.Vec{X: 0.5, Y: 0.5, Z: 0.5}, -0.5},
		// Past an edge the distance is diagonal.
		{r3.Vec{X: 2, Y: 2}, math.Sqrt2},
	} {
		if got := s.LocalDistance(test.p); !approxEqual(got, test.want, 1e-12) {
			t.Errorf("box distance at %v: got %g. want %g", test.p, got, test.want)
		}
	}
}

func TestTorusDistance(t *testing.T) {
	s := NewTorus(0.7, 0.3)
	for _, test := range []struct {
		p    r3.Vec
		want float64
	}{
		// Center of the tube.
		{r3.Vec{X: 0.7}, -0.3},
		{r3.Vec{Z: 0.7}, -0.3},
		// Outer equator.
		{r3.Vec{X: 1}, 0},
		// Directly above the ring center.
		{r3.Vec{X: 0.7, Y: 0.3}, 0},
		// Origin is a ring radius away from the tube center.
		{r3.Vec{}, 0.4},
	} {
		if got := s.LocalDistance(test.p); !approxEqual(got, test.want, 1e-12) {
			t.Errorf("torus distance at %v: got %g. want %g", test.p, got, test.want)
		}
	}
}

func TestConeDistance(t *testing.T) {
	s := NewCone(1, 2)
	for _, test := range []struct {
		p    r3.Vec
		want float64
	}{
		// Apex and base rim lie on the surface.
		{r3.Vec{Y: 1}, 0},
		{r3.Vec{X: 1, Y: -1}, 0},
		// Center of the base.
		{r3.Vec{Y: -1}, 0},
		// Below the base.
		{r3.Vec{Y: -2}, 1},
		// Above the apex.
		{r3.Vec{Y: 2}, 1},
	} {
		if got := s.LocalDistance(test.p); !approxEqual(got, test.want, 1e-9) {
			t.Errorf("cone distance at %v: got %g. want %g", test.p, got, test.want)
		}
	}
	if got := s.LocalDistance(r3.Vec{}); got >= 0 {
		t.Errorf("cone axis midpoint should be inside. got %g", got)
	}
}

func TestLocalBounds(t *testing.T) {
	for _, test := range []struct {
		name     string
		shape    *Shape
		min, max r3.Vec
	}{
		{"sphere", NewSphere(2), r3.Vec{X: -2, Y: -2, Z: -2}, r3.Vec{X: 2, Y: 2, Z: 2}},
		{"box", NewBox(2, 4, 6), r3.Vec{X: -1, Y: -2, Z: -3}, r3.Vec{X: 1, Y: 2, Z: 3}},
		{"torus", NewTorus(0.7, 0.3), r3.Vec{X: -1, Y: -0.3, Z: -1}, r3.Vec{X: 1, Y: 0.3, Z: 1}},
		{"cone", NewCone(1, 2), r3.Vec{X: -1, Y: -1, Z: -1}, r3.Vec{X: 1, Y: 1, Z: 1}},
	} {
		bb := test.shape.LocalBounds()
		if !vecApproxEqual(bb.Min, test.min, 1e-12) || !vecApproxEqual(bb.Max, test.max, 1e-12) {
			t.Errorf("%s bounds: got %+v. want min %v max %v", test.name, bb, test.min, test.max)
		}
	}
}

func TestWorldTransformTranslation(t *testing.T) {
	s := NewSphere(1)
	s.SetTranslation(5, -2, 3)
	if got := s.WorldDistance(r3.Vec{X: 5, Y: -2, Z: 3}); !approxEqual(got, -1, 1e-12) {
		t.Errorf("distance at translated center: got %g. want -1", got)
	}
	if got := s.WorldDistance(r3.Vec{X: 6, Y: -2, Z: 3}); !approxEqual(got, 0, 1e-12) {
		t.Errorf("distance at translated surface: got %g. want 0", got)
	}
	bb := s.WorldBounds()
	if !vecApproxEqual(bb.Min, r3.Vec{X: 4, Y: -3, Z: 2}, 1e-12) {
		t.Errorf("world bounds min: got %v", bb.Min)
	}
}

func TestWorldTransformRotation(t *testing.T) {
	// A tall box rotated a quarter turn about Z swaps its x and y extents.
	s := NewBox(2, 4, 2)
	s.SetRotation(0, 0, 90)
	if got := s.WorldDistance(r3.Vec{X: 1.9}); got >= 0 {
		t.Errorf("rotated box should contain (1.9,0,0). got %g", got)
	}
	if got := s.WorldDistance(r3.Vec{Y: 1.9}); got <= 0 {
		t.Errorf("rotated box should not contain (0,1.9,0). got %g", got)
	}
	bb := s.WorldBounds()
	if !approxEqual(bb.Max.X, 2, 1e-9) || !approxEqual(bb.Max.Y, 1, 1e-9) {
		t.Errorf("rotated bounds: got %+v", bb)
	}
}

func TestWorldTransformScale(t *testing.T) {
	s := NewSphere(1)
	s.SetScale(2, 2, 2)
	// Scaling warps the field magnitude but the zero level set must land on
	// the scaled surface.
	if got := s.WorldDistance(r3.Vec{X: 2}); !approxEqual(got, 0, 1e-12) {
		t.Errorf("scaled surface: got %g. want 0", got)
	}
	if got := s.WorldDistance(r3.Vec{X: 1.5}); got >= 0 {
		t.Errorf("point inside scaled sphere: got %g", got)
	}
}

func TestTransformRoundTrip(t *testing.T) {
	s := NewSphere(1)
	s.SetScale(2, 0.5, 3)
	s.SetRotation(30, -45, 60)
	s.SetTranslation(1, 2, -3)
	s.xform.rebuild()
	for _, p := range []r3.Vec{{}, {X: 1}, {X: -0.3, Y: 2, Z: 0.7}} {
		back := s.xform.worldToLocal(s.xform.localToWorld(p))
		if !vecApproxEqual(back, p, 1e-12) {
			t.Errorf("round trip of %v: got %v", p, back)
		}
	}
}

func TestZeroScalePanics(t *testing.T) {
	s := NewSphere(1)
	s.SetScale(1, 0, 1)
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on zero scale")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrShapeConfiguration) {
			t.Fatalf("unexpected panic value: %v", r)
		}
	}()
	s.WorldDistance(r3.Vec{})
}

func approxEqual(got, want, tol float64) bool {
	return math.Abs(got-want) <= tol
}

func vecApproxEqual(a, b r3.Vec, tol float64) bool {
	return approxEqual(a.X, b.X, tol) && approxEqual(a.Y, b.Y, tol) && approxEqual(a.Z, b.Z, tol)
}
