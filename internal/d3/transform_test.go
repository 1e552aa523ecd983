package d3

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestTransformZeroValueIsIdentity(t *testing.T) {
	var tr Transform
	p := r3.Vec{X: 1, Y: -2, Z: 3}
	if got := tr.Transform(p); got != p {
		t.Errorf("zero value transform moved %v to %v", p, got)
	}
}

func TestTransformConstructors(t *testing.T) {
	const tol = 1e-12
	p := r3.Vec{X: 1, Y: 2, Z: 3}
	for _, test := range []struct {
		name string
		tr   Transform
		want r3.Vec
	}{
		{"translate", Translating(r3.Vec{X: 10, Y: 20, Z: 30}), r3.Vec{X: 11, Y: 22, Z: 33}},
		{"scale", Scaling(r3.Vec{X: 2, Y: 3, Z: 4}), r3.Vec{X: 2, Y: 6, Z: 12}},
		{"rotx", RotatingX(math.Pi / 2), r3.Vec{X: 1, Y: -3, Z: 2}},
		{"roty", RotatingY(math.Pi / 2), r3.Vec{X: 3, Y: 2, Z: -1}},
		{"rotz", RotatingZ(math.Pi / 2), r3.Vec{X: -2, Y: 1, Z: 3}},
	} {
		if got := test.tr.Transform(p); !EqualWithin(got, test.want, tol) {
			t.Errorf("%s: got %v. want %v", test.name, got, test.want)
		}
	}
}

func TestTransformMulOrder(t *testing.T) {
	const tol = 1e-12
	// Mul applies its argument first: translate after scaling.
	tr := Translating(r3.Vec{X: 1}).Mul(Scaling(Elem(2)))
	got := tr.Transform(r3.Vec{X: 1})
	if want := (r3.Vec{X: 3}); !EqualWithin(got, want, tol) {
		t.Errorf("got %v. want %v", got, want)
	}
	// Reversed composition scales the translation too.
	tr = Scaling(Elem(2)).Mul(Translating(r3.Vec{X: 1}))
	got = tr.Transform(r3.Vec{X: 1})
	if want := (r3.Vec{X: 4}); !EqualWithin(got, want, tol) {
		t.Errorf("reversed: got %v. want %v", got, want)
	}
}

func TestBoxContainsBox(t *testing.T) {
	outer := Box{Min: r3.Vec{X: -1, Y: -1, Z: -1}, Max: r3.Vec{X: 1, Y: 1, Z: 1}}
	inner := Box{Min: r3.Vec{X: -0.5, Y: -0.5, Z: -0.5}, Max: r3.Vec{X: 0.5, Y: 0.5, Z: 0.5}}
	if !outer.ContainsBox(inner) {
		t.Error("outer must contain inner")
	}
	if inner.ContainsBox(outer) {
		t.Error("inner must not contain outer")
	}
	if !outer.ContainsBox(outer) {
		t.Error("a box contains itself")
	}
}
