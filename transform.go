package isosurface

import (
	"math"

	"github.com/voxform/isosurface/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// affine composes scale, per-axis rotation and translation into forward and
// inverse 4x4 transforms. Matrices are rebuilt lazily on first use after a
// component changes. Rotation is stored in degrees and applied in X, Y, Z
// order: world = T * Rz * Ry * Rx * S * local.
type affine struct {
	scale       r3.Vec
	rotation    r3.Vec // degrees about each axis
	translation r3.Vec

	forward d3.Transform
	inverse d3.Transform
	dirty   bool
}

func newAffine() affine {
	return affine{scale: d3.Elem(1)}
}

func (a *affine) setScale(v r3.Vec) {
	a.scale = v
	a.dirty = true
}

func (a *affine) setRotation(deg r3.Vec) {
	a.rotation = deg
	a.dirty = true
}

func (a *affine) setTranslation(v r3.Vec) {
	a.translation = v
	a.dirty = true
}

func (a *affine) localToWorld(p r3.Vec) r3.Vec {
	a.rebuild()
	return a.forward.Transform(p)
}

func (a *affine) worldToLocal(p r3.Vec) r3.Vec {
	a.rebuild()
	return a.inverse.Transform(p)
}

func (a *affine) rebuild() {
	if !a.dirty {
		return
	}
	if a.scale.X == 0 || a.scale.Y == 0 || a.scale.Z == 0 {
		panic(ErrShapeConfiguration)
	}
	rx := dtor(a.rotation.X)
	ry := dtor(a.rotation.Y)
	rz := dtor(a.rotation.Z)

	// Mul applies its argument first, so reading outward from the local
	// point: scale, rotate X, Y, Z, then translate.
	a.forward = d3.Translating(a.translation).
		Mul(d3.RotatingZ(rz)).
		Mul(d3.RotatingY(ry)).
		Mul(d3.RotatingX(rx)).
		Mul(d3.Scaling(a.scale))

	// The inverse is composed exactly from the inverted components rather
	// than by matrix inversion, keeping round trips bit-stable.
	invScale := r3.Vec{X: 1 / a.scale.X, Y: 1 / a.scale.Y, Z: 1 / a.scale.Z}
	a.inverse = d3.Scaling(invScale).
		Mul(d3.RotatingX(-rx)).
		Mul(d3.RotatingY(-ry)).
		Mul(d3.RotatingZ(-rz)).
		Mul(d3.Translating(r3.Scale(-1, a.translation)))

	a.dirty = false
}

func dtor(deg float64) float64 {
	return deg * math.Pi / 180
}
