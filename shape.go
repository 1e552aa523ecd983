// Package isosurface discretizes implicit 3D shapes described by signed
// distance fields into a dense scalar voxel grid and hands the grid to the
// mesh package for surface extraction.
package isosurface

import (
	"errors"
	"math"

	"github.com/voxform/isosurface/internal/d3"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// ErrShapeConfiguration reports a shape transform that cannot be inverted
// because one of its scale components is exactly zero. The core panics with
// this error when it happens; callers that must not crash should clamp scale
// inputs to a small positive magnitude before they reach a Shape.
var ErrShapeConfiguration = errors.New("isosurface: zero scale component makes shape transform non-invertible")

// ShapeKind identifies one of the closed set of signed distance field
// primitives a Shape can represent.
type ShapeKind uint8

const (
	// Sphere is parameterised by a radius.
	Sphere ShapeKind = iota
	// Box is parameterised by width, height and depth side lengths.
	Box
	// Torus lies in the XZ plane and is parameterised by the major
	// (ring) and minor (tube) radii.
	Torus
	// Cone points up the +Y axis and is parameterised by base radius
	// and height.
	Cone

	numShapeKinds
)

// String returns the display name of the shape kind.
func (k ShapeKind) String() string {
	switch k {
	case Sphere:
		return "Sphere"
	case Box:
		return "Box"
	case Torus:
		return "Torus"
	case Cone:
		return "Cone"
	}
	return "unknown"
}

// shapeOps is the per-kind dispatch table entry. Both functions work in the
// shape's local (untransformed) space.
type shapeOps struct {
	distance func(s *Shape, p r3.Vec) float64
	bounds   func(s *Shape) d3.Box
}

var shapeTable = [numShapeKinds]shapeOps{
	Sphere: {distance: sphereDistance, bounds: sphereBounds},
	Box:    {distance: boxDistance, bounds: boxBounds},
	Torus:  {distance: torusDistance, bounds: torusBounds},
	Cone:   {distance: coneDistance, bounds: coneBounds},
}

// Shape is a signed distance field primitive with an affine transform.
// The zero value is not useful; use one of the NewSphere, NewBox, NewTorus
// or NewCone constructors.
type Shape struct {
	kind ShapeKind

	// Kind-specific parameters. Fields not used by the kind are ignored.
	radius float64 // Sphere radius and Cone base radius.
	width  float64 // Box side along x.
	height float64 // Box side along y and Cone height.
	depth  float64 // Box side along z.
	major  float64 // Torus ring radius.
	minor  float64 // Torus tube radius.

	xform affine
}

// Default shape parameters.
const (
	DefaultRadius      = 1.0
	DefaultSide        = 2.0
	DefaultMajorRadius = 0.7
	DefaultMinorRadius = 0.3
	DefaultConeHeight  = 2.0
)

// NewSphere returns a sphere of the argument radius centered at the origin
// with an identity transform.
func NewSphere(radius float64) *Shape {
	return &Shape{kind: Sphere, radius: radius, xform: newAffine()}
}

// NewBox returns a box of the argument side lengths centered at the origin
// with an identity transform.
func NewBox(width, height, depth float64) *Shape {
	return &Shape{kind: Box, width: width, height: height, depth: depth, xform: newAffine()}
}

// NewTorus returns a torus in the XZ plane with the argument ring and tube
// radii, centered at the origin with an identity transform.
func NewTorus(major, minor float64) *Shape {
	return &Shape{kind: Torus, major: major, minor: minor, xform: newAffine()}
}

// NewCone returns a capped cone with the argument base radius and height,
// centered on the Y axis with an identity transform. The base sits at
// y=-height/2 and the apex at y=+height/2.
func NewCone(radius, height float64) *Shape {
	return &Shape{kind: Cone, radius: radius, height: height, xform: newAffine()}
}

// Kind returns the shape's variant tag.
func (s *Shape) Kind() ShapeKind { return s.kind }

// String returns the display name of the shape.
func (s *Shape) String() string { return s.kind.String() }

// SetRadius sets the radius of a Sphere or the base radius of a Cone.
func (s *Shape) SetRadius(radius float64) { s.radius = radius }

// SetDimensions sets the side lengths of a Box.
func (s *Shape) SetDimensions(width, height, depth float64) {
	s.width = width
	s.height = height
	s.depth = depth
}

// SetRadii sets the major (ring) and minor (tube) radii of a Torus.
func (s *Shape) SetRadii(major, minor float64) {
	s.major = major
	s.minor = minor
}

// SetHeight sets the height of a Cone.
func (s *Shape) SetHeight(height float64) { s.height = height }

// SetScale sets the shape's scale components. A zero component is accepted
// here but makes any following distance or bounds query panic with
// ErrShapeConfiguration when the inverse transform is rebuilt.
func (s *Shape) SetScale(x, y, z float64) {
	s.xform.setScale(r3.Vec{X: x, Y: y, Z: z})
}

// SetRotation sets the shape's rotation about the X, Y and Z axes in
// degrees. Rotations apply in X, Y, Z order after scaling.
func (s *Shape) SetRotation(xDeg, yDeg, zDeg float64) {
	s.xform.setRotation(r3.Vec{X: xDeg, Y: yDeg, Z: zDeg})
}

// SetTranslation sets the shape's translation.
func (s *Shape) SetTranslation(x, y, z float64) {
	s.xform.setTranslation(r3.Vec{X: x, Y: y, Z: z})
}

// Scale returns the shape's scale components.
func (s *Shape) Scale() r3.Vec { return s.xform.scale }

// Rotation returns the shape's rotation about the X, Y and Z axes in degrees.
func (s *Shape) Rotation() r3.Vec { return s.xform.rotation }

// Translation returns the shape's translation.
func (s *Shape) Translation() r3.Vec { return s.xform.translation }

// LocalDistance returns the signed distance from a local-space point to the
// shape's surface. The distance is negative inside the shape.
func (s *Shape) LocalDistance(p r3.Vec) float64 {
	return shapeTable[s.kind].distance(s, p)
}

// LocalBounds returns the axis-aligned box tightly enclosing the shape in
// local space.
func (s *Shape) LocalBounds() d3.Box {
	return shapeTable[s.kind].bounds(s)
}

// WorldDistance returns the signed distance from a world-space point to the
// shape's surface, accounting for the shape's transform.
func (s *Shape) WorldDistance(p r3.Vec) float64 {
	return s.LocalDistance(s.xform.worldToLocal(p))
}

// WorldBounds returns the axis-aligned world-space box enclosing the shape:
// the componentwise min/max over the 8 transformed corners of LocalBounds.
func (s *Shape) WorldBounds() d3.Box {
	corners := s.LocalBounds().Vertices()
	bb := d3.Box{Min: s.xform.localToWorld(corners[0]), Max: s.xform.localToWorld(corners[0])}
	for _, c := range corners[1:] {
		bb = bb.Include(s.xform.localToWorld(c))
	}
	return bb
}

// Exact signed distance formulas, local space.
// See https://iquilezles.org/articles/distfunctions/ for derivations.

func sphereDistance(s *Shape, p r3.Vec) float64 {
	return r3.Norm(p) - s.radius
}

func sphereBounds(s *Shape) d3.Box {
	return d3.Box{Min: d3.Elem(-s.radius), Max: d3.Elem(s.radius)}
}

func boxDistance(s *Shape, p r3.Vec) float64 {
	half := r3.Vec{X: 0.5 * s.width, Y: 0.5 * s.height, Z: 0.5 * s.depth}
	q := r3.Sub(d3.AbsElem(p), half)
	outside := d3.MaxElem(q, r3.Vec{})
	return r3.Norm(outside) + math.Min(d3.Max(q), 0)
}

func boxBounds(s *Shape) d3.Box {
	half := r3.Vec{X: 0.5 * s.width, Y: 0.5 * s.height, Z: 0.5 * s.depth}
	return d3.Box{Min: r3.Scale(-1, half), Max: half}
}

func torusDistance(s *Shape, p r3.Vec) float64 {
	q := r2.Vec{X: math.Hypot(p.X, p.Z) - s.major, Y: p.Y}
	return r2.Norm(q) - s.minor
}

func torusBounds(s *Shape) d3.Box {
	ring := s.major + s.minor
	return d3.Box{
		Min: r3.Vec{X: -ring, Y: -s.minor, Z: -ring},
		Max: r3.Vec{X: ring, Y: s.minor, Z: ring},
	}
}

func coneDistance(s *Shape, p r3.Vec) float64 {
	// Project onto the (radial, height) plane with the apex at the origin.
	q := r2.Vec{X: s.radius, Y: -s.height}
	w := r2.Vec{X: math.Hypot(p.X, p.Z), Y: p.Y - 0.5*s.height}

	a := r2.Sub(w, r2.Scale(clamp(r2.Dot(w, q)/r2.Dot(q, q), 0, 1), q))
	b := r2.Sub(w, r2.Vec{X: q.X * clamp(w.X/q.X, 0, 1), Y: q.Y})

	k := sign(q.Y)
	d := math.Min(r2.Dot(a, a), r2.Dot(b, b))
	sgn := math.Max(k*(w.X*q.Y-w.Y*q.X), k*(w.Y-q.Y))
	return math.Sqrt(d) * sign(sgn)
}

func coneBounds(s *Shape) d3.Box {
	halfHeight := 0.5 * s.height
	return d3.Box{
		Min: r3.Vec{X: -s.radius, Y: -halfHeight, Z: -s.radius},
		Max: r3.Vec{X: s.radius, Y: halfHeight, Z: s.radius},
	}
}

// clamp limits x to [a,b], assuming a <= b.
func clamp(x, a, b float64) float64 {
	return math.Min(b, math.Max(x, a))
}

func sign(x float64) float64 {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}
