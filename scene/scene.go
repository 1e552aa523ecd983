// Package scene loads pipeline definitions from YAML files. A scene names
// one shape with its parameters and transform plus the sampling and meshing
// settings to apply to it.
package scene

import (
	"bytes"
	"fmt"
	"os"

	"github.com/voxform/isosurface"
	"github.com/voxform/isosurface/mesh"
	"github.com/voxform/isosurface/pipeline"
	"gopkg.in/yaml.v3"
)

// Vec3 is a YAML triple. Omitted components stay zero.
type Vec3 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// ShapeDef describes a shape and its transform. Parameter fields not used
// by the kind are ignored. Omitted parameters fall back to the package
// defaults for the kind.
type ShapeDef struct {
	Kind   string   `yaml:"kind"`
	Radius *float64 `yaml:"radius,omitempty"`
	Width  *float64 `yaml:"width,omitempty"`
	Height *float64 `yaml:"height,omitempty"`
	Depth  *float64 `yaml:"depth,omitempty"`
	Major  *float64 `yaml:"major,omitempty"`
	Minor  *float64 `yaml:"minor,omitempty"`

	Scale       *Vec3 `yaml:"scale,omitempty"`
	Rotation    *Vec3 `yaml:"rotation,omitempty"` // degrees
	Translation *Vec3 `yaml:"translation,omitempty"`
}

// Scene is the root document of a scene file.
type Scene struct {
	Shape     ShapeDef `yaml:"shape"`
	VoxelSize float64  `yaml:"voxel_size,omitempty"`
	IsoLevel  float64  `yaml:"iso_level,omitempty"`
	Algorithm string   `yaml:"algorithm,omitempty"`
	Smooth    bool     `yaml:"smooth,omitempty"`
}

// Load reads and parses a scene file.
func Load(path string) (*Scene, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(b)
}

// Parse parses scene YAML. Unknown fields are rejected so typos fail loudly.
func Parse(b []byte) (*Scene, error) {
	var sc Scene
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil {
		return nil, fmt.Errorf("scene: parse: %w", err)
	}
	if sc.Shape.Kind == "" {
		return nil, fmt.Errorf("scene: missing shape kind")
	}
	return &sc, nil
}

// Pipeline builds a configured pipeline from the scene.
func (sc *Scene) Pipeline() (*pipeline.Pipeline, error) {
	shape, err := sc.Shape.Build()
	if err != nil {
		return nil, err
	}
	p := pipeline.New(shape)
	if sc.VoxelSize > 0 {
		p.Grid.SetVoxelSize(sc.VoxelSize)
	}
	p.IsoLevel = sc.IsoLevel
	p.Smooth = sc.Smooth
	if sc.Algorithm != "" {
		a, err := mesh.ParseAlgorithm(sc.Algorithm)
		if err != nil {
			return nil, err
		}
		p.Algorithm = a
	}
	return p, nil
}

// Build constructs the shape the definition describes.
func (d *ShapeDef) Build() (*isosurface.Shape, error) {
	var s *isosurface.Shape
	switch d.Kind {
	case "sphere":
		s = isosurface.NewSphere(orDefault(d.Radius, isosurface.DefaultRadius))
	case "box":
		s = isosurface.NewBox(
			orDefault(d.Width, isosurface.DefaultSide),
			orDefault(d.Height, isosurface.DefaultSide),
			orDefault(d.Depth, isosurface.DefaultSide))
	case "torus":
		s = isosurface.NewTorus(
			orDefault(d.Major, isosurface.DefaultMajorRadius),
			orDefault(d.Minor, isosurface.DefaultMinorRadius))
	case "cone":
		s = isosurface.NewCone(
			orDefault(d.Radius, isosurface.DefaultRadius),
			orDefault(d.Height, isosurface.DefaultConeHeight))
	default:
		return nil, fmt.Errorf("scene: unknown shape kind %q", d.Kind)
	}
	if d.Scale != nil {
		s.SetScale(d.Scale.X, d.Scale.Y, d.Scale.Z)
	}
	if d.Rotation != nil {
		s.SetRotation(d.Rotation.X, d.Rotation.Y, d.Rotation.Z)
	}
	if d.Translation != nil {
		s.SetTranslation(d.Translation.X, d.Translation.Y, d.Translation.Z)
	}
	return s, nil
}

func orDefault(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}
