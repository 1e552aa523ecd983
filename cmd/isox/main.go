// Command isox voxelizes a signed distance field scene and writes the
// extracted surface to STL or glTF.
//
// Usage:
//
//	isox -scene shape.yaml -o out.stl
//	isox -shape sphere -radius 1 -algo mc -voxel 0.05 -o out.glb
package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"

	"github.com/voxform/isosurface"
	"github.com/voxform/isosurface/mesh"
	"github.com/voxform/isosurface/pipeline"
	"github.com/voxform/isosurface/render"
	"github.com/voxform/isosurface/scene"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("isox: ")
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	var (
		scenePath = flag.String("scene", "", "scene YAML file (overrides shape flags)")
		shapeName = flag.String("shape", "sphere", "shape when no scene file: sphere, box, torus or cone")
		radius    = flag.Float64("radius", isosurface.DefaultRadius, "sphere or cone base radius")
		height    = flag.Float64("height", isosurface.DefaultConeHeight, "cone height")
		algoName  = flag.String("algo", "blocky", "meshing algorithm: blocky, mc or nets")
		voxelSize = flag.Float64("voxel", isosurface.DefaultVoxelSize, "voxel edge length")
		isoLevel  = flag.Float64("iso", pipeline.DefaultIsoLevel, "isolevel to extract")
		smooth    = flag.Bool("smooth", false, "flag faces for smooth shading")
		outPath   = flag.String("o", "out.stl", "output file, .stl, .gltf or .glb")
		verbose   = flag.Bool("v", false, "print timing statistics")
	)
	flag.Parse()

	p, err := buildPipeline(*scenePath, *shapeName, *radius, *height, *algoName, *voxelSize, *isoLevel, *smooth)
	if err != nil {
		return err
	}
	stats, err := p.Update()
	if err != nil {
		return err
	}
	if *verbose {
		log.Println(stats)
	}
	return writeMesh(*outPath, p.Mesh)
}

func buildPipeline(scenePath, shapeName string, radius, height float64, algoName string, voxelSize, isoLevel float64, smooth bool) (*pipeline.Pipeline, error) {
	if scenePath != "" {
		sc, err := scene.Load(scenePath)
		if err != nil {
			return nil, err
		}
		return sc.Pipeline()
	}

	var shape *isosurface.Shape
	switch shapeName {
	case "sphere":
		shape = isosurface.NewSphere(radius)
	case "box":
		shape = isosurface.NewBox(isosurface.DefaultSide, isosurface.DefaultSide, isosurface.DefaultSide)
	case "torus":
		shape = isosurface.NewTorus(isosurface.DefaultMajorRadius, isosurface.DefaultMinorRadius)
	case "cone":
		shape = isosurface.NewCone(radius, height)
	default:
		return nil, fmt.Errorf("unknown shape %q", shapeName)
	}
	algo, err := mesh.ParseAlgorithm(algoName)
	if err != nil {
		return nil, err
	}
	p := pipeline.New(shape)
	p.Grid.SetVoxelSize(voxelSize)
	p.Algorithm = algo
	p.IsoLevel = isoLevel
	p.Smooth = smooth
	return p, nil
}

func writeMesh(path string, m *mesh.Mesh) error {
	switch ext := filepath.Ext(path); ext {
	case ".stl":
		return render.CreateSTL(path, render.NewMeshRenderer(m))
	case ".gltf", ".glb":
		name := filepath.Base(path)
		return render.CreateGLTF(path, m, name[:len(name)-len(ext)])
	default:
		return fmt.Errorf("unsupported output format %q", ext)
	}
}
