package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"glabs/internal/config"
	"glabs/internal/mesh"

	"github.com/xlab/closer"
)

func main() {
	settings, err := config.Load(config.DefaultPath)
	if err != nil {
		closer.Fatalln(err)
	}

	dir := settings.AssetPath("objects")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		closer.Fatalln(err)
	}

	outputs := []struct {
		file string
		mesh *mesh.Mesh
	}{
		{"sphere_smooth.obj", mesh.SmoothSphere()},
		{"sphere_coarse.obj", mesh.CoarseSphere()},
		{"cube.obj", mesh.Cube()},
	}
	for _, out := range outputs {
		path := filepath.Join(dir, out.file)
		if err := writeMesh(path, out.mesh); err != nil {
			closer.Fatalln(err)
		}
		log.Printf("objgen: wrote %s (%d triangles)", path, out.mesh.TriangleCount())
	}
	closer.Close()
}

func writeMesh(path string, m *mesh.Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %s: %w", path, err)
	}
	if err := mesh.Write(f, m); err != nil {
		f.Close()
		return fmt.Errorf("could not write %s: %w", path, err)
	}
	return f.Close()
}
