package mesh

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// LoadOr reads path, or builds the mesh with generate when the file does not exist.
// Parse errors are returned as is.
func LoadOr(path string, generate func() *Mesh) (*Mesh, error) {
	m, err := Load(path)
	if err == nil || generate == nil || !errors.Is(err, fs.ErrNotExist) {
		return m, err
	}
	return generate(), nil
}

// Load reads a Wavefront OBJ file
func Load(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open mesh file: %w", err)
	}
	defer f.Close()

	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("could not parse %s: %w", path, err)
	}
	if m.Name == "" {
		m.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return m, nil
}

type objIndex struct {
	v, vt, vn int // 0-based, -1 when absent
}

type objParser struct {
	positions []mgl32.Vec3
	texCoords []mgl32.Vec2
	normals   []mgl32.Vec3
	mesh      *Mesh
}

// Parse reads OBJ geometry: v, vt, vn and f records.
// Polygons are fan-triangulated; other records are ignored.
func Parse(r io.Reader) (*Mesh, error) {
	p := &objParser{mesh: &Mesh{}}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		if err := p.record(fields); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return p.mesh, nil
}

func (p *objParser) record(fields []string) error {
	switch fields[0] {
	case "v":
		v, err := parseFloats(fields[1:], 3)
		if err != nil {
			return fmt.Errorf("vertex: %w", err)
		}
		p.positions = append(p.positions, mgl32.Vec3{v[0], v[1], v[2]})
	case "vt":
		v, err := parseFloats(fields[1:], 2)
		if err != nil {
			return fmt.Errorf("texcoord: %w", err)
		}
		p.texCoords = append(p.texCoords, mgl32.Vec2{v[0], v[1]})
	case "vn":
		v, err := parseFloats(fields[1:], 3)
		if err != nil {
			return fmt.Errorf("normal: %w", err)
		}
		p.normals = append(p.normals, mgl32.Vec3{v[0], v[1], v[2]})
	case "f":
		return p.face(fields[1:])
	case "o":
		if len(fields) > 1 && p.mesh.Name == "" {
			p.mesh.Name = fields[1]
		}
	}
	return nil
}

func (p *objParser) face(refs []string) error {
	if len(refs) < 3 {
		return fmt.Errorf("face needs at least 3 vertices, got %d", len(refs))
	}
	idx := make([]objIndex, len(refs))
	for i, ref := range refs {
		var err error
		idx[i], err = p.resolve(ref)
		if err != nil {
			return err
		}
	}
	for i := 1; i+1 < len(idx); i++ {
		p.triangle(idx[0], idx[i], idx[i+1])
	}
	return nil
}

func (p *objParser) triangle(a, b, c objIndex) {
	pa, pb, pc := p.positions[a.v], p.positions[b.v], p.positions[c.v]
	var fn mgl32.Vec3
	needFaceNormal := a.vn < 0 || b.vn < 0 || c.vn < 0
	if needFaceNormal {
		fn = faceNormal(pa, pb, pc)
	}
	for _, ix := range [3]objIndex{a, b, c} {
		v := Vertex{Position: p.positions[ix.v], Normal: fn}
		if ix.vt >= 0 {
			v.TexCoord = p.texCoords[ix.vt]
		}
		if ix.vn >= 0 {
			v.Normal = p.normals[ix.vn]
		}
		p.mesh.Vertices = append(p.mesh.Vertices, v)
	}
}

// resolve turns "v", "v/vt", "v//vn" or "v/vt/vn" into 0-based indices
func (p *objParser) resolve(ref string) (objIndex, error) {
	parts := strings.Split(ref, "/")
	if len(parts) > 3 {
		return objIndex{}, fmt.Errorf("malformed face vertex %q", ref)
	}
	out := objIndex{v: -1, vt: -1, vn: -1}
	var err error
	if out.v, err = index(parts[0], len(p.positions)); err != nil {
		return objIndex{}, fmt.Errorf("face vertex %q: position %w", ref, err)
	}
	if len(parts) > 1 && parts[1] != "" {
		if out.vt, err = index(parts[1], len(p.texCoords)); err != nil {
			return objIndex{}, fmt.Errorf("face vertex %q: texcoord %w", ref, err)
		}
	}
	if len(parts) > 2 && parts[2] != "" {
		if out.vn, err = index(parts[2], len(p.normals)); err != nil {
			return objIndex{}, fmt.Errorf("face vertex %q: normal %w", ref, err)
		}
	}
	return out, nil
}

// index converts a 1-based or negative (relative) OBJ index
func index(s string, n int) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("index %q is not an integer", s)
	}
	switch {
	case i > 0 && i <= n:
		return i - 1, nil
	case i < 0 && -i <= n:
		return n + i, nil
	}
	return 0, fmt.Errorf("index %d out of range (have %d)", i, n)
}

func parseFloats(fields []string, n int) ([]float32, error) {
	if len(fields) < n {
		return nil, fmt.Errorf("expected %d components, got %d", n, len(fields))
	}
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return nil, fmt.Errorf("component %d: %w", i, err)
		}
		out[i] = float32(f)
	}
	return out, nil
}
