package mesh

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/go-gl/mathgl/mgl32"
)

// Write encodes m as OBJ, sharing identical positions, texcoords and normals
func Write(w io.Writer, m *Mesh) error {
	bw := bufio.NewWriter(w)
	if m.Name != "" {
		fmt.Fprintf(bw, "o %s\n", m.Name)
	}

	positions := map[mgl32.Vec3]int{}
	texCoords := map[mgl32.Vec2]int{}
	normals := map[mgl32.Vec3]int{}
	faces := make([][3]int, len(m.Vertices))

	for i, v := range m.Vertices {
		pi, ok := positions[v.Position]
		if !ok {
			pi = len(positions) + 1
			positions[v.Position] = pi
			fmt.Fprintf(bw, "v %s %s %s\n", ff(v.Position[0]), ff(v.Position[1]), ff(v.Position[2]))
		}
		ti, ok := texCoords[v.TexCoord]
		if !ok {
			ti = len(texCoords) + 1
			texCoords[v.TexCoord] = ti
			fmt.Fprintf(bw, "vt %s %s\n", ff(v.TexCoord[0]), ff(v.TexCoord[1]))
		}
		ni, ok := normals[v.Normal]
		if !ok {
			ni = len(normals) + 1
			normals[v.Normal] = ni
			fmt.Fprintf(bw, "vn %s %s %s\n", ff(v.Normal[0]), ff(v.Normal[1]), ff(v.Normal[2]))
		}
		faces[i] = [3]int{pi, ti, ni}
	}

	for i := 0; i+2 < len(faces); i += 3 {
		a, b, c := faces[i], faces[i+1], faces[i+2]
		fmt.Fprintf(bw, "f %d/%d/%d %d/%d/%d %d/%d/%d\n",
			a[0], a[1], a[2], b[0], b[1], b[2], c[0], c[1], c[2])
	}
	return bw.Flush()
}

func ff(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}
