package graphics

import (
	"glabs/internal/mesh"
	"glabs/internal/transform"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Vertex input names every lit program declares
const (
	AttribPosition = "position"
	AttribTexCoord = "tex_coord"
	AttribNormal   = "normal"
)

// Object is a mesh uploaded to the GPU together with its model transform.
// The vertex buffer is written once at creation and never modified.
type Object struct {
	transform.Transform

	Name        string
	vao         uint32
	vbo         uint32
	vertexCount int32
}

// NewObject uploads m and wires its attributes to the inputs of shader by name.
// Inputs the program does not use are skipped.
func NewObject(m *mesh.Mesh, shader *Shader) *Object {
	o := &Object{
		Transform:   transform.Identity(),
		Name:        m.Name,
		vertexCount: int32(m.VertexCount()),
	}
	data := m.Floats()

	gl.GenVertexArrays(1, &o.vao)
	gl.BindVertexArray(o.vao)

	gl.GenBuffers(1, &o.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	if len(data) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	}

	o.attrib(shader, AttribPosition, 3, mesh.PositionOffset)
	o.attrib(shader, AttribTexCoord, 2, mesh.TexCoordOffset)
	o.attrib(shader, AttribNormal, 3, mesh.NormalOffset)

	gl.BindVertexArray(0)
	return o
}

// LoadObjectOr reads an OBJ file and uploads it, generating the mesh when the file is missing
func LoadObjectOr(path string, shader *Shader, generate func() *mesh.Mesh) (*Object, error) {
	m, err := mesh.LoadOr(path, generate)
	if err != nil {
		return nil, err
	}
	return NewObject(m, shader), nil
}

// LoadObject reads an OBJ file and uploads it
func LoadObject(path string, shader *Shader) (*Object, error) {
	m, err := mesh.Load(path)
	if err != nil {
		return nil, err
	}
	return NewObject(m, shader), nil
}

func (o *Object) attrib(shader *Shader, name string, size int32, offset int) {
	loc := shader.AttribLocation(name)
	if loc < 0 {
		return
	}
	gl.EnableVertexAttribArray(uint32(loc))
	gl.VertexAttribPointerWithOffset(uint32(loc), size, gl.FLOAT, false, mesh.Stride*4, uintptr(offset*4))
}

// Draw issues the draw call; the caller binds the program and uniforms
func (o *Object) Draw() {
	gl.BindVertexArray(o.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, o.vertexCount)
	gl.BindVertexArray(0)
}

// DrawWith uploads M and itM to shader, then draws
func (o *Object) DrawWith(shader *Shader) {
	shader.SetMatrix4("M", o.M)
	shader.SetMatrix4("itM", o.NormalMatrix())
	o.Draw()
}

// Dispose releases the vertex array and buffer
func (o *Object) Dispose() {
	if o.vao != 0 {
		gl.DeleteVertexArrays(1, &o.vao)
		o.vao = 0
	}
	if o.vbo != 0 {
		gl.DeleteBuffers(1, &o.vbo)
		o.vbo = 0
	}
}
