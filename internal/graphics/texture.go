package graphics

import (
	"fmt"
	"image"
	"image/color"

	"glabs/internal/imagex"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Texture is a GL texture object of a given target
type Texture struct {
	ID     uint32
	Target uint32
	Width  int
	Height int
}

// Bind binds the texture to the given texture unit
func (t *Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(t.Target, t.ID)
}

// Dispose deletes the texture object
func (t *Texture) Dispose() {
	if t.ID != 0 {
		gl.DeleteTextures(1, &t.ID)
		t.ID = 0
	}
}

// LoadTexture loads a 2D texture from a file, flipped so that v=0 is the bottom row,
// with mirrored-repeat wrapping and trilinear filtering.
func LoadTexture(path string) (*Texture, error) {
	img, err := imagex.Load(path)
	if err != nil {
		return nil, err
	}
	imagex.FlipVertical(img)
	return NewTexture2D(img), nil
}

// NewTexture2D uploads img and builds its mipmap chain
func NewTexture2D(img *image.RGBA) *Texture {
	t := &Texture{Target: gl.TEXTURE_2D, Width: img.Rect.Dx(), Height: img.Rect.Dy()}
	gl.GenTextures(1, &t.ID)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.MIRRORED_REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.MIRRORED_REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA,
		int32(t.Width),
		int32(t.Height),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(img.Pix),
	)
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return t
}

// PlaceholderTexture is the magenta/black checkerboard shown when a texture fails to load
func PlaceholderTexture() *Texture {
	return NewTexture2D(imagex.Checker(64, 8,
		color.RGBA{255, 0, 255, 255},
		color.RGBA{0, 0, 0, 255},
	))
}

// Cubemap face order matches GL_TEXTURE_CUBE_MAP_POSITIVE_X + i
const (
	FaceRight = iota // +X
	FaceLeft         // -X
	FaceTop          // +Y
	FaceBottom       // -Y
	FaceFront        // +Z
	FaceBack         // -Z
)

// CubemapFaceNames are the file stems CubemapFaces expands, in face order
var CubemapFaceNames = [6]string{"right", "left", "top", "bottom", "front", "back"}

// LoadCubemapImages decodes six face images. Faces are resampled to the size of the first.
// Cubemap faces are not flipped: the cube map convention already has v pointing down.
func LoadCubemapImages(faces [6]string) ([6]*image.RGBA, error) {
	var imgs [6]*image.RGBA
	for i, path := range faces {
		img, err := imagex.Load(path)
		if err != nil {
			return imgs, fmt.Errorf("cubemap face %s: %w", CubemapFaceNames[i], err)
		}
		if i > 0 {
			img = imagex.Resize(img, imgs[0].Rect.Dx(), imgs[0].Rect.Dy())
		}
		imgs[i] = img
	}
	return imgs, nil
}

// PlaceholderCubemapImages returns the placeholder checker on all six faces
func PlaceholderCubemapImages() [6]*image.RGBA {
	var imgs [6]*image.RGBA
	for i := range imgs {
		imgs[i] = imagex.Checker(64, 8,
			color.RGBA{255, 0, 255, 255},
			color.RGBA{0, 0, 0, 255},
		)
	}
	return imgs
}

// LoadCubemap loads six face files into a cube map texture
func LoadCubemap(faces [6]string) (*Texture, error) {
	imgs, err := LoadCubemapImages(faces)
	if err != nil {
		return nil, err
	}
	return NewCubemap(imgs), nil
}

// PlaceholderCubemap is the cube map shown when a face fails to load
func PlaceholderCubemap() *Texture {
	return NewCubemap(PlaceholderCubemapImages())
}

// NewCubemap uploads six equally sized faces, clamped to edge
func NewCubemap(imgs [6]*image.RGBA) *Texture {
	t := &Texture{Target: gl.TEXTURE_CUBE_MAP, Width: imgs[0].Rect.Dx(), Height: imgs[0].Rect.Dy()}
	gl.GenTextures(1, &t.ID)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, t.ID)

	for i, img := range imgs {
		gl.TexImage2D(
			gl.TEXTURE_CUBE_MAP_POSITIVE_X+uint32(i),
			0,
			gl.RGBA,
			int32(t.Width),
			int32(t.Height),
			0,
			gl.RGBA,
			gl.UNSIGNED_BYTE,
			gl.Ptr(img.Pix),
		)
	}

	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)

	gl.BindTexture(gl.TEXTURE_CUBE_MAP, 0)
	return t
}
