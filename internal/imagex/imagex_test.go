package imagex

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

var (
	red  = color.RGBA{255, 0, 0, 255}
	blue = color.RGBA{0, 0, 255, 255}
)

func twoRows() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, red)
	img.SetRGBA(1, 0, red)
	img.SetRGBA(0, 1, blue)
	img.SetRGBA(1, 1, blue)
	return img
}

func TestFlipVertical(t *testing.T) {
	img := twoRows()
	FlipVertical(img)
	assert.Equal(t, blue, img.RGBAAt(0, 0))
	assert.Equal(t, red, img.RGBAAt(1, 1))

	odd := Checker(3, 1, red, blue)
	FlipVertical(odd)
	// middle row untouched
	assert.Equal(t, blue, odd.RGBAAt(0, 1))
	assert.Equal(t, red, odd.RGBAAt(0, 0))
}

func TestToRGBAResetsOrigin(t *testing.T) {
	src := image.NewRGBA(image.Rect(10, 10, 14, 12))
	src.SetRGBA(10, 10, red)
	out := ToRGBA(src)
	assert.Equal(t, image.Rect(0, 0, 4, 2), out.Bounds())
	assert.Equal(t, red, out.RGBAAt(0, 0))
}

func TestResize(t *testing.T) {
	img := Checker(8, 8, red, red)
	assert.Same(t, img, Resize(img, 8, 8))

	out := Resize(img, 4, 2)
	assert.Equal(t, image.Rect(0, 0, 4, 2), out.Bounds())
	assert.Equal(t, red, out.RGBAAt(2, 1))
}

func TestChecker(t *testing.T) {
	img := Checker(4, 2, red, blue)
	assert.Equal(t, red, img.RGBAAt(0, 0))
	assert.Equal(t, blue, img.RGBAAt(2, 0))
	assert.Equal(t, blue, img.RGBAAt(0, 2))
	assert.Equal(t, red, img.RGBAAt(3, 3))
}

func TestLoadDecodesRegisteredFormats(t *testing.T) {
	dir := t.TempDir()
	src := twoRows()

	pngPath := filepath.Join(dir, "rows.png")
	f, err := os.Create(pngPath)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, src))
	require.NoError(t, f.Close())

	bmpPath := filepath.Join(dir, "rows.bmp")
	f, err = os.Create(bmpPath)
	require.NoError(t, err)
	require.NoError(t, bmp.Encode(f, src))
	require.NoError(t, f.Close())

	for _, path := range []string{pngPath, bmpPath} {
		img, err := Load(path)
		require.NoError(t, err, path)
		assert.Equal(t, red, img.RGBAAt(1, 0), path)
		assert.Equal(t, blue, img.RGBAAt(0, 1), path)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(filepath.Join(dir, "missing.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	junk := filepath.Join(dir, "junk.png")
	require.NoError(t, os.WriteFile(junk, []byte("not an image"), 0o644))
	_, err = Load(junk)
	assert.ErrorContains(t, err, "failed to decode")
}
