package graphics

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const testDir = "testdata-textures"

func TestLoadCubemapImagesResamplesFaces(t *testing.T) {
	faces := CubemapFaces(filepath.Join(testDir, "sky"), "png")
	imgs, err := LoadCubemapImages(faces)
	if err != nil {
		t.Fatalf("Failed to load faces: %v", err)
	}
	for i, img := range imgs {
		if img.Rect.Dx() != 8 || img.Rect.Dy() != 8 {
			t.Errorf("Expected face %s to be 8x8, got %dx%d", CubemapFaceNames[i], img.Rect.Dx(), img.Rect.Dy())
		}
	}
}

func TestLoadCubemapImagesMissingFace(t *testing.T) {
	faces := CubemapFaces(filepath.Join(testDir, "missing"), "jpg")
	_, err := LoadCubemapImages(faces)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("Expected not-exist error, got %v", err)
	}
}

func TestPlaceholderCubemapImages(t *testing.T) {
	imgs := PlaceholderCubemapImages()
	for i, img := range imgs {
		if img == nil {
			t.Fatalf("Expected placeholder face %d", i)
		}
		if img.Rect != imgs[0].Rect {
			t.Errorf("Expected equal face sizes, face %d is %v", i, img.Rect)
		}
	}
}

func TestCubemapFacesOrder(t *testing.T) {
	faces := CubemapFaces("sky", "jpg")
	if faces[FaceRight] != filepath.Join("sky", "right.jpg") {
		t.Errorf("Expected +X face first, got %s", faces[FaceRight])
	}
	if faces[FaceBack] != filepath.Join("sky", "back.jpg") {
		t.Errorf("Expected -Z face last, got %s", faces[FaceBack])
	}
}

func TestMain(m *testing.M) {
	dir := filepath.Join(testDir, "sky")
	os.MkdirAll(dir, 0755)
	for i, name := range CubemapFaceNames {
		// Later faces deliberately differ in size from the first
		size := 8 + i*2
		writeTestPNG(filepath.Join(dir, name+".png"), size)
	}

	exitCode := m.Run()
	os.RemoveAll(testDir)
	os.Exit(exitCode)
}

func writeTestPNG(path string, size int) {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	f, err := os.Create(path)
	if err != nil {
		panic(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		panic(err)
	}
}
