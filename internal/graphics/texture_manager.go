package graphics

import (
	"log"
	"path/filepath"
	"strings"
)

var (
	textureCache = make(map[string]*Texture)
	placeholder  *Texture
)

// GetTexture returns a cached texture for the given path.
// A texture that fails to load is reported and replaced by the shared placeholder,
// so an exercise keeps running with a visibly wrong surface.
func GetTexture(path string) *Texture {
	if tex, ok := textureCache[path]; ok {
		return tex
	}

	tex, err := LoadTexture(path)
	if err != nil {
		log.Printf("graphics: failed to load texture: %v", err)
		if placeholder == nil {
			placeholder = PlaceholderTexture()
		}
		tex = placeholder
	}

	textureCache[path] = tex
	return tex
}

// GetCubemap loads a cube map, reporting a failed face and falling back to the
// placeholder cube map. The caller owns the result.
func GetCubemap(faces [6]string) *Texture {
	tex, err := LoadCubemap(faces)
	if err != nil {
		log.Printf("graphics: failed to load cubemap: %v", err)
		return PlaceholderCubemap()
	}
	return tex
}

// CubemapFaces expands dir into the six face paths, using ext for every face
func CubemapFaces(dir, ext string) [6]string {
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	var out [6]string
	for i, name := range CubemapFaceNames {
		out[i] = filepath.Join(dir, name+ext)
	}
	return out
}

// DisposeTextures deletes every cached texture
func DisposeTextures() {
	for path, tex := range textureCache {
		if tex != placeholder {
			tex.Dispose()
		}
		delete(textureCache, path)
	}
	if placeholder != nil {
		placeholder.Dispose()
		placeholder = nil
	}
}
