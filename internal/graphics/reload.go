package graphics

import (
	"log"
	"path/filepath"
)

// ReloadChanged rebuilds every shader whose source file appears in changed.
// Failures are logged and the previous program stays in use.
func ReloadChanged(changed map[string]struct{}, shaders ...*Shader) int {
	reloaded := 0
	for _, s := range shaders {
		if s == nil {
			continue
		}
		vert, frag := s.Sources()
		if vert == "" {
			continue
		}
		_, v := changed[filepath.Clean(vert)]
		_, f := changed[filepath.Clean(frag)]
		if !v && !f {
			continue
		}
		if err := s.Reload(); err != nil {
			log.Printf("graphics: reload failed, keeping previous program: %v", err)
			continue
		}
		log.Printf("graphics: reloaded %s", filepath.Base(vert))
		reloaded++
	}
	return reloaded
}
