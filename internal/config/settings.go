package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// DefaultPath is the settings file every exercise looks for in its working directory.
const DefaultPath = "glabs.toml"

// Settings is the on-disk configuration shared by the exercises.
type Settings struct {
	Window WindowSettings `toml:"window"`
	Camera CameraSettings `toml:"camera"`
	Assets AssetSettings  `toml:"assets"`
	Render RenderConfig   `toml:"render"`
}

type WindowSettings struct {
	Width  int  `toml:"width"`
	Height int  `toml:"height"`
	VSync  bool `toml:"vsync"`
	// FPSLimit only applies with vsync off.
	FPSLimit int  `toml:"fps_limit"`
	Debug    bool `toml:"debug"`
}

type CameraSettings struct {
	FOV       float32 `toml:"fov"`
	Near      float32 `toml:"near"`
	Far       float32 `toml:"far"`
	MoveSpeed float32 `toml:"move_speed"`
	TurnSpeed float32 `toml:"turn_speed"`
}

type AssetSettings struct {
	Dir string `toml:"dir"`
	// HotReload watches the shader directory and recompiles edited programs.
	HotReload bool `toml:"hot_reload"`
}

type RenderConfig struct {
	ClearColor [3]float32 `toml:"clear_color"`
	Wireframe  bool       `toml:"wireframe"`
}

// Default returns the settings used when no file is present.
func Default() *Settings {
	return &Settings{
		Window: WindowSettings{
			Width:  1000,
			Height: 1000,
			VSync:  true,
		},
		Camera: CameraSettings{
			FOV:       45,
			Near:      0.01,
			Far:       100,
			MoveSpeed: 6,
			TurnSpeed: 60,
		},
		Assets: AssetSettings{
			Dir:       "assets",
			HotReload: true,
		},
		Render: RenderConfig{
			ClearColor: [3]float32{0.5, 0.5, 0.5},
		},
	}
}

// Load reads a TOML settings file on top of the defaults.
// A missing file is not an error.
func Load(path string) (*Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read settings file: %w", err)
	}
	if err := toml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("could not parse settings file %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings in %s: %w", path, err)
	}
	return s, nil
}

// Validate rejects values the render loop cannot work with.
func (s *Settings) Validate() error {
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", s.Window.Width, s.Window.Height)
	}
	if s.Camera.FOV <= 0 || s.Camera.FOV >= 180 {
		return fmt.Errorf("camera fov must be in (0, 180), got %v", s.Camera.FOV)
	}
	if s.Camera.Near <= 0 || s.Camera.Far <= s.Camera.Near {
		return fmt.Errorf("camera clip planes must satisfy 0 < near < far, got %v/%v", s.Camera.Near, s.Camera.Far)
	}
	if s.Assets.Dir == "" {
		return errors.New("assets dir must not be empty")
	}
	return nil
}

// Apply pushes the runtime toggles into the shared render settings.
func (s *Settings) Apply() {
	SetWireframeMode(s.Render.Wireframe)
	SetFPSLimit(s.Window.FPSLimit)
}

// AssetPath joins elems under the configured assets directory.
func (s *Settings) AssetPath(elem ...string) string {
	return filepath.Join(append([]string{s.Assets.Dir}, elem...)...)
}

// Save writes the settings as TOML.
func (s *Settings) Save(path string) error {
	data, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("could not encode settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("could not write settings file: %w", err)
	}
	return nil
}
