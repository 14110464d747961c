package appconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"text2obj/internal/shape"
)

// DefaultPath is the config file, relative to the process working directory.
const DefaultPath = "config/text2obj.json"

// Config holds everything about the demo that is not decoded from text: window, scene dressing,
// the decorative car and HUD toggles. It is persisted with cmd save.
type Config struct {
	Window      Window `json:"window"`
	GridVisible bool   `json:"grid_visible"`
	CarVisible  bool   `json:"car_visible"`
	ShowFPS     bool   `json:"show_fps"`
	Camera      Camera `json:"camera"`
	Ambient     Light  `json:"ambient"`
	Directional Light  `json:"directional"`
	Car         Car    `json:"car"`

	// Font is a font family searched under assets/fonts; empty uses raylib's default font.
	Font    string `json:"font,omitempty"`
	Caption string `json:"caption,omitempty"`
}

// Window is the initial window setup.
type Window struct {
	Title      string `json:"title"`
	Width      int32  `json:"width"`
	Height     int32  `json:"height"`
	Fullscreen bool   `json:"fullscreen"`
	MSAA       bool   `json:"msaa"`
	TargetFPS  int32  `json:"target_fps"`
}

// Camera is the orbit camera's starting pose.
type Camera struct {
	Position [3]float32 `json:"position"`
	Target   [3]float32 `json:"target"`
	Fovy     float32    `json:"fovy"`
}

// Light is an ambient or directional light. Position is ignored for ambient light;
// a directional light shines from Position toward the origin.
type Light struct {
	Color     shape.Color `json:"color"`
	Intensity float32     `json:"intensity"`
	Position  [3]float32  `json:"position,omitempty"`
}

// Car places the decorative model loaded once at startup.
type Car struct {
	Path      string             `json:"path"`
	Scale     float32            `json:"scale"`
	Position  [3]float32         `json:"position"`
	RotationY float32            `json:"rotation_y"` // radians
	Materials []MaterialOverride `json:"materials,omitempty"`
}

// MaterialOverride recolors one material of the car model, addressed by its index in the file.
type MaterialOverride struct {
	Index int         `json:"index"`
	Color shape.Color `json:"color"`
}

// ValidOverrides returns the overrides whose index addresses one of materialCount materials,
// in order, and an error naming every override that does not.
func (c Car) ValidOverrides(materialCount int) ([]MaterialOverride, error) {
	var valid []MaterialOverride
	var errs []error
	for _, o := range c.Materials {
		if o.Index < 0 || o.Index >= materialCount {
			errs = append(errs, fmt.Errorf("car material %d out of range (model has %d)", o.Index, materialCount))
			continue
		}
		valid = append(valid, o)
	}
	return valid, errors.Join(errs...)
}

// Default returns the stock scene: camera at (-8,2,-3) with a 30° field of view, a white ambient
// light and a brighter directional light from (15,10,10), and the car scaled 1.6 and turned π/5.
func Default() Config {
	return Config{
		Window: Window{
			Title:     "text2obj",
			Width:     1280,
			Height:    720,
			MSAA:      true,
			TargetFPS: 60,
		},
		GridVisible: false,
		CarVisible:  true,
		ShowFPS:     false,
		Camera: Camera{
			Position: [3]float32{-8, 2, -3},
			Target:   [3]float32{0, 0, 0},
			Fovy:     30,
		},
		Ambient:     Light{Color: shape.White, Intensity: 1},
		Directional: Light{Color: shape.White, Intensity: 1.4, Position: [3]float32{15, 10, 10}},
		Car: Car{
			Path:      "assets/models/911-transformed.glb",
			Scale:     1.6,
			Position:  [3]float32{-0.5, -0.18, 0},
			RotationY: float32(math.Pi / 5),
		},
		Caption: "Type a shape, e.g. box 2 3 4 #035efc, sphere 1 or torus 1 0.3, then press Enter.",
	}
}

// Load reads the config at path on top of Default, so fields missing from the file keep their
// default. A missing file returns Default and no error; an unreadable or invalid file returns
// Default and the error so the caller can report it.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	cfg.normalize()
	return cfg, nil
}

// normalize replaces values that would break the window or camera with their defaults.
func (c *Config) normalize() {
	def := Default()
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		c.Window.Width, c.Window.Height = def.Window.Width, def.Window.Height
	}
	if c.Window.TargetFPS <= 0 {
		c.Window.TargetFPS = def.Window.TargetFPS
	}
	if c.Camera.Fovy <= 0 || c.Camera.Fovy >= 180 {
		c.Camera.Fovy = def.Camera.Fovy
	}
	if c.Car.Scale <= 0 {
		c.Car.Scale = def.Car.Scale
	}
}

// Save writes cfg to path as indented JSON, creating the directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "\t")
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
