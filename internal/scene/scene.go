package scene

import (
	"fmt"
	"os"
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"

	"text2obj/internal/appconfig"
	"text2obj/internal/camera"
	"text2obj/internal/primitives"
	"text2obj/internal/shape"
)

const (
	gridExtent     = 20
	gridMinorStep  = 1
	gridMajorStep  = 5
	gridMinorAlpha = 40
	gridMajorAlpha = 100

	orbitSpeed = 0.005 // radians per pixel dragged
)

// Scene is the presenter: an orbit camera, a light rig, the decorative car and the single
// object built from the latest submission. Show replaces that object; nothing else changes it.
type Scene struct {
	Camera      rl.Camera3D
	GridVisible bool
	CarVisible  bool

	builder *primitives.Builder
	defs    shape.Defaults
	current *primitives.Object
	last    shape.Description
	shown   bool

	carCfg    appconfig.Car
	car       rl.Model
	carLoaded bool
}

// New returns a scene set up from cfg. defs gives mesh resolution and material per primitive kind.
// GPU resources (the car, meshes, shaders) are created later, after the window exists.
func New(cfg appconfig.Config, defs shape.Defaults) *Scene {
	s := &Scene{
		GridVisible: cfg.GridVisible,
		CarVisible:  cfg.CarVisible,
		builder:     primitives.NewBuilder(),
		defs:        defs,
		carCfg:      cfg.Car,
	}
	s.Camera.Position = vec3(cfg.Camera.Position)
	s.Camera.Target = vec3(cfg.Camera.Target)
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = cfg.Camera.Fovy
	s.Camera.Projection = rl.CameraPerspective
	s.builder.SetLighting(primitives.NewLighting(
		cfg.Ambient.Color, cfg.Ambient.Intensity,
		cfg.Directional.Color, cfg.Directional.Intensity, cfg.Directional.Position,
	))
	return s
}

func vec3(v [3]float32) rl.Vector3 {
	return rl.NewVector3(v[0], v[1], v[2])
}

// LoadCar loads the decorative model from path and applies the configured material colors.
// Call once after the window is open. The scene works without it. Overrides addressing a missing
// material are skipped and reported in the returned error while the car stays loaded.
func (s *Scene) LoadCar(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("car model: %w", err)
	}
	model := rl.LoadModel(path)
	if model.MeshCount == 0 {
		rl.UnloadModel(model)
		return fmt.Errorf("car model: %s has no meshes", path)
	}
	materials := unsafe.Slice(model.Materials, model.MaterialCount)
	overrides, err := s.carCfg.ValidOverrides(len(materials))
	for _, o := range overrides {
		if albedo := materials[o.Index].GetMap(rl.MapAlbedo); albedo != nil {
			albedo.Color = rl.NewColor(o.Color.R, o.Color.G, o.Color.B, 255)
		}
	}
	s.car = model
	s.carLoaded = true
	if err != nil {
		return fmt.Errorf("car model %s: %w", path, err)
	}
	return nil
}

// Show builds the mesh for d and makes it the displayed object. The previous object's mesh is
// released; it is never modified in place.
func (s *Scene) Show(d shape.Description) shape.Geometry {
	g := shape.Resolve(d, s.defs)
	next := s.builder.Build(g)
	next.Position[1] = g.Rest()
	prev := s.current
	s.current = next
	s.builder.Release(prev)
	s.last = d
	s.shown = true
	return g
}

// Clear removes the displayed object.
func (s *Scene) Clear() {
	s.builder.Release(s.current)
	s.current = nil
	s.shown = false
}

// Current returns the description of the displayed object, if any.
func (s *Scene) Current() (shape.Description, bool) {
	return s.last, s.shown
}

// Update runs the orbit controls once per frame: drag with the left mouse button to orbit
// the target, scroll to zoom. blocked is true while the pointer is over 2D UI.
func (s *Scene) Update(blocked bool) {
	if blocked {
		return
	}
	var yaw, pitch float32
	if rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		d := rl.GetMouseDelta()
		yaw, pitch = -d.X*orbitSpeed, d.Y*orbitSpeed
	}
	zoom := rl.GetMouseWheelMove()
	if yaw == 0 && pitch == 0 && zoom == 0 {
		return
	}
	pos := camera.Orbit(
		[3]float32{s.Camera.Position.X, s.Camera.Position.Y, s.Camera.Position.Z},
		[3]float32{s.Camera.Target.X, s.Camera.Target.Y, s.Camera.Target.Z},
		yaw, pitch, zoom,
	)
	s.Camera.Position = vec3(pos)
}

// Draw renders the 3D scene. Call after ClearBackground and before 2D overlays.
func (s *Scene) Draw() {
	s.builder.SetView([3]float32{s.Camera.Position.X, s.Camera.Position.Y, s.Camera.Position.Z})
	rl.BeginMode3D(s.Camera)
	if s.GridVisible {
		drawGrid()
	}
	if s.CarVisible && s.carLoaded {
		c := s.carCfg
		rl.DrawModelEx(s.car, vec3(c.Position), rl.NewVector3(0, 1, 0), c.RotationY*rl.Rad2deg,
			rl.NewVector3(c.Scale, c.Scale, c.Scale), rl.White)
	}
	s.builder.Draw(s.current)
	rl.EndMode3D()
}

// Unload frees every GPU resource the scene owns. Call before the window closes.
func (s *Scene) Unload() {
	s.Clear()
	s.builder.Unload()
	if s.carLoaded {
		rl.UnloadModel(s.car)
		s.carLoaded = false
	}
}

// drawGrid draws a ground grid on the XZ plane with a brighter line every gridMajorStep units.
func drawGrid() {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(160, 160, 160, gridMajorAlpha)
	var start, end rl.Vector3
	for i := -gridExtent; i <= gridExtent; i += gridMinorStep {
		c := minor
		if i%gridMajorStep == 0 {
			c = major
		}
		start.X, start.Y, start.Z = float32(i), 0, -gridExtent
		end.X, end.Y, end.Z = float32(i), 0, gridExtent
		rl.DrawLine3D(start, end, c)
		start.X, start.Y, start.Z = -gridExtent, 0, float32(i)
		end.X, end.Y, end.Z = gridExtent, 0, float32(i)
		rl.DrawLine3D(start, end, c)
	}
}
