package hud

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize      = 20
	captionSize   = 16
	padding       = 12
	captionBottom = 26
	// updateInterval: only refresh the FPS text every N frames to reduce allocations.
	updateInterval = 30
)

var captionColor = rl.NewColor(255, 255, 255, 102)

// HUD draws the 2D overlay: the caption under the input bar, the current shape on the top left
// and, when enabled, an FPS counter on the top right.
type HUD struct {
	ShowFPS bool
	Caption string

	// Status describes the displayed object, e.g. "box [2 3 4] #035efc".
	Status      string
	font        rl.Font
	frameCount  uint32
	lastFpsText string
}

// New returns a HUD showing caption, with the FPS counter hidden.
func New(caption string) *HUD {
	return &HUD{Caption: caption}
}

// SetFont sets the font used for all HUD text. Zero texture ID = use raylib default.
func (h *HUD) SetFont(font rl.Font) {
	h.font = font
}

// Draw renders the overlay. Call after the scene and terminal in the draw loop.
func (h *HUD) Draw() {
	screenW := float32(rl.GetScreenWidth())
	screenH := float32(rl.GetScreenHeight())

	if h.Caption != "" {
		w := h.measure(h.Caption, captionSize)
		h.text(h.Caption, (screenW-w)/2, screenH-captionBottom, captionSize, captionColor)
	}
	if h.Status != "" {
		h.text(h.Status, padding, padding, fontSize, rl.RayWhite)
	}

	h.frameCount++
	if !h.ShowFPS {
		return
	}
	if h.lastFpsText == "" || h.frameCount%updateInterval == 0 {
		h.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
	}
	w := h.measure(h.lastFpsText, fontSize)
	h.text(h.lastFpsText, screenW-w-padding, padding, fontSize, rl.Green)
}

func (h *HUD) measure(text string, size float32) float32 {
	if h.font.Texture.ID != 0 {
		return rl.MeasureTextEx(h.font, text, size, 1).X
	}
	return float32(rl.MeasureText(text, int32(size)))
}

func (h *HUD) text(text string, x, y, size float32, c rl.Color) {
	if h.font.Texture.ID != 0 {
		rl.DrawTextEx(h.font, text, rl.NewVector2(x, y), size, 1, c)
		return
	}
	rl.DrawText(text, int32(x), int32(y), int32(size), c)
}
