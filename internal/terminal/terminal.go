package terminal

import (
	"strings"
	"unicode/utf8"

	rl "github.com/gen2brain/raylib-go/raylib"

	"text2obj/internal/commands"
	"text2obj/internal/logger"
)

const (
	BarHeight = 40
	// BottomMargin leaves room under the bar for the HUD caption.
	BottomMargin = 36
	prompt       = "> "
	fontSize     = 20
	padding      = 8
	buttonWidth  = 72
	buttonLabel  = "Go"
	sideMargin   = 0.25 // fraction of screen width left empty on each side of the bar
	// Number of log lines drawn above the input bar.
	maxLinesOnScreen = 6
	lineHeight       = fontSize + 4
	maxLineChars     = 200
)

var (
	// Reused every frame when drawing the bar to avoid per-frame color allocations.
	barColor         = rl.NewColor(55, 65, 81, 255)
	barBorderColor   = rl.NewColor(17, 24, 39, 128)
	buttonColor      = rl.NewColor(75, 85, 99, 255)
	buttonHoverColor = rl.NewColor(107, 114, 128, 255)
	logBgColor       = rl.NewColor(24, 24, 24, 160)
)

// Terminal is the text input bar at the bottom of the screen. Text is submitted with Enter,
// by clicking the button at the end of the bar, or by pasting (the pasted text alone is submitted).
// Lines starting with "cmd " run through the command registry; anything else goes to OnSubmit.
// Submitted text stays in the bar so it can be edited and resubmitted; Escape clears it.
type Terminal struct {
	log      *logger.Logger
	reg      *commands.Registry
	inputBuf string
	font     rl.Font // optional; when set, Draw uses DrawTextEx instead of default font

	// OnSubmit is called synchronously with every non-command submission.
	OnSubmit func(text string)
}

// New returns a Terminal that logs submissions and runs "cmd ..." through reg.
func New(log *logger.Logger, reg *commands.Registry) *Terminal {
	return &Terminal{log: log, reg: reg}
}

// SetFont sets the font used to draw the bar and log. Zero texture ID = use raylib default.
func (t *Terminal) SetFont(font rl.Font) {
	t.font = font
}

// Text returns the current contents of the input bar.
func (t *Terminal) Text() string {
	return t.inputBuf
}

// Submit handles one line of input as if it had been typed and confirmed.
func (t *Terminal) Submit(line string) {
	t.log.Log(prompt + line)
	if err := t.reg.Dispatch(line, t.OnSubmit); err != nil {
		t.log.Log(err.Error())
	}
}

// Update handles typing, paste, backspace, Escape, Enter and the submit button. Call once per frame.
func (t *Terminal) Update() {
	if isPaste() {
		if pasted := rl.GetClipboardText(); pasted != "" {
			pasted = strings.ReplaceAll(pasted, "\n", " ")
			t.inputBuf += pasted
			t.Submit(pasted)
		}
	} else {
		for {
			c := rl.GetCharPressed()
			if c == 0 {
				break
			}
			t.inputBuf += string(rune(c))
		}
	}
	if (rl.IsKeyPressed(rl.KeyBackspace) || rl.IsKeyPressedRepeat(rl.KeyBackspace)) && len(t.inputBuf) > 0 {
		_, size := utf8.DecodeLastRuneInString(t.inputBuf)
		t.inputBuf = t.inputBuf[:len(t.inputBuf)-size]
	}
	if rl.IsKeyPressed(rl.KeyEscape) {
		t.inputBuf = ""
	}
	if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter) {
		t.Submit(t.inputBuf)
	}
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) && rl.CheckCollisionPointRec(rl.GetMousePosition(), t.buttonBounds()) {
		t.Submit(t.inputBuf)
	}
}

// isPaste reports Ctrl+V (Windows/Linux) or Cmd+V (macOS).
func isPaste() bool {
	if !rl.IsKeyPressed(rl.KeyV) {
		return false
	}
	return rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) ||
		rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper)
}

// Bounds is the screen area the terminal owns (bar plus log). The scene ignores mouse input over it.
func (t *Terminal) Bounds() rl.Rectangle {
	bar := t.barBounds()
	logHeight := float32(maxLinesOnScreen * lineHeight)
	return rl.NewRectangle(bar.X, bar.Y-logHeight, bar.Width, bar.Height+logHeight)
}

func (t *Terminal) barBounds() rl.Rectangle {
	screenW := float32(rl.GetScreenWidth())
	screenH := float32(rl.GetScreenHeight())
	x := screenW * sideMargin
	return rl.NewRectangle(x, screenH-BarHeight-BottomMargin, screenW-2*x, BarHeight)
}

func (t *Terminal) buttonBounds() rl.Rectangle {
	bar := t.barBounds()
	return rl.NewRectangle(bar.X+bar.Width-buttonWidth-4, bar.Y+4, buttonWidth, bar.Height-8)
}

// Draw draws the recent log lines and the input bar with its submit button.
func (t *Terminal) Draw() {
	bar := t.barBounds()
	lines := t.log.Tail(maxLinesOnScreen)
	if len(lines) > 0 {
		h := float32(len(lines)*lineHeight + padding)
		rl.DrawRectangleRec(rl.NewRectangle(bar.X, bar.Y-h, bar.Width, h), logBgColor)
		for i, line := range lines {
			t.drawText(logger.Clip(line, maxLineChars), bar.X+padding, bar.Y-h+float32(i*lineHeight+padding/2), rl.LightGray)
		}
	}

	rl.DrawRectangleRec(bar, barColor)
	rl.DrawRectangleLinesEx(bar, 1, barBorderColor)
	t.drawText(prompt+t.inputBuf+"|", bar.X+padding, bar.Y+padding, rl.White)

	btn := t.buttonBounds()
	c := buttonColor
	if rl.CheckCollisionPointRec(rl.GetMousePosition(), btn) {
		c = buttonHoverColor
	}
	rl.DrawRectangleRec(btn, c)
	t.drawText(buttonLabel, btn.X+btn.Width/2-float32(rl.MeasureText(buttonLabel, fontSize))/2, btn.Y+4, rl.White)
}

func (t *Terminal) drawText(text string, x, y float32, c rl.Color) {
	if t.font.Texture.ID != 0 {
		rl.DrawTextEx(t.font, text, rl.NewVector2(x, y), fontSize, 1, c)
		return
	}
	rl.DrawText(text, int32(x), int32(y), fontSize, c)
}

// Hovered reports whether the mouse is over the terminal, so the scene can ignore the pointer.
func (t *Terminal) Hovered() bool {
	return rl.CheckCollisionPointRec(rl.GetMousePosition(), t.Bounds())
}
