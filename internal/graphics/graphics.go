package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"text2obj/internal/appconfig"
)

var background = rl.NewColor(16, 16, 20, 255)

// Loop is what Run drives. Setup runs once after the window and GL context exist (load GPU
// resources there); Teardown runs once before the window closes.
type Loop struct {
	Setup    func()
	Update   func()
	Draw     func()
	Teardown func()
}

// Run opens the window described by win and runs the frame loop until the window is closed.
// Each frame it calls Update (input), then clears the screen and calls Draw.
// ESC is left to the terminal (it clears the input bar); close via the window button.
func Run(win appconfig.Window, loop Loop) {
	flags := uint32(rl.FlagWindowResizable)
	if win.MSAA {
		flags |= rl.FlagMsaa4xHint
	}
	if win.Fullscreen {
		flags |= rl.FlagFullscreenMode
	}
	rl.SetConfigFlags(flags)
	width, height := win.Width, win.Height
	if win.Fullscreen {
		width, height = int32(rl.GetMonitorWidth(0)), int32(rl.GetMonitorHeight(0))
	}
	rl.InitWindow(width, height, win.Title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(win.TargetFPS)

	if loop.Setup != nil {
		loop.Setup()
	}
	for !rl.WindowShouldClose() {
		loop.Update()

		rl.BeginDrawing()
		rl.ClearBackground(background)
		loop.Draw()
		rl.EndDrawing()
	}
	if loop.Teardown != nil {
		loop.Teardown()
	}
}
