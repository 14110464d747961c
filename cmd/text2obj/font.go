package main

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"text2obj/internal/fonts"
)

// fontLoadSize is the glyph atlas size; text is drawn at 16-20px so this keeps it crisp.
const fontLoadSize = 40

// loadFont finds the font family under assets/fonts and loads it. Call after the window exists.
func loadFont(family string) (rl.Font, error) {
	path, err := fonts.FindFont(family, fonts.BaseDirs())
	if err != nil {
		return rl.Font{}, fmt.Errorf("font %q: %w", family, err)
	}
	f := rl.LoadFontEx(path, fontLoadSize, nil)
	if f.Texture.ID == 0 {
		return rl.Font{}, fmt.Errorf("font %q: could not load %s", family, path)
	}
	rl.SetTextureFilter(f.Texture, rl.FilterBilinear)
	return f, nil
}
