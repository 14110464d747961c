package main

import (
	"text2obj/internal/appconfig"
	"text2obj/internal/commands"
	"text2obj/internal/env"
	"text2obj/internal/graphics"
	"text2obj/internal/hud"
	"text2obj/internal/logger"
	"text2obj/internal/scene"
	"text2obj/internal/shape"
	"text2obj/internal/terminal"
)

func main() {
	log := logger.New()
	if _, err := env.Load(".env"); err != nil {
		log.Logf(".env: %v", err)
	}
	cfgPath := env.Get(env.ConfigPath, appconfig.DefaultPath)
	cfg, err := appconfig.Load(cfgPath)
	if err != nil {
		log.Log(err.Error())
	}
	defs, err := shape.LoadDefaults(shape.DefaultsDir)
	if err != nil {
		log.Log(err.Error())
	}

	scn := scene.New(cfg, defs)
	overlay := hud.New(cfg.Caption)
	overlay.ShowFPS = cfg.ShowFPS
	reg := commands.NewRegistry()
	term := terminal.New(log, reg)
	term.OnSubmit = func(text string) {
		d := shape.Decode(text)
		scn.Show(d)
		overlay.Status = d.String()
		log.Log(d.String())
	}
	registerCommands(reg, log, scn, overlay, &cfg, cfgPath)

	carPath := env.Get(env.CarModelPath, cfg.Car.Path)
	graphics.Run(cfg.Window, graphics.Loop{
		Setup: func() {
			if err := scn.LoadCar(carPath); err != nil {
				log.Log(err.Error())
			}
			if cfg.Font != "" {
				font, err := loadFont(cfg.Font)
				if err != nil {
					log.Log(err.Error())
					return
				}
				term.SetFont(font)
				overlay.SetFont(font)
			}
		},
		Update: func() {
			term.Update()
			scn.Update(term.Hovered())
		},
		Draw: func() {
			scn.Draw()
			term.Draw()
			overlay.Draw()
		},
		Teardown: scn.Unload,
	})
}
