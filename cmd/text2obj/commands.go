package main

import (
	"text2obj/internal/appconfig"
	"text2obj/internal/commands"
	"text2obj/internal/hud"
	"text2obj/internal/logger"
	"text2obj/internal/scene"
)

// registerCommands adds the terminal's "cmd ..." subcommands.
func registerCommands(reg *commands.Registry, log *logger.Logger, scn *scene.Scene, overlay *hud.HUD, cfg *appconfig.Config, cfgPath string) {
	reg.RegisterToggle("grid", "ground grid", func(v bool) {
		scn.GridVisible = v
		cfg.GridVisible = v
	})
	reg.RegisterToggle("car", "car model", func(v bool) {
		scn.CarVisible = v
		cfg.CarVisible = v
	})
	reg.RegisterToggle("fps", "FPS counter", func(v bool) {
		overlay.ShowFPS = v
		cfg.ShowFPS = v
	})
	reg.Register("clear", "remove the displayed object", nil, func() error {
		scn.Clear()
		overlay.Status = ""
		return nil
	})
	reg.Register("shape", "print the displayed object", nil, func() error {
		d, ok := scn.Current()
		if !ok {
			log.Log("no object")
			return nil
		}
		log.Log(d.String())
		return nil
	})
	reg.Register("save", "write settings to "+cfgPath, nil, func() error {
		if err := appconfig.Save(cfgPath, *cfg); err != nil {
			return err
		}
		log.Logf("saved %s", cfgPath)
		return nil
	})
	reg.Register("help", "list commands", nil, func() error {
		for _, line := range reg.Help() {
			log.Log(line)
		}
		return nil
	})
}
