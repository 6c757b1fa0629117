package main

import (
	"flag"
	"fmt"
	"log"
	"sort"

	"github.com/gekko3d/shading"
	"github.com/gekko3d/shading/binding"
	"github.com/gekko3d/shading/internal/config"
	"github.com/gekko3d/shading/material"
)

func main() {
	configPath := flag.String("config", "", "Path to engine config (YAML)")
	presetsPath := flag.String("presets", "", "Path to material presets (YAML); overrides the config")
	frames := flag.Int("frames", -1, "Frames to run; overrides the config")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatalf("config: %v", err)
		}
	}
	if *presetsPath != "" {
		cfg.Presets = *presetsPath
	}
	if *frames >= 0 {
		cfg.Frames = *frames
	}
	props, err := cfg.MaterialProperties()
	if err != nil {
		log.Fatal(err)
	}
	colors, err := cfg.MaterialColors()
	if err != nil {
		log.Fatal(err)
	}

	app := shading.NewAppBuilder().
		UseModule(
			shading.LoggingModule{Prefix: cfg.Log.Prefix, Debug: cfg.Log.Debug || *debug},
			shading.MaterialModule{Capacity: cfg.Capacity, Defaults: &props, DefaultColors: colors},
			shading.RenderModule{},
		).
		Build()
	logger := app.Logger()

	table, _ := shading.Resource[material.Table](app)
	scene, _ := shading.Resource[shading.MaterialScene](app)
	api, _ := shading.Resource[binding.Bindings](app)
	state, _ := shading.Resource[shading.RenderState](app)

	if cfg.Presets != "" {
		presets, err := shading.LoadPresets(cfg.Presets)
		if err != nil {
			log.Fatalf("presets: %v", err)
		}
		handles, err := shading.CreateFromPresets(table, presets)
		if err != nil {
			log.Fatalf("presets: %v", err)
		}
		names := make([]string, 0, len(handles))
		for name := range handles {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			scene.Attach(handles[name])
		}
		logger.Infof("loaded %d presets from %s", len(handles), cfg.Presets)
	} else {
		h, err := api.CreateMaterial()
		if err != nil {
			log.Fatal(err)
		}
		if err := api.SetName(h, "default"); err != nil {
			log.Fatal(err)
		}
		scene.Attach(material.Handle(h))
	}

	for i := 0; i < cfg.Frames; i++ {
		// Touch one material mid-run so the next frame shows a re-upload.
		if i == 1 {
			if hs := scene.Handles(); len(hs) > 0 {
				if err := api.SetShininess(int64(hs[0]), 32); err != nil {
					logger.Warnf("set shininess: %v", err)
				}
			}
		}
		app.Step()
		fmt.Printf("frame %d: %d draws, %d uploads, %d failed\n",
			app.Frame(), len(state.Draws), state.Uploaded, len(state.Frame.Failed))
		for _, d := range state.Draws {
			name := "?"
			if m, err := table.Resolve(d.Handle); err == nil {
				name = m.Snapshot().Name
			}
			fmt.Printf("  %-12s %-16s cull=%-5s blend=%-8s depth(w=%t,t=%t) translucent=%t\n",
				name, d.Key.LightingModel, d.Key.CullMode, d.Key.BlendMode,
				d.Key.DepthWrite, d.Key.DepthTest, d.Translucent)
		}
	}
}
