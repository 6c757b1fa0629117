package shading

import (
	"slices"
	"sync"

	"github.com/gekko3d/shading/binder"
	"github.com/gekko3d/shading/binding"
	"github.com/gekko3d/shading/material"
	"github.com/gekko3d/shading/texture"
)

// MaterialModule installs the material table, the texture registry, the scene
// binder and the handle bindings as resources. They log through the app's
// Logger resource whenever it is installed, before or after this module.
type MaterialModule struct {
	// Capacity bounds live materials; zero means unbounded.
	Capacity      int
	Defaults      *material.Properties
	DefaultColors map[string]material.Color
}

func (m MaterialModule) Install(app *App, cmd *Commands) {
	log := appLogger{app: app}

	opts := []material.TableOption{
		material.WithCapacity(m.Capacity),
		material.WithLogger(log),
	}
	if m.Defaults != nil || m.DefaultColors != nil {
		props := material.DefaultProperties()
		if m.Defaults != nil {
			props = *m.Defaults
		}
		opts = append(opts, material.WithDefaults(props, m.DefaultColors))
	}
	table, err := material.NewTable(opts...)
	if err != nil {
		log.Errorf("material module: %v", err)
		panic(err)
	}
	textures := texture.NewRegistry(log)

	cmd.AddResources(
		table,
		textures,
		binder.New(table, textures, log),
		binding.New(table, textures, log),
		&MaterialScene{},
	)
}

// MaterialScene lists the material handles referenced by scene geometry, in
// draw order. The render systems bind exactly these every frame.
type MaterialScene struct {
	mu      sync.Mutex
	handles []material.Handle
}

func (s *MaterialScene) Attach(handles ...material.Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, h := range handles {
		if !slices.Contains(s.handles, h) {
			s.handles = append(s.handles, h)
		}
	}
}

func (s *MaterialScene) Detach(h material.Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handles = slices.DeleteFunc(s.handles, func(x material.Handle) bool { return x == h })
}

func (s *MaterialScene) Handles() []material.Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.handles)
}
