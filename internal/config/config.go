package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gekko3d/shading/material"
)

type LogCfg struct {
	Prefix string `yaml:"prefix"`
	Debug  bool   `yaml:"debug"`
}

// MaterialDefaults overrides the attributes new materials start with. Mode
// fields take the same names the bindings accept.
type MaterialDefaults struct {
	LightingModel    string   `yaml:"lighting_model,omitempty"`
	TransparencyMode string   `yaml:"transparency_mode,omitempty"`
	CullMode         string   `yaml:"cull_mode,omitempty"`
	BlendMode        string   `yaml:"blend_mode,omitempty"`
	Shininess        *float64 `yaml:"shininess,omitempty"`
	FresnelExponent  *float64 `yaml:"fresnel_exponent,omitempty"`
	DiffuseIntensity *float32 `yaml:"diffuse_intensity,omitempty"`
	BloomThreshold   *float32 `yaml:"bloom_threshold,omitempty"`
	Transparency     *float32 `yaml:"transparency,omitempty"`
	WritesDepth      *bool    `yaml:"writes_depth,omitempty"`
	ReadsDepth       *bool    `yaml:"reads_depth,omitempty"`

	// Colors maps slot names to "#RRGGBB", "#AARRGGBB" or CSS color names,
	// overlaid on a white diffuse color.
	Colors map[string]string `yaml:"colors,omitempty"`
}

type Config struct {
	Capacity int    `yaml:"capacity"` // 0 = unbounded
	Frames   int    `yaml:"frames"`
	Presets  string `yaml:"presets,omitempty"`
	Log      LogCfg `yaml:"log"`

	Defaults MaterialDefaults `yaml:"defaults,omitempty"`
}

func Default() *Config {
	return &Config{
		Frames: 3,
		Log:    LogCfg{Prefix: "shading"},
	}
}

// Load reads path on top of Default.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

func (c *Config) Validate() error {
	if c.Capacity < 0 {
		return fmt.Errorf("config: capacity must not be negative, got %d", c.Capacity)
	}
	if c.Frames < 0 {
		return fmt.Errorf("config: frames must not be negative, got %d", c.Frames)
	}
	props, err := c.MaterialProperties()
	if err != nil {
		return err
	}
	colors, err := c.MaterialColors()
	if err != nil {
		return err
	}
	if _, err := material.NewTable(material.WithDefaults(props, colors)); err != nil {
		return fmt.Errorf("config: defaults: %w", err)
	}
	return nil
}

// MaterialProperties resolves the configured defaults against the built-in ones.
func (c *Config) MaterialProperties() (material.Properties, error) {
	p := material.DefaultProperties()
	d := c.Defaults
	var err error
	if d.LightingModel != "" {
		if p.LightingModel, err = material.ParseLightingModel(d.LightingModel); err != nil {
			return p, fmt.Errorf("config: defaults: %w", err)
		}
	}
	if d.TransparencyMode != "" {
		if p.TransparencyMode, err = material.ParseTransparencyMode(d.TransparencyMode); err != nil {
			return p, fmt.Errorf("config: defaults: %w", err)
		}
	}
	if d.CullMode != "" {
		if p.CullMode, err = material.ParseCullMode(d.CullMode); err != nil {
			return p, fmt.Errorf("config: defaults: %w", err)
		}
	}
	if d.BlendMode != "" {
		if p.BlendMode, err = material.ParseBlendMode(d.BlendMode); err != nil {
			return p, fmt.Errorf("config: defaults: %w", err)
		}
	}
	if d.Shininess != nil {
		p.Shininess = *d.Shininess
	}
	if d.FresnelExponent != nil {
		p.FresnelExponent = *d.FresnelExponent
	}
	if d.DiffuseIntensity != nil {
		p.DiffuseIntensity = *d.DiffuseIntensity
	}
	if d.BloomThreshold != nil {
		p.BloomThreshold = *d.BloomThreshold
	}
	if d.Transparency != nil {
		p.Transparency = *d.Transparency
	}
	if d.WritesDepth != nil {
		p.WritesDepth = *d.WritesDepth
	}
	if d.ReadsDepth != nil {
		p.ReadsDepth = *d.ReadsDepth
	}
	if err := p.Validate(); err != nil {
		return p, fmt.Errorf("config: defaults: %w", err)
	}
	return p, nil
}

// MaterialColors resolves the configured default colors. It returns nil when
// none are configured, leaving the built-in white diffuse color.
func (c *Config) MaterialColors() (map[string]material.Color, error) {
	if len(c.Defaults.Colors) == 0 {
		return nil, nil
	}
	out := map[string]material.Color{material.SlotDiffuseColor: material.ColorWhite}
	for slot, value := range c.Defaults.Colors {
		col, err := material.ParseColor(value)
		if err != nil {
			return nil, fmt.Errorf("config: defaults: color %q: %w", slot, err)
		}
		out[slot] = col
	}
	return out, nil
}
