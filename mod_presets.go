package shading

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/gekko3d/shading/material"
)

// PresetData describes one material in a preset file. Unset fields keep
// whatever the material already has.
type PresetData struct {
	Name             string            `yaml:"name"`
	LightingModel    string            `yaml:"lighting_model,omitempty"`
	TransparencyMode string            `yaml:"transparency_mode,omitempty"`
	CullMode         string            `yaml:"cull_mode,omitempty"`
	BlendMode        string            `yaml:"blend_mode,omitempty"`
	WritesDepth      *bool             `yaml:"writes_depth,omitempty"`
	ReadsDepth       *bool             `yaml:"reads_depth,omitempty"`
	Shininess        *float64          `yaml:"shininess,omitempty"`
	FresnelExponent  *float64          `yaml:"fresnel_exponent,omitempty"`
	DiffuseIntensity *float32          `yaml:"diffuse_intensity,omitempty"`
	BloomThreshold   *float32          `yaml:"bloom_threshold,omitempty"`
	Transparency     *float32          `yaml:"transparency,omitempty"`
	Colors           map[string]string `yaml:"colors,omitempty"`
}

type PresetFile struct {
	Materials []PresetData `yaml:"materials"`
}

func LoadPresets(filename string) ([]PresetData, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return ParsePresets(data)
}

func ParsePresets(data []byte) ([]PresetData, error) {
	var file PresetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("presets: %w", err)
	}
	seen := make(map[string]bool, len(file.Materials))
	for i, p := range file.Materials {
		if p.Name == "" {
			return nil, fmt.Errorf("presets: material %d has no name", i)
		}
		if seen[p.Name] {
			return nil, fmt.Errorf("presets: duplicate material %q", p.Name)
		}
		seen[p.Name] = true
	}
	return file.Materials, nil
}

func SavePresets(filename string, presets []PresetData) error {
	bytes, err := yaml.Marshal(PresetFile{Materials: presets})
	if err != nil {
		return err
	}
	return os.WriteFile(filename, bytes, 0644)
}

// PresetFromSnapshot captures every attribute of snap, colors included.
func PresetFromSnapshot(snap material.Snapshot) PresetData {
	p := PresetData{
		Name:             snap.Name,
		LightingModel:    snap.LightingModel.String(),
		TransparencyMode: snap.TransparencyMode.String(),
		CullMode:         snap.CullMode.String(),
		BlendMode:        snap.BlendMode.String(),
		WritesDepth:      &snap.WritesDepth,
		ReadsDepth:       &snap.ReadsDepth,
		Shininess:        &snap.Shininess,
		FresnelExponent:  &snap.FresnelExponent,
		DiffuseIntensity: &snap.DiffuseIntensity,
		BloomThreshold:   &snap.BloomThreshold,
		Transparency:     &snap.Transparency,
		Colors:           make(map[string]string),
	}
	for slot, c := range snap.Colors() {
		p.Colors[slot] = fmt.Sprintf("#%08X", uint32(c))
	}
	return p
}

// ApplyPreset writes the preset to m as a single update.
func ApplyPreset(m *material.Material, p PresetData) error {
	return m.Update(func(d *material.Draft) error {
		if err := d.SetName(p.Name); err != nil {
			return err
		}
		if p.LightingModel != "" {
			lm, err := material.ParseLightingModel(p.LightingModel)
			if err != nil {
				return err
			}
			if err := d.SetLightingModel(lm); err != nil {
				return err
			}
		}
		if p.TransparencyMode != "" {
			tm, err := material.ParseTransparencyMode(p.TransparencyMode)
			if err != nil {
				return err
			}
			if err := d.SetTransparencyMode(tm); err != nil {
				return err
			}
		}
		if p.CullMode != "" {
			cm, err := material.ParseCullMode(p.CullMode)
			if err != nil {
				return err
			}
			if err := d.SetCullMode(cm); err != nil {
				return err
			}
		}
		if p.BlendMode != "" {
			bm, err := material.ParseBlendMode(p.BlendMode)
			if err != nil {
				return err
			}
			if err := d.SetBlendMode(bm); err != nil {
				return err
			}
		}
		if p.WritesDepth != nil {
			if err := d.SetWritesDepth(*p.WritesDepth); err != nil {
				return err
			}
		}
		if p.ReadsDepth != nil {
			if err := d.SetReadsDepth(*p.ReadsDepth); err != nil {
				return err
			}
		}
		if p.Shininess != nil {
			if err := d.SetShininess(*p.Shininess); err != nil {
				return err
			}
		}
		if p.FresnelExponent != nil {
			if err := d.SetFresnelExponent(*p.FresnelExponent); err != nil {
				return err
			}
		}
		if p.DiffuseIntensity != nil {
			if err := d.SetDiffuseIntensity(*p.DiffuseIntensity); err != nil {
				return err
			}
		}
		if p.BloomThreshold != nil {
			if err := d.SetBloomThreshold(*p.BloomThreshold); err != nil {
				return err
			}
		}
		if p.Transparency != nil {
			if err := d.SetTransparency(*p.Transparency); err != nil {
				return err
			}
		}
		slots := make([]string, 0, len(p.Colors))
		for slot := range p.Colors {
			slots = append(slots, slot)
		}
		sort.Strings(slots)
		for _, slot := range slots {
			c, err := material.ParseColor(p.Colors[slot])
			if err != nil {
				return err
			}
			if err := d.SetColor(slot, c); err != nil {
				return err
			}
		}
		return nil
	})
}

// CreateFromPresets creates one material per preset. On error, including a
// duplicate preset name, the materials created so far are destroyed again.
func CreateFromPresets(table *material.Table, presets []PresetData) (map[string]material.Handle, error) {
	out := make(map[string]material.Handle, len(presets))
	created := make([]material.Handle, 0, len(presets))
	fail := func(p PresetData, err error) (map[string]material.Handle, error) {
		for _, h := range created {
			table.Destroy(h)
		}
		return nil, fmt.Errorf("preset %q: %w", p.Name, err)
	}
	for _, p := range presets {
		if _, dup := out[p.Name]; dup {
			return fail(p, fmt.Errorf("duplicate material name"))
		}
		h, m, err := table.Create()
		if err != nil {
			return fail(p, err)
		}
		created = append(created, h)
		if err := ApplyPreset(m, p); err != nil {
			return fail(p, err)
		}
		out[p.Name] = h
	}
	return out, nil
}
