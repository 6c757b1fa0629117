package material

import (
	"math"
	"unicode/utf8"
)

const maxNameLen = 128

// Properties holds the scalar shading attributes of a material. It is a plain
// value; copies never alias.
type Properties struct {
	Name             string
	WritesDepth      bool
	ReadsDepth       bool
	Shininess        float64
	FresnelExponent  float64
	DiffuseIntensity float32
	// Negative disables bloom for the material.
	BloomThreshold   float32
	Transparency     float32
	LightingModel    LightingModel
	TransparencyMode TransparencyMode
	CullMode         CullMode
	BlendMode        BlendMode
}

func DefaultProperties() Properties {
	return Properties{
		WritesDepth:      true,
		ReadsDepth:       true,
		Shininess:        2.0,
		FresnelExponent:  1.0,
		DiffuseIntensity: 1.0,
		BloomThreshold:   -1.0,
		Transparency:     1.0,
		LightingModel:    LightingModelBlinn,
		TransparencyMode: TransparencyModeAOne,
		CullMode:         CullModeBack,
		BlendMode:        BlendModeAlpha,
	}
}

// Validate checks every attribute against its domain.
func (p Properties) Validate() error {
	if err := checkName(p.Name); err != nil {
		return err
	}
	if err := checkNonNegative("shininess", p.Shininess); err != nil {
		return err
	}
	if err := checkNonNegative("fresnel exponent", p.FresnelExponent); err != nil {
		return err
	}
	if err := checkNonNegative("diffuse intensity", float64(p.DiffuseIntensity)); err != nil {
		return err
	}
	if err := checkFinite("bloom threshold", float64(p.BloomThreshold)); err != nil {
		return err
	}
	if err := checkUnit("transparency", float64(p.Transparency)); err != nil {
		return err
	}
	if int(p.LightingModel) >= len(lightingModelNames) {
		return invalid("lighting model", p.LightingModel, "out of range")
	}
	if int(p.TransparencyMode) >= len(transparencyModeNames) {
		return invalid("transparency mode", p.TransparencyMode, "out of range")
	}
	if int(p.CullMode) >= len(cullModeNames) {
		return invalid("cull mode", p.CullMode, "out of range")
	}
	if int(p.BlendMode) >= len(blendModeNames) {
		return invalid("blend mode", p.BlendMode, "out of range")
	}
	return nil
}

// BloomEnabled reports whether the material contributes to the bloom pass.
func (p Properties) BloomEnabled() bool { return p.BloomThreshold >= 0 }

func checkFinite(attr string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return invalid(attr, v, "not finite")
	}
	return nil
}

func checkNonNegative(attr string, v float64) error {
	if err := checkFinite(attr, v); err != nil {
		return err
	}
	if v < 0 {
		return invalid(attr, v, "negative")
	}
	return nil
}

func checkUnit(attr string, v float64) error {
	if err := checkFinite(attr, v); err != nil {
		return err
	}
	if v < 0 || v > 1 {
		return invalid(attr, v, "outside [0,1]")
	}
	return nil
}

func checkName(name string) error {
	if len(name) > maxNameLen {
		return invalid("name", name, "too long")
	}
	if !utf8.ValidString(name) {
		return invalid("name", name, "not valid UTF-8")
	}
	return nil
}
