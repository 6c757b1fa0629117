package material

import "strings"

type LightingModel uint32

const (
	LightingModelConstant        LightingModel = 0
	LightingModelLambert         LightingModel = 1
	LightingModelBlinn           LightingModel = 2
	LightingModelPhong           LightingModel = 3
	LightingModelPhysicallyBased LightingModel = 4
)

var lightingModelNames = []string{"Constant", "Lambert", "Blinn", "Phong", "PhysicallyBased"}

func (m LightingModel) String() string {
	if int(m) < len(lightingModelNames) {
		return lightingModelNames[m]
	}
	return "LightingModel(?)"
}

// ParseLightingModel matches names case-insensitively. "PBR" is accepted as
// an alias of PhysicallyBased.
func ParseLightingModel(name string) (LightingModel, error) {
	if strings.EqualFold(name, "PBR") {
		return LightingModelPhysicallyBased, nil
	}
	if i, ok := lookupName(lightingModelNames, name); ok {
		return LightingModel(i), nil
	}
	return 0, invalid("lighting model", name, "unknown name")
}

// TransparencyMode selects which channel of the transparent visual drives opacity.
type TransparencyMode uint32

const (
	TransparencyModeAOne    TransparencyMode = 0
	TransparencyModeRGBZero TransparencyMode = 1
)

var transparencyModeNames = []string{"AOne", "RGBZero"}

func (m TransparencyMode) String() string {
	if int(m) < len(transparencyModeNames) {
		return transparencyModeNames[m]
	}
	return "TransparencyMode(?)"
}

func ParseTransparencyMode(name string) (TransparencyMode, error) {
	if i, ok := lookupName(transparencyModeNames, name); ok {
		return TransparencyMode(i), nil
	}
	return 0, invalid("transparency mode", name, "unknown name")
}

type CullMode uint32

const (
	CullModeBack  CullMode = 0
	CullModeFront CullMode = 1
	CullModeNone  CullMode = 2
)

var cullModeNames = []string{"Back", "Front", "None"}

func (m CullMode) String() string {
	if int(m) < len(cullModeNames) {
		return cullModeNames[m]
	}
	return "CullMode(?)"
}

func ParseCullMode(name string) (CullMode, error) {
	if i, ok := lookupName(cullModeNames, name); ok {
		return CullMode(i), nil
	}
	return 0, invalid("cull mode", name, "unknown name")
}

// BlendMode controls how the fragment is combined with the framebuffer.
type BlendMode uint32

const (
	BlendModeNone     BlendMode = 0
	BlendModeAlpha    BlendMode = 1
	BlendModeAdd      BlendMode = 2
	BlendModeSubtract BlendMode = 3
	BlendModeMultiply BlendMode = 4
	BlendModeScreen   BlendMode = 5
)

var blendModeNames = []string{"None", "Alpha", "Add", "Subtract", "Multiply", "Screen"}

func (m BlendMode) String() string {
	if int(m) < len(blendModeNames) {
		return blendModeNames[m]
	}
	return "BlendMode(?)"
}

func ParseBlendMode(name string) (BlendMode, error) {
	if i, ok := lookupName(blendModeNames, name); ok {
		return BlendMode(i), nil
	}
	return 0, invalid("blend mode", name, "unknown name")
}

func lookupName(names []string, name string) (int, bool) {
	name = strings.TrimSpace(name)
	for i, n := range names {
		if strings.EqualFold(n, name) {
			return i, true
		}
	}
	return 0, false
}
