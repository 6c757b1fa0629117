package material

import "unicode"

const maxSlotNameLen = 64

// Slot names the engine itself consumes. Other names are stored and passed
// through untouched.
const (
	SlotDiffuseTexture          = "diffuseTexture"
	SlotSpecularTexture         = "specularTexture"
	SlotNormalTexture           = "normalTexture"
	SlotReflectiveTexture       = "reflectiveTexture"
	SlotEmissionTexture         = "emissionTexture"
	SlotMultiplyTexture         = "multiplyTexture"
	SlotRoughnessTexture        = "roughnessTexture"
	SlotMetalnessTexture        = "metalnessTexture"
	SlotAmbientOcclusionTexture = "ambientOcclusionTexture"

	SlotDiffuseColor    = "diffuseColor"
	SlotSpecularColor   = "specularColor"
	SlotEmissionColor   = "emissionColor"
	SlotReflectiveColor = "reflectiveColor"
	SlotMultiplyColor   = "multiplyColor"
)

var reservedTextureSlots = map[string]struct{}{
	SlotDiffuseTexture:          {},
	SlotSpecularTexture:         {},
	SlotNormalTexture:           {},
	SlotReflectiveTexture:       {},
	SlotEmissionTexture:         {},
	SlotMultiplyTexture:         {},
	SlotRoughnessTexture:        {},
	SlotMetalnessTexture:        {},
	SlotAmbientOcclusionTexture: {},
}

var reservedColorSlots = map[string]struct{}{
	SlotDiffuseColor:    {},
	SlotSpecularColor:   {},
	SlotEmissionColor:   {},
	SlotReflectiveColor: {},
	SlotMultiplyColor:   {},
}

// IsReservedSlot reports whether the engine recognizes name as a texture or
// color input.
func IsReservedSlot(name string) bool {
	_, tex := reservedTextureSlots[name]
	_, col := reservedColorSlots[name]
	return tex || col
}

func checkSlotName(name string) error {
	if name == "" {
		return invalid("slot name", name, "empty")
	}
	if len(name) > maxSlotNameLen {
		return invalid("slot name", name, "too long")
	}
	for _, r := range name {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return invalid("slot name", name, "contains whitespace or control characters")
		}
	}
	return nil
}

func checkTextureSlot(name string) error {
	if err := checkSlotName(name); err != nil {
		return err
	}
	if _, ok := reservedColorSlots[name]; ok {
		return invalid("texture slot", name, "reserved for colors")
	}
	return nil
}

func checkColorSlot(name string) error {
	if err := checkSlotName(name); err != nil {
		return err
	}
	if _, ok := reservedTextureSlots[name]; ok {
		return invalid("color slot", name, "reserved for textures")
	}
	return nil
}
