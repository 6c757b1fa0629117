package material

import "maps"

// Draft is the working copy handed to Material.Update. Changes made through
// it become visible together, or not at all if the update returns an error.
type Draft struct {
	props    Properties
	textures map[string]TextureRef
	colors   map[string]Color

	texturesOwned bool
	colorsOwned   bool
	closed        bool
}

// close detaches the draft once its update is over. The published snapshot
// shares its maps, so later writes must fail.
func (d *Draft) close() { d.closed = true }

func (d *Draft) writable() error {
	if d.closed {
		return ErrDraftClosed
	}
	return nil
}

func newDraft(s *Snapshot) *Draft {
	return &Draft{
		props:    s.Properties,
		textures: s.textures,
		colors:   s.colors,
	}
}

// Properties returns the current scalar attributes of the draft.
func (d *Draft) Properties() Properties { return d.props }

// SetProperties replaces every scalar attribute after validating the set.
func (d *Draft) SetProperties(p Properties) error {
	if err := d.writable(); err != nil {
		return err
	}
	if err := p.Validate(); err != nil {
		return err
	}
	d.props = p
	return nil
}

func (d *Draft) SetName(name string) error {
	if err := d.writable(); err != nil {
		return err
	}
	if err := checkName(name); err != nil {
		return err
	}
	d.props.Name = name
	return nil
}

func (d *Draft) SetWritesDepth(v bool) error {
	if err := d.writable(); err != nil {
		return err
	}
	d.props.WritesDepth = v
	return nil
}

func (d *Draft) SetReadsDepth(v bool) error {
	if err := d.writable(); err != nil {
		return err
	}
	d.props.ReadsDepth = v
	return nil
}

func (d *Draft) SetShininess(v float64) error {
	if err := d.writable(); err != nil {
		return err
	}
	if err := checkNonNegative("shininess", v); err != nil {
		return err
	}
	d.props.Shininess = v
	return nil
}

func (d *Draft) SetFresnelExponent(v float64) error {
	if err := d.writable(); err != nil {
		return err
	}
	if err := checkNonNegative("fresnel exponent", v); err != nil {
		return err
	}
	d.props.FresnelExponent = v
	return nil
}

func (d *Draft) SetDiffuseIntensity(v float32) error {
	if err := d.writable(); err != nil {
		return err
	}
	if err := checkNonNegative("diffuse intensity", float64(v)); err != nil {
		return err
	}
	d.props.DiffuseIntensity = v
	return nil
}

func (d *Draft) SetBloomThreshold(v float32) error {
	if err := d.writable(); err != nil {
		return err
	}
	if err := checkFinite("bloom threshold", float64(v)); err != nil {
		return err
	}
	d.props.BloomThreshold = v
	return nil
}

func (d *Draft) SetTransparency(v float32) error {
	if err := d.writable(); err != nil {
		return err
	}
	if err := checkUnit("transparency", float64(v)); err != nil {
		return err
	}
	d.props.Transparency = v
	return nil
}

func (d *Draft) SetLightingModel(m LightingModel) error {
	if err := d.writable(); err != nil {
		return err
	}
	if int(m) >= len(lightingModelNames) {
		return invalid("lighting model", m, "out of range")
	}
	d.props.LightingModel = m
	return nil
}

func (d *Draft) SetTransparencyMode(m TransparencyMode) error {
	if err := d.writable(); err != nil {
		return err
	}
	if int(m) >= len(transparencyModeNames) {
		return invalid("transparency mode", m, "out of range")
	}
	d.props.TransparencyMode = m
	return nil
}

func (d *Draft) SetCullMode(m CullMode) error {
	if err := d.writable(); err != nil {
		return err
	}
	if int(m) >= len(cullModeNames) {
		return invalid("cull mode", m, "out of range")
	}
	d.props.CullMode = m
	return nil
}

func (d *Draft) SetBlendMode(m BlendMode) error {
	if err := d.writable(); err != nil {
		return err
	}
	if int(m) >= len(blendModeNames) {
		return invalid("blend mode", m, "out of range")
	}
	d.props.BlendMode = m
	return nil
}

// SetTexture binds ref to slot. A zero ref clears the slot.
func (d *Draft) SetTexture(slot string, ref TextureRef) error {
	if err := d.writable(); err != nil {
		return err
	}
	if err := checkTextureSlot(slot); err != nil {
		return err
	}
	if !d.texturesOwned {
		d.textures = maps.Clone(d.textures)
		if d.textures == nil {
			d.textures = make(map[string]TextureRef)
		}
		d.texturesOwned = true
	}
	if ref == 0 {
		delete(d.textures, slot)
		return nil
	}
	d.textures[slot] = ref
	return nil
}

func (d *Draft) SetColor(slot string, c Color) error {
	if err := d.writable(); err != nil {
		return err
	}
	if err := checkColorSlot(slot); err != nil {
		return err
	}
	if !d.colorsOwned {
		d.colors = maps.Clone(d.colors)
		if d.colors == nil {
			d.colors = make(map[string]Color)
		}
		d.colorsOwned = true
	}
	d.colors[slot] = c
	return nil
}
