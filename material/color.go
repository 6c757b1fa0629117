package material

import (
	"math"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/colornames"
)

// Color is a packed ARGB value, alpha in the top byte.
type Color uint32

const (
	ColorWhite Color = 0xFFFFFFFF
	ColorBlack Color = 0xFF000000
)

// ColorFromInt64 accepts both sign-extended 32-bit color ints and plain
// unsigned ARGB values. Anything wider than 32 bits is rejected.
func ColorFromInt64(v int64) (Color, error) {
	if v < math.MinInt32 || v > math.MaxUint32 {
		return 0, invalid("color", v, "does not fit in 32-bit ARGB")
	}
	return Color(uint32(v)), nil
}

// ColorFromRGBA packs 8-bit channels.
func ColorFromRGBA(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

func (c Color) A() uint8 { return uint8(c >> 24) }
func (c Color) R() uint8 { return uint8(c >> 16) }
func (c Color) G() uint8 { return uint8(c >> 8) }
func (c Color) B() uint8 { return uint8(c) }

// Vec4 returns the color as normalized RGBA.
func (c Color) Vec4() mgl32.Vec4 {
	return mgl32.Vec4{
		float32(c.R()) / 255,
		float32(c.G()) / 255,
		float32(c.B()) / 255,
		float32(c.A()) / 255,
	}
}

// ParseColor accepts "#RRGGBB", "#AARRGGBB" and CSS color names.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, &AttributeError{Attribute: "color", Value: s, Reason: "bad hex"}
		}
		switch len(hex) {
		case 6:
			return Color(0xFF000000 | uint32(v)), nil
		case 8:
			return Color(uint32(v)), nil
		}
		return 0, &AttributeError{Attribute: "color", Value: s, Reason: "want 6 or 8 hex digits"}
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return ColorFromRGBA(c.R, c.G, c.B, c.A), nil
	}
	return 0, &AttributeError{Attribute: "color", Value: s, Reason: "unknown color name"}
}
