package material

import (
	"fmt"
	"maps"
	"math"
	"sync"

	"github.com/gekko3d/shading/logging"
)

// Handle identifies a live material. The low 32 bits hold the slot index plus
// one, the high bits hold the slot generation, so a handle value is never
// handed out twice and zero is never valid.
type Handle int64

const (
	maxGeneration = math.MaxInt32
	maxSlots      = math.MaxUint32 - 1
)

func makeHandle(index uint32, gen uint32) Handle {
	return Handle(int64(gen)<<32 | int64(index+1))
}

func (h Handle) slot() (index uint32, gen uint32, ok bool) {
	low := uint32(uint64(h))
	if low == 0 {
		return 0, 0, false
	}
	return low - 1, uint32(uint64(h) >> 32), true
}

func (h Handle) String() string {
	index, gen, ok := h.slot()
	if !ok {
		return "material#nil"
	}
	return fmt.Sprintf("material#%d.%d", index, gen)
}

type slot struct {
	gen uint32
	mat *Material
}

// Table owns every material instance and maps handles to them. The table
// lock only covers slot lookup, insert and erase; material state has its
// own synchronization.
type Table struct {
	mu    sync.RWMutex
	slots []slot
	free  []uint32
	live  int

	capacity      int
	defaults      Properties
	defaultColors map[string]Color
	log           logging.Logger
}

type TableOption func(*Table)

// WithCapacity bounds the number of live materials. Zero means unbounded.
func WithCapacity(n int) TableOption {
	return func(t *Table) { t.capacity = n }
}

// WithDefaults sets the attributes new materials start from.
func WithDefaults(props Properties, colors map[string]Color) TableOption {
	return func(t *Table) {
		t.defaults = props
		t.defaultColors = maps.Clone(colors)
	}
}

func WithLogger(l logging.Logger) TableOption {
	return func(t *Table) { t.log = logging.OrNop(l) }
}

func NewTable(opts ...TableOption) (*Table, error) {
	t := &Table{
		defaults: DefaultProperties(),
		log:      logging.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.capacity < 0 {
		return nil, fmt.Errorf("material: negative table capacity %d", t.capacity)
	}
	if err := t.defaults.Validate(); err != nil {
		return nil, fmt.Errorf("material: table defaults: %w", err)
	}
	for name := range t.defaultColors {
		if err := checkColorSlot(name); err != nil {
			return nil, fmt.Errorf("material: table default colors: %w", err)
		}
	}
	return t, nil
}

// Create allocates a material with the table defaults.
func (t *Table) Create() (Handle, *Material, error) {
	m := NewWithDefaults(t.defaults, t.defaultColors)

	t.mu.Lock()
	if t.capacity > 0 && t.live >= t.capacity {
		t.mu.Unlock()
		return 0, nil, fmt.Errorf("%w: %d materials live", ErrAllocationFailure, t.capacity)
	}
	var index uint32
	if n := len(t.free); n > 0 {
		index = t.free[n-1]
		t.free = t.free[:n-1]
	} else {
		if len(t.slots) >= maxSlots {
			t.mu.Unlock()
			return 0, nil, fmt.Errorf("%w: handle space exhausted", ErrAllocationFailure)
		}
		index = uint32(len(t.slots))
		t.slots = append(t.slots, slot{})
	}
	s := &t.slots[index]
	s.mat = m
	h := makeHandle(index, s.gen)
	t.live++
	t.mu.Unlock()

	t.log.Debugf("created %s (%s)", h, m.ID())
	return h, m, nil
}

// Resolve returns the live material for h.
func (t *Table) Resolve(h Handle) (*Material, error) {
	index, gen, ok := h.slot()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidHandle, h)
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	if int(index) >= len(t.slots) {
		return nil, fmt.Errorf("%w: %s never issued", ErrInvalidHandle, h)
	}
	s := t.slots[index]
	if s.mat == nil || s.gen != gen {
		return nil, fmt.Errorf("%w: %s destroyed", ErrInvalidHandle, h)
	}
	return s.mat, nil
}

// Destroy releases the material behind h. Zero, unknown and already destroyed
// handles are ignored; the result reports whether anything was released.
func (t *Table) Destroy(h Handle) bool {
	index, gen, ok := h.slot()
	if !ok {
		return false
	}

	t.mu.Lock()
	if int(index) >= len(t.slots) {
		t.mu.Unlock()
		return false
	}
	s := &t.slots[index]
	if s.mat == nil || s.gen != gen {
		t.mu.Unlock()
		return false
	}
	m := s.mat
	s.mat = nil
	t.live--
	if s.gen < maxGeneration {
		s.gen++
		t.free = append(t.free, index)
	} else {
		// generation space used up, the slot is retired
		t.log.Warnf("retiring material slot %d", index)
	}
	m.markDestroyed()
	t.mu.Unlock()

	t.log.Debugf("destroyed %s (%s)", h, m.ID())
	return true
}

// Len returns the number of live materials.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.live
}

// Handles returns the live handles in slot order.
func (t *Table) Handles() []Handle {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]Handle, 0, t.live)
	for i, s := range t.slots {
		if s.mat != nil {
			out = append(out, makeHandle(uint32(i), s.gen))
		}
	}
	return out
}
