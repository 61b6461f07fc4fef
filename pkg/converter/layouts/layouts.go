// Package layouts provides key-count-specific column layouts
package layouts

import (
	"fmt"

	"github.com/vectra-eng/osu2vectra/pkg/converter"
)

// Supported mania key counts
const (
	MinKeys     = 4
	MaxKeys     = 7
	DefaultKeys = 4
)

// Mania implements the Layout interface for an N-key mania chart
type Mania struct {
	keys int
}

// New creates a layout for the given key count. Counts outside the
// supported 4..7 range fall back to the 4-key layout.
func New(keys int) *Mania {
	if keys < MinKeys || keys > MaxKeys {
		keys = DefaultKeys
	}
	return &Mania{keys: keys}
}

// Name returns the layout name, e.g. "4K"
func (m *Mania) Name() string {
	return fmt.Sprintf("%dK", m.keys)
}

// Keys returns the number of columns
func (m *Mania) Keys() int {
	return m.keys
}

// ColumnX maps a source x coordinate to the Vectra x for this layout
func (m *Mania) ColumnX(x int) int {
	return converter.MapColumnX(x, m.keys)
}

// Supported returns the key counts this package provides layouts for
func Supported() []int {
	counts := make([]int, 0, MaxKeys-MinKeys+1)
	for k := MinKeys; k <= MaxKeys; k++ {
		counts = append(counts, k)
	}
	return counts
}
