// Package converter provides conversion from osu!mania charts to Vectra map files
package converter

// NoteEvent represents a single playable note parsed from a chart
type NoteEvent struct {
	X       int  // Source horizontal pixel position (0..playfield width)
	Time    int  // Milliseconds from chart start
	Type    int  // Raw osu type bitmask (bit 128 = hold note)
	EndTime int  // Milliseconds when a hold ends
	HasEnd  bool // True when EndTime was present in the source
}

// IsHold reports whether the note carries the osu mania hold flag
func (n NoteEvent) IsHold() bool {
	return n.Type&HoldNoteFlag != 0
}

// Endpoint returns the last millisecond the note occupies
func (n NoteEvent) Endpoint() int {
	if n.HasEnd {
		return n.EndTime
	}
	return n.Time
}

// ChartMetadata holds auxiliary data extracted during parse
type ChartMetadata struct {
	Title         string   // [Metadata] Title, empty if absent
	AudioFilename string   // [General] AudioFilename, empty if absent
	TimingPoints  []string // Raw [TimingPoints] lines, kept for BPM derivation
}

// OutputChart is the render target for a Vectra map.lua file
type OutputChart struct {
	Title      string
	SongPath   string
	Background string
	Difficulty string
	Porter     string
	Length     int // Whole seconds
	Notes      []NoteEvent
}

// Layout interface for key-count-specific column handling
type Layout interface {
	Name() string
	Keys() int
	ColumnX(x int) int
}

// Converter handles chart conversions for a given key layout
type Converter struct {
	layout Layout
}

// New creates a new Converter with the specified layout
func New(layout Layout) *Converter {
	return &Converter{layout: layout}
}

// GetLayout returns the current layout
func (c *Converter) GetLayout() Layout {
	return c.layout
}

// SetLayout sets the layout for conversion
func (c *Converter) SetLayout(layout Layout) {
	c.layout = layout
}
