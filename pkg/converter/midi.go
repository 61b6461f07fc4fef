package converter

import (
	"bytes"
	"fmt"
	"sort"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// MIDI preview constants
const (
	TicksPerQuarter = 480
	DefaultBPM      = 120.0
	BaseNote        = 60  // C4, columns stack upward from here
	PreviewVelocity = 100
	TapNoteMs       = 125 // Duration for notes without an end time
)

// GenerateMIDI renders parsed notes as a single-track Standard MIDI File.
// Each chart note becomes a NoteOn/NoteOff pair with pitch BaseNote plus
// its column index. Hold notes sustain until their end time; plain notes
// get a fixed short duration. Tempo comes from the chart's timing points
// when one is usable.
func GenerateMIDI(notes []NoteEvent, meta *ChartMetadata, keys int) ([]byte, error) {
	bpm := DeriveBPM(meta, DefaultBPM)

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(TicksPerQuarter)

	var track smf.Track

	// Tempo meta event (FF 51 03, microseconds per beat)
	microsecondsPerBeat := uint32(60000000.0 / bpm)
	track.Add(0, smf.Message([]byte{
		0xFF, 0x51, 0x03,
		byte(microsecondsPerBeat >> 16),
		byte(microsecondsPerBeat >> 8),
		byte(microsecondsPerBeat),
	}))

	// Time signature (4/4)
	track.Add(0, smf.Message([]byte{0xFF, 0x58, 0x04, 0x04, 0x02, 0x18, 0x08}))

	// Milliseconds to ticks at the derived tempo
	ticksPerMs := float64(TicksPerQuarter) * bpm / 60000.0
	toTicks := func(ms int) uint32 {
		if ms < 0 {
			return 0
		}
		return uint32(float64(ms) * ticksPerMs)
	}

	type midiEvent struct {
		tick uint32
		on   bool
		key  uint8
	}

	events := make([]midiEvent, 0, len(notes)*2)
	for _, n := range notes {
		key := uint8(BaseNote + ColumnIndex(n.X, keys))
		endMs := n.Time + TapNoteMs
		if n.HasEnd && n.EndTime > n.Time {
			endMs = n.EndTime
		}
		events = append(events, midiEvent{tick: toTicks(n.Time), on: true, key: key})
		events = append(events, midiEvent{tick: toTicks(endMs), on: false, key: key})
	}

	// Stable so a NoteOff lands before a NoteOn sharing its tick
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].tick != events[j].tick {
			return events[i].tick < events[j].tick
		}
		return !events[i].on && events[j].on
	})

	channel := uint8(0)
	var currentTick uint32
	for _, ev := range events {
		delta := ev.tick - currentTick
		if ev.on {
			track.Add(delta, midi.NoteOn(channel, ev.key, PreviewVelocity))
		} else {
			track.Add(delta, midi.NoteOff(channel, ev.key))
		}
		currentTick = ev.tick
	}

	track.Close(0)

	if err := s.Add(track); err != nil {
		return nil, fmt.Errorf("failed to add track: %w", err)
	}

	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write MIDI: %w", err)
	}

	return buf.Bytes(), nil
}
