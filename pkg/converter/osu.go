package converter

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// osu format constants
const (
	HoldNoteFlag   = 128 // Type bit marking a mania hold note
	PlayfieldWidth = 512 // Nominal osu playfield width in pixels
	MinHitFields   = 5   // x,y,time,type,hitSound at minimum
)

var holdEndRe = regexp.MustCompile(`^(\d+):`)

// ParseOsuFile reads an .osu file and returns its notes and metadata
func ParseOsuFile(filename string) ([]NoteEvent, *ChartMetadata, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read osu file: %w", err)
	}
	notes, meta := ParseOsu(string(data))
	return notes, meta, nil
}

// ParseOsu parses osu chart text and returns the hit objects plus metadata.
//
// Parsing is deliberately lenient: hit-object lines with fewer than five
// comma-separated fields are dropped, unparseable hold end times leave the
// end time absent, and unknown sections are skipped. A partially malformed
// chart never aborts the conversion, so no error is returned.
func ParseOsu(text string) ([]NoteEvent, *ChartMetadata) {
	notes := make([]NoteEvent, 0, 256)
	meta := &ChartMetadata{}

	section := ""
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			section = line[1 : len(line)-1]
			continue
		}

		switch section {
		case "HitObjects":
			if note, ok := parseHitObject(line); ok {
				notes = append(notes, note)
			}
		case "TimingPoints":
			meta.TimingPoints = append(meta.TimingPoints, line)
		case "General":
			if v, ok := parseKeyValue(line, "AudioFilename"); ok {
				meta.AudioFilename = v
			}
		case "Metadata":
			if v, ok := parseKeyValue(line, "Title"); ok {
				meta.Title = v
			}
		}
	}

	return notes, meta
}

// parseHitObject parses one [HitObjects] line: x,y,time,type,hitSound,objectParams,...
// Returns ok=false for lines that do not form a well-formed note.
func parseHitObject(line string) (NoteEvent, bool) {
	parts := strings.Split(line, ",")
	if len(parts) < MinHitFields {
		return NoteEvent{}, false
	}

	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return NoteEvent{}, false
	}
	time, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return NoteEvent{}, false
	}
	typeVal, err := strconv.Atoi(strings.TrimSpace(parts[3]))
	if err != nil {
		return NoteEvent{}, false
	}

	note := NoteEvent{X: x, Time: time, Type: typeVal}

	// Mania hold notes carry the end time in the sixth field as "endTime:..."
	if typeVal&HoldNoteFlag != 0 && len(parts) >= 6 {
		if m := holdEndRe.FindStringSubmatch(parts[5]); m != nil {
			if end, err := strconv.Atoi(m[1]); err == nil {
				note.EndTime = end
				note.HasEnd = true
			}
		}
	}

	return note, true
}

// parseKeyValue matches "Key: value" lines from [General]/[Metadata] sections
func parseKeyValue(line, key string) (string, bool) {
	k, v, found := strings.Cut(line, ":")
	if !found || strings.TrimSpace(k) != key {
		return "", false
	}
	return strings.TrimSpace(v), true
}

// DeriveBPM extracts the tempo from the first uninherited timing point.
// Timing point lines look like "offset,beatLength,..." where a positive
// beat length is milliseconds per beat. Returns fallback when nothing usable
// is found.
func DeriveBPM(meta *ChartMetadata, fallback float64) float64 {
	if meta == nil {
		return fallback
	}
	for _, line := range meta.TimingPoints {
		parts := strings.Split(line, ",")
		if len(parts) < 2 {
			continue
		}
		beatLen, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil || beatLen <= 0 {
			continue
		}
		return 60000.0 / beatLen
	}
	return fallback
}
