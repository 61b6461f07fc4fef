package converter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Format represents a file format
type Format string

const (
	FormatOsu     Format = "osu"
	FormatLua     Format = "lua"
	FormatMIDI    Format = "midi"
	FormatUnknown Format = "unknown"
)

// DetectFormat detects the format of a file based on extension
func DetectFormat(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".osu":
		return FormatOsu
	case ".lua":
		return FormatLua
	case ".mid", ".midi":
		return FormatMIDI
	default:
		return FormatUnknown
	}
}

// SortNotes orders notes by spawn time ascending. The sort is stable so
// notes sharing a time keep their original relative order.
func SortNotes(notes []NoteEvent) {
	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].Time < notes[j].Time
	})
}

// OsuToLua converts osu chart text into Vectra map.lua source text.
// The chart's embedded metadata is returned alongside so callers can
// report it.
func (c *Converter) OsuToLua(osuText, title, songPath string) (string, *ChartMetadata, error) {
	if c.layout == nil {
		return "", nil, errors.New("no layout configured")
	}
	notes, meta := ParseOsu(osuText)
	SortNotes(notes)
	chart := BuildChart(title, songPath, notes)
	return GenerateLua(chart, c.layout), meta, nil
}

// OsuToMIDI converts osu chart text into a Standard MIDI File preview
func (c *Converter) OsuToMIDI(osuText string) ([]byte, error) {
	if c.layout == nil {
		return nil, errors.New("no layout configured")
	}
	notes, meta := ParseOsu(osuText)
	SortNotes(notes)
	return GenerateMIDI(notes, meta, c.layout.Keys())
}

// ConvertFile converts an .osu file and writes map.lua into outputDir,
// creating the directory if needed. Returns the written file path and the
// chart's embedded metadata.
func (c *Converter) ConvertFile(inputPath, outputDir, title string) (string, *ChartMetadata, error) {
	if c.layout == nil {
		return "", nil, errors.New("no layout configured")
	}

	notes, meta, err := ParseOsuFile(inputPath)
	if err != nil {
		return "", nil, err
	}

	if title == "" {
		base := filepath.Base(inputPath)
		title = strings.TrimSuffix(base, filepath.Ext(base))
	}
	songPath := fmt.Sprintf("maps/%s/song.mp3", title)

	SortNotes(notes)
	chart := BuildChart(title, songPath, notes)
	luaText := GenerateLua(chart, c.layout)

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	outPath := filepath.Join(outputDir, "map.lua")
	if err := os.WriteFile(outPath, []byte(luaText), 0644); err != nil {
		return "", nil, fmt.Errorf("failed to write output file: %w", err)
	}

	return outPath, meta, nil
}

// GetSupportedConversions returns a list of supported conversion paths
func GetSupportedConversions() []string {
	return []string{
		"osu -> lua",
		"osu -> midi",
	}
}
