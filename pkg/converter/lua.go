package converter

import (
	"fmt"
	"strings"
)

// Vectra note tuple constants: every converted note is rendered as a normal
// note at fixed speed. Hold notes are flattened to ordinary notes for now;
// populating the slider length for bit-128 notes is a known extension point.
const (
	LuaNoteType   = 1   // 0 = none, 1 = normal, 2 = reverse, 3 = bad
	LuaNoteSpeed  = 400
	LuaSliderLen  = 0
	DifficultyTag = "Converted"
	PorterTag     = "osu-converter"
)

// BuildChart assembles the render target for a map.lua file.
// Notes are expected to be time-sorted already.
func BuildChart(title, songPath string, notes []NoteEvent) *OutputChart {
	length := 0
	if len(notes) > 0 {
		maxTime := 0
		for _, n := range notes {
			if e := n.Endpoint(); e > maxTime {
				maxTime = e
			}
		}
		length = maxTime/1000 + 1
	}

	return &OutputChart{
		Title:      title,
		SongPath:   strings.ReplaceAll(songPath, "\\", "/"),
		Background: fmt.Sprintf("maps/%s/bg.jpg", title),
		Difficulty: DifficultyTag,
		Porter:     PorterTag,
		Length:     length,
		Notes:      notes,
	}
}

// GenerateLua renders a chart as Vectra map.lua source text
func GenerateLua(chart *OutputChart, layout Layout) string {
	var b strings.Builder

	b.WriteString("map = { }\n\n")

	writeAccessor(&b, "getBackground", fmt.Sprintf("%q", chart.Background))
	writeAccessor(&b, "getTitle", fmt.Sprintf("%q", chart.Title))
	writeAccessor(&b, "getDifficult", fmt.Sprintf("%q", chart.Difficulty))
	writeAccessor(&b, "getPorter", fmt.Sprintf("%q", chart.Porter))
	writeAccessor(&b, "getSong", fmt.Sprintf("%q", chart.SongPath))
	writeAccessor(&b, "getLength", fmt.Sprintf("%d", chart.Length))

	b.WriteString("function map:getNotes()\n")
	b.WriteString("  -- (0 = none, 1 = normal, 2 = reverse, 3 = bad), (448 = up, 64 = down, 192 = left, 320 = right), speed, slider length, milliseconds to spawn\n")
	b.WriteString("  return {\n")
	for _, n := range chart.Notes {
		fmt.Fprintf(&b, "    {%d, %d, %d, %d, %d},\n",
			LuaNoteType, layout.ColumnX(n.X), LuaNoteSpeed, LuaSliderLen, n.Time)
	}
	b.WriteString("  }\nend\n\n")

	b.WriteString("return map\n")

	return b.String()
}

func writeAccessor(b *strings.Builder, name, value string) {
	fmt.Fprintf(b, "function map:%s()\n  return %s\nend\n\n", name, value)
}
