package converter

import (
	"testing"
)

func TestGenerateMIDIHeader(t *testing.T) {
	notes := []NoteEvent{
		{X: 0, Time: 0, Type: 1},
		{X: 128, Time: 500, Type: 1},
		{X: 256, Time: 1000, Type: 128, EndTime: 2000, HasEnd: true},
	}
	meta := &ChartMetadata{TimingPoints: []string{"0,500,4,2,0,40,1,0"}}

	data, err := GenerateMIDI(notes, meta, 4)
	if err != nil {
		t.Fatalf("GenerateMIDI() error = %v", err)
	}

	if len(data) < 14 {
		t.Fatalf("GenerateMIDI() produced %d bytes, too short for an SMF", len(data))
	}
	if string(data[:4]) != "MThd" {
		t.Errorf("header = % X, want MThd magic", data[:4])
	}
}

func TestGenerateMIDIEmptyChart(t *testing.T) {
	data, err := GenerateMIDI(nil, &ChartMetadata{}, 4)
	if err != nil {
		t.Fatalf("GenerateMIDI() error = %v", err)
	}
	if string(data[:4]) != "MThd" {
		t.Error("empty chart should still produce a valid SMF header")
	}
}

func TestGenerateMIDITempoFromTimingPoints(t *testing.T) {
	// 300 ms per beat = 200 BPM = 300000 microseconds per beat
	meta := &ChartMetadata{TimingPoints: []string{"24,300,4,2,0,40,1,0"}}

	data, err := GenerateMIDI([]NoteEvent{{X: 0, Time: 100}}, meta, 4)
	if err != nil {
		t.Fatalf("GenerateMIDI() error = %v", err)
	}

	want := []byte{0xFF, 0x51, 0x03, 0x04, 0x93, 0xE0} // 0x0493E0 = 300000
	if !containsBytes(data, want) {
		t.Errorf("tempo meta event % X not found in output", want)
	}
}

func containsBytes(data, sub []byte) bool {
	for i := 0; i+len(sub) <= len(data); i++ {
		match := true
		for j := range sub {
			if data[i+j] != sub[j] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
