package layouts

import (
	"testing"
)

func TestNewClampsKeyCount(t *testing.T) {
	tests := []struct {
		keys     int
		expected int
	}{
		{4, 4},
		{5, 5},
		{6, 6},
		{7, 7},
		{0, 4},
		{3, 4},
		{8, 4},
		{-1, 4},
	}

	for _, tt := range tests {
		l := New(tt.keys)
		if l.Keys() != tt.expected {
			t.Errorf("New(%d).Keys() = %d, want %d", tt.keys, l.Keys(), tt.expected)
		}
	}
}

func TestManiaName(t *testing.T) {
	if name := New(4).Name(); name != "4K" {
		t.Errorf("Name() = %q, want %q", name, "4K")
	}
	if name := New(7).Name(); name != "7K" {
		t.Errorf("Name() = %q, want %q", name, "7K")
	}
}

func TestManiaColumnX(t *testing.T) {
	l := New(4)

	tests := []struct {
		x, expected int
	}{
		{0, 64},
		{127, 64},
		{128, 192},
		{511, 448},
	}

	for _, tt := range tests {
		if got := l.ColumnX(tt.x); got != tt.expected {
			t.Errorf("ColumnX(%d) = %d, want %d", tt.x, got, tt.expected)
		}
	}
}

func TestSupported(t *testing.T) {
	counts := Supported()
	want := []int{4, 5, 6, 7}

	if len(counts) != len(want) {
		t.Fatalf("Supported() returned %d counts, want %d", len(counts), len(want))
	}
	for i, k := range want {
		if counts[i] != k {
			t.Errorf("Supported()[%d] = %d, want %d", i, counts[i], k)
		}
	}
}
