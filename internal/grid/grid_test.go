package grid

import (
	"reflect"
	"testing"
)

func collect(l *Layout) []rune {
	out := make([]rune, 0, l.Len())
	for i := 0; i < l.Len(); i++ {
		out = append(out, l.Next())
	}
	return out
}

func TestLayoutCentering(t *testing.T) {
	tests := []struct {
		name string
		text string
		w, h int
		want []rune
	}{
		{"empty text zero grid", "", 0, 0, []rune{}},
		{"content zero grid", "a", 0, 0, []rune{}},
		{"exact fit", "a", 1, 1, []rune{'a'}},
		{"tall grid", "a", 2, 3, []rune{' ', ' ', 'a', ' ', ' ', ' '}},
		{"wide grid", "a", 3, 2, []rune{' ', 'a', ' ', ' ', ' ', ' '}},
		{"square grid", "a", 3, 3, []rune{' ', ' ', ' ', ' ', 'a', ' ', ' ', ' ', ' '}},
		{"two lines", "a\nb", 4, 3, []rune{' ', 'a', ' ', ' ', ' ', 'b', ' ', ' ', ' ', ' ', ' ', ' '}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(New(tt.text, tt.w, tt.h))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %q, want %q", string(got), string(tt.want))
			}
		})
	}
}

func TestLayoutYieldsExactlyLen(t *testing.T) {
	texts := []string{"", "x", "hello\nworld", "wider than the grid for sure\nand taller\nthan\nit\ntoo\nby\nfar"}
	for _, text := range texts {
		l := New(text, 5, 3)
		if l.Len() != 15 {
			t.Fatalf("Len() = %d, want 15", l.Len())
		}
		got := collect(l)
		if len(got) != 15 {
			t.Errorf("text %q yielded %d cells", text, len(got))
		}
	}
}

func TestLayoutClipsOversizedContent(t *testing.T) {
	// Content wider and taller than the grid: margins floor at zero, the
	// source stream keeps feeding cells in order, and everything past the
	// grid area is dropped without error.
	got := collect(New("abcdef\nghijkl\nmnopqr", 3, 2))
	want := []rune{'a', 'b', 'c', 'd', 'e', 'f'}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %q, want %q", string(got), string(want))
	}
}

func TestLayoutNotRestartable(t *testing.T) {
	l := New("a", 1, 1)
	if got := l.Next(); got != 'a' {
		t.Fatalf("first pass got %q", got)
	}
	// A fresh instance replays; the old one is spent.
	if got := New("a", 1, 1).Next(); got != 'a' {
		t.Errorf("fresh layout got %q", got)
	}
}

func TestLongestLine(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"\n", 0},
		{"1\n", 1},
		{"\n1", 1},
		{"ab\ncdef\ng", 4},
		{"⭐⭐⭐", 3}, // runes, not bytes
	}
	for _, tt := range tests {
		if got := longestLine(tt.text); got != tt.want {
			t.Errorf("longestLine(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestLineCount(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 1},
		{"a", 1},
		{"a\nb", 2},
		{"a\nb\n", 3},
	}
	for _, tt := range tests {
		if got := lineCount(tt.text); got != tt.want {
			t.Errorf("lineCount(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}
