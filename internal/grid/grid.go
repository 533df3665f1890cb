// Package grid reflows a multi-line text block into a fixed width×height
// character grid, centered with blank margins. The layout is produced
// lazily, one rune at a time; nothing is materialized.
package grid

import "unicode/utf8"

// Layout yields the cells of the centered grid in row-major order. Next is
// valid exactly Len() times; the sequence is finite and not restartable, so
// build a fresh Layout to replay a frame.
type Layout struct {
	text   string
	offset int // byte position of the next source rune

	width, height int
	topMargin     int
	leftMargin    int

	idx     int
	pastEnd bool // consumed this source line's newline; pad until next row
}

// New builds a layout placing text centered inside a width×height grid.
// Content wider or taller than the grid is silently clipped, never wrapped.
func New(text string, width, height int) *Layout {
	return &Layout{
		text:       text,
		width:      width,
		height:     height,
		topMargin:  margin(height, lineCount(text)),
		leftMargin: margin(width, longestLine(text)),
	}
}

// Len reports how many cells the layout yields.
func (l *Layout) Len() int {
	return l.width * l.height
}

// Next returns the next grid cell. Behavior after Len() calls is undefined.
func (l *Layout) Next() rune {
	c := ' '
	switch {
	case l.idx/l.width < l.topMargin:
		// top margin row
	case l.idx%l.width < l.leftMargin:
		// left margin column; the next content cell starts a new line
		l.pastEnd = false
	case l.pastEnd:
		// right margin, past this line's real content
	default:
		if r, ok := l.nextRune(); ok {
			if r == '\n' {
				l.pastEnd = true
			} else {
				c = r
			}
		}
		// source exhausted: bottom margin
	}
	l.idx++
	return c
}

func (l *Layout) nextRune() (rune, bool) {
	if l.offset >= len(l.text) {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(l.text[l.offset:])
	l.offset += size
	return r, true
}

func margin(max, content int) int {
	if content >= max {
		return 0
	}
	return (max - content) / 2
}

func lineCount(text string) int {
	n := 1
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			n++
		}
	}
	return n
}

// longestLine measures the widest line in runes, treating a conceptual
// trailing newline as the final terminator so the last line counts even
// without one.
func longestLine(text string) int {
	max, cur := 0, 0
	for _, r := range text {
		if r == '\n' {
			if cur > max {
				max = cur
			}
			cur = 0
		} else {
			cur++
		}
	}
	if cur > max {
		max = cur
	}
	return max
}
