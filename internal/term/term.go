// Package term abstracts the terminal operations the renderer needs. The
// animation core depends only on the Terminal interface; the ANSI
// implementation lives alongside it, and tests substitute a recording fake.
package term

import "time"

// Color selects a background or foreground color.
type Color int

const (
	// ColorDefault resets to the terminal's own color.
	ColorDefault Color = iota
	ColorBrightWhite
	ColorBlack
)

// Terminal is the capability set the renderer draws through.
type Terminal interface {
	Clear() error
	MoveCursor(col, row int) error
	SetBackground(c Color) error
	SetForeground(c Color) error
	WriteString(s string) error
	Flush() error

	EnterRaw() error
	ExitRaw() error
	HideCursor() error
	ShowCursor() error

	// PollKey reports whether a keypress is ready, waiting at most timeout.
	// A zero timeout polls without blocking.
	PollKey(timeout time.Duration) bool

	// Size returns the terminal geometry as (columns, rows).
	Size() (int, int)
}
