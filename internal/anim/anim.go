// Package anim owns the frame loop: it composes the centered grid layout
// with the life board's cell state and writes highlighted frames to a
// Terminal until a key is pressed.
package anim

import (
	"time"

	"github.com/san-kum/glimmer/internal/grid"
	"github.com/san-kum/glimmer/internal/life"
	"github.com/san-kum/glimmer/internal/rng"
	"github.com/san-kum/glimmer/internal/sparkle"
	"github.com/san-kum/glimmer/internal/term"
)

// DefaultInterval is the pause between frames.
const DefaultInterval = 50 * time.Millisecond

// Animator renders frames onto a Terminal. The board, the layout, and the
// output sink are owned exclusively by the running loop; nothing here is
// safe for concurrent use.
type Animator struct {
	t        term.Terminal
	width    int
	height   int
	interval time.Duration
}

// New builds an Animator over t with the given grid geometry. A
// non-positive interval falls back to DefaultInterval.
func New(t term.Terminal, width, height int, interval time.Duration) *Animator {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Animator{t: t, width: width, height: height, interval: interval}
}

// Run animates text over a board seeded from seed until a keypress is
// observed. Terminal state (raw mode, cursor, colors) is restored on every
// exit path; an I/O error is returned only after restoration is attempted.
func (a *Animator) Run(seed rng.Seed, text string) (err error) {
	if err := a.t.EnterRaw(); err != nil {
		return err
	}
	defer func() {
		restoreErr := a.restore()
		if err == nil {
			err = restoreErr
		}
	}()

	if err := a.t.HideCursor(); err != nil {
		return err
	}
	if err := a.t.Clear(); err != nil {
		return err
	}

	board := life.New(seed, a.width, a.height)
	for {
		if err := a.frame(board, text); err != nil {
			return err
		}
		board.Tick()

		time.Sleep(a.interval)
		if a.t.PollKey(0) {
			return nil
		}
	}
}

// frame writes one full redraw: every grid cell's rune, with the background
// highlighted wherever the board cell at the same flat index is live.
func (a *Animator) frame(board *life.Board, text string) error {
	if err := a.t.MoveCursor(0, 0); err != nil {
		return err
	}

	layout := grid.New(text, a.width, a.height)
	cells := board.Cells()
	for i := 0; i < layout.Len(); i++ {
		bg := term.ColorDefault
		if cells[i] == life.Live {
			bg = term.ColorBrightWhite
		}
		if err := a.t.SetBackground(bg); err != nil {
			return err
		}
		if err := a.t.WriteString(string(layout.Next())); err != nil {
			return err
		}

		if i%a.width == a.width-1 {
			if err := a.t.SetBackground(term.ColorDefault); err != nil {
				return err
			}
			if err := a.t.MoveCursor(0, i/a.width+1); err != nil {
				return err
			}
		}
	}
	return a.t.Flush()
}

// Print renders the static mode: one decorated text block, no loop.
func (a *Animator) Print(seed rng.Seed, text string) error {
	if err := a.t.WriteString(sparkle.Decorate(seed, text)); err != nil {
		return err
	}
	return a.t.Flush()
}

func (a *Animator) restore() error {
	err := a.t.SetBackground(term.ColorDefault)
	if e := a.t.SetForeground(term.ColorDefault); err == nil {
		err = e
	}
	if e := a.t.ShowCursor(); err == nil {
		err = e
	}
	if e := a.t.Flush(); err == nil {
		err = e
	}
	if e := a.t.ExitRaw(); err == nil {
		err = e
	}
	return err
}
