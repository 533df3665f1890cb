package term

import (
	"bufio"
	"fmt"
	"os"
	"sync"
	"time"

	"golang.org/x/term"
)

const (
	escClear      = "\033[2J"
	escHome       = "\033[H"
	escHideCursor = "\033[?25l"
	escShowCursor = "\033[?25h"
	escBgDefault  = "\033[49m"
	escFgDefault  = "\033[39m"
)

// Fallback geometry when the size query fails (not a tty, tests, pipes).
const (
	fallbackCols = 50
	fallbackRows = 20
)

var bgCodes = map[Color]string{
	ColorDefault:     escBgDefault,
	ColorBrightWhite: "\033[107m",
	ColorBlack:       "\033[40m",
}

var fgCodes = map[Color]string{
	ColorDefault:     escFgDefault,
	ColorBrightWhite: "\033[97m",
	ColorBlack:       "\033[30m",
}

// ANSI drives a real terminal with escape sequences. Output is buffered and
// pushed out by Flush; input is consumed one byte at a time by a background
// reader so PollKey can time out without blocking on the file.
type ANSI struct {
	in      *os.File
	out     *os.File
	w       *bufio.Writer
	state   *term.State
	keys    chan byte
	readers sync.Once
}

// NewANSI wraps the given input and output files, typically os.Stdin and
// os.Stdout.
func NewANSI(in, out *os.File) *ANSI {
	return &ANSI{
		in:   in,
		out:  out,
		w:    bufio.NewWriter(out),
		keys: make(chan byte, 8),
	}
}

func (a *ANSI) Clear() error {
	_, err := a.w.WriteString(escClear + escHome)
	return err
}

func (a *ANSI) MoveCursor(col, row int) error {
	_, err := fmt.Fprintf(a.w, "\033[%d;%dH", row+1, col+1)
	return err
}

func (a *ANSI) SetBackground(c Color) error {
	_, err := a.w.WriteString(bgCodes[c])
	return err
}

func (a *ANSI) SetForeground(c Color) error {
	_, err := a.w.WriteString(fgCodes[c])
	return err
}

func (a *ANSI) WriteString(s string) error {
	_, err := a.w.WriteString(s)
	return err
}

func (a *ANSI) Flush() error {
	return a.w.Flush()
}

func (a *ANSI) EnterRaw() error {
	st, err := term.MakeRaw(int(a.in.Fd()))
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	a.state = st
	return nil
}

func (a *ANSI) ExitRaw() error {
	if a.state == nil {
		return nil
	}
	st := a.state
	a.state = nil
	return term.Restore(int(a.in.Fd()), st)
}

func (a *ANSI) HideCursor() error {
	return a.WriteString(escHideCursor)
}

func (a *ANSI) ShowCursor() error {
	return a.WriteString(escShowCursor)
}

// PollKey reports whether a byte is ready on the input. The reader
// goroutine starts on first use; end-of-input counts as a keypress so the
// animation loop still terminates when stdin goes away.
func (a *ANSI) PollKey(timeout time.Duration) bool {
	a.readers.Do(func() {
		go a.readKeys()
	})
	if timeout <= 0 {
		select {
		case <-a.keys:
			return true
		default:
			return false
		}
	}
	select {
	case <-a.keys:
		return true
	case <-time.After(timeout):
		return false
	}
}

func (a *ANSI) Size() (int, int) {
	cols, rows, err := term.GetSize(int(a.out.Fd()))
	if err != nil || cols <= 0 || rows <= 0 {
		return fallbackCols, fallbackRows
	}
	return cols, rows
}

func (a *ANSI) readKeys() {
	buf := make([]byte, 1)
	for {
		n, err := a.in.Read(buf)
		if err != nil {
			close(a.keys)
			return
		}
		if n > 0 {
			a.keys <- buf[0]
		}
	}
}
