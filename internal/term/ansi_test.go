package term

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func outputFile(t *testing.T) *os.File {
	t.Helper()
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func readBack(t *testing.T, f *os.File) string {
	t.Helper()
	data, err := os.ReadFile(f.Name())
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestANSIEscapes(t *testing.T) {
	out := outputFile(t)
	a := NewANSI(os.Stdin, out)

	if err := a.Clear(); err != nil {
		t.Fatal(err)
	}
	if err := a.MoveCursor(0, 0); err != nil {
		t.Fatal(err)
	}
	if err := a.MoveCursor(4, 2); err != nil {
		t.Fatal(err)
	}
	if err := a.SetBackground(ColorBrightWhite); err != nil {
		t.Fatal(err)
	}
	if err := a.SetBackground(ColorDefault); err != nil {
		t.Fatal(err)
	}
	if err := a.WriteString("x"); err != nil {
		t.Fatal(err)
	}
	if err := a.Flush(); err != nil {
		t.Fatal(err)
	}

	want := "\033[2J\033[H" + "\033[1;1H" + "\033[3;5H" + "\033[107m" + "\033[49m" + "x"
	if got := readBack(t, out); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestANSIBuffersUntilFlush(t *testing.T) {
	out := outputFile(t)
	a := NewANSI(os.Stdin, out)

	if err := a.WriteString("buffered"); err != nil {
		t.Fatal(err)
	}
	if got := readBack(t, out); got != "" {
		t.Errorf("wrote %q before flush", got)
	}
	if err := a.Flush(); err != nil {
		t.Fatal(err)
	}
	if got := readBack(t, out); got != "buffered" {
		t.Errorf("got %q after flush", got)
	}
}

func TestANSISizeFallback(t *testing.T) {
	// A regular file is not a tty; the hardcoded geometry applies.
	out := outputFile(t)
	a := NewANSI(os.Stdin, out)
	w, h := a.Size()
	if w != fallbackCols || h != fallbackRows {
		t.Errorf("Size() = %dx%d, want %dx%d", w, h, fallbackCols, fallbackRows)
	}
}

func TestANSIPollKey(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	a := NewANSI(r, outputFile(t))

	if a.PollKey(10 * time.Millisecond) {
		t.Error("poll reported a key on an idle input")
	}

	if _, err := w.Write([]byte{'q'}); err != nil {
		t.Fatal(err)
	}
	if !a.PollKey(time.Second) {
		t.Error("poll missed a pending key")
	}

	// Input going away counts as a key so the caller's loop terminates.
	w.Close()
	if !a.PollKey(time.Second) {
		t.Error("poll did not report closed input")
	}
}

func TestANSIExitRawWithoutEnter(t *testing.T) {
	a := NewANSI(os.Stdin, outputFile(t))
	if err := a.ExitRaw(); err != nil {
		t.Errorf("ExitRaw before EnterRaw: %v", err)
	}
}
