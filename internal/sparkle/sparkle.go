// Package sparkle decorates a multi-line text block with randomly placed
// star glyphs, framed by rainbow border lines. Decoration is a pure function
// of (seed, text): the same inputs always produce byte-identical output.
package sparkle

import (
	"strings"

	"github.com/san-kum/glimmer/internal/rng"
)

const border = '🌈'

var (
	glyphs       = []rune{'⭐', '🌟', '☀'}
	glyphWeights = []uint64{15, 3, 1}

	// Each side of each line gets a glyph with probability 3/5.
	sideNum, sideDen uint32 = 3, 5
)

// Decorate overlays star glyphs onto the whitespace of text and frames it
// with border lines. Width is proportional to the longest line:
// longest + longest/10 + 2 runes. Already-decorated text can be decorated
// again; glyphs accumulate, there is no round-trip law.
func Decorate(seed rng.Seed, text string) string {
	root := rng.New(seed)
	// Independent sub-streams keep the three kinds of decisions from
	// shifting each other's sequences.
	sideStream := rng.New(root.DeriveSeed())
	posStream := rng.New(root.DeriveSeed())
	glyphStream := rng.New(root.DeriveSeed())

	weighted, err := rng.NewWeighted(glyphWeights)
	if err != nil {
		panic(err) // static weights, cannot happen
	}
	nextGlyph := func() rune {
		return glyphs[weighted.Sample(glyphStream)]
	}

	lines := splitLines(text)
	width := 0
	for _, line := range lines {
		if n := len([]rune(line)); n > width {
			width = n
		}
	}
	if len(lines) > 0 {
		width += width/10 + 2
	}

	var b strings.Builder
	writeBorder(&b, width)

	for _, line := range lines {
		var lb strings.Builder
		lb.WriteByte(' ')

		lineLen := len([]rune(line))
		leading := leadingSpaces(line)

		// The guard comes before the draw: a line with no leading run must
		// not consume a side decision, and Intn(0) is a domain error.
		if leading > 0 && sideStream.Bool(sideNum, sideDen) {
			pos := posStream.Intn(leading)
			lb.WriteString(strings.Repeat(" ", pos))
			lb.WriteRune(nextGlyph())
			lb.WriteString(strings.Repeat(" ", leading-pos-1))
			lb.WriteString(line[leading:])
		} else {
			lb.WriteString(line)
		}

		if sideStream.Bool(sideNum, sideDen) {
			// width >= lineLen+2 always holds, so the range is never empty.
			pos := posStream.Intn(width - lineLen)
			lb.WriteString(strings.Repeat(" ", pos))
			lb.WriteRune(nextGlyph())
		}

		b.WriteString(strings.TrimRight(lb.String(), " "))
		b.WriteByte('\n')
	}

	writeBorder(&b, width)
	return b.String()
}

func writeBorder(b *strings.Builder, width int) {
	b.WriteRune(border)
	if width > 2 {
		b.WriteString(strings.Repeat(" ", width-2))
	}
	b.WriteRune(border)
	b.WriteByte('\n')
}

// splitLines matches the line view used for width computation: the final
// newline is a terminator, not a separator, and empty input has no lines.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func leadingSpaces(line string) int {
	n := 0
	for n < len(line) && line[n] == ' ' {
		n++
	}
	return n
}
