// Package tui is the interactive front-end: the same frame semantics as the
// raw animator, carried by a bubbletea program instead of hand-written
// escape sequences. Any key quits; resizing reseeds a board at the new
// geometry.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/glimmer/internal/config"
	"github.com/san-kum/glimmer/internal/grid"
	"github.com/san-kum/glimmer/internal/life"
	"github.com/san-kum/glimmer/internal/rng"
)

var (
	liveStyle   = lipgloss.NewStyle().Background(lipgloss.Color("255")).Foreground(lipgloss.Color("16"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

type model struct {
	text     string
	stream   *rng.Stream
	board    *life.Board
	width    int
	height   int
	interval time.Duration

	generation int
}

func newModel(seed rng.Seed, text string, cfg *config.Config) model {
	stream := rng.New(seed)
	m := model{
		text:     text,
		stream:   stream,
		width:    cfg.Width,
		height:   cfg.Height,
		interval: cfg.Interval,
	}
	m.board = life.New(stream.DeriveSeed(), m.width, m.height)
	return m
}

type tickMsg time.Time

func (m model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m model) Init() tea.Cmd {
	return m.tick()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, tea.Quit
	case tea.WindowSizeMsg:
		// Leave the bottom row for the footer.
		m.width = msg.Width
		m.height = msg.Height - 1
		if m.height < 0 {
			m.height = 0
		}
		m.board = life.New(m.stream.DeriveSeed(), m.width, m.height)
		m.generation = 0
		return m, nil
	case tickMsg:
		m.board.Tick()
		m.generation++
		return m, m.tick()
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	layout := grid.New(m.text, m.width, m.height)
	cells := m.board.Cells()
	var run []rune
	var runLive bool

	flush := func() {
		if len(run) == 0 {
			return
		}
		if runLive {
			b.WriteString(liveStyle.Render(string(run)))
		} else {
			b.WriteString(string(run))
		}
		run = run[:0]
	}

	for i := 0; i < layout.Len(); i++ {
		live := cells[i] == life.Live
		if live != runLive {
			flush()
			runLive = live
		}
		run = append(run, layout.Next())
		if i%m.width == m.width-1 {
			flush()
			runLive = false
			b.WriteByte('\n')
		}
	}
	flush()

	b.WriteString(footerStyle.Render(fmt.Sprintf(
		"gen %d · %d×%d · %d alive · any key quits",
		m.generation, m.width, m.height, m.board.Population())))
	return b.String()
}

// Run starts the interactive program and blocks until it exits.
func Run(seed rng.Seed, text string, cfg *config.Config) error {
	p := tea.NewProgram(newModel(seed, text, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
