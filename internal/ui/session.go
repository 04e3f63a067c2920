// Package ui implements the interactive mirroring session: a source pane
// beside the two derived task views, with key bindings for toggling tasks,
// jumping to them, and inserting notes.
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/taskmirror/taskmirror/internal/host"
	tasksync "github.com/taskmirror/taskmirror/internal/sync"
	"github.com/taskmirror/taskmirror/models"
)

type focusArea int

const (
	focusSource focusArea = iota
	focusIncomplete
	focusComplete
)

// KeyMap defines the session key bindings.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Toggle   key.Binding
	Jump     key.Binding
	Note     key.Binding
	Refresh  key.Binding
	NextPane key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:   key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle task")),
		Jump:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "jump to task")),
		Note:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new note")),
		Refresh:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		NextPane: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next pane")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// syncTickMsg triggers a repaint so the panes pick up resyncs done by the
// controller's own schedule or the file watcher.
type syncTickMsg struct{}

// SessionModel is the bubbletea model for one mirroring session.
type SessionModel struct {
	Ctrl   *tasksync.Controller
	Host   *host.FileHost
	Opts   models.Options
	Status *StatusBuffer
	Keys   KeyMap

	focus     focusArea
	rows      map[focusArea]int // 0-based selection per task view
	srcCursor int               // 1-based line in the source pane
	width     int
	height    int
}

// NewSessionModel builds the model for an activated controller.
func NewSessionModel(ctrl *tasksync.Controller, h *host.FileHost, opts models.Options, status *StatusBuffer) SessionModel {
	return SessionModel{
		Ctrl:      ctrl,
		Host:      h,
		Opts:      opts,
		Status:    status,
		Keys:      DefaultKeyMap(),
		rows:      map[focusArea]int{focusIncomplete: 0, focusComplete: 0},
		srcCursor: 1,
	}
}

// Init schedules the repaint tick.
func (m SessionModel) Init() tea.Cmd {
	return m.tick()
}

func (m SessionModel) tick() tea.Cmd {
	interval := time.Duration(m.Opts.UpdateInterval) * time.Millisecond
	return tea.Tick(interval, func(time.Time) tea.Msg { return syncTickMsg{} })
}

// Update handles key and tick messages.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case syncTickMsg:
		return m, m.tick()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.Keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.Keys.NextPane):
			m.focus = (m.focus + 1) % 3
			return m, nil

		case key.Matches(msg, m.Keys.Up):
			m.move(-1)
			return m, nil

		case key.Matches(msg, m.Keys.Down):
			m.move(1)
			return m, nil

		case key.Matches(msg, m.Keys.Toggle):
			m.toggle()
			return m, nil

		case key.Matches(msg, m.Keys.Jump):
			m.jump()
			return m, nil

		case key.Matches(msg, m.Keys.Note):
			m.Ctrl.CreateNote()
			m.persist()
			m.srcCursor = m.Host.Cursor()
			m.focus = focusSource
			return m, nil

		case key.Matches(msg, m.Keys.Refresh):
			m.Ctrl.Resync()
			return m, nil
		}
	}
	return m, nil
}

func (m *SessionModel) move(delta int) {
	if m.focus == focusSource {
		m.srcCursor += delta
		if m.srcCursor < 1 {
			m.srcCursor = 1
		}
		if n := len(m.Host.SourceLines()); m.srcCursor > n && n > 0 {
			m.srcCursor = n
		}
		return
	}
	view := m.viewFor(m.focus)
	row := m.rows[m.focus] + delta
	if row < 0 {
		row = 0
	}
	if n := len(m.Host.ViewLines(view)); row >= n && n > 0 {
		row = n - 1
	}
	m.rows[m.focus] = row
}

func (m *SessionModel) toggle() {
	if m.focus == focusSource {
		m.Ctrl.HandleToggle(models.ViewSource, m.srcCursor)
	} else {
		m.Ctrl.HandleToggle(m.viewFor(m.focus), m.rows[m.focus]+1)
	}
	m.persist()
}

func (m *SessionModel) jump() {
	if m.focus == focusSource {
		return
	}
	m.Ctrl.HandleJump(m.viewFor(m.focus), m.rows[m.focus]+1)
	m.srcCursor = m.Host.Cursor()
	m.focus = focusSource
}

func (m *SessionModel) persist() {
	if err := m.Host.Persist(); err != nil {
		m.Status.Set(err.Error())
	}
}

func (m SessionModel) viewFor(f focusArea) models.View {
	if f == focusComplete {
		return models.ViewComplete
	}
	return models.ViewIncomplete
}

// View lays out the source pane, the two task views, and the status line.
func (m SessionModel) View() string {
	if m.width == 0 {
		return "loading..."
	}

	panelWidth := m.Opts.Width
	if panelWidth > m.width/2 {
		panelWidth = m.width / 2
	}
	sourceWidth := m.width - panelWidth - 6
	if sourceWidth < 10 {
		sourceWidth = 10
	}
	contentHeight := m.height - 4
	if contentHeight < 4 {
		contentHeight = 4
	}
	topHeight := m.Opts.TopHeight
	if topHeight > contentHeight-2 {
		topHeight = contentHeight / 2
	}
	bottomHeight := contentHeight - topHeight

	source := m.renderSource(sourceWidth, contentHeight)
	incomplete := m.renderView(models.ViewIncomplete, focusIncomplete, "Tasks", panelWidth, topHeight)
	complete := m.renderView(models.ViewComplete, focusComplete, "Done", panelWidth, bottomHeight)

	panel := lipgloss.JoinVertical(lipgloss.Left, incomplete, complete)
	body := lipgloss.JoinHorizontal(lipgloss.Top, source, panel)

	status := m.Status.Get()
	if status == "" {
		status = m.Host.Path()
	}
	help := StyleSubtle.Render("space toggle · enter jump · n note · tab pane · q quit")
	return body + "\n" + StyleStatus.Render(status) + "\n" + help
}

func (m SessionModel) renderSource(width, height int) string {
	lines := m.Host.SourceLines()
	inner := height - 2

	// Keep the cursor line within the visible window.
	start := 0
	if m.srcCursor-1 >= inner {
		start = m.srcCursor - inner
	}
	end := start + inner
	if end > len(lines) {
		end = len(lines)
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		text := fmt.Sprintf("%3d %s", i+1, lines[i])
		if i+1 == m.srcCursor && m.focus == focusSource {
			text = StyleSelected.Render(text)
		}
		b.WriteString(text + "\n")
	}

	style := StylePane
	if m.focus == focusSource {
		style = StylePaneFocused
	}
	return style.Width(width).Height(height).Render(strings.TrimRight(b.String(), "\n"))
}

func (m SessionModel) renderView(view models.View, area focusArea, title string, width, height int) string {
	lines := m.Host.ViewLines(view)
	sel := m.rows[area]

	var b strings.Builder
	b.WriteString(StyleTitle.Render(fmt.Sprintf("%s (%d)", title, len(lines))) + "\n")
	for i, line := range lines {
		if i == sel && m.focus == area {
			b.WriteString(StyleSelected.Render("> "+line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}

	style := StylePane
	if m.focus == area {
		style = StylePaneFocused
	}
	return style.Width(width).Height(height).Render(strings.TrimRight(b.String(), "\n"))
}
