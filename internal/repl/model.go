// ============================================================================
// inside - front end for a small expression language
// ============================================================================
//
// Package:     repl
// Description: Interactive line-by-line parser built on bubbletea
// Author:      dipakw
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package repl

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	mdwerror "github.com/dipakw/inside/foundation/core/error"
	mdwlog "github.com/dipakw/inside/foundation/core/log"
	"github.com/dipakw/inside/foundation/lang"
	"github.com/dipakw/inside/foundation/lang/diag"
	"github.com/dipakw/inside/internal/journal"
	"github.com/dipakw/inside/internal/render"
)

const (
	prompt             = "in> "
	continuationPrompt = "..> "
	reservedLines      = 6
)

// Options configures the REPL
type Options struct {
	Engine   *lang.Engine
	Renderer *render.Renderer
	// Journal is optional; when set every entry is recorded
	Journal journal.Store
	Logger  *mdwlog.Logger
}

// Model is the REPL state
type Model struct {
	width  int
	height int
	ready  bool
	err    error

	input    textinput.Model
	viewport viewport.Model

	engine   *lang.Engine
	renderer *render.Renderer
	journal  journal.Store
	logger   *mdwlog.Logger

	session string
	pending []string
	items   []Item
	count   int
}

// NewModel creates a REPL model
func NewModel(opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = mdwlog.Nop()
	}
	if opts.Engine == nil {
		opts.Engine = lang.NewEngine(lang.Options{Logger: opts.Logger})
	}
	if opts.Renderer == nil {
		opts.Renderer = render.New(true)
	}

	ti := textinput.New()
	ti.Placeholder = "var a = 1 + 2"
	ti.Prompt = render.PromptStyle.Render(prompt)
	ti.CharLimit = 4000
	ti.Focus()

	session := uuid.NewString()
	return Model{
		input:    ti,
		engine:   opts.Engine,
		renderer: opts.Renderer,
		journal:  opts.Journal,
		logger:   opts.Logger.WithField("component", "repl").WithRequestID(session),
		session:  session,
	}
}

// Run starts the REPL on the terminal and blocks until it exits
func Run(opts Options) error {
	_, err := tea.NewProgram(NewModel(opts), tea.WithAltScreen()).Run()
	return err
}

// Items returns the evaluated entries, oldest first
func (m Model) Items() []Item {
	return m.items
}

// Pending returns the lines waiting for continuation
func (m Model) Pending() []string {
	return m.pending
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "enter":
			line := m.input.Value()
			m.input.Reset()
			return m.submit(line)

		case "ctrl+l":
			m.items = nil
			m.pending = nil
			m.err = nil
			m.setPrompt()
			m.updateContent()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		height := msg.Height - reservedLines
		if height < 1 {
			height = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		m.input.Width = msg.Width - len(prompt) - 1
		m.updateContent()

	case recordedMsg:
		m.err = msg.err
		if msg.err != nil {
			m.logger.WarnWithErr("failed to record entry", msg.err, mdwlog.Fields{"id": msg.id})
		} else {
			m.logger.Debug("entry recorded", mdwlog.Fields{"id": msg.id})
		}
	}

	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// submit compiles the accumulated lines. Input that ends inside an open
// construct is kept for the next line.
func (m Model) submit(line string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(line) == "" && len(m.pending) == 0 {
		return m, nil
	}

	m.pending = append(m.pending, line)
	source := strings.Join(m.pending, "\n")
	name := fmt.Sprintf("<repl:%d>", m.count+1)

	res := m.engine.Compile(context.Background(), name, source)
	if !res.OK() && strings.TrimSpace(line) != "" && incomplete(res.Err) {
		m.setPrompt()
		return m, nil
	}

	m.pending = nil
	m.count++
	m.setPrompt()

	item := Item{Name: name, Source: source, OK: res.OK(), Duration: res.Duration}
	if res.OK() {
		item.Output = res.Program.String()
		if item.Output == "" {
			item.Output = render.MutedStyle.Render("(empty)")
		}
	} else {
		item.Output = strings.TrimRight(m.renderer.Error(source, res.Err), "\n")
	}
	m.items = append(m.items, item)
	m.updateContent()

	return m, m.record(res)
}

func (m Model) record(res *lang.Result) tea.Cmd {
	if m.journal == nil {
		return nil
	}
	store, entry := m.journal, journal.NewEntry(res, m.session)
	return func() tea.Msg {
		err := store.Record(context.Background(), entry)
		return recordedMsg{id: entry.ID, err: err}
	}
}

func incomplete(err error) bool {
	d, ok := diag.As(err)
	return ok && (d.Code == mdwerror.CodeParseUnexpectedEOF || d.Code == mdwerror.CodeLexUnterminatedString)
}

func (m *Model) setPrompt() {
	p := prompt
	if len(m.pending) > 0 {
		p = continuationPrompt
	}
	m.input.Prompt = render.PromptStyle.Render(p)
}

func (m *Model) updateContent() {
	if !m.ready {
		return
	}

	var b strings.Builder
	for _, item := range m.items {
		b.WriteString(render.MutedStyle.Render(item.Name) + "\n")
		for _, line := range strings.Split(item.Source, "\n") {
			b.WriteString(render.PromptStyle.Render(prompt) + line + "\n")
		}
		b.WriteString(item.Output + "\n\n")
	}
	m.viewport.SetContent(b.String())
	m.viewport.GotoBottom()
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "starting..."
	}

	var s strings.Builder
	s.WriteString(render.TitleStyle.Render("inside repl"))
	s.WriteString(render.MutedStyle.Render(fmt.Sprintf("  %d entries", len(m.items))))
	s.WriteString("\n")
	s.WriteString(m.viewport.View())
	s.WriteString("\n")
	s.WriteString(m.input.View())
	if m.err != nil {
		s.WriteString("\n" + render.ErrorStyle.Render("journal: "+m.err.Error()))
	}
	s.WriteString("\n")
	s.WriteString(render.HelpStyle.Render("enter: parse • ctrl+l: clear • esc: quit"))
	return s.String()
}
