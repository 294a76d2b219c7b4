// Package tui provides the Bubble Tea hangman interface.
package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/verte-zerg/hangtui/internal/nav"
	"github.com/verte-zerg/hangtui/internal/session"
)

// Model implements the Bubble Tea game UI. It reads session snapshots and
// turns key presses into intents; it never touches game state directly.
type Model struct {
	ctx     context.Context
	session *session.Session
	logger  zerolog.Logger

	keys    keyMap
	help    help.Model
	input   textinput.Model
	rules   viewport.Model
	editing bool
	errMsg  string

	width  int
	height int
}

// NewModel constructs a game TUI model on the main menu.
func NewModel(ctx context.Context, s *session.Session, logger zerolog.Logger) *Model {
	input := textinput.New()
	input.Prompt = "Guess: "
	input.Placeholder = "a letter or the whole word"
	input.CharLimit = 64

	rules := viewport.New(0, 0)
	rules.SetContent(rulesText)

	return &Model{
		ctx:     ctx,
		session: s,
		logger:  logger,
		keys:    defaultKeyMap(),
		help:    help.New(),
		input:   input,
		rules:   rules,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.rules.Width = msg.Width
		m.rules.Height = max(1, msg.Height-3)
		m.input.Width = max(10, min(msg.Width, 60)-len(m.input.Prompt)-2)
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		if m.session.Screen() == nav.Playing && m.editing {
			return m.updateEditing(msg)
		}
		return m.updateNormal(msg)
	}
	return m, nil
}

func (m *Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		guess := m.input.Value()
		m.input.Reset()
		cmd := m.dispatch(nav.Guess, guess)
		if m.session.Screen() != nav.Playing {
			m.stopEditing()
		}
		return m, cmd
	case key.Matches(msg, m.keys.StopEditing):
		m.stopEditing()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	screen := m.session.Screen()
	if screen == nav.Playing && key.Matches(msg, m.keys.Edit) {
		m.editing = true
		return m, m.input.Focus()
	}
	for _, sb := range m.keys.intentsFor(screen) {
		if key.Matches(msg, sb.binding) {
			return m, m.dispatch(sb.intent, "")
		}
	}
	if screen == nav.Rules {
		var cmd tea.Cmd
		m.rules, cmd = m.rules.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) dispatch(intent nav.Intent, text string) tea.Cmd {
	before := m.session.Screen()
	err := m.session.Dispatch(m.ctx, intent, text)
	switch {
	case errors.Is(err, nav.ErrInvalidIntent):
		m.logger.Debug().Err(err).Msg("ignored intent")
		return nil
	case err != nil:
		m.errMsg = err.Error()
		return nil
	}
	m.errMsg = ""
	if m.session.Quitting() {
		return tea.Quit
	}
	after := m.session.Screen()
	if intent == nav.NewGame {
		m.input.Reset()
		m.stopEditing()
	}
	if after == nav.Rules && before != nav.Rules {
		m.rules.GotoTop()
	}
	if after != before {
		return tea.ClearScreen
	}
	return nil
}

func (m *Model) stopEditing() {
	m.editing = false
	m.input.Blur()
}
