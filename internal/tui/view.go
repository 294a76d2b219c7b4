package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/hangtui/internal/game"
	"github.com/verte-zerg/hangtui/internal/nav"
	"github.com/verte-zerg/hangtui/internal/session"
)

const menuText = `Welcome to Hangman!

Guess the hidden word one letter at a time,
or take a shot at the whole word.`

const rulesText = `Rules

1. Guess the word by entering letters.
   A correct letter is revealed everywhere it appears.
2. You can also guess the full word.
   A right word wins at once. A wrong word still reveals every letter
   it shares with the secret, and only costs a guess when none match.
3. Every wrong letter costs one guess.
   You lose when you run out of guesses.

Some vowels are shown at the start of each round as a hint.`

var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	revealedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	hiddenStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	wonStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A")).Bold(true)
	lostStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	debugStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Italic(true)
	cardStyle     = lipgloss.NewStyle().
			Padding(1, 3).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
)

// View implements tea.Model.
func (m *Model) View() string {
	snap := m.session.Snapshot()
	var body string
	switch snap.Screen {
	case nav.MainMenu:
		body = cardStyle.Render(titleStyle.Render("Hangman") + "\n\n" + menuText)
	case nav.Rules:
		body = m.rules.View()
	case nav.Playing, nav.RoundOver:
		body = cardStyle.Render(m.renderRound(snap))
	}
	footer := m.renderFooter(snap)
	if m.width == 0 || m.height == 0 {
		return body + "\n" + footer
	}
	bodyHeight := max(1, m.height-lipgloss.Height(footer))
	placed := lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, body)
	return placed + "\n" + lipgloss.PlaceHorizontal(m.width, lipgloss.Center, footer)
}

func (m *Model) renderRound(snap session.Snapshot) string {
	width := 0
	if m.width > 0 {
		width = max(1, m.width-10)
	}
	lines := []string{
		wrapStyledRunes(buildMaskRunes(snap.Mask, snap.Outcome), width),
		"",
		renderStatus(snap),
	}
	if snap.Screen == nav.Playing {
		lines = append(lines, "", m.input.View())
	}
	return strings.Join(lines, "\n")
}

func renderStatus(snap session.Snapshot) string {
	switch snap.Outcome {
	case game.OutcomeWon:
		return wonStyle.Render("You win!")
	case game.OutcomeLost:
		return lostStyle.Render(fmt.Sprintf("You lose! Incorrect guesses left: %d/%d", snap.Remaining(), snap.MaxGuesses))
	default:
		return fmt.Sprintf("Incorrect guesses left: %d/%d", snap.Remaining(), snap.MaxGuesses)
	}
}

func (m *Model) renderFooter(snap session.Snapshot) string {
	segments := []string{m.help.View(m.keys.helpFor(snap.Screen, m.editing))}
	if snap.Debug {
		if snap.SecretVisible {
			segments = append(segments, debugStyle.Render(fmt.Sprintf("DEBUG: word is %q", snap.Secret)))
		} else {
			segments = append(segments, debugStyle.Render("DEBUG: on"))
		}
		if snap.RoundID != "" {
			segments = append(segments, mutedStyle.Render("round "+snap.RoundID))
		}
	}
	if m.errMsg != "" {
		segments = append(segments, errorStyle.Render(m.errMsg))
	}
	return strings.Join(segments, "\n")
}
