package tui

import (
	"strings"
	"testing"

	"github.com/verte-zerg/hangtui/internal/game"
)

func TestBuildMaskRunesStyles(t *testing.T) {
	runes := buildMaskRunes("c_t", game.OutcomeInProgress)
	if len(runes) != 5 {
		t.Fatalf("expected 5 cells with gaps, got %d", len(runes))
	}
	if runes[0].s != revealedStyle.Render("c") {
		t.Fatalf("expected revealed style for first letter")
	}
	if !runes[1].isSpace || runes[1].s != " " {
		t.Fatalf("expected gap after first letter")
	}
	if runes[2].s != hiddenStyle.Render("_") {
		t.Fatalf("expected hidden style for blank")
	}
}

func TestBuildMaskRunesOutcomeStyles(t *testing.T) {
	won := buildMaskRunes("cat", game.OutcomeWon)
	if won[0].s != wonStyle.Render("c") {
		t.Fatalf("expected won style")
	}
	lost := buildMaskRunes("c_t", game.OutcomeLost)
	if lost[2].s != lostStyle.Render("_") {
		t.Fatalf("expected lost style for unrevealed cell")
	}
	if lost[0].s != revealedStyle.Render("c") {
		t.Fatalf("expected revealed style for revealed cell after a loss")
	}
}

func TestWrapStyledRunesBreaksAtGaps(t *testing.T) {
	runes := buildMaskRunes("abcdef", game.OutcomeInProgress)
	out := wrapStyledRunes(runes, 5)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), out)
	}
	for _, line := range lines {
		if strings.HasPrefix(line, " ") || strings.HasSuffix(line, " ") {
			t.Fatalf("expected gap to be dropped at line break: %q", line)
		}
	}
}

func TestWrapStyledRunesNoWidth(t *testing.T) {
	runes := buildMaskRunes("ab", game.OutcomeInProgress)
	if got := wrapStyledRunes(runes, 0); got != renderStyledRunes(runes) {
		t.Fatalf("expected unwrapped output, got %q", got)
	}
}

func TestWrapStyledRunesHardBreak(t *testing.T) {
	runes := []styledRune{{s: "a", width: 1}, {s: "b", width: 1}, {s: "c", width: 1}}
	if got := wrapStyledRunes(runes, 2); got != "ab\nc" {
		t.Fatalf("expected hard break, got %q", got)
	}
}
