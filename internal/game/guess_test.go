package game

import "testing"

func newRound(secret, mask string, maxGuesses int) Round {
	return Round{
		Secret:     secret,
		Mask:       Mask(mask),
		MaxGuesses: maxGuesses,
		Outcome:    OutcomeInProgress,
	}
}

func TestApplyGuessLetterWins(t *testing.T) {
	r := ApplyGuess(newRound("cat", "c_t", 7), "a")
	if r.Mask.String() != "cat" {
		t.Fatalf("expected mask cat, got %q", r.Mask.String())
	}
	if r.Outcome != OutcomeWon {
		t.Fatalf("expected won, got %s", r.Outcome)
	}
}

func TestApplyGuessRevealsEveryOccurrence(t *testing.T) {
	r := ApplyGuess(newRound("banana", "______", 7), "A")
	if r.Mask.String() != "_a_a_a" {
		t.Fatalf("expected all a revealed, got %q", r.Mask.String())
	}
	if r.Guesses != 0 {
		t.Fatalf("expected no penalty, got %d", r.Guesses)
	}
	if r.Outcome != OutcomeInProgress {
		t.Fatalf("expected in progress, got %s", r.Outcome)
	}
}

func TestApplyGuessWrongLetterTwiceCountsTwice(t *testing.T) {
	r := newRound("house", "_o___", 7)
	r = ApplyGuess(r, "z")
	r = ApplyGuess(r, "z")
	if r.Guesses != 2 {
		t.Fatalf("expected 2 wrong guesses, got %d", r.Guesses)
	}
}

func TestApplyGuessLossBoundary(t *testing.T) {
	r := newRound("house", "_____", 7)
	for i, ch := range []string{"a", "b", "c", "d", "f", "g"} {
		r = ApplyGuess(r, ch)
		if r.Outcome != OutcomeInProgress {
			t.Fatalf("guess %d: expected in progress, got %s", i+1, r.Outcome)
		}
	}
	r = ApplyGuess(r, "i")
	if r.Guesses != 7 {
		t.Fatalf("expected 7 wrong guesses, got %d", r.Guesses)
	}
	if r.Outcome != OutcomeLost {
		t.Fatalf("expected lost, got %s", r.Outcome)
	}
}

func TestApplyGuessFullWordWins(t *testing.T) {
	r := newRound("house", "_o___", 7)
	r.Guesses = 6
	r = ApplyGuess(r, "  HOUSE ")
	if r.Outcome != OutcomeWon {
		t.Fatalf("expected won, got %s", r.Outcome)
	}
	if r.Mask.String() != "house" {
		t.Fatalf("expected full reveal, got %q", r.Mask.String())
	}
	if r.Guesses != 6 {
		t.Fatalf("expected guesses unchanged, got %d", r.Guesses)
	}
}

func TestApplyGuessPartialCredit(t *testing.T) {
	r := ApplyGuess(newRound("house", "_____", 7), "horse")
	if r.Mask.String() != "ho_se" {
		t.Fatalf("expected h, o, s, e revealed, got %q", r.Mask.String())
	}
	if r.Guesses != 0 {
		t.Fatalf("expected no penalty for partial match, got %d", r.Guesses)
	}
	if r.Outcome != OutcomeInProgress {
		t.Fatalf("expected in progress, got %s", r.Outcome)
	}
}

func TestApplyGuessAllWrongWordCostsOne(t *testing.T) {
	r := ApplyGuess(newRound("house", "_____", 7), "pizza")
	if r.Guesses != 1 {
		t.Fatalf("expected exactly one wrong guess, got %d", r.Guesses)
	}
	if r.Mask.String() != "_____" {
		t.Fatalf("expected mask unchanged, got %q", r.Mask.String())
	}
}

func TestApplyGuessWrongWordCanWin(t *testing.T) {
	r := ApplyGuess(newRound("tot", "_o_", 7), "tt")
	if r.Outcome != OutcomeWon {
		t.Fatalf("expected win after reveal, got %s", r.Outcome)
	}
}

func TestApplyGuessWrongWordCanLose(t *testing.T) {
	r := newRound("house", "_____", 2)
	r.Guesses = 1
	r = ApplyGuess(r, "pizza")
	if r.Outcome != OutcomeLost {
		t.Fatalf("expected lost, got %s", r.Outcome)
	}
}

func TestApplyGuessEmptyIsNoop(t *testing.T) {
	r := newRound("house", "_o___", 7)
	for _, raw := range []string{"", "   ", "\t"} {
		got := ApplyGuess(r, raw)
		if got.Mask.String() != "_o___" || got.Guesses != 0 || got.Outcome != OutcomeInProgress {
			t.Fatalf("expected no-op for %q, got %+v", raw, got)
		}
	}
}

func TestApplyGuessTerminalIsImmutable(t *testing.T) {
	for _, outcome := range []Outcome{OutcomeWon, OutcomeLost, OutcomeIdle} {
		r := newRound("house", "_o___", 7)
		r.Guesses = 3
		r.Outcome = outcome
		for _, raw := range []string{"h", "house", "pizza", "z"} {
			got := ApplyGuess(r, raw)
			if got.Mask.String() != "_o___" || got.Guesses != 3 || got.Outcome != outcome {
				t.Fatalf("%s: expected round unchanged after %q, got %+v", outcome, raw, got)
			}
		}
	}
}

func TestApplyGuessDoesNotMutateInput(t *testing.T) {
	r := newRound("house", "_____", 7)
	_ = ApplyGuess(r, "h")
	if r.Mask.String() != "_____" {
		t.Fatalf("input mask mutated: %q", r.Mask.String())
	}
}

func TestApplyGuessMaskIsMonotonic(t *testing.T) {
	r := newRound("mississippi", "_i__i__i__i", 7)
	prev := r.Mask.Clone()
	for _, raw := range []string{"s", "x", "misty", "p", "zzz", "m"} {
		r = ApplyGuess(r, raw)
		for i, ch := range prev {
			if ch != Blank && r.Mask[i] != ch {
				t.Fatalf("position %d re-hidden after %q", i, raw)
			}
		}
		prev = r.Mask.Clone()
	}
	if r.Outcome != OutcomeWon {
		t.Fatalf("expected won, got %s (mask %q)", r.Outcome, r.Mask.String())
	}
}

func TestApplyGuessRevealedLetterIsFree(t *testing.T) {
	r := newRound("house", "_o___", 7)
	r.Guesses = 2
	got := ApplyGuess(r, "o")
	if got.Guesses != 2 {
		t.Fatalf("expected repeated correct letter to cost nothing, got %d guesses", got.Guesses)
	}
	if got.Mask.String() != "_o___" || got.Outcome != OutcomeInProgress {
		t.Fatalf("expected round unchanged, got %+v", got)
	}
}

func TestApplyGuessSingleRuneWithLongLowercase(t *testing.T) {
	r := ApplyGuess(newRound("house", "_____", 7), "ß")
	if r.Guesses != 1 {
		t.Fatalf("expected exactly one wrong guess, got %d", r.Guesses)
	}
	if r.Mask.String() != "_____" {
		t.Fatalf("expected mask unchanged, got %q", r.Mask.String())
	}

	r = ApplyGuess(newRound("straße", "______", 7), "ß")
	if r.Mask.String() != "____ß_" || r.Guesses != 0 {
		t.Fatalf("expected ß revealed for free, got %q (%d guesses)", r.Mask.String(), r.Guesses)
	}
}

func TestApplyGuessKeepsSharpS(t *testing.T) {
	r := ApplyGuess(newRound("straße", "______", 7), "STRASSE")
	if r.Outcome != OutcomeInProgress {
		t.Fatalf("expected strasse not to match straße, got %s", r.Outcome)
	}
	if r.Mask.String() != "stra_e" {
		t.Fatalf("expected shared letters revealed, got %q", r.Mask.String())
	}
	if got := NormalizeGuess(" Straße "); got != "straße" {
		t.Fatalf("expected straße, got %q", got)
	}
}
