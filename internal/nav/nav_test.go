package nav

import "testing"

func TestTransitionTableExhaustive(t *testing.T) {
	want := map[Key]Transition{
		{MainMenu, NewGame}:       {Playing, EffectStartRound},
		{MainMenu, ViewRules}:     {Rules, EffectNone},
		{MainMenu, ToggleDebug}:   {MainMenu, EffectToggleDebug},
		{MainMenu, Quit}:          {MainMenu, EffectQuit},
		{Rules, ReturnToMenu}:     {MainMenu, EffectNone},
		{Rules, Quit}:             {Rules, EffectQuit},
		{Playing, Guess}:          {Playing, EffectApplyGuess},
		{Playing, RoundEnded}:     {RoundOver, EffectNone},
		{Playing, NewGame}:        {Playing, EffectStartRound},
		{Playing, ViewRules}:      {Rules, EffectNone},
		{Playing, ToggleDebug}:    {Playing, EffectToggleDebug},
		{Playing, Quit}:           {Playing, EffectQuit},
		{RoundOver, NewGame}:      {Playing, EffectStartRound},
		{RoundOver, ReturnToMenu}: {MainMenu, EffectNone},
		{RoundOver, ToggleDebug}:  {RoundOver, EffectToggleDebug},
		{RoundOver, Quit}:         {RoundOver, EffectQuit},
	}
	for _, screen := range Screens {
		for _, intent := range Intents {
			got, ok := Next(screen, intent)
			expected, expectOK := want[Key{screen, intent}]
			if ok != expectOK {
				t.Fatalf("(%s, %s): accepted=%v, want %v", screen, intent, ok, expectOK)
			}
			if ok && got != expected {
				t.Fatalf("(%s, %s): got %+v, want %+v", screen, intent, got, expected)
			}
		}
	}
	if len(table) != len(want) {
		t.Fatalf("table has %d entries, want %d", len(table), len(want))
	}
}

func TestViewRulesOnlyFromMenuOrPlaying(t *testing.T) {
	for _, screen := range Screens {
		_, ok := Next(screen, ViewRules)
		expected := screen == MainMenu || screen == Playing
		if ok != expected {
			t.Fatalf("view rules on %s: accepted=%v, want %v", screen, ok, expected)
		}
	}
}

func TestReturnToMenuOnlyFromRulesOrRoundOver(t *testing.T) {
	for _, screen := range Screens {
		_, ok := Next(screen, ReturnToMenu)
		expected := screen == Rules || screen == RoundOver
		if ok != expected {
			t.Fatalf("return to menu on %s: accepted=%v, want %v", screen, ok, expected)
		}
	}
}

func TestEveryScreenReachableAndQuittable(t *testing.T) {
	reached := map[Screen]bool{MainMenu: true}
	queue := []Screen{MainMenu}
	for len(queue) > 0 {
		screen := queue[0]
		queue = queue[1:]
		for _, intent := range Allowed(screen) {
			tr, _ := Next(screen, intent)
			if !reached[tr.Next] {
				reached[tr.Next] = true
				queue = append(queue, tr.Next)
			}
		}
	}
	for _, screen := range Screens {
		if !reached[screen] {
			t.Fatalf("screen %s is unreachable", screen)
		}
		tr, ok := Next(screen, Quit)
		if !ok || tr.Effect != EffectQuit {
			t.Fatalf("screen %s cannot quit", screen)
		}
	}
}

func TestAllowed(t *testing.T) {
	got := Allowed(Rules)
	if len(got) != 2 || got[0] != ReturnToMenu || got[1] != Quit {
		t.Fatalf("unexpected rules intents: %v", got)
	}
}

func TestGuessOnlyWhilePlaying(t *testing.T) {
	for _, screen := range Screens {
		_, ok := Next(screen, Guess)
		if ok != (screen == Playing) {
			t.Fatalf("guess on %s: accepted=%v", screen, ok)
		}
	}
}
