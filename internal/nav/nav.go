// Package nav holds the screen transition table.
package nav

import "errors"

// ErrInvalidIntent is returned for an intent that is not accepted on the current screen.
var ErrInvalidIntent = errors.New("intent not allowed on this screen")

// Screen identifies the active view.
type Screen int

const (
	MainMenu Screen = iota
	Rules
	Playing
	RoundOver
)

// Screens lists every screen.
var Screens = []Screen{MainMenu, Rules, Playing, RoundOver}

// String returns the screen name.
func (s Screen) String() string {
	switch s {
	case MainMenu:
		return "main_menu"
	case Rules:
		return "rules"
	case Playing:
		return "playing"
	case RoundOver:
		return "round_over"
	default:
		return "unknown"
	}
}

// Intent is a normalized user action.
type Intent int

const (
	NewGame Intent = iota
	Guess
	ViewRules
	ReturnToMenu
	ToggleDebug
	Quit
	// RoundEnded is emitted by the session when a guess finishes the round.
	RoundEnded
)

// Intents lists every intent.
var Intents = []Intent{NewGame, Guess, ViewRules, ReturnToMenu, ToggleDebug, Quit, RoundEnded}

// String returns the intent name.
func (i Intent) String() string {
	switch i {
	case NewGame:
		return "new_game"
	case Guess:
		return "guess"
	case ViewRules:
		return "view_rules"
	case ReturnToMenu:
		return "return_to_menu"
	case ToggleDebug:
		return "toggle_debug"
	case Quit:
		return "quit"
	case RoundEnded:
		return "round_ended"
	default:
		return "unknown"
	}
}

// Effect is the game operation a transition triggers.
type Effect int

const (
	EffectNone Effect = iota
	EffectStartRound
	EffectApplyGuess
	EffectToggleDebug
	EffectQuit
)

// Key indexes the transition table.
type Key struct {
	Screen Screen
	Intent Intent
}

// Transition is the result of an accepted intent.
type Transition struct {
	Next   Screen
	Effect Effect
}

var table = map[Key]Transition{
	{MainMenu, NewGame}:     {Playing, EffectStartRound},
	{MainMenu, ViewRules}:   {Rules, EffectNone},
	{MainMenu, ToggleDebug}: {MainMenu, EffectToggleDebug},
	{MainMenu, Quit}:        {MainMenu, EffectQuit},

	{Rules, ReturnToMenu}: {MainMenu, EffectNone},
	{Rules, Quit}:         {Rules, EffectQuit},

	{Playing, Guess}:       {Playing, EffectApplyGuess},
	{Playing, RoundEnded}:  {RoundOver, EffectNone},
	{Playing, NewGame}:     {Playing, EffectStartRound},
	{Playing, ViewRules}:   {Rules, EffectNone},
	{Playing, ToggleDebug}: {Playing, EffectToggleDebug},
	{Playing, Quit}:        {Playing, EffectQuit},

	{RoundOver, NewGame}:      {Playing, EffectStartRound},
	{RoundOver, ReturnToMenu}: {MainMenu, EffectNone},
	{RoundOver, ToggleDebug}:  {RoundOver, EffectToggleDebug},
	{RoundOver, Quit}:         {RoundOver, EffectQuit},
}

// Next looks up the transition for an intent on a screen.
func Next(screen Screen, intent Intent) (Transition, bool) {
	t, ok := table[Key{Screen: screen, Intent: intent}]
	return t, ok
}

// Allowed returns the intents accepted on a screen, in Intents order.
func Allowed(screen Screen) []Intent {
	out := make([]Intent, 0, len(Intents))
	for _, intent := range Intents {
		if _, ok := table[Key{Screen: screen, Intent: intent}]; ok {
			out = append(out, intent)
		}
	}
	return out
}
