// Package session runs the control loop state: it gates intents through the
// navigation table and applies them to the game.
package session

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/verte-zerg/hangtui/internal/game"
	"github.com/verte-zerg/hangtui/internal/nav"
)

// Snapshot is the read-only view handed to the renderer.
type Snapshot struct {
	Screen        nav.Screen
	Debug         bool
	SecretVisible bool
	Secret        string
	Mask          string
	Guesses       int
	MaxGuesses    int
	Outcome       game.Outcome
	RoundID       string
}

// Remaining returns the wrong guesses left.
func (s Snapshot) Remaining() int {
	if s.Guesses >= s.MaxGuesses {
		return 0
	}
	return s.MaxGuesses - s.Guesses
}

// Session owns the game and the current screen.
type Session struct {
	game   *game.Game
	cfg    game.RoundConfig
	logger zerolog.Logger

	screen nav.Screen
	debug  bool
	quit   bool
}

// New returns a session on the main menu.
func New(g *game.Game, cfg game.RoundConfig, debug bool, logger zerolog.Logger) *Session {
	return &Session{
		game:   g,
		cfg:    cfg,
		logger: logger,
		screen: nav.MainMenu,
		debug:  debug,
	}
}

// Dispatch applies one intent. text is only read for nav.Guess.
// Intents the current screen does not accept return nav.ErrInvalidIntent
// and change nothing. A failed round start leaves screen and round untouched.
func (s *Session) Dispatch(ctx context.Context, intent nav.Intent, text string) error {
	tr, ok := nav.Next(s.screen, intent)
	if !ok {
		return fmt.Errorf("%s on %s: %w", intent, s.screen, nav.ErrInvalidIntent)
	}

	switch tr.Effect {
	case nav.EffectStartRound:
		if err := s.game.StartRound(ctx, s.cfg); err != nil {
			s.logger.Error().Err(err).Str("screen", s.screen.String()).Msg("failed to start round")
			return err
		}
	case nav.EffectApplyGuess:
		if s.game.Guess(text).Terminal() {
			s.screen = tr.Next
			return s.Dispatch(ctx, nav.RoundEnded, "")
		}
	case nav.EffectToggleDebug:
		s.debug = !s.debug
		s.logger.Debug().Bool("debug", s.debug).Msg("debug toggled")
	case nav.EffectQuit:
		s.quit = true
	}

	if s.screen != tr.Next {
		s.logger.Debug().Str("from", s.screen.String()).Str("to", tr.Next.String()).Str("intent", intent.String()).Msg("screen changed")
	}
	s.screen = tr.Next
	return nil
}

// Screen returns the active screen.
func (s *Session) Screen() nav.Screen {
	return s.screen
}

// Quitting reports whether a quit intent was accepted.
func (s *Session) Quitting() bool {
	return s.quit
}

// Snapshot returns the current view state.
func (s *Session) Snapshot() Snapshot {
	r := s.game.Round()
	snap := Snapshot{
		Screen:        s.screen,
		Debug:         s.debug,
		SecretVisible: s.debug && r.Secret != "",
		Mask:          r.Mask.String(),
		Guesses:       r.Guesses,
		MaxGuesses:    r.MaxGuesses,
		Outcome:       r.Outcome,
		RoundID:       r.ID,
	}
	if snap.SecretVisible {
		snap.Secret = r.Secret
	}
	return snap
}
