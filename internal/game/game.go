package game

import (
	"context"
	"errors"
	"fmt"
	"unicode"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/verte-zerg/hangtui/internal/generator"
)

// Game owns the current round. It is not safe for concurrent use.
type Game struct {
	source WordSource
	rnd    generator.Rand
	logger zerolog.Logger

	round Round
}

// New constructs a Game with no round started.
func New(source WordSource, rnd generator.Rand, logger zerolog.Logger) *Game {
	return &Game{
		source: source,
		rnd:    rnd,
		logger: logger,
	}
}

// StartRound draws a new secret word and replaces the current round.
// On failure the current round is left untouched.
func (g *Game) StartRound(ctx context.Context, cfg RoundConfig) error {
	cfg = cfg.withDefaults()
	if g.source == nil {
		return fmt.Errorf("failed to draw word: %w", ErrWordSourceUnavailable)
	}
	word, err := g.source.Word(ctx)
	if err != nil {
		g.logger.Warn().Err(err).Msg("word source failed")
		return fmt.Errorf("failed to draw word: %w: %w", ErrWordSourceUnavailable, err)
	}
	secret, err := normalizeSecret(word)
	if err != nil {
		g.logger.Warn().Err(err).Str("word", word).Msg("word source returned an unusable word")
		return fmt.Errorf("failed to draw word: %w: %w", ErrWordSourceUnavailable, err)
	}

	g.round = Round{
		ID:         uuid.NewString(),
		Secret:     secret,
		Mask:       InitialMask(secret, cfg.MaxVowelHints, g.rnd),
		MaxGuesses: cfg.MaxGuesses,
		Outcome:    OutcomeInProgress,
	}
	g.logger.Info().
		Str("round", g.round.ID).
		Int("length", len([]rune(secret))).
		Int("max_guesses", cfg.MaxGuesses).
		Int("hidden", g.round.Mask.Hidden()).
		Msg("round started")
	return nil
}

// Guess applies raw to the current round and returns the resulting outcome.
// It is a no-op when no round is in progress.
func (g *Game) Guess(raw string) Outcome {
	before := g.round.Outcome
	g.round = ApplyGuess(g.round, raw)
	if !before.Terminal() && g.round.Outcome.Terminal() {
		g.logger.Info().
			Str("round", g.round.ID).
			Str("outcome", g.round.Outcome.String()).
			Int("guesses", g.round.Guesses).
			Msg("round finished")
	}
	return g.round.Outcome
}

// Round returns a copy of the current round.
func (g *Game) Round() Round {
	return g.round.Clone()
}

func normalizeSecret(word string) (string, error) {
	secret := NormalizeGuess(word)
	if secret == "" {
		return "", errors.New("empty word")
	}
	for _, r := range secret {
		if !unicode.IsLetter(r) {
			return "", fmt.Errorf("word %q contains non-letter %q", word, r)
		}
	}
	return secret, nil
}
