// Package model defines shared data structures.
package model

// Config defines game settings after flags, env and file have been merged.
type Config struct {
	Lang          string
	MaxGuesses    int
	MaxVowelHints int
	WordListPath  string
	Debug         bool
	LogLevel      string
}

// CorpusLang summarizes the words stored for one language.
type CorpusLang struct {
	Lang  string
	Words int
}
