// Package main provides the CLI entrypoint for hangtui.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/hangtui/internal/config"
	"github.com/verte-zerg/hangtui/internal/game"
	"github.com/verte-zerg/hangtui/internal/generator"
	"github.com/verte-zerg/hangtui/internal/logging"
	"github.com/verte-zerg/hangtui/internal/model"
	"github.com/verte-zerg/hangtui/internal/session"
	"github.com/verte-zerg/hangtui/internal/store"
	"github.com/verte-zerg/hangtui/internal/tui"
	"github.com/verte-zerg/hangtui/internal/wordfreq"
	"github.com/verte-zerg/hangtui/internal/wordlist"
)

const (
	defaultLang       = wordlist.DefaultLang
	defaultMaxGuesses = game.DefaultMaxGuesses
	defaultVowelHints = game.DefaultMaxVowelHints
	defaultLogLevel   = "info"
	defaultFetchSize  = 20000
	minFetchWordLen   = 4
	maxFetchWordLen   = 14
)

var (
	playLang       string
	playMaxGuesses int
	playVowelHints int
	playWordList   string
	playDebug      bool
	playLogLevel   string

	importLang    string
	importReplace bool

	fetchLang    string
	fetchSize    int
	fetchReplace bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "hangtui",
		Short:         "Hangman in the terminal",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPlayCmd,
	}

	rootCmd.Flags().StringVar(&playLang, "lang", defaultLang, "language code of the secret words")
	rootCmd.Flags().IntVar(&playMaxGuesses, "max-guesses", defaultMaxGuesses, "incorrect guesses allowed per round")
	rootCmd.Flags().IntVar(&playVowelHints, "vowel-hints", defaultVowelHints, "cap on vowels revealed at round start")
	rootCmd.Flags().StringVar(&playWordList, "wordlist", "", "word list file, one word per line")
	rootCmd.Flags().BoolVar(&playDebug, "debug", false, "show the secret word")
	rootCmd.Flags().StringVar(&playLogLevel, "log-level", defaultLogLevel, "log level (debug, info, warn, error)")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newLangsCmd())
	rootCmd.AddCommand(newWordlistCmd())

	return rootCmd
}

func runPlayCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "lang", &playLang, fileCfg.Game.Lang)
	applyIntConfig(cmd, "max-guesses", &playMaxGuesses, fileCfg.Game.MaxGuesses)
	applyIntConfig(cmd, "vowel-hints", &playVowelHints, fileCfg.Game.MaxVowelHints)
	applyStringConfig(cmd, "wordlist", &playWordList, fileCfg.Game.WordList)
	applyBoolConfig(cmd, "debug", &playDebug, fileCfg.Game.Debug)
	applyStringConfig(cmd, "log-level", &playLogLevel, fileCfg.Game.LogLevel)

	cfg := model.Config{
		Lang:          normalizeLang(playLang),
		MaxGuesses:    playMaxGuesses,
		MaxVowelHints: playVowelHints,
		WordListPath:  playWordList,
		Debug:         playDebug,
		LogLevel:      playLogLevel,
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("hangtui needs an interactive terminal")
	}

	logFile, err := logging.OpenFile(config.DefaultLogPath())
	if err != nil {
		return err
	}
	defer func() {
		if cerr := logFile.Close(); cerr != nil {
			// Best-effort close for the log file.
			_ = cerr
		}
	}()
	logger := logging.JSON(logFile, level)

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logger.Warn().Err(cerr).Msg("failed to close db")
		}
	}()

	ctx := context.Background()
	gen := generator.New()
	src, origin, err := resolveSource(ctx, cfg, st, gen)
	if err != nil {
		return err
	}
	logger.Info().Str("lang", cfg.Lang).Str("source", origin).Msg("word source selected")

	g := game.New(src, gen, logger)
	roundCfg := game.RoundConfig{MaxGuesses: cfg.MaxGuesses, MaxVowelHints: cfg.MaxVowelHints}
	s := session.New(g, roundCfg, cfg.Debug, logger)

	program := tea.NewProgram(tui.NewModel(ctx, s, logger), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// resolveSource picks where secret words come from: an explicit word list,
// then the corpus for the language, then the embedded list.
func resolveSource(ctx context.Context, cfg model.Config, st *store.Store, rnd generator.Rand) (game.WordSource, string, error) {
	if cfg.WordListPath != "" {
		words, err := wordlist.LoadWords(cfg.WordListPath)
		if err != nil {
			return nil, "", wordListLoadError(cfg.Lang, cfg.WordListPath, err)
		}
		src, err := wordlist.NewSource(cfg.Lang, words, rnd)
		if err != nil {
			return nil, "", wordListLoadError(cfg.Lang, cfg.WordListPath, err)
		}
		return src, cfg.WordListPath, nil
	}
	if st != nil {
		n, err := st.CountWords(ctx, cfg.Lang)
		if err != nil {
			return nil, "", fmt.Errorf("failed to count corpus words: %w", err)
		}
		if n > 0 {
			return st.Source(cfg.Lang), "corpus", nil
		}
	}
	if words, ok := wordlist.Embedded(cfg.Lang); ok {
		src, err := wordlist.NewSource(cfg.Lang, words, rnd)
		if err != nil {
			return nil, "", err
		}
		return src, "embedded", nil
	}
	return nil, "", noWordsError(cfg.Lang)
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newLangsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "langs",
		Short: "List languages with secret words",
		Args:  cobra.NoArgs,
		RunE:  runLangsCmd,
	}
}

func runLangsCmd(cmd *cobra.Command, _ []string) error {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			// Best-effort close for a read-only listing.
			_ = cerr
		}
	}()

	lines, err := listLangs(cmd.Context(), st)
	if err != nil {
		return err
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

// listLangs merges corpus languages with the embedded list, one line each.
func listLangs(ctx context.Context, st *store.Store) ([]string, error) {
	corpus, err := st.ListLangs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list corpus languages: %w", err)
	}
	counts := make(map[string]int, len(corpus)+1)
	for _, cl := range corpus {
		counts[cl.Lang] = cl.Words
	}
	langs := make([]string, 0, len(counts)+1)
	for lang := range counts {
		langs = append(langs, lang)
	}
	embedded, hasEmbedded := wordlist.Embedded(wordlist.DefaultLang)
	if _, ok := counts[wordlist.DefaultLang]; !ok && hasEmbedded {
		langs = append(langs, wordlist.DefaultLang)
	}
	sort.Strings(langs)

	lines := make([]string, 0, len(langs))
	for _, lang := range langs {
		if n, ok := counts[lang]; ok {
			lines = append(lines, fmt.Sprintf("%s\tcorpus\t%d words", lang, n))
			continue
		}
		lines = append(lines, fmt.Sprintf("%s\tembedded\t%d words", lang, len(embedded)))
	}
	return lines, nil
}

func newWordlistCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wordlist",
		Short: "Manage the word corpus",
	}
	importCmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a word list into the corpus",
		Args:  cobra.ExactArgs(1),
		RunE:  runWordlistImportCmd,
	}
	importCmd.Flags().StringVar(&importLang, "lang", defaultLang, "language code of the word list")
	importCmd.Flags().BoolVar(&importReplace, "replace", false, "drop existing words for the language first")
	fetchCmd := &cobra.Command{
		Use:   "fetch",
		Short: "Import ranked words from the wordfreq dataset",
		Args:  cobra.NoArgs,
		RunE:  runWordlistFetchCmd,
	}
	fetchCmd.Flags().StringVar(&fetchLang, "lang", defaultLang, "language code, comma-separated list or 'all'")
	fetchCmd.Flags().IntVar(&fetchSize, "size", defaultFetchSize, "most frequent words to keep per language")
	fetchCmd.Flags().BoolVar(&fetchReplace, "replace", false, "drop existing words for each language first")
	cmd.AddCommand(importCmd, fetchCmd)
	return cmd
}

// commandLogger builds the console logger used by the corpus commands.
func commandLogger(cmd *cobra.Command) (zerolog.Logger, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("failed to load config: %w", err)
	}
	levelName := defaultLogLevel
	if fileCfg.Game.LogLevel != nil {
		levelName = *fileCfg.Game.LogLevel
	}
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return zerolog.Nop(), err
	}
	return logging.Console(cmd.ErrOrStderr(), level), nil
}

func runWordlistImportCmd(cmd *cobra.Command, args []string) error {
	logger, err := commandLogger(cmd)
	if err != nil {
		return err
	}

	lang := normalizeLang(importLang)
	if lang == "" {
		return fmt.Errorf("--lang must not be empty")
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logger.Warn().Err(cerr).Msg("failed to close db")
		}
	}()

	return importWordList(cmd.Context(), st, lang, args[0], importReplace, logger)
}

func importWordList(ctx context.Context, st *store.Store, lang, path string, replace bool, logger zerolog.Logger) error {
	raw, err := wordlist.LoadWords(path)
	if err != nil {
		return fmt.Errorf("failed to load word list: %w", err)
	}
	words := wordlist.Normalize(lang, raw)
	if len(words) == 0 {
		return fmt.Errorf("no usable %s words in %s", lang, path)
	}
	logger.Info().Str("path", path).Int("read", len(raw)).Int("usable", len(words)).Msg("word list loaded")
	return storeWords(ctx, st, lang, words, replace, logger)
}

func runWordlistFetchCmd(cmd *cobra.Command, _ []string) error {
	logger, err := commandLogger(cmd)
	if err != nil {
		return err
	}
	if fetchSize <= 0 {
		return fmt.Errorf("--size must be > 0")
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logger.Warn().Err(cerr).Msg("failed to close db")
		}
	}()

	client := wordfreq.NewClient(logger)
	cacheDir := config.DefaultWordfreqCacheDir()
	wheel, err := client.FetchWheel(cmd.Context(), cacheDir)
	if err != nil {
		return fmt.Errorf("failed to fetch wordfreq: %w", err)
	}
	if err := importWordfreq(cmd.Context(), st, wheel.Path, fetchLang, fetchSize, fetchReplace, logger); err != nil {
		return err
	}
	if err := wordfreq.WriteAttribution(wheel.Path, cacheDir); err != nil {
		return fmt.Errorf("failed to write attribution: %w", err)
	}
	logger.Info().Str("dir", cacheDir).Msg("wordfreq attribution written")
	return nil
}

// importWordfreq loads the most frequent words per language from a wordfreq
// wheel into the corpus.
func importWordfreq(ctx context.Context, st *store.Store, wheelPath, langArg string, size int, replace bool, logger zerolog.Logger) error {
	lists, err := wordfreq.Lists(wheelPath)
	if err != nil {
		return err
	}
	langs, all, err := resolveFetchLangs(langArg, wordfreq.Languages(lists))
	if err != nil {
		return err
	}

	imported := 0
	for _, lang := range langs {
		ranked, err := wordfreq.Extract(wheelPath, lang)
		if err != nil {
			if all {
				logger.Warn().Err(err).Str("lang", lang).Msg("skipping language")
				continue
			}
			return err
		}
		words := selectSecrets(wordlist.Normalize(lang, ranked), size)
		if len(words) == 0 {
			if all {
				logger.Warn().Str("lang", lang).Msg("no usable words, skipping language")
				continue
			}
			return fmt.Errorf("no usable %s words in wordfreq", lang)
		}
		logger.Info().Str("lang", lang).Int("ranked", len(ranked)).Int("kept", len(words)).Msg("wordfreq list extracted")
		if err := storeWords(ctx, st, lang, words, replace, logger); err != nil {
			return err
		}
		imported++
	}
	if imported == 0 {
		return fmt.Errorf("no languages imported from wordfreq")
	}
	return nil
}

func resolveFetchLangs(lang string, available []string) ([]string, bool, error) {
	lang = normalizeLang(lang)
	if lang == "" {
		return []string{defaultLang}, false, nil
	}
	if lang == "all" {
		return append([]string(nil), available...), true, nil
	}
	availableSet := make(map[string]struct{}, len(available))
	for _, a := range available {
		availableSet[a] = struct{}{}
	}
	var requested []string
	for _, part := range strings.Split(lang, ",") {
		part = normalizeLang(part)
		if part == "" {
			continue
		}
		if _, ok := availableSet[part]; !ok {
			return nil, false, fmt.Errorf("unknown wordfreq language %q (available: %s)", part, strings.Join(available, ", "))
		}
		requested = append(requested, part)
	}
	if len(requested) == 0 {
		return nil, false, fmt.Errorf("--lang must not be empty")
	}
	return requested, false, nil
}

// selectSecrets keeps the first size words whose length suits a round.
func selectSecrets(words []string, size int) []string {
	out := make([]string, 0, min(len(words), size))
	for _, w := range words {
		if len(out) == size {
			break
		}
		n := utf8.RuneCountInString(w)
		if n < minFetchWordLen || n > maxFetchWordLen {
			continue
		}
		out = append(out, w)
	}
	return out
}

func storeWords(ctx context.Context, st *store.Store, lang string, words []string, replace bool, logger zerolog.Logger) error {
	if replace {
		removed, err := st.DeleteLang(ctx, lang)
		if err != nil {
			return fmt.Errorf("failed to clear %s corpus: %w", lang, err)
		}
		logger.Info().Str("lang", lang).Int("removed", removed).Msg("corpus cleared")
	}
	added, err := st.ImportWords(ctx, lang, words)
	if err != nil {
		return fmt.Errorf("failed to import words: %w", err)
	}
	logger.Info().Str("lang", lang).Int("added", added).Int("skipped", len(words)-added).Msg("words imported")
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# hangtui configuration
# Uncomment a value to enable it. HANGTUI_* environment variables override
# these, and CLI flags override both.

[game]
# lang = %q            # Language of the secret words
# max-guesses = %d       # Incorrect guesses allowed per round
# vowel-hints = %d       # Cap on vowels revealed at round start
# wordlist = ""          # Word list file, one word per line
# debug = false          # Show the secret word
# log-level = %q     # debug, info, warn or error
`,
		defaultLang,
		defaultMaxGuesses,
		defaultVowelHints,
		defaultLogLevel,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.Lang == "" {
		return fmt.Errorf("--lang must not be empty")
	}
	if cfg.MaxGuesses <= 0 {
		return fmt.Errorf("--max-guesses must be > 0")
	}
	if cfg.MaxVowelHints < 0 {
		return fmt.Errorf("--vowel-hints must be >= 0")
	}
	return nil
}

func normalizeLang(lang string) string {
	return strings.TrimSpace(strings.ToLower(lang))
}

func wordListLoadError(lang, path string, err error) error {
	return fmt.Errorf("%w: failed to load %s word list %s: %w", game.ErrWordSourceUnavailable, lang, path, err)
}

func noWordsError(lang string) error {
	lines := []string{
		fmt.Sprintf("no words available for language %q", lang),
		"Run: hangtui langs",
		fmt.Sprintf("Import: hangtui wordlist import --lang %s <file>", lang),
		fmt.Sprintf("Or fetch: hangtui wordlist fetch --lang %s", lang),
	}
	return fmt.Errorf("%w\n%s", game.ErrWordSourceUnavailable, strings.Join(lines, "\n"))
}
