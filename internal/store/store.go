// Package store handles the SQLite word corpus.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/verte-zerg/hangtui/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// ErrNoWords is returned when the corpus holds no words for a language.
var ErrNoWords = errors.New("no words in corpus")

// Store wraps SQLite access for the word corpus.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS words (
			lang TEXT NOT NULL,
			word TEXT NOT NULL,
			PRIMARY KEY (lang, word)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_words_lang ON words(lang);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// ImportWords adds words for lang, ignoring ones already stored, and returns
// how many were new.
func (s *Store) ImportWords(ctx context.Context, lang string, words []string) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	stmt, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO words (lang, word) VALUES (?, ?)`)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := stmt.Close(); cerr != nil {
			// Best-effort statement close.
			_ = cerr
		}
	}()

	added := 0
	for _, w := range words {
		var res sql.Result
		res, err = stmt.ExecContext(ctx, lang, w)
		if err != nil {
			return 0, err
		}
		var n int64
		n, err = res.RowsAffected()
		if err != nil {
			return 0, err
		}
		added += int(n)
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return added, nil
}

// RandomWord returns one word for lang chosen by SQLite.
func (s *Store) RandomWord(ctx context.Context, lang string) (string, error) {
	var word string
	err := s.db.QueryRowContext(ctx,
		`SELECT word FROM words WHERE lang = ? ORDER BY RANDOM() LIMIT 1`, lang).Scan(&word)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%s: %w", lang, ErrNoWords)
	}
	if err != nil {
		return "", err
	}
	return word, nil
}

// CountWords returns the number of words stored for lang.
func (s *Store) CountWords(ctx context.Context, lang string) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM words WHERE lang = ?`, lang).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// ListLangs returns each stored language with its word count.
func (s *Store) ListLangs(ctx context.Context) ([]model.CorpusLang, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT lang, COUNT(*) FROM words GROUP BY lang ORDER BY lang ASC`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []model.CorpusLang
	for rows.Next() {
		var entry model.CorpusLang
		if err := rows.Scan(&entry.Lang, &entry.Words); err != nil {
			return nil, err
		}
		result = append(result, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// DeleteLang removes every word stored for lang.
func (s *Store) DeleteLang(ctx context.Context, lang string) (int, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM words WHERE lang = ?`, lang)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// Source adapts the corpus to a word source for one language.
type Source struct {
	store *Store
	lang  string
}

// Source returns a word source drawing from lang.
func (s *Store) Source(lang string) *Source {
	return &Source{store: s, lang: lang}
}

// Word implements game.WordSource.
func (src *Source) Word(ctx context.Context) (string, error) {
	return src.store.RandomWord(ctx, src.lang)
}
