package wordfreq

import (
	"archive/zip"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

const dataPrefix = "wordfreq/data/"

// ErrNoList is returned when the wheel carries no word list for a language.
var ErrNoList = errors.New("no wordfreq list for language")

// List names one frequency list inside the wheel.
type List struct {
	Lang string
	Size string
	Name string
}

// Lists returns the frequency lists in the wheel sorted by language, large first.
func Lists(wheelPath string) ([]List, error) {
	reader, err := zip.OpenReader(wheelPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open wheel: %w", err)
	}
	defer func() {
		_ = reader.Close()
	}()

	var lists []List
	for _, f := range reader.File {
		if l, ok := parseListName(f.Name); ok {
			lists = append(lists, l)
		}
	}
	if len(lists) == 0 {
		return nil, errors.New("no word lists found in wordfreq wheel")
	}
	sort.Slice(lists, func(i, j int) bool {
		if lists[i].Lang != lists[j].Lang {
			return lists[i].Lang < lists[j].Lang
		}
		return lists[i].Size < lists[j].Size
	})
	return lists, nil
}

// Languages returns the distinct sorted language codes of lists.
func Languages(lists []List) []string {
	var out []string
	for _, l := range lists {
		if len(out) == 0 || out[len(out)-1] != l.Lang {
			out = append(out, l.Lang)
		}
	}
	return out
}

// parseListName accepts names like wordfreq/data/large_pt-br.msgpack.gz.
func parseListName(name string) (List, bool) {
	lower := strings.ToLower(name)
	if !strings.HasPrefix(lower, dataPrefix) {
		return List{}, false
	}
	base := strings.TrimPrefix(lower, dataPrefix)
	switch {
	case strings.HasSuffix(base, ".msgpack.gz"):
		base = strings.TrimSuffix(base, ".msgpack.gz")
	case strings.HasSuffix(base, ".msgpack"):
		base = strings.TrimSuffix(base, ".msgpack")
	default:
		return List{}, false
	}
	for _, size := range []string{"large", "small"} {
		if lang, ok := strings.CutPrefix(base, size+"_"); ok && lang != "" {
			return List{Lang: lang, Size: size, Name: name}, true
		}
	}
	return List{}, false
}

// Extract returns the words of the largest list for lang, most frequent first.
// Words come back exactly as stored in the wheel.
func Extract(wheelPath, lang string) ([]string, error) {
	lang = strings.ToLower(strings.TrimSpace(lang))
	reader, err := zip.OpenReader(wheelPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open wheel: %w", err)
	}
	defer func() {
		_ = reader.Close()
	}()

	var best *zip.File
	bestSize := ""
	for _, f := range reader.File {
		l, ok := parseListName(f.Name)
		if !ok || l.Lang != lang {
			continue
		}
		if best == nil || (l.Size == "large" && bestSize != "large") {
			best, bestSize = f, l.Size
		}
	}
	if best == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoList, lang)
	}

	rc, err := best.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", best.Name, err)
	}
	defer func() {
		_ = rc.Close()
	}()

	var r io.Reader = rc
	if strings.HasSuffix(strings.ToLower(best.Name), ".gz") {
		gz, err := gzip.NewReader(rc)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer func() {
			_ = gz.Close()
		}()
		r = gz
	}

	bins, err := decodeCBPack(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", best.Name, err)
	}
	var words []string
	for _, bin := range bins {
		for _, w := range bin {
			if w != "" {
				words = append(words, w)
			}
		}
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("%w: %s list is empty", ErrNoList, lang)
	}
	return words, nil
}
