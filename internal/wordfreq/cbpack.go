package wordfreq

import (
	"errors"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// decodeCBPack reads the cBpack layout: an array whose first element is a
// header map and whose remaining elements are bins of words. Bin i holds the
// words with frequency -i centibels, so earlier bins are more frequent.
func decodeCBPack(r io.Reader) ([][]string, error) {
	dec := msgpack.NewDecoder(r)
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return nil, fmt.Errorf("failed to read array header: %w", err)
	}
	if n < 1 {
		return nil, errors.New("missing cBpack header")
	}

	var header map[string]any
	if err := dec.Decode(&header); err != nil {
		return nil, fmt.Errorf("failed to read cBpack header: %w", err)
	}
	if format, _ := header["format"].(string); format != "cB" {
		return nil, fmt.Errorf("unsupported format %q", header["format"])
	}
	if v := fmt.Sprint(header["version"]); v != "1" {
		return nil, fmt.Errorf("unsupported cBpack version %s", v)
	}

	bins := make([][]string, 0, n-1)
	for i := 1; i < n; i++ {
		var bin []string
		if err := dec.Decode(&bin); err != nil {
			return nil, fmt.Errorf("failed to read bin %d: %w", i, err)
		}
		bins = append(bins, bin)
	}
	return bins, nil
}
