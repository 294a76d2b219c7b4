// Package wordfreq downloads the wordfreq wheel from PyPI and reads ranked
// word lists out of it.
package wordfreq

import (
	"archive/zip"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultIndexURL is the PyPI JSON endpoint for the wordfreq project.
const DefaultIndexURL = "https://pypi.org/pypi/wordfreq/json"

// Wheel describes a downloaded wordfreq wheel.
type Wheel struct {
	Version  string
	Path     string
	Filename string
	Cached   bool
}

type release struct {
	Info struct {
		Version string `json:"version"`
	} `json:"info"`
	URLs []releaseFile `json:"urls"`
}

type releaseFile struct {
	URL         string `json:"url"`
	Filename    string `json:"filename"`
	PackageType string `json:"packagetype"`
}

// Client fetches wheels described by a PyPI JSON index.
type Client struct {
	IndexURL string
	HTTP     *http.Client
	logger   zerolog.Logger
}

// NewClient returns a client for the public PyPI index.
func NewClient(logger zerolog.Logger) *Client {
	return &Client{
		IndexURL: DefaultIndexURL,
		HTTP:     &http.Client{Timeout: 60 * time.Second},
		logger:   logger,
	}
}

// FetchWheel downloads the latest wheel into cacheDir unless it is already there.
func (c *Client) FetchWheel(ctx context.Context, cacheDir string) (Wheel, error) {
	if cacheDir == "" {
		return Wheel{}, errors.New("cache directory is required")
	}
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return Wheel{}, fmt.Errorf("failed to create cache dir: %w", err)
	}

	var rel release
	if err := c.getJSON(ctx, c.IndexURL, &rel); err != nil {
		return Wheel{}, err
	}
	if rel.Info.Version == "" {
		return Wheel{}, errors.New("missing version in index response")
	}
	file, ok := pickWheel(rel.URLs)
	if !ok {
		return Wheel{}, fmt.Errorf("no wheel published for wordfreq %s", rel.Info.Version)
	}
	filename := filepath.Base(file.Filename)

	dest := filepath.Join(cacheDir, filename)
	wheel := Wheel{Version: rel.Info.Version, Path: dest, Filename: filename}
	if _, err := os.Stat(dest); err == nil {
		wheel.Cached = true
		c.logger.Debug().Str("path", dest).Msg("using cached wheel")
		return wheel, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return Wheel{}, fmt.Errorf("failed to stat cached wheel: %w", err)
	}

	if err := c.download(ctx, file.URL, cacheDir, dest); err != nil {
		return Wheel{}, err
	}
	c.logger.Info().Str("version", wheel.Version).Str("path", dest).Msg("downloaded wordfreq wheel")
	return wheel, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	resp, err := c.get(ctx, url)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode index response: %w", err)
	}
	return nil
}

func (c *Client) download(ctx context.Context, url, dir, dest string) error {
	resp, err := c.get(ctx, url)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	tmp, err := os.CreateTemp(dir, "wordfreq-*.whl.part")
	if err != nil {
		return fmt.Errorf("failed to create temp wheel: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		return fmt.Errorf("failed to download wheel: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp wheel: %w", err)
	}
	if err := os.Rename(tmpPath, dest); err != nil {
		return fmt.Errorf("failed to move wheel into cache: %w", err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status for %s: %s", url, resp.Status)
	}
	return resp, nil
}

// pickWheel prefers the pure-python wheel.
func pickWheel(files []releaseFile) (releaseFile, bool) {
	var fallback releaseFile
	found := false
	for _, f := range files {
		if f.PackageType != "bdist_wheel" || f.URL == "" || f.Filename == "" {
			continue
		}
		if strings.HasSuffix(f.Filename, "py3-none-any.whl") {
			return f, true
		}
		if !found {
			fallback, found = f, true
		}
	}
	return fallback, found
}

// WriteAttribution records where imported words came from next to the wheel.
func WriteAttribution(wheelPath, outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}
	attribution := strings.Join([]string{
		"Secret words imported from the wordfreq dataset.",
		"Source: https://github.com/rspeer/wordfreq",
		"Data license: CC BY-SA 4.0, https://creativecommons.org/licenses/by-sa/4.0/",
		"Changes were made: lowercased, filtered to letters and truncated by frequency rank.",
		"",
	}, "\n")
	if err := os.WriteFile(filepath.Join(outDir, "ATTRIBUTION.txt"), []byte(attribution), 0o644); err != nil {
		return fmt.Errorf("failed to write attribution: %w", err)
	}

	license, err := readWheelLicense(wheelPath)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(outDir, "LICENSE.txt"), license, 0o644); err != nil {
		return fmt.Errorf("failed to write license: %w", err)
	}
	return nil
}

func readWheelLicense(wheelPath string) ([]byte, error) {
	reader, err := zip.OpenReader(wheelPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open wheel: %w", err)
	}
	defer func() {
		_ = reader.Close()
	}()
	for _, f := range reader.File {
		if !strings.Contains(f.Name, ".dist-info/") {
			continue
		}
		base := strings.ToUpper(filepath.Base(f.Name))
		if base != "LICENSE" && base != "LICENSE.TXT" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open license: %w", err)
		}
		data, err := io.ReadAll(rc)
		_ = rc.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read license: %w", err)
		}
		return data, nil
	}
	return nil, errors.New("license not found in wheel")
}
