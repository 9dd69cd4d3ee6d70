// Package download fetches model files over HTTP with size and time bounds.
package download

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"
	"time"

	"github.com/layerbylayersg/slicer-estimate-api/internal/config"
	"github.com/layerbylayersg/slicer-estimate-api/internal/metrics"
)

// allowedExtensions are the model formats PrusaSlicer accepts from this service.
var allowedExtensions = []string{".stl", ".3mf"}

// System defines the interface for model retrieval.
type System interface {
	// Fetch downloads rawURL into destPath and returns the bytes written.
	// Returns ErrModelTooLarge when the response exceeds the configured cap
	// and ErrDownloadFailed for transport or status errors.
	Fetch(ctx context.Context, rawURL, destPath string) (int64, error)
}

type fetcher struct {
	client  *http.Client
	maxSize int64
	logger  *slog.Logger
}

// New creates a fetcher with a dedicated HTTP client tuned for one-shot
// model downloads.
func New(cfg *config.DownloadConfig, logger *slog.Logger) System {
	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout:   5 * time.Second,
		ResponseHeaderTimeout: 30 * time.Second,
		MaxIdleConns:          10,
		IdleConnTimeout:       90 * time.Second,
	}

	return &fetcher{
		client: &http.Client{
			Timeout:   cfg.TimeoutDuration(),
			Transport: transport,
		},
		maxSize: cfg.MaxModelSizeBytes(),
		logger:  logger.With("system", "download"),
	}
}

func (f *fetcher) Fetch(ctx context.Context, rawURL, destPath string) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrDownloadFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, fmt.Errorf("%w: unexpected status %d", ErrDownloadFailed, resp.StatusCode)
	}

	if resp.ContentLength > f.maxSize {
		return 0, fmt.Errorf("%w: %d bytes", ErrModelTooLarge, resp.ContentLength)
	}

	out, err := os.Create(destPath)
	if err != nil {
		return 0, fmt.Errorf("create model file: %w", err)
	}
	defer out.Close()

	// Read one byte past the cap so truncated-at-cap bodies are
	// distinguishable from oversize ones.
	written, err := io.Copy(out, io.LimitReader(resp.Body, f.maxSize+1))
	if err != nil {
		return written, fmt.Errorf("%w: %v", ErrDownloadFailed, err)
	}
	if written > f.maxSize {
		return written, fmt.Errorf("%w: exceeds %d bytes", ErrModelTooLarge, f.maxSize)
	}

	metrics.ModelDownloadBytes.Add(float64(written))
	f.logger.Debug("model downloaded", "url", rawURL, "bytes", written)

	return written, nil
}

// FileName extracts and validates the model file name from a URL.
// The query string is ignored; the final path segment must carry a
// supported model extension.
func FileName(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("%w: scheme %q", ErrInvalidURL, u.Scheme)
	}

	name := path.Base(u.Path)
	if name == "." || name == "/" || name == "" {
		return "", fmt.Errorf("%w: no file name in path", ErrInvalidURL)
	}

	lower := strings.ToLower(name)
	for _, ext := range allowedExtensions {
		if strings.HasSuffix(lower, ext) {
			return name, nil
		}
	}

	return "", fmt.Errorf("%w: %s", ErrUnsupportedType, name)
}
