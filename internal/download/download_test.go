package download_test

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/layerbylayersg/slicer-estimate-api/internal/config"
	"github.com/layerbylayersg/slicer-estimate-api/internal/download"
)

func newFetcher(t *testing.T, maxSize string) download.System {
	t.Helper()

	cfg := &config.DownloadConfig{Timeout: "5s", MaxModelSize: maxSize}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	return download.New(cfg, slog.New(slog.DiscardHandler))
}

func TestFetcher_Fetch(t *testing.T) {
	body := "solid benchy\nendsolid benchy\n"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	defer srv.Close()

	sys := newFetcher(t, "1MB")
	dest := filepath.Join(t.TempDir(), "benchy.stl")

	written, err := sys.Fetch(context.Background(), srv.URL+"/benchy.stl", dest)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if written != int64(len(body)) {
		t.Errorf("written = %d, want %d", written, len(body))
	}

	got, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != body {
		t.Errorf("file content = %q, want %q", got, body)
	}
}

func TestFetcher_Fetch_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	sys := newFetcher(t, "1MB")
	dest := filepath.Join(t.TempDir(), "benchy.stl")

	_, err := sys.Fetch(context.Background(), srv.URL+"/benchy.stl", dest)
	if !errors.Is(err, download.ErrDownloadFailed) {
		t.Errorf("error = %v, want ErrDownloadFailed", err)
	}
}

func TestFetcher_Fetch_TooLarge_ContentLength(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(strings.Repeat("x", 4096)))
	}))
	defer srv.Close()

	sys := newFetcher(t, "1KB")
	dest := filepath.Join(t.TempDir(), "benchy.stl")

	_, err := sys.Fetch(context.Background(), srv.URL+"/benchy.stl", dest)
	if !errors.Is(err, download.ErrModelTooLarge) {
		t.Errorf("error = %v, want ErrModelTooLarge", err)
	}
}

func TestFetcher_Fetch_TooLarge_Streamed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Flush before writing so no Content-Length header is set.
		w.WriteHeader(http.StatusOK)
		if f, ok := w.(http.Flusher); ok {
			f.Flush()
		}
		w.Write([]byte(strings.Repeat("x", 4096)))
	}))
	defer srv.Close()

	sys := newFetcher(t, "1KB")
	dest := filepath.Join(t.TempDir(), "benchy.stl")

	_, err := sys.Fetch(context.Background(), srv.URL+"/benchy.stl", dest)
	if !errors.Is(err, download.ErrModelTooLarge) {
		t.Errorf("error = %v, want ErrModelTooLarge", err)
	}
}

func TestFetcher_Fetch_Unreachable(t *testing.T) {
	sys := newFetcher(t, "1MB")
	dest := filepath.Join(t.TempDir(), "benchy.stl")

	_, err := sys.Fetch(context.Background(), "http://127.0.0.1:1/benchy.stl", dest)
	if !errors.Is(err, download.ErrDownloadFailed) {
		t.Errorf("error = %v, want ErrDownloadFailed", err)
	}
}

func TestFileName(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr error
	}{
		{
			name: "stl",
			url:  "https://models.example.com/parts/benchy.stl",
			want: "benchy.stl",
		},
		{
			name: "3mf",
			url:  "http://models.example.com/bracket.3mf",
			want: "bracket.3mf",
		},
		{
			name: "query ignored",
			url:  "https://models.example.com/benchy.stl?token=abc&v=2",
			want: "benchy.stl",
		},
		{
			name: "uppercase extension",
			url:  "https://models.example.com/BENCHY.STL",
			want: "BENCHY.STL",
		},
		{
			name:    "unsupported extension",
			url:     "https://models.example.com/part.obj",
			wantErr: download.ErrUnsupportedType,
		},
		{
			name:    "extension only in query",
			url:     "https://models.example.com/part?name=benchy.stl",
			wantErr: download.ErrUnsupportedType,
		},
		{
			name:    "bad scheme",
			url:     "ftp://models.example.com/benchy.stl",
			wantErr: download.ErrInvalidURL,
		},
		{
			name:    "no path",
			url:     "https://models.example.com",
			wantErr: download.ErrInvalidURL,
		},
		{
			name:    "malformed",
			url:     "://nope",
			wantErr: download.ErrInvalidURL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := download.FileName(tt.url)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("FileName() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("FileName() = %q, want %q", got, tt.want)
			}
		})
	}
}
