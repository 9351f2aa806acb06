package source_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/remaimber-it/quizbank/internal/source"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func TestSelect_Priority(t *testing.T) {
	upload := &source.Upload{Name: "mine.csv", Data: []byte("x")}

	tests := []struct {
		name     string
		url      string
		upload   *source.Upload
		fallback string
		wantType string
	}{
		{"explicit url wins", "https://example.com/a.csv", upload, "local.csv", "url"},
		{"upload over default", "", upload, "https://example.com/b.csv", "upload"},
		{"default url", "", nil, "https://example.com/b.csv", "url"},
		{"default path", "", nil, "banks/local.csv", "path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := source.Select(tt.url, tt.upload, tt.fallback, nil)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			var got string
			switch src.(type) {
			case source.URL:
				got = "url"
			case source.Upload:
				got = "upload"
			case source.Path:
				got = "path"
			}
			if got != tt.wantType {
				t.Errorf("expected %s source, got %T", tt.wantType, src)
			}
		})
	}
}

func TestSelect_NothingConfigured(t *testing.T) {
	_, err := source.Select("  ", nil, "", nil)
	if !errors.Is(err, source.ErrNoSource) {
		t.Errorf("expected ErrNoSource, got %v", err)
	}
}

func TestURL_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("id,topic\n"))
	}))
	defer srv.Close()

	name, data, err := source.URL{Address: srv.URL + "/banks/obstetrics.csv"}.Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "obstetrics.csv" {
		t.Errorf("expected name obstetrics.csv, got %q", name)
	}
	if string(data) != "id,topic\n" {
		t.Errorf("unexpected body %q", data)
	}
}

func TestURL_FetchNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	_, _, err := source.URL{Address: srv.URL}.Fetch(context.Background())

	var netErr *source.NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected NetworkError, got %v", err)
	}
	if !strings.Contains(netErr.Reason, "404") {
		t.Errorf("expected status in reason, got %q", netErr.Reason)
	}
}

func TestURL_FetchTransportFailure(t *testing.T) {
	boom := errors.New("connection refused")
	client := &http.Client{Transport: roundTripperFunc(func(*http.Request) (*http.Response, error) {
		return nil, boom
	})}

	_, _, err := source.URL{Address: "https://example.com/q.csv", Client: client}.Fetch(context.Background())

	var netErr *source.NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected NetworkError, got %v", err)
	}
	if !errors.Is(err, boom) {
		t.Errorf("expected wrapped transport error, got %v", err)
	}
}

func TestURL_FetchTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	client := &http.Client{Timeout: 50 * time.Millisecond}
	_, _, err := source.URL{Address: srv.URL, Client: client}.Fetch(context.Background())

	var netErr *source.NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected NetworkError on timeout, got %v", err)
	}
}

func TestURL_FetchTooLarge(t *testing.T) {
	client := &http.Client{Transport: roundTripperFunc(func(*http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(io.LimitReader(zeroReader{}, source.MaxBankSize+10)),
			Header:     make(http.Header),
		}, nil
	})}

	_, _, err := source.URL{Address: "https://example.com/big.csv", Client: client}.Fetch(context.Background())
	if !errors.Is(err, source.ErrTooLarge) {
		t.Errorf("expected ErrTooLarge, got %v", err)
	}
}

type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 'a'
	}
	return len(p), nil
}

func TestPath_Fetch(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "bank.csv")
	if err := os.WriteFile(file, []byte("data"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	name, data, err := source.Path{Name: file}.Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "bank.csv" || string(data) != "data" {
		t.Errorf("unexpected result %q %q", name, data)
	}

	if _, _, err := (source.Path{Name: filepath.Join(dir, "missing.csv")}).Fetch(context.Background()); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected ErrNotExist, got %v", err)
	}
}

func TestIsURL(t *testing.T) {
	cases := map[string]bool{
		"https://x.org/a.csv": true,
		"http://x.org":        true,
		"ftp://x.org/a.csv":   false,
		"questions.csv":       false,
		"C:/banks/q.csv":      false,
	}
	for in, want := range cases {
		if got := source.IsURL(in); got != want {
			t.Errorf("IsURL(%q) = %v, want %v", in, got, want)
		}
	}
}
