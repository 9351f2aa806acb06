// Package source fetches raw bank bytes from an upload, a URL or a local file.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// MaxBankSize caps how many bytes are read from any source.
const MaxBankSize = 32 << 20

// DefaultFetchTimeout bounds URL fetches when no client is supplied.
const DefaultFetchTimeout = 15 * time.Second

// ErrNoSource is returned by Select when nothing is configured.
var ErrNoSource = errors.New("no question bank source configured")

// ErrTooLarge is returned when a bank exceeds MaxBankSize.
var ErrTooLarge = fmt.Errorf("question bank exceeds %d bytes", MaxBankSize)

// Source yields a display name and the raw bytes of a bank.
type Source interface {
	Fetch(ctx context.Context) (name string, data []byte, err error)
}

// NetworkError is returned when a URL bank cannot be retrieved so the caller
// can tell an unreachable source apart from a malformed file.
type NetworkError struct {
	URL     string
	Reason  string
	Wrapped error
}

func (e *NetworkError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("fetch %s: %s: %v", e.URL, e.Reason, e.Wrapped)
	}
	return fmt.Sprintf("fetch %s: %s", e.URL, e.Reason)
}

func (e *NetworkError) Unwrap() error {
	return e.Wrapped
}

// Upload is a bank handed over by the user (multipart form, file picker).
type Upload struct {
	Name string
	Data []byte
}

var _ Source = Upload{}

func (u Upload) Fetch(_ context.Context) (string, []byte, error) {
	if len(u.Data) > MaxBankSize {
		return "", nil, ErrTooLarge
	}
	name := u.Name
	if name == "" {
		name = "upload"
	}
	return name, u.Data, nil
}

// URL downloads a bank over HTTP(S).
type URL struct {
	Address string
	Client  *http.Client // nil uses a client with DefaultFetchTimeout
}

var _ Source = URL{}

func (u URL) Fetch(ctx context.Context) (string, []byte, error) {
	client := u.Client
	if client == nil {
		client = &http.Client{Timeout: DefaultFetchTimeout}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.Address, nil)
	if err != nil {
		return "", nil, &NetworkError{URL: u.Address, Reason: "invalid request", Wrapped: err}
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", nil, &NetworkError{URL: u.Address, Reason: "request failed", Wrapped: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", nil, &NetworkError{URL: u.Address, Reason: fmt.Sprintf("unexpected status %d", resp.StatusCode)}
	}

	data, err := readLimited(resp.Body)
	if err != nil {
		if errors.Is(err, ErrTooLarge) {
			return "", nil, err
		}
		return "", nil, &NetworkError{URL: u.Address, Reason: "reading body", Wrapped: err}
	}
	return nameFromURL(u.Address), data, nil
}

// Path reads a bank from the local filesystem.
type Path struct {
	Name string
}

var _ Source = Path{}

func (p Path) Fetch(_ context.Context) (string, []byte, error) {
	f, err := os.Open(p.Name)
	if err != nil {
		return "", nil, fmt.Errorf("open bank: %w", err)
	}
	defer f.Close()

	data, err := readLimited(f)
	if err != nil {
		return "", nil, fmt.Errorf("read bank %s: %w", p.Name, err)
	}
	return filepath.Base(p.Name), data, nil
}

func readLimited(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxBankSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > MaxBankSize {
		return nil, ErrTooLarge
	}
	return data, nil
}

func nameFromURL(address string) string {
	u, err := url.Parse(address)
	if err != nil {
		return address
	}
	base := filepath.Base(u.Path)
	if base == "." || base == "/" || base == "" {
		return u.Host
	}
	return base
}

// IsURL reports whether location has an http or https scheme.
func IsURL(location string) bool {
	u, err := url.Parse(strings.TrimSpace(location))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Select picks the bank source by priority: an explicit URL, then an upload,
// then the configured default location (URL or path).
func Select(explicitURL string, upload *Upload, defaultLocation string, client *http.Client) (Source, error) {
	if s := strings.TrimSpace(explicitURL); s != "" {
		return URL{Address: s, Client: client}, nil
	}
	if upload != nil {
		return *upload, nil
	}
	loc := strings.TrimSpace(defaultLocation)
	if loc == "" {
		return nil, ErrNoSource
	}
	if IsURL(loc) {
		return URL{Address: loc, Client: client}, nil
	}
	return Path{Name: loc}, nil
}
