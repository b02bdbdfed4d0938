package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Source retrieves one named snapshot resource as raw bytes.
type Source interface {
	Get(ctx context.Context, name string) ([]byte, error)
	Name() string
}

// HTTPSource fetches snapshot resources from a static file host. Every
// request carries a t=<unix-millis> query parameter so intermediaries never
// serve a stale copy of a freshly synced file.
type HTTPSource struct {
	BaseURL   string
	Client    *http.Client
	CacheBust bool
	now       func() time.Time
}

// NewHTTPSource creates an HTTP source with the given base URL and an
// optional proxy.
func NewHTTPSource(baseURL, proxyURL string, timeout time.Duration) *HTTPSource {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPSource{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		CacheBust: true,
		now:       time.Now,
	}
}

func (s *HTTPSource) Name() string { return "http" }

func (s *HTTPSource) Get(ctx context.Context, name string) ([]byte, error) {
	u, err := url.JoinPath(s.BaseURL, name)
	if err != nil {
		return nil, fmt.Errorf("join url: %w", err)
	}
	if s.CacheBust {
		u += "?t=" + strconv.FormatInt(s.now().UnixMilli(), 10)
	}

	req, err := http.NewRequestWithContext(ctx, "GET", u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", name, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: status %d", name, resp.StatusCode)
	}
	return body, nil
}

// FileSource reads snapshot resources straight from the sync process's
// output directory.
type FileSource struct {
	Dir string
}

func NewFileSource(dir string) *FileSource { return &FileSource{Dir: dir} }

func (s *FileSource) Name() string { return "file" }

func (s *FileSource) Get(_ context.Context, name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.Dir, name))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return data, nil
}
