// Package dist implements the Fetcher port for runtime release downloads.
package dist

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/go-git/go-billy/v5"
	"go.trai.ch/multinode/internal/core/domain"
	"go.trai.ch/zerr"
)

const schemeFile = "file"

// Fetcher implements ports.Fetcher over HTTP(S) and file:// URLs.
type Fetcher struct {
	httpClient *http.Client
	fs         billy.Filesystem
}

// NewFetcher creates a Fetcher. Requests are bounded only by their context.
func NewFetcher(fsys billy.Filesystem) *Fetcher {
	return newFetcherWithClient(fsys, &http.Client{})
}

func newFetcherWithClient(fsys billy.Filesystem, client *http.Client) *Fetcher {
	return &Fetcher{httpClient: client, fs: fsys}
}

// Fetch streams the resource at rawURL into w.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string, w io.Writer) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDownloadFailed.Error()), "url", rawURL)
	}

	if u.Scheme == schemeFile {
		return f.fetchFile(u.Path, w)
	}
	return f.fetchHTTP(ctx, rawURL, w)
}

func (f *Fetcher) fetchFile(path string, w io.Writer) error {
	src, err := f.fs.Open(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDownloadFailed.Error()), "url", "file://"+path)
	}
	defer func() { _ = src.Close() }()

	if _, err := io.Copy(w, src); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDownloadFailed.Error()), "url", "file://"+path)
	}
	return nil
}

func (f *Fetcher) fetchHTTP(ctx context.Context, rawURL string, w io.Writer) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDownloadFailed.Error()), "url", rawURL)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDownloadFailed.Error()), "url", rawURL)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		statusErr := zerr.With(domain.ErrDownloadFailed, "status_code", resp.StatusCode)
		return zerr.With(statusErr, "url", rawURL)
	}

	if _, err := io.Copy(w, resp.Body); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDownloadFailed.Error()), "url", rawURL)
	}
	return nil
}
